package echem

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// A header line carries at least one parenthesized units annotation,
	// e.g. "t(s) i(A)".
	headerUnitsRe = regexp.MustCompile(`\([^)]*\)`)
	// Leading numeric token: digits with optional sign, decimal point and
	// exponent marker.
	numericLeadRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// splitLines breaks a raw export into lines, accepting either line-ending
// convention.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// isHeaderLine reports whether a trimmed line qualifies as the column header.
func isHeaderLine(line string) bool {
	return headerUnitsRe.MatchString(line)
}

// isNumericDataLine reports whether a trimmed line begins with a
// numeric-looking token.
func isNumericDataLine(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && numericLeadRe.MatchString(fields[0])
}

// parseRow parses every whitespace-delimited token of a candidate data line.
// The row is admitted only if every token parses as a finite number.
func parseRow(line string) ([]float64, bool) {
	fields := strings.Fields(line)
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		row = append(row, v)
	}
	return row, true
}
