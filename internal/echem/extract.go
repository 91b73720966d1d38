package echem

import "strings"

// extractState tracks the two phases of table extraction.
type extractState int

const (
	scanningForHeader extractState = iota
	readingData
)

// ExtractTable separates an export's metadata from its header row and numeric
// table. The first line containing a parenthesized units annotation becomes
// the header (first qualifying line wins; the machine never returns to the
// scanning state). Every non-blank line that begins with a numeric-looking
// token is a data-row candidate regardless of header state; a candidate is
// appended only if all of its tokens parse, so partially numeric lines are
// dropped silently rather than truncated. Row widths are not validated
// against the header width.
func ExtractTable(lines []string) (header []string, table [][]float64) {
	state := scanningForHeader
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if state == scanningForHeader && isHeaderLine(line) {
			header = strings.Fields(line)
			state = readingData
			continue
		}
		if !isNumericDataLine(line) {
			continue
		}
		if row, ok := parseRow(line); ok {
			table = append(table, row)
		}
	}
	return header, table
}
