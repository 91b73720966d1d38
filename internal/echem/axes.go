package echem

import "strings"

// AxisSelection names which table columns feed the plotted series.
type AxisSelection struct {
	XIndex int
	YIndex int
	XLabel string
	YLabel string
}

// SelectAxes picks the independent and dependent columns from the header.
// Defaults are column 0 for x and column 1 for y. Every label is inspected
// in order: a label whose lowercase form contains "t" moves the x-axis to
// that position, one containing "i" moves the y-axis. The scan runs to the
// end, so the last matching label wins for each axis.
func SelectAxes(header []string) AxisSelection {
	sel := AxisSelection{XIndex: 0, YIndex: 1, XLabel: "X", YLabel: "Y"}
	for i, label := range header {
		l := strings.ToLower(label)
		if strings.Contains(l, "t") {
			sel.XIndex = i
		}
		if strings.Contains(l, "i") {
			sel.YIndex = i
		}
	}
	if sel.XIndex < len(header) {
		sel.XLabel = header[sel.XIndex]
	}
	if sel.YIndex < len(header) {
		sel.YLabel = header[sel.YIndex]
	}
	return sel
}

// SeriesAt projects the table at the selected indices. Rows too narrow for
// either index are skipped rather than read out of bounds; skipped reports
// how many were left out so callers can account for the difference between
// row count and series length.
func SeriesAt(table [][]float64, sel AxisSelection) (xs, ys []float64, skipped int) {
	for _, row := range table {
		if sel.XIndex >= len(row) || sel.YIndex >= len(row) {
			skipped++
			continue
		}
		xs = append(xs, row[sel.XIndex])
		ys = append(ys, row[sel.YIndex])
	}
	return xs, ys, skipped
}
