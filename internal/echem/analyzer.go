// Package echem implements the ingestion-and-analysis pipeline for plain-text
// electrochemistry instrument exports: technique detection, table extraction,
// axis selection and summary statistics. Each run produces a self-contained
// Analysis value; the package keeps no state between runs.
package echem

import "github.com/google/uuid"

// Analysis is the per-run aggregate threaded through report composition and
// charting. It is created by Analyze and never mutated afterwards.
type Analysis struct {
	RunID   uuid.UUID
	Mode    ExperimentMode
	Header  []string
	Table   [][]float64
	Axes    AxisSelection
	XSeries []float64
	YSeries []float64
	// Skipped counts table rows too narrow for the selected axes.
	Skipped int
	Stats   SeriesStats
}

// HasData reports whether any numeric rows were extracted.
func (a *Analysis) HasData() bool {
	return len(a.Table) > 0
}

// Analyze runs the full pipeline over a raw export: line splitting, mode
// detection, table extraction, axis selection and series statistics.
// Statistics are computed only when the projected series is non-empty.
func Analyze(text string) *Analysis {
	lines := splitLines(text)
	a := &Analysis{RunID: uuid.New()}
	a.Mode = DetectMode(lines)
	a.Header, a.Table = ExtractTable(lines)
	a.Axes = SelectAxes(a.Header)
	if !a.HasData() {
		return a
	}
	a.XSeries, a.YSeries, a.Skipped = SeriesAt(a.Table, a.Axes)
	if len(a.YSeries) > 0 {
		a.Stats = Summarize(a.YSeries)
	}
	return a
}
