package echem

import (
	"math"
	"strconv"
)

// SeriesStats summarizes a numeric series.
type SeriesStats struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
	Std   float64
}

// Summarize computes count, mean, min, max and sample standard deviation in
// one pass (Welford update for the variance). The caller must not pass an
// empty series; extraction short-circuits to the no-data report before
// statistics run.
func Summarize(vals []float64) SeriesStats {
	s := SeriesStats{Min: math.Inf(1), Max: math.Inf(-1)}
	var mean, m2 float64
	for _, v := range vals {
		s.Count++
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		delta := v - mean
		mean += delta / float64(s.Count)
		m2 += delta * (v - mean)
	}
	s.Mean = mean
	if s.Count > 1 {
		s.Std = math.Sqrt(m2 / float64(s.Count-1))
	}
	return s
}

// FormatScientific renders a value in normalized scientific notation with
// three fractional digits, e.g. 1.500e-03.
func FormatScientific(v float64) string {
	return strconv.FormatFloat(v, 'e', 3, 64)
}
