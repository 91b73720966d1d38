// Package chart renders the selected series of an analysis run to a PNG line
// chart. It consumes only the (x-values, y-values, x-label, y-label) contract
// of the pipeline.
package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/KineticBytes/echem-cli/internal/echem"
	"github.com/KineticBytes/echem-cli/internal/utils"
)

// Options controls the rendered chart dimensions.
type Options struct {
	Width  int
	Height int
}

// Render draws the analysis series as a line chart PNG at path, replacing any
// previous file there. A single-point series is padded to two X values since
// the renderer needs a non-zero X range.
func Render(a *echem.Analysis, opt Options, path string) error {
	if len(a.XSeries) == 0 {
		return fmt.Errorf("render chart: empty series")
	}
	xs, ys := a.XSeries, a.YSeries
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		ys = []float64{ys[0], ys[0]}
	}

	graph := gochart.Chart{
		Title:  a.Mode.String(),
		Width:  opt.Width,
		Height: opt.Height,
		XAxis:  gochart.XAxis{Name: a.Axes.XLabel},
		YAxis:  gochart.YAxis{Name: a.Axes.YLabel},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    a.Axes.YLabel,
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
