// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const opPlot = "PlotLatency"

// Plot geometry.
const (
	boxWidth       = vg.Length(20)
	plotHeight     = 4 * vg.Inch
	minPlotWidth   = 4 * vg.Inch
	widthPerRecord = 0.6 * vg.Inch
)

// PlotLatency draws one box per record (per-run milliseconds) and saves the
// figure to path. The image format follows the extension (.png, .svg, .pdf,
// ...); an unknown extension is reported by the plot backend.
//
// Errors: ErrEmpty when recs is empty or a record has no timings.
func PlotLatency(recs []Record, path string) error {
	if len(recs) == 0 {
		return fmt.Errorf("%s: %w", opPlot, ErrEmpty)
	}

	p := plot.New()
	p.Title.Text = "SpMV latency"
	p.Y.Label.Text = "time per run (ms)"

	names := make([]string, len(recs))
	for i, r := range recs {
		if len(r.Millis) == 0 {
			return fmt.Errorf("%s: record %d (%s): %w", opPlot, i, r.Label(), ErrEmpty)
		}
		box, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(r.Millis))
		if err != nil {
			return fmt.Errorf("%s: record %d: %w", opPlot, i, err)
		}
		p.Add(box)
		names[i] = strings.TrimPrefix(r.Label(), r.Matrix+" ")
	}
	p.NominalX(names...)
	if m := recs[0].Matrix; m != "" {
		p.Title.Text += " - " + m
	}

	width := max(minPlotWidth, vg.Length(len(recs))*widthPerRecord)
	if err := p.Save(width, plotHeight, filepath.Clean(path)); err != nil {
		return fmt.Errorf("%s: %w", opPlot, err)
	}

	return nil
}
