package seqmotif

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotKmers saves a bar chart of the top most frequent k-mers to path.
// The image format comes from the path's extension (png, svg, pdf, ...)
func plotKmers(path string, freqs KmerFrequencies, top int) error {
	ranked := freqs.Ranked
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	if len(ranked) == 0 {
		return fmt.Errorf("no %d-mers in %s to plot", freqs.K, freqs.ID)
	}

	values := make(plotter.Values, len(ranked))
	names := make([]string, len(ranked))
	for i, kc := range ranked {
		values[i] = float64(kc.Count)
		names[i] = kc.Kmer
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d-mer frequencies in %s", freqs.K, freqs.ID)
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return fmt.Errorf("failed to make k-mer bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)

	width := vg.Points(float64(20*len(ranked) + 80))
	if err := p.Save(width, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save k-mer plot to %s: %w", path, err)
	}
	return nil
}
