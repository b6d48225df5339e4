// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Bin is the number of images that share one rank.
type Bin struct {
	Rank  int
	Count int
}

// Frequencies counts ranks, ordered by rank ascending.
func Frequencies(ranks []int) []Bin {
	counts := make(map[int]int, len(ranks))
	for _, r := range ranks {
		counts[r]++
	}
	bins := make([]Bin, 0, len(counts))
	for r, c := range counts {
		bins = append(bins, Bin{Rank: r, Count: c})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Rank < bins[j].Rank })

	return bins
}

// Histogram saves a histogram of ranks to path with x ticks at every
// distinct rank.
func Histogram(ranks []int, path string, opts ...Option) error {
	if len(ranks) == 0 {
		return ErrNoData
	}
	o := gatherOptions(opts...)

	vals := make(plotter.Values, len(ranks))
	for i, r := range ranks {
		vals[i] = float64(r)
	}
	h, err := plotter.NewHist(vals, o.bins)
	if err != nil {
		return fmt.Errorf("chart: histogram: %w", err)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "Rank"
	p.Y.Label.Text = "Frequency"
	p.Add(h)
	p.X.Tick.Marker = rankTicks(ranks)

	return save(p, o, path)
}

// SingularValuesPlot saves a line plot of sv against its index.
func SingularValuesPlot(sv []float64, path string, opts ...Option) error {
	if len(sv) == 0 {
		return ErrNoData
	}
	o := gatherOptions(opts...)

	pts := make(plotter.XYs, len(sv))
	for i, v := range sv {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("chart: line: %w", err)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "index"
	p.Y.Label.Text = "singular values"
	p.Add(line)

	return save(p, o, path)
}

func rankTicks(ranks []int) plot.ConstantTicks {
	bins := Frequencies(ranks)
	ticks := make(plot.ConstantTicks, len(bins))
	for i, b := range bins {
		ticks[i] = plot.Tick{Value: float64(b.Rank), Label: strconv.Itoa(b.Rank)}
	}

	return ticks
}

func save(p *plot.Plot, o options, path string) error {
	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}
