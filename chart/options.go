// SPDX-License-Identifier: MIT

package chart

import "gonum.org/v1/plot/vg"

// Defaults mirror matplotlib's figure size and histogram bin count.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
	DefaultBins   = 10

	// DefaultHistogramPath is where the batch run saves its histogram.
	DefaultHistogramPath = "painting_ranks.png"
)

const (
	panicSizeInvalid = "chart: WithSize: width and height must be > 0"
	panicBinsInvalid = "chart: WithBins: bins must be >= 1"
)

// Option configures a chart.
type Option func(*options)

type options struct {
	width, height vg.Length
	bins          int
	title         string
}

// WithSize sets the canvas size. Panics on non-positive lengths.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *options) { o.width, o.height = width, height }
}

// WithBins sets the histogram bin count. Panics when n < 1.
func WithBins(n int) Option {
	if n < 1 {
		panic(panicBinsInvalid)
	}

	return func(o *options) { o.bins = n }
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

func gatherOptions(user ...Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight, bins: DefaultBins}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
