// SPDX-License-Identifier: MIT

package pipeline

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvrank/imageio"
)

const panicWorkersNegative = "pipeline: WithWorkers: n must be >= 0"

// Option configures a Runner.
type Option func(*options)

type options struct {
	workers    int
	logger     zerolog.Logger
	metrics    *Metrics
	decodeOpts []imageio.Option
}

// WithWorkers bounds the number of files processed at once.
// n == 0 selects runtime.NumCPU(). Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger for per-file outcomes.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records every outcome in m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithDecodeOptions forwards opts to imageio.DecodeFile.
func WithDecodeOptions(opts ...imageio.Option) Option {
	return func(o *options) { o.decodeOpts = append(o.decodeOpts, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{logger: zerolog.Nop()}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.NumCPU()
	}

	return o
}
