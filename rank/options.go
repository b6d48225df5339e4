// SPDX-License-Identifier: MIT

package rank

import "math"

// DefaultThreshold is the relative cutoff: a normalized singular value
// strictly below it is negligible.
const DefaultThreshold = 0.05

const (
	panicThresholdInvalid = "rank: WithThreshold: threshold must be finite and in (0, 1]"
	panicDecomposerNil    = "rank: WithDecomposer: decomposer must not be nil"
)

// Option configures an Estimator. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options is the resolved configuration; fields are unexported.
type Options struct {
	threshold  float64
	decomposer Decomposer
}

// WithThreshold overrides DefaultThreshold. Panics unless 0 < t ≤ 1.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 || t > 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithDecomposer selects the SVD backend. Panics on nil.
func WithDecomposer(d Decomposer) Option {
	if d == nil {
		panic(panicDecomposerNil)
	}

	return func(o *Options) { o.decomposer = d }
}

func gatherOptions(user ...Option) Options {
	o := Options{threshold: DefaultThreshold, decomposer: GonumSVD{}}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
