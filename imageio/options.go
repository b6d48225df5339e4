// SPDX-License-Identifier: MIT

package imageio

// DefaultExtension is the file suffix selected by Discover when no
// extensions are given. Matching is case-sensitive.
const DefaultExtension = ".jpg"

// DefaultMaxDim keeps images at their native size.
const DefaultMaxDim = 0

const panicMaxDimInvalid = "imageio: WithMaxDim: n must be >= 0"

// DefaultExtensions returns a fresh slice holding DefaultExtension.
func DefaultExtensions() []string { return []string{DefaultExtension} }

// Option configures decoding.
type Option func(*options)

type options struct {
	maxDim int
}

// WithMaxDim downsamples images whose longest side exceeds n pixels so that
// it becomes n, preserving the aspect ratio (CatmullRom resampling).
// n == 0 disables resampling. Panics when n < 0.
func WithMaxDim(n int) Option {
	if n < 0 {
		panic(panicMaxDimInvalid)
	}

	return func(o *options) { o.maxDim = n }
}

func gatherOptions(user ...Option) options {
	o := options{maxDim: DefaultMaxDim}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
