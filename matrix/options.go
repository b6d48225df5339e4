// SPDX-License-Identifier: MIT

// Package matrix: options shared by the constructors (NaN/Inf policy) and
// SingularValues (tolerance, sweep budget).
//
// WithX constructors panic on values that can only be programmer errors;
// everything else is resolved by gatherOptions over the defaults below.
package matrix

// ---------- Defaults ----------

const (
	// DefaultEpsilon is the relative orthogonality tolerance of the Jacobi
	// sweeps: columns p,q count as orthogonal once |<a_p,a_q>| ≤ eps·‖a_p‖‖a_q‖.
	DefaultEpsilon = 1e-12

	// DefaultMaxSweeps caps the number of full (p,q) sweeps in SingularValues.
	// One-sided Jacobi converges quadratically; a few dozen sweeps cover
	// image-sized inputs comfortably.
	DefaultMaxSweeps = 64

	// DefaultValidateNaNInf makes constructors and Set refuse NaN and ±Inf.
	DefaultValidateNaNInf = true
)

// ---------- panic messages ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, positive"
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
)

// Option adjusts one setting; applying the same Option twice is harmless.
type Option func(*Options)

// Options is the resolved configuration. Read it through the accessor methods.
type Options struct {
	eps            float64 // > 0; DefaultEpsilon
	maxSweeps      int     // > 0; DefaultMaxSweeps
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the relative tolerance used by SingularValues.
//
// Panics with a stable message when eps is not finite or not positive.
// Larger eps stops earlier with less accurate small singular values.
func WithEpsilon(eps float64) Option {
	if !finite(eps) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxSweeps sets the sweep budget for SingularValues.
// Panics when sweeps ≤ 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// WithValidateNaNInf enables finite-only writes on matrices built with the options.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only policy. Intended for
// controlled ingestion where the caller already vetted the data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts the way the package does internally.
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxSweeps reports the resolved sweep budget.
func (o Options) MaxSweeps() int { return o.maxSweeps }

// ValidateNaNInf reports whether finite-only writes are enforced.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user setters in order over the defaults; later
// setters win. Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon, maxSweeps: DefaultMaxSweeps, validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range user {
		if fn == nil {
			continue
		}
		fn(&o)
	}

	return o
}
