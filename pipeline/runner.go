// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvrank/imageio"
	"github.com/katalvlaran/lvrank/rank"
)

const panicEstimatorNil = "pipeline: New: estimator must not be nil"

// Result is the outcome for one input file.
type Result struct {
	Index   int           // position in the input slice
	Path    string        // file that was processed
	Rank    int           // estimated rank; meaningful only when Err == nil
	Err     error         // decode or rank failure
	Elapsed time.Duration // decode plus rank time
}

// OK reports whether the file was ranked.
func (r Result) OK() bool { return r.Err == nil }

// Reason classifies a failure as ReasonDecode or ReasonRank; "" on success.
func (r Result) Reason() string { return reasonOf(r.Err) }

// Report holds the results of a batch in input order.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Ranks returns the ranks of the successful results, in input order.
func (r *Report) Ranks() []int {
	out := make([]int, 0, len(r.Results))
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res.Rank)
		}
	}

	return out
}

// Failures returns the failed results, in input order.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}

	return out
}

// Runner ranks files with a shared estimator. A Runner is safe for
// concurrent use; each Run call uses its own worker pool.
type Runner struct {
	est        *rank.Estimator
	workers    int
	log        zerolog.Logger
	metrics    *Metrics
	decodeOpts []imageio.Option
}

// New returns a Runner using est. Panics when est is nil.
func New(est *rank.Estimator, opts ...Option) *Runner {
	if est == nil {
		panic(panicEstimatorNil)
	}
	o := gatherOptions(opts...)

	return &Runner{
		est:        est,
		workers:    o.workers,
		log:        o.logger,
		metrics:    o.metrics,
		decodeOpts: o.decodeOpts,
	}
}

// Workers returns the resolved concurrency bound.
func (r *Runner) Workers() int { return r.workers }

// Run processes paths with at most Workers() files in flight.
// Per-file failures are recorded in the Report and never returned as the
// error; the only error is ctx.Err() after cancellation.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	start := time.Now()
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, path := range paths {
		i, path := i, path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.process(i, path)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := &Report{Results: results, Elapsed: time.Since(start)}
	r.log.Info().
		Int("images", len(paths)).
		Int("failed", len(rep.Failures())).
		Str("backend", r.est.Backend()).
		Dur("elapsed", rep.Elapsed).
		Msg("batch complete")

	return rep, nil
}

// RunDir discovers files in dir with imageio.Discover and runs them.
// It returns ErrNoImages when nothing matches.
func (r *Runner) RunDir(ctx context.Context, dir string, exts ...string) (*Report, error) {
	paths, err := imageio.Discover(dir, exts...)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	r.log.Debug().Str("dir", dir).Int("images", len(paths)).Msg("discovered images")

	return r.Run(ctx, paths)
}

func (r *Runner) process(i int, path string) Result {
	start := time.Now()
	res := Result{Index: i, Path: path}

	m, err := imageio.DecodeFile(path, r.decodeOpts...)
	if err == nil {
		res.Rank, err = r.est.MatrixRank(m)
	}
	res.Err = err
	res.Elapsed = time.Since(start)
	r.metrics.observe(res)

	if err != nil {
		r.log.Warn().
			Err(err).
			Str("path", path).
			Str("reason", res.Reason()).
			Msg("skipping image")
		return res
	}
	r.log.Debug().
		Str("path", path).
		Int("rank", res.Rank).
		Dur("elapsed", res.Elapsed).
		Msg("ranked image")

	return res
}
