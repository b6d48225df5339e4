// SPDX-License-Identifier: MIT

// Package pipeline ranks a batch of image files concurrently.
//
// A Runner decodes each file with imageio, estimates its rank with a
// shared rank.Estimator and stores the outcome in a Result slot addressed
// by the file's input index, so a Report lists results in input order no
// matter how the workers interleave. A file that cannot be decoded or
// ranked is recorded as a failure and skipped; the batch continues.
//
// Concurrency is bounded by WithWorkers through errgroup.SetLimit.
// Cancelling the context stops scheduling new files and Run returns
// ctx.Err().
//
// Observability is injected: WithLogger takes a zerolog.Logger (Nop by
// default) and WithMetrics takes a *Metrics whose Prometheus collectors
// live in a private registry that can be dumped to a textfile.
package pipeline
