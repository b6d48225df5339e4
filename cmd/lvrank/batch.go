// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrank/chart"
	"github.com/katalvlaran/lvrank/pipeline"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		est     estimatorFlags
		workers int
		out     string
		metrics string
		exts    []string
	)
	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Rank every image in a directory and save the rank histogram",
		Long: "Rank every image in dir (paintings_dir when omitted), print a per-file table\n" +
			"and save the histogram of ranks. Files that cannot be decoded or ranked are\n" +
			"reported and skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			fs := cmd.Flags()
			if len(args) == 1 {
				cfg.PaintingsDir = args[0]
			}
			if fs.Changed("workers") {
				cfg.Workers = workers
			}
			if fs.Changed("out") {
				cfg.HistogramPath = out
			}
			if fs.Changed("metrics") {
				cfg.MetricsPath = metrics
			}
			if fs.Changed("ext") {
				cfg.Extensions = exts
			}
			if err := est.apply(fs, &cfg); err != nil {
				return err
			}

			estimator, err := cfg.Estimator()
			if err != nil {
				return err
			}
			var m *pipeline.Metrics
			if cfg.MetricsPath != "" {
				m = pipeline.NewMetrics()
			}
			runner := pipeline.New(estimator,
				pipeline.WithWorkers(cfg.EffectiveWorkers()),
				pipeline.WithLogger(a.log),
				pipeline.WithMetrics(m),
				pipeline.WithDecodeOptions(cfg.DecodeOptions()...),
			)

			a.log.Info().
				Str("dir", cfg.PaintingsDir).
				Strs("extensions", cfg.Extensions).
				Int("workers", runner.Workers()).
				Str("backend", estimator.Backend()).
				Msg("ranking paintings")
			rep, err := runner.RunDir(cmd.Context(), cfg.PaintingsDir, cfg.Extensions...)
			if err != nil {
				return err
			}
			if err := printReport(cmd.OutOrStdout(), rep); err != nil {
				return err
			}

			if err := chart.Histogram(rep.Ranks(), cfg.HistogramPath); err != nil {
				return err
			}
			a.log.Info().Str("path", cfg.HistogramPath).Msg("saved rank histogram")

			if m != nil {
				if err := m.WriteTextfile(cfg.MetricsPath); err != nil {
					return err
				}
				a.log.Info().Str("path", cfg.MetricsPath).Msg("saved metrics")
			}

			return nil
		},
	}
	fs := cmd.Flags()
	est.bind(fs)
	fs.IntVarP(&workers, "workers", "w", 0, "override workers (0 uses every CPU)")
	fs.StringVarP(&out, "out", "o", "", "override histogram_path")
	fs.StringVar(&metrics, "metrics", "", "write Prometheus textfile metrics to this path")
	fs.StringSliceVar(&exts, "ext", nil, "override extensions, e.g. --ext .jpg,.png")

	return cmd
}

// printReport writes one row per input file followed by the rank frequencies.
func printReport(w io.Writer, rep *pipeline.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tRANK\tELAPSED")
	for _, res := range rep.Results {
		name := filepath.Base(res.Path)
		if !res.OK() {
			fmt.Fprintf(tw, "%s\tskipped (%s)\t%s\n", name, res.Reason(), res.Elapsed.Round(time.Microsecond))
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", name, res.Rank, res.Elapsed.Round(time.Microsecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d images, %d skipped, %s\n\n", len(rep.Results), len(rep.Failures()), rep.Elapsed.Round(time.Microsecond))

	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCOUNT")
	for _, b := range chart.Frequencies(rep.Ranks()) {
		fmt.Fprintf(tw, "%d\t%d\n", b.Rank, b.Count)
	}

	return tw.Flush()
}
