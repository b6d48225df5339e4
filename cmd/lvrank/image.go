// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrank/chart"
	"github.com/katalvlaran/lvrank/imageio"
)

func (a *app) imageCmd() *cobra.Command {
	var (
		est  estimatorFlags
		plot string
		top  int
	)
	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Rank a single image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := est.apply(cmd.Flags(), &cfg); err != nil {
				return err
			}
			estimator, err := cfg.Estimator()
			if err != nil {
				return err
			}

			path := args[0]
			m, err := imageio.DecodeFile(path, cfg.DecodeOptions()...)
			if err != nil {
				return err
			}
			sv, err := estimator.SingularValues(m)
			if err != nil {
				return err
			}
			r, err := estimator.Rank(sv)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "image: %s (%dx%d)\n", path, m.Cols(), m.Rows())
			if top > 0 {
				fmt.Fprintf(w, "leading singular values: %.4f\n", []float64(sv[:min(top, len(sv))]))
			}
			fmt.Fprintf(w, "rank: %d\n", r)

			if plot != "" {
				if err := chart.SingularValuesPlot(sv, plot, chart.WithTitle(path)); err != nil {
					return err
				}
				a.log.Info().Str("path", plot).Msg("saved singular value plot")
			}

			return nil
		},
	}
	fs := cmd.Flags()
	est.bind(fs)
	fs.StringVar(&plot, "plot", "", "save the normalized singular values as a line plot to this PNG")
	fs.IntVar(&top, "top", 0, "print the n leading normalized singular values")

	return cmd
}
