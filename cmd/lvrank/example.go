// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrank/matrix"
)

// exampleRows is the 9×5 reference matrix; its true rank is 3.
var exampleRows = [][]float64{
	{1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0},
	{1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0},
	{1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0},
	{1, 0, 2, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
}

func (a *app) exampleCmd() *cobra.Command {
	var est estimatorFlags
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Rank the 9x5 reference matrix (true rank 3)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if err := est.apply(cmd.Flags(), &cfg); err != nil {
				return err
			}
			estimator, err := cfg.Estimator()
			if err != nil {
				return err
			}
			m, err := matrix.NewFromRows(exampleRows)
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
			fmt.Fprintf(w, "matrix (%dx%d):\n%s", m.Rows(), m.Cols(), m)
			fmt.Fprintf(w, "normalized singular values: %.4f\n", []float64(sv))
			fmt.Fprintf(w, "rank: %d\n", r)
			a.log.Debug().Str("backend", estimator.Backend()).Int("rank", r).Msg("example ranked")

			return nil
		},
	}
	est.bind(cmd.Flags())

	return cmd
}
