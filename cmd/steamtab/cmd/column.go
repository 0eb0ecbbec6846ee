// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/fluid"
	"github.com/cpmech/gosteam/out"
	"github.com/spf13/cobra"
)

var (
	colT, colP0, colH, colGrav float64
	colNp                      int
	colPlot                    bool
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Pressure and density along a fluid column",
	Long: `Computes pressure and density along a column of water or steam at constant
temperature. The density model is linearised around the state at the top.

Examples:
  steamtab column -T 298.15 --P0 101325 -H 10`,
	Args: cobra.NoArgs,
	RunE: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)
	columnCmd.Flags().Float64VarP(&colT, "temperature", "T", 298.15, "temperature [K]")
	columnCmd.Flags().Float64Var(&colP0, "P0", 101325, "pressure at the top [Pa]")
	columnCmd.Flags().Float64VarP(&colH, "height", "H", 10, "height [m]")
	columnCmd.Flags().Float64Var(&colGrav, "grav", 9.81, "gravity acceleration [m/s²]")
	columnCmd.Flags().IntVar(&colNp, "np", 11, "number of stations")
	columnCmd.Flags().BoolVar(&colPlot, "plot", false, "plot to the output directory")
}

func runColumn(cmd *cobra.Command, args []string) error {
	if colNp < 2 {
		return fmt.Errorf("number of stations must be at least 2. np = %d", colNp)
	}
	var mdl fluid.Model
	if err := mdl.FromTable(tab, colT, colP0, colH, colGrav); err != nil {
		return err
	}
	printColumn(cmd, &mdl, colNp, cfg.NumFmt)
	if colPlot {
		out.PlotColumn(&mdl, colNp, cfg.DirOut, "column")
	}
	return nil
}

// printColumn prints elevation, pressure and density from the top to the bottom
func printColumn(cmd *cobra.Command, mdl *fluid.Model, np int, numfmt string) {
	w := cmd.OutOrStdout()
	width := len(io.Sf(numfmt, 0.0))
	sfmt := io.Sf("%%%ds%%%ds%%%ds\n", width, width, width)
	fmt.Fprintf(w, sfmt, "z", "p", "rho")
	Z, P, R := mdl.Profile(np)
	for i := np - 1; i >= 0; i-- {
		fmt.Fprintf(w, numfmt+numfmt+numfmt+"\n", Z[i], P[i], R[i])
	}
}
