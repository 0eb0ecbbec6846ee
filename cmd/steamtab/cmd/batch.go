// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/inp"
	"github.com/cpmech/gosteam/out"
	"github.com/spf13/cobra"
)

var (
	batchSave bool
	batchPlot bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Run the queries of a batch file",
	Long: `Reads queries from a JSON, YAML or TOML file and prints a table of results.

Examples:
  steamtab batch water.yaml
  steamtab batch water.json --save --plot`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "write the table of results to the output directory")
	batchCmd.Flags().BoolVar(&batchPlot, "plot", false, "plot isobars and column to the output directory")
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := inp.ReadBatch(args[0], cfg)
	if err != nil {
		return err
	}
	if b.Data.Desc != "" {
		io.Pfyel("%s\n", b.Data.Desc)
	}
	res := inp.Run(tab, b)
	fmt.Fprint(cmd.OutOrStdout(), out.Table(res, b.Data.NumFmt).String())
	if batchSave {
		out.WriteTable(b.Data.DirOut, b.Key, res, b.Data.NumFmt)
	}

	// fluid column
	if b.Column != nil {
		mdl, err := b.FluidModel(tab)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		printColumn(cmd, mdl, b.Column.Np, b.Data.NumFmt)
		if batchPlot {
			out.PlotColumn(mdl, b.Column.Np, b.Data.DirOut, b.Key+"_column")
		}
	}

	// isobars
	if batchPlot && len(b.Data.Isobars) > 0 {
		rng := tab.TemperatureRange(b.Data.Isobars[0])
		out.PlotIsobars(tab, b.Data.Isobars, rng.Min, rng.Max, 201, b.Data.DirOut, b.Key+"_isobars")
	}
	return nil
}
