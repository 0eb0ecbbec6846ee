// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/inp"
	"github.com/cpmech/gosteam/mdl/pvt"
	_ "github.com/cpmech/gosteam/mdl/steam"
	"github.com/cpmech/gosteam/out"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	numfmt  string

	// set by setup
	cfg inp.Config
	tab pvt.Table
)

var rootCmd = &cobra.Command{
	Use:   "steamtab",
	Short: "Properties of water and steam (IAPWS-IF97)",
	Long: `steamtab computes thermodynamic properties of water and steam with the
IAPWS Industrial Formulation 1997.

Environment:
  STEAMTAB_DIROUT   directory for output files (default /tmp/steamtab)
  STEAMTAB_VERBOSE  show messages
  STEAMTAB_TABLE    name of property table (default if97)
  STEAMTAB_NUMFMT   format of numbers (default %15.8e)`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	rootCmd.PersistentFlags().StringVar(&numfmt, "numfmt", "", "format of numbers; e.g. %12.5e")
}

// setup reads the environment, applies the flags and allocates the table
func setup(cmd *cobra.Command, args []string) (err error) {
	cfg, err = inp.ParseEnv()
	if err != nil {
		return err
	}
	if numfmt != "" {
		cfg.NumFmt = numfmt
	}
	if verbose {
		cfg.Verbose = true
	}
	io.Verbose = cfg.Verbose
	tab, err = pvt.New(cfg.Table)
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	return
}

// printResults prints a table of results
func printResults(cmd *cobra.Command, res []*inp.Result) {
	fmt.Fprint(cmd.OutOrStdout(), out.Table(res, cfg.NumFmt).String())
}

// runQuery evaluates one query and prints the result
func runQuery(cmd *cobra.Command, q pvt.Query) error {
	e, ok := q.Eval(tab)
	if !ok {
		return fmt.Errorf("no entry for %v", q)
	}
	printResults(cmd, []*inp.Result{{Label: q.String(), Query: q, Entry: e}})
	return nil
}
