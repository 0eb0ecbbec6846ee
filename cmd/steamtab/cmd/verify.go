// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/cpmech/gosteam/ana"
	"github.com/spf13/cobra"
)

var verifyRtol float64

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Compare the table with reference values",
	Long: `Evaluates the IAPWS-IF97 verification points and reference lookups and
reports every value whose relative error exceeds the tolerance.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Float64Var(&verifyRtol, "rtol", 1e-6, "relative tolerance")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cases := ana.AllCases()
	res := ana.Verify(tab, cases, verifyRtol)
	for _, m := range res {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	if len(res) > 0 {
		return fmt.Errorf("%d mismatches in %d cases", len(res), len(cases))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d cases OK\n", len(cases))
	return nil
}
