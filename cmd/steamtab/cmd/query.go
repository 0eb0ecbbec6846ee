// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/cpmech/gosteam/mdl/pvt"
	"github.com/spf13/cobra"
)

var (
	qT, qP, qH, qS float64
	qPhase         string
)

var tpCmd = &cobra.Command{
	Use:   "tp",
	Short: "Properties at temperature and pressure",
	Long: `Computes the properties at temperature T [K] and pressure P [Pa].
On the saturation line the saturated liquid is returned.

Examples:
  steamtab tp -T 473.15 -P 40e6`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, pvt.Query{Kind: pvt.KindTP, T: qT, P: qP})
	},
}

var satCmd = &cobra.Command{
	Use:   "sat",
	Short: "Saturated liquid or vapor",
	Long: `Computes the saturated liquid or vapor at pressure P [Pa] or at temperature T [K].
Exactly one of -P and -T must be given.

Examples:
  steamtab sat -P 0.2e6 --phase liquid
  steamtab sat -T 393.36 --phase vapor`,
	Args: cobra.NoArgs,
	RunE: runSat,
}

var hpCmd = &cobra.Command{
	Use:   "hp",
	Short: "Properties at enthalpy and pressure",
	Long: `Computes the state with enthalpy h [J/kg] at pressure P [Pa].
Between saturated liquid and vapor the state is a liquid-vapor mixture.

Examples:
  steamtab hp --h 2117222.9 -P 10e3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, pvt.Query{Kind: pvt.KindHP, H: qH, P: qP})
	},
}

var spCmd = &cobra.Command{
	Use:   "sp",
	Short: "Properties at entropy and pressure",
	Long: `Computes the state with entropy s [J/(kg K)] at pressure P [Pa].
Between saturated liquid and vapor the state is a liquid-vapor mixture.

Examples:
  steamtab sp --s 6685.8 -P 10e3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, pvt.Query{Kind: pvt.KindSP, S: qS, P: qP})
	},
}

func init() {
	rootCmd.AddCommand(tpCmd, satCmd, hpCmd, spCmd)
	for _, c := range []*cobra.Command{tpCmd, satCmd, hpCmd, spCmd} {
		c.Flags().Float64VarP(&qP, "pressure", "P", 0, "pressure [Pa]")
	}
	for _, c := range []*cobra.Command{tpCmd, satCmd} {
		c.Flags().Float64VarP(&qT, "temperature", "T", 0, "temperature [K]")
	}
	hpCmd.Flags().Float64Var(&qH, "h", 0, "enthalpy [J/kg]")
	spCmd.Flags().Float64Var(&qS, "s", 0, "entropy [J/(kg K)]")
	satCmd.Flags().StringVar(&qPhase, "phase", "liquid", "saturated phase: liquid or vapor")
	tpCmd.MarkFlagRequired("temperature")
	tpCmd.MarkFlagRequired("pressure")
	hpCmd.MarkFlagRequired("h")
	hpCmd.MarkFlagRequired("pressure")
	spCmd.MarkFlagRequired("s")
	spCmd.MarkFlagRequired("pressure")
	satCmd.MarkFlagsMutuallyExclusive("temperature", "pressure")
	satCmd.MarkFlagsOneRequired("temperature", "pressure")
}

func runSat(cmd *cobra.Command, args []string) error {
	phase, ok := pvt.ParseSatPhase(qPhase)
	if !ok {
		return fmt.Errorf("phase %q is invalid", qPhase)
	}
	if cmd.Flags().Changed("pressure") {
		return runQuery(cmd, pvt.Query{Kind: pvt.KindSatP, P: qP, Phase: phase})
	}
	return runQuery(cmd, pvt.Query{Kind: pvt.KindSatT, T: qT, Phase: phase})
}
