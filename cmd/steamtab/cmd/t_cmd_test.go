// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flags and returns its output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STEAMTAB_DIROUT", t.TempDir())
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestTP(t *testing.T) {
	res, err := execute(t, "tp", "-T", "473.15", "-P", "40e6")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(res), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "Liquid")
	require.Contains(t, lines[1], "8.70124260e+05")

	_, err = execute(t, "tp", "-T", "200", "-P", "1e5")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no entry")

	_, err = execute(t, "tp", "-T", "300")
	require.Error(t, err)
}

func TestSat(t *testing.T) {
	res, err := execute(t, "sat", "-P", "0.2e6", "--phase", "vapor", "--numfmt", "%12.5e")
	require.NoError(t, err)
	require.Contains(t, res, "Vapor")
	require.Contains(t, res, "2.70624e+06")

	res, err = execute(t, "sat", "-T", "393.361545936488")
	require.NoError(t, err)
	require.Contains(t, res, "Liquid")

	_, err = execute(t, "sat", "-T", "300", "-P", "1e5")
	require.Error(t, err)

	_, err = execute(t, "sat", "-P", "1e5", "--phase", "plasma")
	require.Error(t, err)
	require.Contains(t, err.Error(), "plasma")
}

func TestHPSP(t *testing.T) {
	res, err := execute(t, "hp", "--h", "2117222.94886314", "-P", "10e3")
	require.NoError(t, err)
	require.Contains(t, res, "LiquidVapor")
	require.Contains(t, res, "8.04912447e-01")

	res, err = execute(t, "sp", "--s", "6685.8", "-P", "10e3")
	require.NoError(t, err)
	require.Contains(t, res, "LiquidVapor")
}

func TestBatch(t *testing.T) {
	res, err := execute(t, "batch", "../../../inp/data/water.yaml")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(res), "\n")
	require.Len(t, lines, 7)
	require.Contains(t, lines[6], "too cold")

	dir := t.TempDir()
	t.Setenv("STEAMTAB_DIROUT", dir)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"batch", "../../../inp/data/water.toml", "--save"})
	require.NoError(t, rootCmd.Execute())
	_, err = os.Stat(filepath.Join(dir, "water.txt"))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "rho")

	_, err = execute(t, "batch", "missing.json")
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	res, err := execute(t, "verify")
	require.NoError(t, err)
	require.Contains(t, res, "30 cases OK")

	_, err = execute(t, "verify", "--rtol", "1e-16")
	require.Error(t, err)
	require.Contains(t, err.Error(), "mismatches")
}

func TestColumn(t *testing.T) {
	res, err := execute(t, "column", "--np", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(res), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, []string{"z", "p", "rho"}, strings.Fields(lines[0]))
	require.Equal(t, "1.00000000e+01", strings.Fields(lines[1])[0])
	require.Equal(t, "1.01325000e+05", strings.Fields(lines[1])[1])

	_, err = execute(t, "column", "--np", "1")
	require.Error(t, err)

	_, err = execute(t, "column", "-T", "300", "--P0", "3536")
	require.Error(t, err)
}

func TestCommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"batch", "column", "hp", "sat", "sp", "tp", "verify"} {
		require.Contains(t, names, want)
	}
}
