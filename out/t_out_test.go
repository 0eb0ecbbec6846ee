// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteam/inp"
	"github.com/cpmech/gosteam/mdl/fluid"
	"github.com/cpmech/gosteam/mdl/pvt"
	_ "github.com/cpmech/gosteam/mdl/steam"
	"github.com/stretchr/testify/require"
)

func runBatch(t *testing.T) (pvt.Table, []*inp.Result) {
	cfg := inp.Config{DirOut: t.TempDir(), Table: "if97", NumFmt: "%15.8e"}
	b, err := inp.ReadBatch("../inp/data/water.json", cfg)
	require.NoError(t, err)
	tab, err := pvt.New(b.Data.Table)
	require.NoError(t, err)
	return tab, inp.Run(tab, b)
}

func TestTable(t *testing.T) {
	_, res := runBatch(t)
	buf := Table(res, "%15.8e")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)

	header := strings.Fields(lines[0])
	require.Equal(t, append([]string{"label", "region"}, Keys...), header)

	require.Contains(t, lines[1], "Liquid")
	require.Contains(t, lines[1], "4.73150000e+02")
	require.True(t, strings.HasPrefix(lines[2], "sat liquid"))
	require.Contains(t, lines[4], "LiquidVapor")
	require.Contains(t, lines[5], "Gas")

	// no entry
	fields := strings.Fields(lines[6])
	require.Equal(t, []string{"too", "cold", "-"}, fields[:3])
	require.Len(t, fields, 3+len(Keys))

	// all rows have the same width
	for _, l := range lines[1:] {
		require.Len(t, l, len(lines[0]))
	}
}

func TestValues(t *testing.T) {
	_, res := runBatch(t)
	vals := Values(res[3].Entry)
	require.Len(t, vals, len(Keys))
	require.InDelta(t, 10e3, vals[1], 1e-6)
	require.InDelta(t, 0.804912447078132, vals[10], 1e-9)
	require.InDelta(t, 1, vals[10]+vals[11]+vals[12], 1e-12)
}

func TestWriteTable(t *testing.T) {
	_, res := runBatch(t)
	dir := t.TempDir()
	WriteTable(dir, "water", res, "%12.5e")
	b, err := os.ReadFile(filepath.Join(dir, "water.txt"))
	require.NoError(t, err)
	require.Equal(t, Table(res, "%12.5e").String(), string(b))
}

func TestIsobar(t *testing.T) {
	tab, _ := runBatch(t)

	// 0.1 MPa: liquid up to 372.76 K and vapor above
	T, S, H := Isobar(tab, 1e5, 280, 1000, 73)
	require.Len(t, T, 73)
	for i := 1; i < len(T); i++ {
		require.Greater(t, S[i], S[i-1])
		require.Greater(t, H[i], H[i-1])
	}

	// temperatures outside of the valid range are skipped
	T, _, _ = Isobar(tab, 60e6, 1000, 1200, 5)
	require.Equal(t, []float64{1000, 1050}, T)

	Tl, Sl, Tv, Sv := SatDome(tab, 1e3, 21)
	require.Len(t, Tl, 21)
	require.Len(t, Tv, 21)
	for i := range Tl {
		require.InDelta(t, Tl[i], Tv[i], 1e-12)
		require.Less(t, Sl[i], Sv[i])
	}

	if chk.Verbose {
		PlotIsobars(tab, []float64{1e5, 1e6, 1e7}, 280, 1000, 101, "/tmp/steamtab", "isobars")
	}
}

func TestTexLabel(t *testing.T) {
	require.Equal(t, "$\\rho\\;[kg/m^3]$", GetTexLabel("rho", "[kg/m^3]"))
	require.Equal(t, "$x_{\\ell}$", GetTexLabel("xl", ""))
	require.Equal(t, "$other$", GetTexLabel("other", ""))
	sty := GetDefaultStyles([]float64{1e5, 1e6})
	require.Len(t, sty, 2)
	require.Equal(t, "P=100000", sty[0].L)
}

func TestPlotColumn(t *testing.T) {
	tab, _ := runBatch(t)
	var mdl fluid.Model
	require.NoError(t, mdl.FromTable(tab, 298.15, 101325, 10, 9.81))
	if chk.Verbose {
		PlotColumn(&mdl, 21, "/tmp/steamtab", "column")
	}
}
