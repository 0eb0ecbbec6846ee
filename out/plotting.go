// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gosteam/mdl/fluid"
	"github.com/cpmech/gosteam/mdl/pvt"
)

// Isobar computes temperature, entropy and enthalpy along the isobar P [Pa] at np temperatures
// between Tmin and Tmax [K]. Temperatures without entry are skipped.
func Isobar(tab pvt.Table, P, Tmin, Tmax float64, np int) (T, S, H []float64) {
	for _, t := range utl.LinSpace(Tmin, Tmax, np) {
		e, ok := tab.AtTemperatureAndPressure(t, P)
		if !ok {
			continue
		}
		p := e.Props()
		T = append(T, t)
		S = append(S, p.S)
		H = append(H, p.H)
	}
	return
}

// SatDome computes temperature and entropy of saturated liquid and vapor at np pressures
// between pmin and the critical pressure
func SatDome(tab pvt.Table, pmin float64, np int) (Tl, Sl, Tv, Sv []float64) {
	Pc := tab.CriticalPressure()
	for _, P := range utl.LinSpace(pmin, Pc*(1-1e-6), np) {
		liq, okl := tab.AtSatPressure(P, pvt.SatLiquid)
		vap, okv := tab.AtSatPressure(P, pvt.SatVapor)
		if !okl || !okv {
			continue
		}
		Tl = append(Tl, liq.Props().T)
		Sl = append(Sl, liq.Props().S)
		Tv = append(Tv, vap.Props().T)
		Sv = append(Sv, vap.Props().S)
	}
	return
}

// PlotIsobars plots isobars and the saturation dome in the T-s plane and saves dirout/fnkey
func PlotIsobars(tab pvt.Table, pressures []float64, Tmin, Tmax float64, np int, dirout, fnkey string) {
	plt.Reset(false, nil)
	Tl, Sl, Tv, Sv := SatDome(tab, 1e3, np)
	plt.Plot(Sl, Tl, &plt.A{C: "k", Ls: "-", L: "sat. liquid"})
	plt.Plot(Sv, Tv, &plt.A{C: "k", Ls: "--", L: "sat. vapor"})
	sty := GetDefaultStyles(pressures)
	for i, P := range pressures {
		T, S, _ := Isobar(tab, P, Tmin, Tmax, np)
		plt.Plot(S, T, &sty[i])
	}
	plt.Gll(GetTexLabel("s", "[J/(kg K)]"), GetTexLabel("T", "[K]"), nil)
	plt.Save(dirout, fnkey)
}

// PlotColumn plots pressure and density along the height of a fluid column and saves dirout/fnkey
func PlotColumn(mdl *fluid.Model, np int, dirout, fnkey string) {

	Z, P, R := mdl.Profile(np)
	pMaxLin := mdl.P0 + mdl.R0*mdl.Grav*mdl.H
	subscript := "\\ell"
	if mdl.Gas {
		subscript = "g"
	}

	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(P, Z, &plt.A{C: "k", Ls: "-"})
	plt.Plot([]float64{mdl.P0, pMaxLin}, []float64{mdl.H, 0}, &plt.A{C: "grey", Ls: "--"})
	plt.Gll("$p_{"+subscript+"}$", GetTexLabel("z", ""), nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(R, Z, &plt.A{C: "r", Ls: "-"})
	plt.Plot([]float64{mdl.R0, mdl.R0 + mdl.C*(pMaxLin-mdl.P0)}, []float64{mdl.H, 0}, &plt.A{C: "grey", Ls: "--"})
	plt.Gll("$\\rho_{"+subscript+"}$", GetTexLabel("z", ""), nil)

	plt.Save(dirout, fnkey)
}
