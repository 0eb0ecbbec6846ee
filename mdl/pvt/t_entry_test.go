// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/newton"
)

// satLiq and satVap are the saturated states at 10 kPa
var satLiq = Props{T: 318.957548207023, P: 10e3, V: 0.00101026341, U: 191812.0, H: 191822.1, S: 649.2, Cv: 4050, Cp: 4180, W: 1530}
var satVap = Props{T: 318.957548207023, P: 10e3, V: 14.6706, U: 2437300, H: 2583900, S: 8148.8, Cv: 1440, Cp: 1910, W: 428}

func Test_entry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("entry01. single-phase entries")

	cases := []struct {
		region     Region
		xv, xl, xs float64
	}{
		{Vapor, 1, 0, 0},
		{Liquid, 0, 1, 0},
		{Solid, 0, 0, 1},
		{Gas, 0, 0, 0},
		{SupercriticalFluid, 0, 0, 0},
	}
	for _, c := range cases {
		e, err := NewEntry(satVap, c.region)
		if err != nil {
			tst.Errorf("NewEntry failed: %v\n", err)
			return
		}
		chk.String(tst, e.Region().String(), c.region.String())
		chk.Float64(tst, "xv", 1e-15, e.VaporFrac(), c.xv)
		chk.Float64(tst, "xl", 1e-15, e.LiquidFrac(), c.xl)
		chk.Float64(tst, "xs", 1e-15, e.SolidFrac(), c.xs)
	}

	for _, r := range []Region{OutOfBounds, LiquidVapor, SolidLiquid, SolidVapor, SolidLiquidVapor} {
		if _, err := NewEntry(satVap, r); err == nil {
			tst.Errorf("NewEntry with %v should have failed\n", r)
			return
		}
	}

	var zero Entry
	chk.String(tst, zero.Region().String(), "OutOfBounds")
}

func Test_region01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("region01. region from fractions")

	cases := []struct {
		xv, xl, xs float64
		region     Region
	}{
		{0, 0, 0, OutOfBounds},
		{1, 0, 0, Vapor},
		{0, 1, 0, Liquid},
		{0, 0, 1, Solid},
		{0.5, 0.5, 0, LiquidVapor},
		{0, 0.5, 0.5, SolidLiquid},
		{0.5, 0, 0.5, SolidVapor},
		{0.2, 0.3, 0.5, SolidLiquidVapor},
	}
	for _, c := range cases {
		chk.String(tst, fractionsRegion(c.xv, c.xl, c.xs).String(), c.region.String())
	}
}

func Test_mixture01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mixture01. liquid-vapor mixture")

	vap, _ := NewEntry(satVap, Vapor)
	liq, _ := NewEntry(satLiq, Liquid)
	xl := 0.195087552921867
	mix, err := NewLiquidVapor(vap, liq, xl)
	if err != nil {
		tst.Errorf("NewLiquidVapor failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mix)

	xv := 1.0 - xl
	p := mix.Props()
	chk.String(tst, mix.Region().String(), "LiquidVapor")
	chk.Float64(tst, "xv", 1e-15, mix.VaporFrac(), xv)
	chk.Float64(tst, "xl", 1e-15, mix.LiquidFrac(), xl)
	chk.Float64(tst, "xs", 1e-15, mix.SolidFrac(), 0)
	chk.Float64(tst, "T", 1e-9, p.T, satLiq.T)
	chk.Float64(tst, "P", 1e-9, p.P, 10e3)
	chk.Float64(tst, "v", 1e-12, p.V, xv*satVap.V+xl*satLiq.V)
	chk.Float64(tst, "h", 1e-8, p.H, xv*satVap.H+xl*satLiq.H)
	chk.Float64(tst, "s", 1e-10, p.S, xv*satVap.S+xl*satLiq.S)
	chk.Float64(tst, "w", 1e-10, p.W, xv*satVap.W+xl*satLiq.W)
	chk.Float64(tst, "ρ", 1e-15, p.Rho, 1.0/p.V)
}

func Test_mixture02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mixture02. three phases")

	solid := satLiq
	solid.V, solid.H = 0.00109, -333e3
	vap, _ := NewEntry(satVap, Vapor)
	liq, _ := NewEntry(satLiq, Liquid)
	sol, _ := NewEntry(solid, Solid)

	mix, err := NewMixture(vap, liq, sol, 0.2, 0.3, 0.5)
	if err != nil {
		tst.Errorf("NewMixture failed: %v\n", err)
		return
	}
	chk.String(tst, mix.Region().String(), "SolidLiquidVapor")
	chk.Float64(tst, "h", 1e-8, mix.Props().H, 0.2*satVap.H+0.3*satLiq.H+0.5*solid.H)

	mix, err = NewMixture(nil, liq, sol, 0, 0.4, 0.6)
	if err != nil {
		tst.Errorf("NewMixture failed: %v\n", err)
		return
	}
	chk.String(tst, mix.Region().String(), "SolidLiquid")

	mix, err = NewMixture(vap, nil, sol, 0.9, 0, 0.1)
	if err != nil {
		tst.Errorf("NewMixture failed: %v\n", err)
		return
	}
	chk.String(tst, mix.Region().String(), "SolidVapor")

	// within tolerance
	mix, err = NewMixture(vap, liq, nil, 0.5, 0.5005, 0)
	if err != nil {
		tst.Errorf("NewMixture failed: %v\n", err)
		return
	}
	chk.String(tst, mix.Region().String(), "LiquidVapor")
}

func Test_mixture03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mixture03. invalid mixtures")

	vap, _ := NewEntry(satVap, Vapor)
	liq, _ := NewEntry(satLiq, Liquid)
	gas, _ := NewEntry(satVap, Gas)

	cases := []struct {
		name          string
		vap, liq, sol *Entry
		xv, xl, xs    float64
	}{
		{"sum below one", vap, liq, nil, 0.5, 0.4, 0},
		{"sum above one", vap, liq, nil, 0.6, 0.6, 0},
		{"all zero", vap, liq, nil, 0, 0, 0},
		{"negative", vap, liq, nil, 1.1, -0.1, 0},
		{"liquid in vapor slot", liq, liq, nil, 0.5, 0.5, 0},
		{"vapor in liquid slot", vap, vap, nil, 0.5, 0.5, 0},
		{"gas in vapor slot", gas, liq, nil, 0.5, 0.5, 0},
		{"liquid in solid slot", vap, nil, liq, 0.5, 0, 0.5},
		{"missing entry", vap, nil, nil, 0.5, 0.5, 0},
	}
	for _, c := range cases {
		_, err := NewMixture(c.vap, c.liq, c.sol, c.xv, c.xl, c.xs)
		if err == nil {
			tst.Errorf("%s: NewMixture should have failed\n", c.name)
			return
		}
		io.Pforan("%s: %v\n", c.name, err)
	}

	if _, err := NewLiquidVapor(vap, liq, 1.5); err == nil {
		tst.Errorf("NewLiquidVapor should have failed\n")
	}
	if _, err := NewLiquidVapor(nil, liq, 0.5); err == nil {
		tst.Errorf("NewLiquidVapor should have failed\n")
	}
}

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp01")

	a := DataPoint{X: 1, Y: 10}
	b := DataPoint{X: 3, Y: 30}
	chk.Float64(tst, "y(2)", 1e-15, Interp(2, a, b), 20)
	chk.Float64(tst, "y(1)", 1e-15, Interp(1, a, b), 10)
	chk.Float64(tst, "y(5)", 1e-15, Interp(5, a, b), 50)
}

type dummyTable struct{}

func (dummyTable) AtTemperatureAndPressure(T, P float64) (*Entry, bool)      { return nil, false }
func (dummyTable) AtSatPressure(P float64, phase SatPhase) (*Entry, bool)    { return nil, false }
func (dummyTable) AtSatTemperature(T float64, phase SatPhase) (*Entry, bool) { return nil, false }
func (dummyTable) AtEnthalpyAndPressure(h, P float64) (*Entry, bool)         { return nil, false }
func (dummyTable) AtEntropyAndPressure(s, P float64) (*Entry, bool)          { return nil, false }
func (dummyTable) CriticalTemperature() float64                              { return 1 }
func (dummyTable) CriticalPressure() float64                                 { return 1 }
func (dummyTable) TemperatureRange(P float64) newton.Range                   { return newton.Range{} }
func (dummyTable) PressureRange(T float64) newton.Range                      { return newton.Range{} }

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. database")

	Register("dummy", func() Table { return dummyTable{} })
	tab, err := New("dummy")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Tc", 1e-15, tab.CriticalTemperature(), 1)

	_, err = New("nonexistent")
	if err == nil {
		tst.Errorf("New should have failed\n")
	}
	io.Pforan("names = %v\n", Names())
}
