// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package steam implements the IAPWS Industrial Formulation 1997 for the thermodynamic
// properties of water and steam
//
//	References:
//	 [1] Wagner W, Cooper JR, Dittmann A, Kijima J, Kretzschmar H-J, Kruse A, Mareš R, Oguchi K,
//	     Sato H, Stöcker I, Šifner O, Takaishi Y, Tanishita I, Trübenbach J and Willkommen Th
//	     (2000) The IAPWS Industrial Formulation 1997 for the Thermodynamic Properties of Water
//	     and Steam. Journal of Engineering for Gas Turbines and Power, 122(1) 150-182
//	     http://dx.doi.org/10.1115/1.483186
package steam

import (
	"github.com/cpmech/gosteam/mdl/pvt"
	"github.com/cpmech/gosteam/newton"
)

// DensityRange is the interval [kg/m³] searched for the density of region 3 states.
// Region 3 densities lie within about [124,730]; the equation has a second, spurious root
// near 1000 kg/m³ which must stay outside.
var DensityRange = newton.Range{Min: 100, Max: 800}

// Table implements pvt.Table with the IF97 equations. It holds no state.
type Table struct{}

// add table to database
func init() {
	pvt.Register("if97", func() pvt.Table { return Table{} })
}

// CriticalTemperature returns the critical temperature [K]
func (o Table) CriticalTemperature() float64 { return Tc }

// CriticalPressure returns the critical pressure [Pa]
func (o Table) CriticalPressure() float64 { return Pc }

// TemperatureRange returns the valid temperatures [K] at pressure P [Pa]
func (o Table) TemperatureRange(P float64) newton.Range { return TemperatureRange(P) }

// PressureRange returns the valid pressures [Pa] at temperature T [K]
func (o Table) PressureRange(T float64) newton.Range { return PressureRange(T) }

// AtTemperatureAndPressure computes the entry at temperature T [K] and pressure P [Pa].
// On the saturation line the saturated liquid is returned.
func (o Table) AtTemperatureAndPressure(T, P float64) (*pvt.Entry, bool) {
	switch r := classify(T, P); r {
	case region1, region2, region5:
		return gibbsEntry(r, T, P)
	case region3:
		return helmholtzEntry(T, P, DensityRange)
	case region4:
		return gibbsEntry(region1, T, P)
	}
	return nil, false
}

// AtSatPressure computes the saturated liquid or vapor at pressure P [Pa]
func (o Table) AtSatPressure(P float64, phase pvt.SatPhase) (*pvt.Entry, bool) {
	T, ok := SatTemperature(P)
	if !ok {
		return nil, false
	}
	return satEntry(T, P, phase)
}

// AtSatTemperature computes the saturated liquid or vapor at temperature T [K]
func (o Table) AtSatTemperature(T float64, phase pvt.SatPhase) (*pvt.Entry, bool) {
	P, ok := SatPressure(T)
	if !ok {
		return nil, false
	}
	return satEntry(T, P, phase)
}

// AtEnthalpyAndPressure computes the entry with enthalpy h [J/kg] at pressure P [Pa]
func (o Table) AtEnthalpyAndPressure(h, P float64) (*pvt.Entry, bool) {
	return o.atPressureAndProperty(P, h, pvt.Enthalpy)
}

// AtEntropyAndPressure computes the entry with entropy s [J/(kg・K)] at pressure P [Pa]
func (o Table) AtEntropyAndPressure(s, P float64) (*pvt.Entry, bool) {
	return o.atPressureAndProperty(P, s, pvt.Entropy)
}

// satEntry computes the saturated state on one side of the saturation line
func satEntry(T, P float64, phase pvt.SatPhase) (*pvt.Entry, bool) {
	switch phase {
	case pvt.SatLiquid:
		return gibbsEntry(region1, T, P)
	case pvt.SatVapor:
		return gibbsEntry(region2, T, P)
	}
	return nil, false
}
