// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for fluid density
package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gosteam/mdl/pvt"
)

// Model implements a model to compute pressure (p) and intrinsic density (R) of a fluid
// along a column with gravity (g). The model is:
//
//	R(p) = R0 + C・(p - p0)   thus   dR/dp = C
type Model struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0 [kg/m³]
	P0  float64 // pressure corresponding to R0 [Pa]
	C   float64 // compressibility coefficient [kg/(m³・Pa)]; e.g. R0/Kbulk or 1/(R・θ)
	Gas bool    // is gas instead of liquid?

	// additional data
	H    float64 // elevation where (R0,p0) is known
	Grav float64 // gravity acceleration (positive constant)
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params, H, grav float64) (err error) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "gas":
			o.Gas = p.V > 0
		default:
			return chk.Err("fluid: parameter named %q is invalid", p.N)
		}
	}
	if o.R0 <= 0 || o.C <= 0 {
		return chk.Err("fluid: R0 and C must be positive. R0=%g, C=%g", o.R0, o.C)
	}
	o.H = H
	o.Grav = grav
	return
}

// GetPrms gets (an example of) parameters
//
//	Input:
//	 example -- returns example of parameters; othewise returs current parameters
//	Note:
//	 Gas variable is used to return low-pressure steam properties instead of water
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		if o.Gas {
			return dbf.Params{ // steam @ 700 K
				&dbf.P{N: "R0", V: 0.0108340}, // [kg/m³]
				&dbf.P{N: "P0", V: 3500},      // [Pa]
				&dbf.P{N: "C", V: 3.0954e-6},  // [kg/(m³・Pa)]
				&dbf.P{N: "gas", V: 1},        // [-]
			}
		}
		return dbf.Params{ // water @ 298.15 K
			&dbf.P{N: "R0", V: 997.048}, // [kg/m³]
			&dbf.P{N: "P0", V: 101325},  // [Pa]
			&dbf.P{N: "C", V: 4.502e-7}, // [kg/(m³・Pa)]
			&dbf.P{N: "gas", V: 0},      // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "gas", V: gas},
	}
}

// FromTable sets R0 and C from the densities of tab around temperature T [K] and pressure p0 [Pa]
//
//	Note: both neighbour states must be in the same region
func (o *Model) FromTable(tab pvt.Table, T, p0, H, grav float64) (err error) {
	dp := 1e-3 * p0
	a, oka := tab.AtTemperatureAndPressure(T, p0-dp)
	b, okb := tab.AtTemperatureAndPressure(T, p0+dp)
	if !oka || !okb {
		return chk.Err("fluid: cannot find density at T=%g around p0=%g", T, p0)
	}
	if a.Region() != b.Region() {
		return chk.Err("fluid: p0=%g is too close to a phase boundary at T=%g (%v and %v)", p0, T, a.Region(), b.Region())
	}
	pa := pvt.DataPoint{X: p0 - dp, Y: a.Props().Rho}
	pb := pvt.DataPoint{X: p0 + dp, Y: b.Props().Rho}
	o.R0 = pvt.Interp(p0, pa, pb)
	o.P0 = p0
	o.C = (pb.Y - pa.Y) / (pb.X - pa.X)
	switch a.Region() {
	case pvt.Vapor, pvt.Gas, pvt.SupercriticalFluid:
		o.Gas = true
	default:
		o.Gas = false
	}
	if o.C <= 0 {
		return chk.Err("fluid: compressibility must be positive. C=%g", o.C)
	}
	o.H = H
	o.Grav = grav
	return
}

// Calc computes pressure and density
func (o Model) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// Profile computes pressure and density at np stations from the bottom (z=0) to the top (z=H)
func (o Model) Profile(np int) (Z, P, R []float64) {
	Z = utl.LinSpace(0, o.H, np)
	P = make([]float64, np)
	R = make([]float64, np)
	for i, z := range Z {
		P[i], R[i] = o.Calc(z)
	}
	return
}
