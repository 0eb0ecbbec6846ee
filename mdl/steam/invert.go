// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/pvt"
	"github.com/cpmech/gosteam/newton"
)

// atPressureAndProperty finds the entry at pressure P [Pa] whose selected property equals target
//
//	Between saturated liquid and saturated vapor the result is a liquid-vapor mixture;
//	otherwise the temperature is found with Newton's method over TemperatureRange(P).
func (o Table) atPressureAndProperty(P, target float64, sel pvt.Selector) (*pvt.Entry, bool) {

	// two-phase mixture
	liq, okl := o.AtSatPressure(P, pvt.SatLiquid)
	vap, okv := o.AtSatPressure(P, pvt.SatVapor)
	if okl && okv {
		yl, yv := sel(liq), sel(vap)
		if yl != yv && target >= math.Min(yl, yv) && target <= math.Max(yl, yv) {
			xl := (yv - target) / (yv - yl)
			mix, err := pvt.NewLiquidVapor(vap, liq, xl)
			if err != nil {
				chk.Panic("steam: cannot build liquid-vapor mixture at P=%g:\n%v", P, err)
			}
			return mix, true
		}
	}

	// single phase
	f := func(T float64) float64 {
		e, ok := o.AtTemperatureAndPressure(T, P)
		if !ok {
			return math.NaN()
		}
		return sel(e) - target
	}
	res := newton.Solve(f, nil, TemperatureRange(P))
	if res.MaxItReached {
		io.Pforan("steam: no temperature found at P=%g for target %g (it=%d, T=%g)\n", P, target, res.It, res.X)
		return nil, false
	}
	return o.AtTemperatureAndPressure(res.X, P)
}
