// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import "math"

// constants
const (
	R    = 461.526  // specific gas constant of water [J/(kg・K)]
	Tc   = 647.096  // critical temperature [K]
	Pc   = 22.06e6  // critical pressure [Pa]
	Tmin = 273.15   // minimum temperature [K]
	Tmax = 2273.15  // maximum temperature [K]
	Pmax = 100e6    // maximum pressure [Pa]
	T25  = 1073.15  // boundary between regions 2 and 5 [K]
	T12  = 873.15   // temperature above which no liquid-side region applies [K]
	P5   = 50e6     // maximum pressure of region 5 [Pa]
	Pt   = 611.2127 // saturation pressure at Tmin [Pa]
)

// SatPressure computes the saturation pressure [Pa] at temperature T [K]
//
//	Note: valid for Tmin ≤ T < Tc only
func SatPressure(T float64) (P float64, ok bool) {
	if T < Tmin || T >= Tc {
		return 0, false
	}
	n := nRegion4
	θ := T + n[8]/(T-n[9])
	A := θ*θ + n[0]*θ + n[1]
	B := n[2]*θ*θ + n[3]*θ + n[4]
	C := n[5]*θ*θ + n[6]*θ + n[7]
	return math.Pow(2.0*C/(-B+math.Sqrt(B*B-4.0*A*C)), 4) * 1e6, true
}

// SatTemperature computes the saturation temperature [K] at pressure P [Pa]
//
//	Note: valid for Pt ≤ P < Pc only
func SatTemperature(P float64) (T float64, ok bool) {
	if P < Pt || P >= Pc {
		return 0, false
	}
	n := nRegion4
	β := math.Pow(P/1e6, 0.25)
	E := β*β + n[2]*β + n[5]
	F := n[0]*β*β + n[3]*β + n[6]
	G := n[1]*β*β + n[4]*β + n[7]
	D := 2.0 * G / (-F - math.Sqrt(F*F-4.0*E*G))
	return (n[9] + D - math.Sqrt((n[9]+D)*(n[9]+D)-4.0*(n[8]+n[9]*D))) / 2.0, true
}

// Boundary34Pressure computes the pressure [Pa] on the boundary between regions 3 and 2
// (above the critical temperature) at temperature T [K]
//
//	Note: valid for T ≥ Tc only
func Boundary34Pressure(T float64) (P float64, ok bool) {
	if T < Tc {
		return 0, false
	}
	n := nBoundary34
	return (n[0] + n[1]*T + n[2]*T*T) * 1e6, true
}

// Boundary34Temperature computes the temperature [K] on the boundary between regions 3 and 2
// at pressure P [Pa]
//
//	Note: valid for P ≥ Pc only
func Boundary34Temperature(P float64) (T float64, ok bool) {
	if P < Pc {
		return 0, false
	}
	n := nBoundary34
	return n[3] + math.Sqrt((P/1e6-n[4])/n[2]), true
}
