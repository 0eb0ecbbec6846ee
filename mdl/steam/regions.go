// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"math"

	"github.com/cpmech/gosteam/newton"
)

// region identifies the IF97 equation that applies to a state
type region int

// IF97 regions
const (
	outOfRange region = iota
	region1           // compressed liquid
	region2           // superheated vapor
	region3           // dense fluid near the critical point
	region4           // saturation line
	region5           // high-temperature vapor
)

// String returns the name of the region
func (r region) String() string {
	switch r {
	case region1:
		return "region1"
	case region2:
		return "region2"
	case region3:
		return "region3"
	case region4:
		return "region4"
	case region5:
		return "region5"
	}
	return "outOfRange"
}

// satTol is the relative tolerance to consider a pressure on the saturation line
const satTol = 1e-9

// TemperatureRange returns the valid temperatures [K] at pressure P [Pa]
func TemperatureRange(P float64) newton.Range {
	if P > P5 {
		return newton.Range{Min: Tmin, Max: T25}
	}
	return newton.Range{Min: Tmin, Max: Tmax}
}

// PressureRange returns the valid pressures [Pa] at temperature T [K]
func PressureRange(T float64) newton.Range {
	if T > T25 {
		return newton.Range{Min: 0, Max: P5}
	}
	return newton.Range{Min: 0, Max: Pmax}
}

// classify finds the region of temperature T [K] and pressure P [Pa]
func classify(T, P float64) region {
	if math.IsNaN(T) || math.IsNaN(P) {
		return outOfRange
	}
	if !TemperatureRange(P).Contains(T) || !PressureRange(T).Contains(P) {
		return outOfRange
	}
	if T > T25 {
		return region5
	}
	if T > T12 {
		return region2
	}
	if psat, ok := SatPressure(T); ok {
		switch {
		case math.Abs(psat-P) <= satTol*P:
			return region4
		case psat > P:
			return region2
		}
		return region1
	}
	if pb, ok := Boundary34Pressure(T); ok {
		if pb > P {
			return region2
		}
		return region3
	}
	return outOfRange
}
