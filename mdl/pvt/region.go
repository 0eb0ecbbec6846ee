// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

// Region classifies the state of an entry
type Region int

// regions
const (
	OutOfBounds        Region = iota // no valid state
	SupercriticalFluid               // temperature and pressure above the critical point
	Gas                              // above the critical temperature but below the critical pressure
	Vapor                            // below the vaporization and sublimation curves and below the critical temperature
	Liquid                           // above the vaporization curve, above the fusion curve and below the critical temperature
	Solid                            // above the sublimation curve and below the fusion curve
	SolidLiquid                      // mixture of solid and liquid
	LiquidVapor                      // mixture of liquid and vapor
	SolidVapor                       // mixture of solid and vapor
	SolidLiquidVapor                 // triple point mixture
)

var regionNames = map[Region]string{
	OutOfBounds:        "OutOfBounds",
	SupercriticalFluid: "SupercriticalFluid",
	Gas:                "Gas",
	Vapor:              "Vapor",
	Liquid:             "Liquid",
	Solid:              "Solid",
	SolidLiquid:        "SolidLiquid",
	LiquidVapor:        "LiquidVapor",
	SolidVapor:         "SolidVapor",
	SolidLiquidVapor:   "SolidLiquidVapor",
}

// String returns the name of the region
func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return "OutOfBounds"
}

// SatPhase selects one side of a saturation curve
type SatPhase int

// saturated phases
const (
	SatLiquid SatPhase = iota
	SatVapor
	SatSolid
)

// String returns the name of the phase
func (p SatPhase) String() string {
	switch p {
	case SatLiquid:
		return "liquid"
	case SatVapor:
		return "vapor"
	case SatSolid:
		return "solid"
	}
	return "unknown"
}

// Region returns the single-phase region corresponding to p
func (p SatPhase) Region() Region {
	switch p {
	case SatLiquid:
		return Liquid
	case SatVapor:
		return Vapor
	case SatSolid:
		return Solid
	}
	return OutOfBounds
}

// ParseSatPhase converts "liquid", "vapor" or "solid" (or "l", "v", "s") into a SatPhase
func ParseSatPhase(s string) (SatPhase, bool) {
	switch s {
	case "liquid", "liq", "l", "f":
		return SatLiquid, true
	case "vapor", "vap", "v", "g":
		return SatVapor, true
	case "solid", "sol", "s":
		return SatSolid, true
	}
	return SatLiquid, false
}

// fractionsRegion derives the region from the pattern of nonzero mass fractions
func fractionsRegion(xv, xl, xs float64) Region {
	v, l, s := xv != 0, xl != 0, xs != 0
	switch {
	case v && l && s:
		return SolidLiquidVapor
	case v && l:
		return LiquidVapor
	case v && s:
		return SolidVapor
	case l && s:
		return SolidLiquid
	case v:
		return Vapor
	case l:
		return Liquid
	case s:
		return Solid
	}
	return OutOfBounds
}
