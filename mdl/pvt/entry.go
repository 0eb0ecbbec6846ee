// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvt implements pressure-volume-temperature entries, phase mixtures and the
// interface of property tables
package pvt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Props holds the thermodynamic properties of a state
type Props struct {
	T   float64 // temperature [K]
	P   float64 // pressure [Pa]
	V   float64 // specific volume [m³/kg]
	Rho float64 // density [kg/m³] = 1/V
	U   float64 // specific internal energy [J/kg]
	H   float64 // specific enthalpy [J/kg]
	S   float64 // specific entropy [J/(kg・K)]
	Cv  float64 // isochoric heat capacity [J/(kg・K)]
	Cp  float64 // isobaric heat capacity [J/(kg・K)]
	W   float64 // speed of sound [m/s]
}

// Entry holds the properties of a state together with its phase composition.
// The region is always derived from the mass fractions; entries are immutable once built.
type Entry struct {
	props Props   // properties
	xv    float64 // vapor mass fraction
	xl    float64 // liquid mass fraction
	xs    float64 // solid mass fraction
	tag   Region  // region of a single-phase state without phase fraction (Gas or SupercriticalFluid)
}

// NewEntry returns a single-phase entry
//
//	Vapor, Liquid and Solid set the corresponding mass fraction to one.
//	Gas and SupercriticalFluid leave all fractions unset.
func NewEntry(props Props, region Region) (*Entry, error) {
	o := &Entry{props: props}
	switch region {
	case Vapor:
		o.xv = 1
	case Liquid:
		o.xl = 1
	case Solid:
		o.xs = 1
	case Gas, SupercriticalFluid:
		o.tag = region
	default:
		return nil, chk.Err("entry: %v is not a single-phase region", region)
	}
	return o, nil
}

// Props returns a copy of the properties
func (o *Entry) Props() Props {
	return o.props
}

// VaporFrac returns the vapor mass fraction
func (o *Entry) VaporFrac() float64 {
	return o.xv
}

// LiquidFrac returns the liquid mass fraction
func (o *Entry) LiquidFrac() float64 {
	return o.xl
}

// SolidFrac returns the solid mass fraction
func (o *Entry) SolidFrac() float64 {
	return o.xs
}

// Region returns the region derived from the mass fractions
func (o *Entry) Region() Region {
	if o.xv == 0 && o.xl == 0 && o.xs == 0 {
		if o.tag == Gas || o.tag == SupercriticalFluid {
			return o.tag
		}
		return OutOfBounds
	}
	return fractionsRegion(o.xv, o.xl, o.xs)
}

// String returns a summary of this entry
func (o *Entry) String() string {
	p := o.props
	l := io.Sf("region = %v\n", o.Region())
	l += io.Sf("xv, xl, xs = %g, %g, %g\n", o.xv, o.xl, o.xs)
	l += io.Sf("T   = %23.15e [K]\n", p.T)
	l += io.Sf("P   = %23.15e [Pa]\n", p.P)
	l += io.Sf("v   = %23.15e [m³/kg]\n", p.V)
	l += io.Sf("ρ   = %23.15e [kg/m³]\n", p.Rho)
	l += io.Sf("u   = %23.15e [J/kg]\n", p.U)
	l += io.Sf("h   = %23.15e [J/kg]\n", p.H)
	l += io.Sf("s   = %23.15e [J/(kg・K)]\n", p.S)
	l += io.Sf("cv  = %23.15e [J/(kg・K)]\n", p.Cv)
	l += io.Sf("cp  = %23.15e [J/(kg・K)]\n", p.Cp)
	l += io.Sf("w   = %23.15e [m/s]\n", p.W)
	return l
}

// Selector extracts one property from an entry
type Selector func(e *Entry) float64

// Enthalpy selects the specific enthalpy
func Enthalpy(e *Entry) float64 { return e.props.H }

// Entropy selects the specific entropy
func Entropy(e *Entry) float64 { return e.props.S }

// SpecificVolume selects the specific volume
func SpecificVolume(e *Entry) float64 { return e.props.V }

// InternalEnergy selects the specific internal energy
func InternalEnergy(e *Entry) float64 { return e.props.U }
