// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// FracTol is the tolerance on the sum of mass fractions
const FracTol = 1e-3

// mixFields lists the properties combined by fraction-weighted sums.
// Rho is left out: it is computed from the mixed specific volume.
var mixFields = []func(p *Props) *float64{
	func(p *Props) *float64 { return &p.T },
	func(p *Props) *float64 { return &p.P },
	func(p *Props) *float64 { return &p.V },
	func(p *Props) *float64 { return &p.U },
	func(p *Props) *float64 { return &p.H },
	func(p *Props) *float64 { return &p.S },
	func(p *Props) *float64 { return &p.Cv },
	func(p *Props) *float64 { return &p.Cp },
	func(p *Props) *float64 { return &p.W },
}

// NewMixture combines single-phase entries into a multi-phase entry
//
//	Input:
//	 vap, liq, sol -- saturated vapor, liquid and solid entries; nil if absent
//	 xv, xl, xs    -- mass fractions, each in [0,1] and summing up to 1
//	Note:
//	 every property is the fraction-weighted sum over the present phases;
//	 the density is the reciprocal of the mixed specific volume
func NewMixture(vap, liq, sol *Entry, xv, xl, xs float64) (*Entry, error) {

	// check phases
	slots := []struct {
		e    *Entry
		x    float64
		want Region
	}{
		{vap, xv, Vapor},
		{liq, xl, Liquid},
		{sol, xs, Solid},
	}
	var entries []*Entry
	var weights []float64
	for _, s := range slots {
		if math.IsNaN(s.x) || s.x < 0 || s.x > 1 {
			return nil, chk.Err("mixture: %v mass fraction must be within [0,1]. x = %g", s.want, s.x)
		}
		if s.e == nil {
			if s.x != 0 {
				return nil, chk.Err("mixture: %v mass fraction is %g but the %v entry is missing", s.want, s.x, s.want)
			}
			continue
		}
		if r := s.e.Region(); r != s.want {
			return nil, chk.Err("mixture: %v entry must be %v. region = %v", s.want, s.want, r)
		}
		entries = append(entries, s.e)
		weights = append(weights, s.x)
	}

	// check fractions
	sum := floats.Sum([]float64{xv, xl, xs})
	if math.Abs(sum-1.0) > FracTol {
		return nil, chk.Err("mixture: mass fractions must add up to 1. %g + %g + %g = %g", xv, xl, xs, sum)
	}

	// interpolate
	o := &Entry{xv: xv, xl: xl, xs: xs}
	vals := make([]float64, len(entries))
	for _, field := range mixFields {
		for i, e := range entries {
			vals[i] = *field(&e.props)
		}
		*field(&o.props) = floats.Dot(weights, vals)
	}
	o.props.Rho = 1.0 / o.props.V
	return o, nil
}

// NewLiquidVapor combines saturated vapor and liquid with the given liquid mass fraction
func NewLiquidVapor(vap, liq *Entry, liqFrac float64) (*Entry, error) {
	if vap == nil || liq == nil {
		return nil, chk.Err("mixture: both vapor and liquid entries are required")
	}
	if math.IsNaN(liqFrac) || liqFrac < 0 || liqFrac > 1 {
		return nil, chk.Err("mixture: liquid fraction must be within [0,1]. x = %g", liqFrac)
	}
	return NewMixture(vap, liq, nil, 1.0-liqFrac, liqFrac, 0)
}
