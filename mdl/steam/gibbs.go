// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"math"

	"github.com/cpmech/gosteam/mdl/pvt"
)

// gibbs holds the dimensionless Gibbs free energy γ = g/(R・T) and its derivatives
type gibbs struct {
	γ   float64 // γ
	γπ  float64 // ∂γ/∂π
	γππ float64 // ∂²γ/∂π²
	γτ  float64 // ∂γ/∂τ
	γττ float64 // ∂²γ/∂τ²
	γπτ float64 // ∂²γ/∂π∂τ
}

// plus returns the sum of two sets of derivatives
func (o gibbs) plus(b gibbs) gibbs {
	return gibbs{
		γ:   o.γ + b.γ,
		γπ:  o.γπ + b.γπ,
		γππ: o.γππ + b.γππ,
		γτ:  o.γτ + b.γτ,
		γττ: o.γττ + b.γττ,
		γπτ: o.γπτ + b.γπτ,
	}
}

// gibbsSpec holds the data of one Gibbs-energy region
type gibbsSpec struct {
	pref     float64 // reducing pressure: π = P / pref
	tref     float64 // reducing temperature: τ = tref / T
	shift    float64 // τ shift of the residual series
	liquid   bool    // region 1 form: γ = Σ N・(7.1-π)^I・(τ-shift)^J
	ideal    []coef  // ideal-gas part (in τ only)
	residual []coef  // residual part (in π and τ)
	region   pvt.Region
}

// gibbsSpecs holds the Gibbs-energy regions
var gibbsSpecs = map[region]*gibbsSpec{
	region1: {pref: 16.53e6, tref: 1386.0, shift: 1.222, liquid: true, residual: region1Coefs, region: pvt.Liquid},
	region2: {pref: 1e6, tref: 540.0, shift: 0.5, ideal: region2Ideal, residual: region2Residual, region: pvt.Vapor},
	region5: {pref: 1e6, tref: 1000.0, shift: 0.0, ideal: region5Ideal, residual: region5Residual, region: pvt.Vapor},
}

// derivs computes γ and its derivatives at reduced pressure π and reduced temperature τ
func (o *gibbsSpec) derivs(π, τ float64) (g gibbs) {
	if o.liquid {
		for _, c := range o.residual {
			g = g.plus(liquidTerm(c, 7.1-π, τ-o.shift))
		}
		return
	}
	g = gibbs{γ: math.Log(π), γπ: 1.0 / π, γππ: -1.0 / (π * π)}
	for _, c := range o.ideal {
		g = g.plus(idealTerm(c, τ))
	}
	for _, c := range o.residual {
		g = g.plus(residualTerm(c, π, τ-o.shift))
	}
	return
}

// liquidTerm computes one term of N・a^I・b^J with a = 7.1-π and b = τ-shift (∂a/∂π = -1)
func liquidTerm(c coef, a, b float64) gibbs {
	ai, bj := math.Pow(a, c.I), math.Pow(b, c.J)
	dai, dbj := dpow(a, c.I), dpow(b, c.J)
	return gibbs{
		γ:   c.N * ai * bj,
		γπ:  -c.N * dai * bj,
		γππ: c.N * d2pow(a, c.I) * bj,
		γτ:  c.N * ai * dbj,
		γττ: c.N * ai * d2pow(b, c.J),
		γπτ: -c.N * dai * dbj,
	}
}

// idealTerm computes one term of N・τ^J
func idealTerm(c coef, τ float64) gibbs {
	return gibbs{
		γ:   c.N * math.Pow(τ, c.J),
		γτ:  c.N * dpow(τ, c.J),
		γττ: c.N * d2pow(τ, c.J),
	}
}

// residualTerm computes one term of N・π^I・b^J with b = τ-shift
func residualTerm(c coef, π, b float64) gibbs {
	pi, bj := math.Pow(π, c.I), math.Pow(b, c.J)
	dpi, dbj := dpow(π, c.I), dpow(b, c.J)
	return gibbs{
		γ:   c.N * pi * bj,
		γπ:  c.N * dpi * bj,
		γππ: c.N * d2pow(π, c.I) * bj,
		γτ:  c.N * pi * dbj,
		γττ: c.N * pi * d2pow(b, c.J),
		γπτ: c.N * dpi * dbj,
	}
}

// dpow computes d(x^e)/dx = e・x^(e-1)
func dpow(x, e float64) float64 {
	if e == 0 {
		return 0
	}
	return e * math.Pow(x, e-1)
}

// d2pow computes d²(x^e)/dx² = e・(e-1)・x^(e-2)
func d2pow(x, e float64) float64 {
	if e == 0 || e == 1 {
		return 0
	}
	return e * (e - 1) * math.Pow(x, e-2)
}

// gibbsEntry computes the properties at temperature T [K] and pressure P [Pa]
// using the Gibbs-energy formulation of region r (1, 2 or 5)
func gibbsEntry(r region, T, P float64) (*pvt.Entry, bool) {
	spec, ok := gibbsSpecs[r]
	if !ok || T <= 0 || P <= 0 {
		return nil, false
	}
	π := P / spec.pref
	τ := spec.tref / T
	g := spec.derivs(π, τ)

	a := g.γπ - τ*g.γπτ
	ττγττ := τ * τ * g.γττ
	v := π * g.γπ * R * T / P
	props := pvt.Props{
		T:   T,
		P:   P,
		V:   v,
		Rho: 1.0 / v,
		U:   R * T * (τ*g.γτ - π*g.γπ),
		H:   R * T * τ * g.γτ,
		S:   R * (τ*g.γτ - g.γ),
		Cv:  R * (-ττγττ + a*a/g.γππ),
		Cp:  R * (-ττγττ),
		W:   math.Sqrt(R * T * g.γπ * g.γπ / (a*a/ττγττ - g.γππ)),
	}

	// vapor family: above the critical temperature there is no vapor
	reg := spec.region
	if reg == pvt.Vapor && T > Tc {
		if P > Pc {
			reg = pvt.SupercriticalFluid
		} else {
			reg = pvt.Gas
		}
	}
	e, err := pvt.NewEntry(props, reg)
	if err != nil {
		return nil, false
	}
	return e, true
}
