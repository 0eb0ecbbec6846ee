// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"math"

	"github.com/cpmech/gosteam/mdl/pvt"
	"github.com/cpmech/gosteam/newton"
)

// reducing constants of region 3
const (
	rho3 = 322.0   // reducing density [kg/m³]
	tem3 = 647.096 // reducing temperature [K]
)

// pres3 is the unit [Pa] of the residual of the density search. In pascal, the rounding noise
// of p(ρ) at high pressures is of the order of newton.Tol.
const pres3 = 1e6

// helmholtz holds the dimensionless Helmholtz free energy φ = f/(R・T) and its derivatives
type helmholtz struct {
	φ   float64 // φ
	φδ  float64 // ∂φ/∂δ
	φδδ float64 // ∂²φ/∂δ²
	φτ  float64 // ∂φ/∂τ
	φττ float64 // ∂²φ/∂τ²
	φδτ float64 // ∂²φ/∂δ∂τ
}

// plus returns the sum of two sets of derivatives
func (o helmholtz) plus(b helmholtz) helmholtz {
	return helmholtz{
		φ:   o.φ + b.φ,
		φδ:  o.φδ + b.φδ,
		φδδ: o.φδδ + b.φδδ,
		φτ:  o.φτ + b.φτ,
		φττ: o.φττ + b.φττ,
		φδτ: o.φδτ + b.φδτ,
	}
}

// helmholtzDerivs computes φ and its derivatives at reduced density δ and reduced temperature τ
func helmholtzDerivs(δ, τ float64) (h helmholtz) {
	for _, c := range region3Coefs {
		if math.IsNaN(c.I) {
			h = h.plus(helmholtz{
				φ:   c.N * math.Log(δ),
				φδ:  c.N / δ,
				φδδ: -c.N / (δ * δ),
			})
			continue
		}
		di, tj := math.Pow(δ, c.I), math.Pow(τ, c.J)
		ddi, dtj := dpow(δ, c.I), dpow(τ, c.J)
		h = h.plus(helmholtz{
			φ:   c.N * di * tj,
			φδ:  c.N * ddi * tj,
			φδδ: c.N * d2pow(δ, c.I) * tj,
			φτ:  c.N * di * dtj,
			φττ: c.N * di * d2pow(τ, c.J),
			φδτ: c.N * ddi * dtj,
		})
	}
	return
}

// region3Pressure returns the pressure [Pa] at density ρ [kg/m³] and temperature T [K]
func region3Pressure(ρ, T float64) float64 {
	δ := ρ / rho3
	h := helmholtzDerivs(δ, tem3/T)
	return δ * h.φδ * ρ * R * T
}

// densityResidual returns the residual f(ρ) = (P - p(ρ)) / pres3 of the density search at
// temperature T [K] and target pressure P [Pa] and its derivative df/dρ
func densityResidual(T, P float64) (f, df newton.Func) {
	τ := tem3 / T
	f = func(ρ float64) float64 {
		return (P - region3Pressure(ρ, T)) / pres3
	}
	df = func(ρ float64) float64 {
		δ := ρ / rho3
		h := helmholtzDerivs(δ, τ)
		return -R * T * (2.0*δ*h.φδ + δ*δ*h.φδδ) / pres3
	}
	return
}

// helmholtzEntry computes the properties at temperature T [K] and pressure P [Pa] using
// the Helmholtz-energy formulation of region 3. The density reproducing P is searched
// for within rng [kg/m³]; false is returned if it cannot be found.
func helmholtzEntry(T, P float64, rng newton.Range) (*pvt.Entry, bool) {
	if T <= 0 || P <= 0 {
		return nil, false
	}
	τ := tem3 / T

	f, df := densityResidual(T, P)
	res := newton.Solve(f, df, rng)
	if res.MaxItReached {
		return nil, false
	}

	// properties
	ρ := res.X
	δ := ρ / rho3
	h := helmholtzDerivs(δ, τ)
	a := δ*h.φδ - δ*τ*h.φδτ
	b := 2.0*δ*h.φδ + δ*δ*h.φδδ
	ττφττ := τ * τ * h.φττ
	props := pvt.Props{
		T:   T,
		P:   P,
		V:   1.0 / ρ,
		Rho: ρ,
		U:   R * T * τ * h.φτ,
		H:   R * T * (τ*h.φτ + δ*h.φδ),
		S:   R * (τ*h.φτ - h.φ),
		Cv:  R * (-ττφττ),
		Cp:  R * (-ττφττ + a*a/b),
		W:   math.Sqrt(R * T * (b - a*a/ττφττ)),
	}
	e, err := pvt.NewEntry(props, pvt.SupercriticalFluid)
	if err != nil {
		return nil, false
	}
	return e, true
}
