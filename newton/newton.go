// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package newton implements a bounded Newton-Raphson solver for scalar functions
package newton

import "math"

// constants
const (
	Tol   = 1e-6  // tolerance on |f(x)|
	MaxIt = 10000 // maximum number of updates of the initial guess
)

// Func defines a scalar function y = f(x)
type Func func(x float64) float64

// Result holds the outcome of Solve
type Result struct {
	X            float64 // last x-value
	It           int     // number of updates performed; f is evaluated It+1 times
	MaxItReached bool    // stopped without converging
}

// Solve finds x in rng such that |f(x)| ≤ Tol
//
//	Input:
//	 f   -- function
//	 df  -- derivative df/dx; nil means finite differences with h = rng.Width()/1000
//	 rng -- search interval; the guess is clamped into it after every update
//	Note:
//	 the search starts at rng.Mid(). Clamping keeps x in the valid domain but the iterations
//	 may stall at a bound; a result with MaxItReached must be treated as "no solution".
//	 A NaN residual or a NaN update can never converge and is reported at once.
//	 At most MaxIt updates are made; f is evaluated at most MaxIt+1 times.
func Solve(f, df Func, rng Range) (res Result) {
	if df == nil {
		df = Deriv(f, rng)
	}
	x := rng.Mid()
	for res.It = 0; ; res.It++ {
		fx := f(x)
		if math.Abs(fx) <= Tol {
			res.X = x
			return
		}
		if res.It >= MaxIt || math.IsNaN(fx) {
			res.X = x
			res.MaxItReached = true
			return
		}
		x = rng.Clamp(x - fx/df(x))
		if math.IsNaN(x) {
			res.X = x
			res.MaxItReached = true
			return
		}
	}
}

// Deriv returns a numerical derivative of f that stays within rng
//
//	Two-point central differences are used when x is at least one step away from both bounds;
//	otherwise three-point forward (near Min) or backward (near Max) differences are used.
func Deriv(f Func, rng Range) Func {
	h := rng.Width() / 1e3
	return func(x float64) float64 {
		if x-h < rng.Min {
			return ForwardDiff3(f, x, h)
		}
		if x+h > rng.Max {
			return BackwardDiff3(f, x, h)
		}
		return CentralDiff(f, x, h)
	}
}

// CentralDiff computes df/dx with two-point central differences
func CentralDiff(f Func, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2.0 * h)
}

// ForwardDiff3 computes df/dx with three-point forward differences
func ForwardDiff3(f Func, x, h float64) float64 {
	return (-3.0*f(x) + 4.0*f(x+h) - f(x+2.0*h)) / (2.0 * h)
}

// BackwardDiff3 computes df/dx with three-point backward differences
func BackwardDiff3(f Func, x, h float64) float64 {
	return (3.0*f(x) - 4.0*f(x-h) + f(x-2.0*h)) / (2.0 * h)
}
