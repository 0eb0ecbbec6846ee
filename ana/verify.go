// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/pvt"
)

// Mismatch records a value that differs from its reference
type Mismatch struct {
	Case string  // name of case
	Key  string  // property key; "entry" if the table returned no entry
	Got  float64 // computed value
	Want float64 // reference value
}

// String returns a one-line description
func (o Mismatch) String() string {
	if o.Key == "entry" {
		return io.Sf("%s: no entry", o.Case)
	}
	if o.Key == "region" {
		return io.Sf("%s: region %v != %v", o.Case, pvt.Region(o.Got), pvt.Region(o.Want))
	}
	return io.Sf("%s: %s = %g != %g", o.Case, o.Key, o.Got, o.Want)
}

// Verify evaluates every case with tab and returns the values whose relative error exceeds rtol
func Verify(tab pvt.Table, cases []Case, rtol float64) (res []Mismatch) {
	for _, c := range cases {
		e, ok := c.Query.Eval(tab)
		if !ok {
			res = append(res, Mismatch{c.Name, "entry", nan, nan})
			continue
		}
		if e.Region() != c.Region {
			res = append(res, Mismatch{c.Name, "region", float64(e.Region()), float64(c.Region)})
		}
		got := e.Props()
		for _, v := range []struct {
			key       string
			got, want float64
		}{
			{"T", got.T, c.Want.T},
			{"P", got.P, c.Want.P},
			{"v", got.V, c.Want.V},
			{"rho", got.Rho, c.Want.Rho},
			{"u", got.U, c.Want.U},
			{"h", got.H, c.Want.H},
			{"s", got.S, c.Want.S},
			{"cv", got.Cv, c.Want.Cv},
			{"cp", got.Cp, c.Want.Cp},
			{"w", got.W, c.Want.W},
			{"xv", e.VaporFrac(), c.Xv},
			{"xl", e.LiquidFrac(), c.Xl},
			{"xs", e.SolidFrac(), 0},
		} {
			if differ(v.got, v.want, rtol) {
				res = append(res, Mismatch{c.Name, v.key, v.got, v.want})
			}
		}
	}
	return
}

// differ tells whether a deviates from reference b by more than rtol; NaN references are skipped
func differ(a, b, rtol float64) bool {
	if math.IsNaN(b) {
		return false
	}
	if math.IsNaN(a) {
		return true
	}
	if b == 0 {
		return math.Abs(a) > rtol
	}
	return math.Abs(a-b) > rtol*math.Abs(b)
}
