// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package newton

import "github.com/cpmech/gosl/chk"

// Range holds an inclusive interval [Min, Max]
type Range struct {
	Min float64 // lower bound
	Max float64 // upper bound
}

// NewRange returns a new range; it fails if min > max
func NewRange(min, max float64) (o Range, err error) {
	if min > max {
		return o, chk.Err("range: min must not exceed max. %g > %g", min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Mid returns the midpoint of the range
func (o Range) Mid() float64 {
	return (o.Max-o.Min)/2.0 + o.Min
}

// Width returns Max - Min
func (o Range) Width() float64 {
	return o.Max - o.Min
}

// Contains tells whether x lies within [Min, Max]
func (o Range) Contains(x float64) bool {
	return x >= o.Min && x <= o.Max
}

// Clamp moves x into [Min, Max]
func (o Range) Clamp(x float64) float64 {
	if x < o.Min {
		return o.Min
	}
	if x > o.Max {
		return o.Max
	}
	return x
}
