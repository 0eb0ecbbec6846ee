// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

// DataPoint holds an (x,y) pair
type DataPoint struct {
	X, Y float64
}

// Interp linearly interpolates y at x between two reference points
func Interp(x float64, a, b DataPoint) float64 {
	return (b.Y-a.Y)/(b.X-a.X)*(x-a.X) + a.Y
}
