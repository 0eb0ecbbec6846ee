// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles holds one plot style per curve
type Styles []plt.A

// GetDefaultStyles returns one labelled style per isobar
func GetDefaultStyles(pressures []float64) Styles {
	colors := []string{"b", "r", "g", "m", "c", "k"}
	sty := make([]plt.A, len(pressures))
	for i, P := range pressures {
		sty[i].C = colors[i%len(colors)]
		sty[i].Ls = "-"
		sty[i].L = io.Sf("P=%g", P)
	}
	return sty
}

// GetTexLabel returns the TeX label of a key with an optional unit
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "T":
		l += "T"
	case "P":
		l += "p"
	case "v":
		l += "v"
	case "rho":
		l += "\\rho"
	case "u":
		l += "u"
	case "h":
		l += "h"
	case "s":
		l += "s"
	case "cv":
		l += "c_v"
	case "cp":
		l += "c_p"
	case "w":
		l += "w"
	case "xv":
		l += "x_v"
	case "xl":
		l += "x_{\\ell}"
	case "z":
		l += "z"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
