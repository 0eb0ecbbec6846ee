// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of query results as tables and plots
package out

import (
	"bytes"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/inp"
	"github.com/cpmech/gosteam/mdl/pvt"
)

// Keys holds the keys of the columns of result tables
var Keys = []string{"T", "P", "v", "rho", "u", "h", "s", "cv", "cp", "w", "xv", "xl", "xs"}

// Values returns the values of an entry in the order of Keys
func Values(e *pvt.Entry) []float64 {
	p := e.Props()
	return []float64{p.T, p.P, p.V, p.Rho, p.U, p.H, p.S, p.Cv, p.Cp, p.W, e.VaporFrac(), e.LiquidFrac(), e.SolidFrac()}
}

// Table returns a fixed-width table with one row per result
//
//	Input:
//	 res    -- results
//	 numfmt -- format of numbers; e.g. "%15.8e"
//	Note:
//	 rows of results without entry have "-" in every column
func Table(res []*inp.Result, numfmt string) (buf *bytes.Buffer) {

	// widths
	width := len(io.Sf(numfmt, 0.0))
	lwid := len("label")
	for _, r := range res {
		lwid = max(lwid, len(r.Label))
	}
	rwid := len("SupercriticalFluid")
	sfmt := io.Sf("%%%ds", width)

	// header
	buf = new(bytes.Buffer)
	io.Ff(buf, "%-*s  %-*s", lwid, "label", rwid, "region")
	for _, key := range Keys {
		io.Ff(buf, sfmt, key)
	}
	io.Ff(buf, "\n")

	// rows
	for _, r := range res {
		io.Ff(buf, "%-*s  ", lwid, r.Label)
		if r.Entry == nil {
			io.Ff(buf, "%-*s", rwid, "-")
			io.Ff(buf, strings.Repeat(sfmt, len(Keys)), dashes(len(Keys))...)
			io.Ff(buf, "\n")
			continue
		}
		io.Ff(buf, "%-*s", rwid, r.Entry.Region())
		for _, v := range Values(r.Entry) {
			io.Ff(buf, numfmt, v)
		}
		io.Ff(buf, "\n")
	}
	return
}

// WriteTable writes the table of results to dirout/fnkey.txt
func WriteTable(dirout, fnkey string, res []*inp.Result, numfmt string) {
	io.WriteFileVD(dirout, fnkey+".txt", Table(res, numfmt))
}

// dashes returns n "-" strings as arguments for a format
func dashes(n int) []interface{} {
	d := make([]interface{}, n)
	for i := range d {
		d[i] = "-"
	}
	return d
}
