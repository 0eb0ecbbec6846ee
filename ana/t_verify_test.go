// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/pvt"
	_ "github.com/cpmech/gosteam/mdl/steam"
)

func Test_verify01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("verify01. IF97 table against reference values")

	tab, err := pvt.New("if97")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	cases := AllCases()
	chk.Int(tst, "number of cases", len(cases), 30)
	res := Verify(tab, cases, 1e-6)
	for _, m := range res {
		io.Pforan("%v\n", m)
	}
	chk.Int(tst, "number of mismatches", len(res), 0)
}

func Test_verify02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("verify02. mismatches")

	tab, err := pvt.New("if97")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// wrong reference values
	c := Region1Cases[0]
	c.Want.H *= 1.01
	c.Region = pvt.Vapor
	res := Verify(tab, []Case{c}, 1e-6)
	for _, m := range res {
		io.Pforan("%v\n", m)
	}
	chk.Int(tst, "number of mismatches", len(res), 2)
	chk.String(tst, res[0].Key, "region")
	chk.String(tst, res[1].Key, "h")

	// no entry
	c.Query = pvt.Query{Kind: pvt.KindTP, T: 100, P: 1e5}
	res = Verify(tab, []Case{c}, 1e-6)
	chk.Int(tst, "number of mismatches", len(res), 1)
	chk.String(tst, res[0].Key, "entry")
	chk.String(tst, res[0].String(), c.Name+": no entry")
}

func Test_differ01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("differ01")

	if differ(1.0, nan, 1e-6) {
		tst.Errorf("NaN references must be skipped\n")
	}
	if !differ(nan, 1.0, 1e-6) {
		tst.Errorf("NaN values must differ\n")
	}
	if differ(1e-7, 0, 1e-6) || !differ(1e-5, 0, 1e-6) {
		tst.Errorf("zero reference must use an absolute tolerance\n")
	}
	if differ(1.0000001, 1, 1e-6) || !differ(1.00001, 1, 1e-6) {
		tst.Errorf("relative tolerance is incorrect\n")
	}
}

func Test_fluids01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluids01. handbook water and ideal steam")

	var water Water
	water.Init()
	io.Pforan("intrinsic density @ Θ: ρ = %23g [kg/m³]\n", water.Rho)
	io.Pforan("compressibility @ Θ:   C = %23g [kg/(m³・Pa)]\n", water.C)
	chk.Float64(tst, "C", 1e-12, water.C, 4.532035909090909e-07)

	var steam IdealSteam
	steam.Init(700, 3500)
	chk.Float64(tst, "ρ", 1e-6, steam.Rho, 1.0/0.923015898e2)
	chk.Float64(tst, "C", 1e-15, steam.C, steam.Rho/steam.P)
}
