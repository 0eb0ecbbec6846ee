// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// Water handles handbook properties of liquid water
type Water struct {
	Θ   float64 // reference temperature; default = 25°C or 298.15K
	P   float64 // reference pressure; default = 101325 Pa
	K   float64 // bulk modulus @ reference state
	Rho float64 // intrinsic density @ reference state
	C   float64 // compressibility @ reference state
}

// IdealSteam handles the properties of steam approximated as an ideal gas
type IdealSteam struct {
	Θ   float64 // temperature
	P   float64 // pressure
	R   float64 // specific ideal gas constant
	Rho float64 // intrinsic density
	C   float64 // compressibility = dρ/dp
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 298.15      // [K]      25°C
	o.P = 101325      // [Pa]
	o.K = 2.2e9       // [Pa]     25°C
	o.Rho = 997.0479  // [kg/m³]  25°C
	o.C = o.Rho / o.K // [kg/(m³・Pa)]
}

// Init initialises data at temperature θ [K] and pressure p [Pa]
func (o *IdealSteam) Init(θ, p float64) {
	o.Θ = θ
	o.P = p
	o.R = 461.526             // [J/(kg・K)]
	o.Rho = o.P / (o.R * o.Θ) // [kg/m³]
	o.C = 1.0 / (o.R * o.Θ)   // [kg/(m³・Pa)]
}
