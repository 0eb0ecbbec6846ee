// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds reference values of water and steam properties used to check tables
//
//	References:
//	 [1] IAPWS (2007) Revised Release on the IAPWS Industrial Formulation 1997 for the
//	     Thermodynamic Properties of Water and Steam. Tables 5, 15, 33, 35, 36 and 42
package ana

import (
	"math"

	"github.com/cpmech/gosteam/mdl/pvt"
)

// nan marks a property without reference value
var nan = math.NaN()

// Case holds a query together with the expected entry
type Case struct {
	Name   string     // description
	Query  pvt.Query  // independent variables
	Region pvt.Region // expected region
	Xv, Xl float64    // expected vapor and liquid mass fractions
	Want   pvt.Props  // expected properties; NaN values are not checked
}

// tp returns a temperature-pressure case of a single-phase state
func tp(name string, region pvt.Region, want pvt.Props) Case {
	var xv, xl float64
	switch region {
	case pvt.Vapor:
		xv = 1
	case pvt.Liquid:
		xl = 1
	}
	want.Rho = 1.0 / want.V
	return Case{name, pvt.Query{Kind: pvt.KindTP, T: want.T, P: want.P}, region, xv, xl, want}
}

// Region1Cases holds the verification points of the region 1 equation (Table 5 of [1])
var Region1Cases = []Case{
	tp("region1 T=300 P=3MPa", pvt.Liquid, pvt.Props{T: 300, P: 3e6, V: 0.100215168e-2, U: 0.112324818e6, H: 0.115331273e6, S: 0.392294792e3, Cv: nan, Cp: 0.417301218e4, W: 0.150773921e4}),
	tp("region1 T=300 P=80MPa", pvt.Liquid, pvt.Props{T: 300, P: 80e6, V: 0.971180894e-3, U: 0.106448356e6, H: 0.184142828e6, S: 0.368563852e3, Cv: nan, Cp: 0.401008987e4, W: 0.163469054e4}),
	tp("region1 T=500 P=3MPa", pvt.Liquid, pvt.Props{T: 500, P: 3e6, V: 0.120241800e-2, U: 0.971934985e6, H: 0.975542239e6, S: 0.258041912e4, Cv: nan, Cp: 0.465580682e4, W: 0.124071337e4}),
}

// Region2Cases holds the verification points of the region 2 equation (Table 15 of [1])
var Region2Cases = []Case{
	tp("region2 T=300 P=3.5kPa", pvt.Vapor, pvt.Props{T: 300, P: 3.5e3, V: 0.394913866e2, U: 0.241169160e7, H: 0.254991145e7, S: 0.852238967e4, Cv: nan, Cp: 0.191300162e4, W: 0.427920172e3}),
	tp("region2 T=700 P=3.5kPa", pvt.Gas, pvt.Props{T: 700, P: 3.5e3, V: 0.923015898e2, U: 0.301262819e7, H: 0.333568375e7, S: 0.101749996e5, Cv: nan, Cp: 0.208141274e4, W: 0.644289068e3}),
	tp("region2 T=700 P=30MPa", pvt.SupercriticalFluid, pvt.Props{T: 700, P: 30e6, V: 0.542946619e-2, U: 0.246861076e7, H: 0.263149474e7, S: 0.517540298e4, Cv: nan, Cp: 0.103505092e5, W: 0.480386523e3}),
}

// Region3Cases holds the verification points of the region 3 equation (Table 33 of [1]).
// The pressures are the tabulated ones; the densities are 500, 200 and 500 kg/m³
var Region3Cases = []Case{
	tp("region3 T=650 rho=500", pvt.SupercriticalFluid, pvt.Props{T: 650, P: 0.255837018e8, V: 1.0 / 500, U: 0.181226279e7, H: 0.186343019e7, S: 0.405427273e4, Cv: nan, Cp: 0.138935717e5, W: 0.502005554e3}),
	tp("region3 T=650 rho=200", pvt.SupercriticalFluid, pvt.Props{T: 650, P: 0.222930643e8, V: 1.0 / 200, U: 0.226365868e7, H: 0.237512401e7, S: 0.485438792e4, Cv: nan, Cp: 0.446579342e5, W: 0.383444594e3}),
	tp("region3 T=750 rho=500", pvt.SupercriticalFluid, pvt.Props{T: 750, P: 0.783095639e8, V: 1.0 / 500, U: 0.210206932e7, H: 0.225868845e7, S: 0.446971906e4, Cv: nan, Cp: 0.634165359e4, W: 0.760696041e3}),
}

// Region5Cases holds the verification points of the region 5 equation (Table 42 of [1])
var Region5Cases = []Case{
	tp("region5 T=1500 P=0.5MPa", pvt.Gas, pvt.Props{T: 1500, P: 0.5e6, V: 0.138455090e1, U: 0.452749310e7, H: 0.521976855e7, S: 0.965408875e4, Cv: nan, Cp: 0.261609445e4, W: 0.917068690e3}),
	tp("region5 T=1500 P=30MPa", pvt.SupercriticalFluid, pvt.Props{T: 1500, P: 30e6, V: 0.230761299e-1, U: 0.447495124e7, H: 0.516723514e7, S: 0.772970133e4, Cv: nan, Cp: 0.272724317e4, W: 0.928548002e3}),
	tp("region5 T=2000 P=30MPa", pvt.SupercriticalFluid, pvt.Props{T: 2000, P: 30e6, V: 0.311385219e-1, U: 0.563707038e7, H: 0.657122604e7, S: 0.853640523e4, Cv: nan, Cp: 0.288569882e4, W: 0.106736948e4}),
}

// SatPressurePoints holds saturation pressures: X=T [K], Y=P [Pa] (Table 35 of [1])
var SatPressurePoints = []pvt.DataPoint{
	{X: 300, Y: 0.353658941e4},
	{X: 500, Y: 0.263889776e7},
	{X: 600, Y: 0.123443146e8},
}

// SatTemperaturePoints holds saturation temperatures: X=P [Pa], Y=T [K] (Table 36 of [1])
var SatTemperaturePoints = []pvt.DataPoint{
	{X: 0.1e6, Y: 0.372755919e3},
	{X: 1e6, Y: 0.453035632e3},
	{X: 10e6, Y: 0.584149488e3},
}

// single-phase states shared by the lookup cases
var (
	stateDense  = pvt.Props{T: 750, P: 78.309563916917e6, V: 1.0 / 500, U: 2102.069317626429e3, H: 2258.688445460262e3, S: 4.469719056217e3, Cv: 2.71701677121e3, Cp: 6.341653594791e3, W: 760.696040876798}
	stateLiquid = pvt.Props{T: 473.15, P: 40e6, V: 0.001122406088, U: 825.228016170348e3, H: 870.124259682489e3, S: 2.275752861241e3, Cv: 3.292858637199e3, Cp: 4.315767590903e3, W: 1457.418351596083}
	stateHot    = pvt.Props{T: 2000, P: 30e6, V: 0.03113852187, U: 5637.070382521894e3, H: 6571.226038618478e3, S: 8.536405231138e3, Cv: 2.395894362358e3, Cp: 2.885698818781e3, W: 1067.369478777425}
	stateGas    = pvt.Props{T: 823.15, P: 14e6, V: 0.024763222774, U: 3114.302136294585e3, H: 3460.987255128561e3, S: 6.564768889364e3, Cv: 1.892708832325e3, Cp: 2.666558503968e3, W: 666.050616844223}
	stateSatLiq = pvt.Props{T: 393.361545936488, P: 0.2e6, V: 0.00106051840643552, U: 504471.741847973, H: 504683.84552926, S: 1530.0982011075, Cv: 3666.99397284121, Cp: 4246.73524917536, W: 1520.69128792808}
	stateSatVap = pvt.Props{T: 393.361545936488, P: 0.2e6, V: 0.885735065081644, U: 2529094.32835793, H: 2706241.34137425, S: 7126.8563914686, Cv: 1615.96336473298, Cp: 2175.22318865273, W: 481.883535821489}
	stateWet    = pvt.Props{T: 318.957548207023, P: 10e3, V: 11.8087122249855, U: 1999135.82661328, H: 2117222.94886314, S: 6.6858e3, Cv: 1966.28009225455, Cp: 2377.86300751001, W: 655.005141924186}
)

// lookup returns a case of the given kind built from the expected state
func lookup(name string, kind pvt.Kind, phase pvt.SatPhase, region pvt.Region, xv, xl float64, want pvt.Props) Case {
	want.Rho = 1.0 / want.V
	q := pvt.Query{Kind: kind, T: want.T, P: want.P, H: want.H, S: want.S, Phase: phase}
	return Case{name, q, region, xv, xl, want}
}

// TPCases holds lookups by temperature and pressure
var TPCases = []Case{
	lookup("tp dense", pvt.KindTP, 0, pvt.SupercriticalFluid, 0, 0, stateDense),
	lookup("tp liquid", pvt.KindTP, 0, pvt.Liquid, 0, 1, stateLiquid),
	lookup("tp hot", pvt.KindTP, 0, pvt.SupercriticalFluid, 0, 0, stateHot),
	lookup("tp gas", pvt.KindTP, 0, pvt.Gas, 0, 0, stateGas),
}

// SatCases holds lookups of saturated states by pressure and by temperature
var SatCases = []Case{
	lookup("psat liquid", pvt.KindSatP, pvt.SatLiquid, pvt.Liquid, 0, 1, stateSatLiq),
	lookup("psat vapor", pvt.KindSatP, pvt.SatVapor, pvt.Vapor, 1, 0, stateSatVap),
	lookup("tsat liquid", pvt.KindSatT, pvt.SatLiquid, pvt.Liquid, 0, 1, stateSatLiq),
	lookup("tsat vapor", pvt.KindSatT, pvt.SatVapor, pvt.Vapor, 1, 0, stateSatVap),
}

// EnthalpyCases holds lookups by enthalpy and pressure
var EnthalpyCases = []Case{
	lookup("hp dense", pvt.KindHP, 0, pvt.SupercriticalFluid, 0, 0, stateDense),
	lookup("hp liquid", pvt.KindHP, 0, pvt.Liquid, 0, 1, stateLiquid),
	lookup("hp hot", pvt.KindHP, 0, pvt.SupercriticalFluid, 0, 0, stateHot),
	lookup("hp gas", pvt.KindHP, 0, pvt.Gas, 0, 0, stateGas),
	lookup("hp wet", pvt.KindHP, 0, pvt.LiquidVapor, 0.804912447078132, 0.195087552921867, stateWet),
}

// EntropyCases holds lookups by entropy and pressure
var EntropyCases = []Case{
	lookup("sp dense", pvt.KindSP, 0, pvt.SupercriticalFluid, 0, 0, stateDense),
	lookup("sp liquid", pvt.KindSP, 0, pvt.Liquid, 0, 1, stateLiquid),
	lookup("sp hot", pvt.KindSP, 0, pvt.SupercriticalFluid, 0, 0, stateHot),
	lookup("sp gas", pvt.KindSP, 0, pvt.Gas, 0, 0, stateGas),
	lookup("sp wet", pvt.KindSP, 0, pvt.LiquidVapor, 0.804912447078132, 0.195087552921867, stateWet),
}

// AllCases returns every case in this package
func AllCases() (cases []Case) {
	for _, group := range [][]Case{Region1Cases, Region2Cases, Region3Cases, Region5Cases, TPCases, SatCases, EnthalpyCases, EntropyCases} {
		cases = append(cases, group...)
	}
	return
}
