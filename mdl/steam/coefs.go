// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import "math"

// coef holds the exponents (I,J) and the coefficient N of one term of a series.
// NaN marks an exponent that does not apply.
type coef struct {
	I, J, N float64
}

// na marks an exponent that does not apply
var na = math.NaN()

// region1Coefs holds the terms of γ = Σ N・(7.1-π)^I・(τ-1.222)^J
var region1Coefs = []coef{
	{0, -2, 1.4632971213167e-01},
	{0, -1, -8.4548187169114e-01},
	{0, 0, -3.7563603672040e+00},
	{0, 1, 3.3855169168385e+00},
	{0, 2, -9.5791963387872e-01},
	{0, 3, 1.5772038513228e-01},
	{0, 4, -1.6616417199501e-02},
	{0, 5, 8.1214629983568e-04},
	{1, -9, 2.8319080123804e-04},
	{1, -7, -6.0706301565874e-04},
	{1, -1, -1.8990068218419e-02},
	{1, 0, -3.2529748770505e-02},
	{1, 1, -2.1841717175414e-02},
	{1, 3, -5.2838357969930e-05},
	{2, -3, -4.7184321073267e-04},
	{2, 0, -3.0001780793026e-04},
	{2, 1, 4.7661393906987e-05},
	{2, 3, -4.4141845330846e-06},
	{2, 17, -7.2694996297594e-16},
	{3, -4, -3.1679644845054e-05},
	{3, 0, -2.8270797985312e-06},
	{3, 6, -8.5205128120103e-10},
	{4, -5, -2.2425281908000e-06},
	{4, -2, -6.5171222895601e-07},
	{4, 10, -1.4341729937924e-13},
	{5, -8, -4.0516996860117e-07},
	{8, -11, -1.2734301741641e-09},
	{8, -6, -1.7424871230634e-10},
	{21, -29, -6.8762131295531e-19},
	{23, -31, 1.4478307828521e-20},
	{29, -38, 2.6335781662795e-23},
	{30, -39, -1.1947622640071e-23},
	{31, -40, 1.8228094581404e-24},
	{32, -41, -9.3537087292458e-26},
}

// region2Ideal holds the terms of γ° = ln π + Σ N・τ^J
var region2Ideal = []coef{
	{na, 0, -9.6927686500217e+00},
	{na, 1, 1.0086655968018e+01},
	{na, -5, -5.6087911283020e-03},
	{na, -4, 7.1452738081455e-02},
	{na, -3, -4.0710498223928e-01},
	{na, -2, 1.4240819171444e+00},
	{na, -1, -4.3839511319450e+00},
	{na, 2, -2.8408632460772e-01},
	{na, 3, 2.1268463753307e-02},
}

// region2Residual holds the terms of γʳ = Σ N・π^I・(τ-0.5)^J
var region2Residual = []coef{
	{1, 0, -1.7731742473213e-03},
	{1, 1, -1.7834862292358e-02},
	{1, 2, -4.5996013696365e-02},
	{1, 3, -5.7581259083432e-02},
	{1, 6, -5.0325278727930e-02},
	{2, 1, -3.3032641670203e-05},
	{2, 2, -1.8948987516315e-04},
	{2, 4, -3.9392777243355e-03},
	{2, 7, -4.3797295650573e-02},
	{2, 36, -2.6674547914087e-05},
	{3, 0, 2.0481737692309e-08},
	{3, 1, 4.3870667284435e-07},
	{3, 3, -3.2277677238570e-05},
	{3, 6, -1.5033924542148e-03},
	{3, 35, -4.0668253562649e-02},
	{4, 1, -7.8847309559367e-10},
	{4, 2, 1.2790717852285e-08},
	{4, 3, 4.8225372718507e-07},
	{5, 7, 2.2922076337661e-06},
	{6, 3, -1.6714766451061e-11},
	{6, 16, -2.1171472321355e-03},
	{6, 35, -2.3895741934104e+01},
	{7, 0, -5.9059564324270e-18},
	{7, 11, -1.2621808899101e-06},
	{7, 25, -3.8946842435739e-02},
	{8, 8, 1.1256211360459e-11},
	{8, 36, -8.2311340897998e+00},
	{9, 13, 1.9809712802088e-08},
	{10, 4, 1.0406965210174e-19},
	{10, 10, -1.0234747095929e-13},
	{10, 14, -1.0018179379511e-09},
	{16, 29, -8.0882908646985e-11},
	{16, 50, 1.0693031879409e-01},
	{18, 57, -3.3662250574171e-01},
	{20, 20, 8.9185845355421e-25},
	{20, 35, 3.0629316876232e-13},
	{20, 48, -4.2002467698208e-06},
	{21, 21, -5.9056029685639e-26},
	{22, 53, 3.7826947613457e-06},
	{23, 39, -1.2768608934681e-15},
	{24, 26, 7.3087610595061e-29},
	{24, 40, 5.5414715350778e-17},
	{24, 58, -9.4369707241210e-07},
}

// region3Coefs holds the terms of φ = N₁・ln δ + Σ N・δ^I・τ^J; the first entry is the logarithmic term
var region3Coefs = []coef{
	{na, na, 1.0658070028513e+00},
	{0, 0, -1.5732845290239e+01},
	{0, 1, 2.0944396974307e+01},
	{0, 2, -7.6867707878716e+00},
	{0, 7, 2.6185947787954e+00},
	{0, 10, -2.8080781148620e+00},
	{0, 12, 1.2053369696517e+00},
	{0, 23, -8.4566812812502e-03},
	{1, 2, -1.2654315477714e+00},
	{1, 6, -1.1524407806681e+00},
	{1, 15, 8.8521043984318e-01},
	{1, 17, -6.4207765181607e-01},
	{2, 0, 3.8493460186671e-01},
	{2, 2, -8.5214708824206e-01},
	{2, 6, 4.8972281541877e+00},
	{2, 7, -3.0502617256965e+00},
	{2, 22, 3.9420536879154e-02},
	{2, 26, 1.2558408424308e-01},
	{3, 0, -2.7999329698710e-01},
	{3, 2, 1.3899799569460e+00},
	{3, 4, -2.0189915023570e+00},
	{3, 16, -8.2147637173963e-03},
	{3, 26, -4.7596035734923e-01},
	{4, 0, 4.3984074473500e-02},
	{4, 2, -4.4476435428739e-01},
	{4, 4, 9.0572070719733e-01},
	{4, 26, 7.0522450087967e-01},
	{5, 1, 1.0770512626332e-01},
	{5, 3, -3.2913623258954e-01},
	{5, 26, -5.0871062041158e-01},
	{6, 0, -2.2175400873096e-02},
	{6, 2, 9.4260751665092e-02},
	{6, 26, 1.6436278447961e-01},
	{7, 2, -1.3503372241348e-02},
	{8, 26, -1.4834345352472e-02},
	{9, 2, 5.7922953628084e-04},
	{9, 26, 3.2308904703711e-03},
	{10, 0, 8.0964802996215e-05},
	{10, 1, -1.6557679795037e-04},
	{11, 26, -4.4923899061815e-05},
}

// region5Ideal holds the terms of γ° = ln π + Σ N・τ^J
var region5Ideal = []coef{
	{na, 0, -1.3179983674201e+01},
	{na, 1, 6.8540841634434e+00},
	{na, -3, -2.4805148933466e-02},
	{na, -2, 3.6901534980333e-01},
	{na, -1, -3.1161318213925e+00},
	{na, 2, -3.2961626538917e-01},
}

// region5Residual holds the terms of γʳ = Σ N・π^I・τ^J
var region5Residual = []coef{
	{1, 1, 1.5736404855259e-03},
	{1, 2, 9.0153761673944e-04},
	{1, 3, -5.0270077677648e-03},
	{2, 3, 2.2440037409485e-06},
	{2, 9, -4.1163275453471e-06},
	{3, 7, 3.7919454822955e-08},
}

// nRegion4 holds the coefficients of the saturation-pressure equation
var nRegion4 = [10]float64{
	1167.0521452767,
	-724213.16703206,
	-17.073846940092,
	12020.82470247,
	-3232555.0322333,
	14.91510861353,
	-4823.2657361591,
	405113.40542057,
	-0.23855557567849,
	650.17534844798,
}

// nBoundary34 holds the coefficients of the boundary equation above the critical temperature
var nBoundary34 = [5]float64{
	348.05185628969,
	-1.1671859879975,
	0.0010192970039326,
	572.54459862746,
	13.91883977887,
}
