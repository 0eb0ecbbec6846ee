// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Kind selects the pair of independent variables of a query
type Kind int

// kinds of queries
const (
	KindTP   Kind = iota // temperature and pressure
	KindSatP             // saturated phase at pressure
	KindSatT             // saturated phase at temperature
	KindHP               // enthalpy and pressure
	KindSP               // entropy and pressure
)

var kindNames = []string{"tp", "psat", "tsat", "hp", "sp"}

// String returns the key of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind converts a key such as "tp" or "hp" into a Kind
func ParseKind(key string) (Kind, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, name := range kindNames {
		if key == name {
			return Kind(i), nil
		}
	}
	return 0, chk.Err("query kind %q is invalid. options are %v", key, kindNames)
}

// Query holds the independent variables of one lookup
type Query struct {
	Kind  Kind     // pair of independent variables
	T     float64  // temperature [K]; KindTP and KindSatT
	P     float64  // pressure [Pa]; all kinds except KindSatT
	H     float64  // enthalpy [J/kg]; KindHP
	S     float64  // entropy [J/(kg・K)]; KindSP
	Phase SatPhase // saturated phase; KindSatP and KindSatT
}

// Eval performs the lookup in tab
func (q Query) Eval(tab Table) (*Entry, bool) {
	switch q.Kind {
	case KindTP:
		return tab.AtTemperatureAndPressure(q.T, q.P)
	case KindSatP:
		return tab.AtSatPressure(q.P, q.Phase)
	case KindSatT:
		return tab.AtSatTemperature(q.T, q.Phase)
	case KindHP:
		return tab.AtEnthalpyAndPressure(q.H, q.P)
	case KindSP:
		return tab.AtEntropyAndPressure(q.S, q.P)
	}
	return nil, false
}

// String returns a short description of the query
func (q Query) String() string {
	switch q.Kind {
	case KindTP:
		return io.Sf("T=%g P=%g", q.T, q.P)
	case KindSatP:
		return io.Sf("P=%g %v", q.P, q.Phase)
	case KindSatT:
		return io.Sf("T=%g %v", q.T, q.Phase)
	case KindHP:
		return io.Sf("h=%g P=%g", q.H, q.P)
	case KindSP:
		return io.Sf("s=%g P=%g", q.S, q.P)
	}
	return "unknown"
}
