// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteam/newton"
)

// Table defines property tables. A false flag means that the state is out of range or that
// it could not be found.
//
//	Units: temperature [K], pressure [Pa], enthalpy [J/kg], entropy [J/(kg・K)]
type Table interface {
	AtTemperatureAndPressure(T, P float64) (*Entry, bool)      // entry at temperature and pressure
	AtSatPressure(P float64, phase SatPhase) (*Entry, bool)    // saturated entry at pressure
	AtSatTemperature(T float64, phase SatPhase) (*Entry, bool) // saturated entry at temperature
	AtEnthalpyAndPressure(h, P float64) (*Entry, bool)         // entry matching enthalpy at pressure
	AtEntropyAndPressure(s, P float64) (*Entry, bool)          // entry matching entropy at pressure
	CriticalTemperature() float64                              // critical temperature [K]
	CriticalPressure() float64                                 // critical pressure [Pa]
	TemperatureRange(P float64) newton.Range                   // valid temperatures at pressure
	PressureRange(T float64) newton.Range                      // valid pressures at temperature
}

// New returns a property table
func New(name string) (tab Table, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("table %q is not available in 'pvt' database", name)
	}
	return allocator(), nil
}

// Register adds a table to the database; it is meant to be called from init functions
func Register(name string, allocator func() Table) {
	if _, ok := allocators[name]; ok {
		chk.Panic("table %q is already registered in 'pvt' database", name)
	}
	allocators[name] = allocator
}

// Names returns the names of the available tables
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available tables
var allocators = map[string]func() Table{}
