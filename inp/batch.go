// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from batch files (JSON, YAML or TOML)
package inp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/pvt"
	"gopkg.in/yaml.v3"
)

// Data holds global data for batches
type Data struct {
	Desc    string    `json:"desc" yaml:"desc" toml:"desc"`          // description of batch
	DirOut  string    `json:"dirout" yaml:"dirout" toml:"dirout"`    // directory for output; e.g. /tmp/steamtab
	Table   string    `json:"table" yaml:"table" toml:"table"`       // name of property table; e.g. "if97"
	NumFmt  string    `json:"numfmt" yaml:"numfmt" toml:"numfmt"`    // format of numbers in result tables
	Isobars []float64 `json:"isobars" yaml:"isobars" toml:"isobars"` // pressures [Pa] of isobars to plot
}

// QueryData holds one query
type QueryData struct {
	Label string  `json:"label" yaml:"label" toml:"label"` // optional label
	Kind  string  `json:"kind" yaml:"kind" toml:"kind"`    // "tp", "psat", "tsat", "hp" or "sp"
	T     float64 `json:"T" yaml:"T" toml:"T"`             // temperature [K]
	P     float64 `json:"P" yaml:"P" toml:"P"`             // pressure [Pa]
	H     float64 `json:"h" yaml:"h" toml:"h"`             // enthalpy [J/kg]
	S     float64 `json:"s" yaml:"s" toml:"s"`             // entropy [J/(kg・K)]
	Phase string  `json:"phase" yaml:"phase" toml:"phase"` // "liquid" or "vapor"; saturation queries only

	// derived
	Query pvt.Query `json:"-" yaml:"-" toml:"-"` // parsed query
}

// ColumnData holds data of a fluid column whose density comes from the table
type ColumnData struct {
	T    float64 `json:"T" yaml:"T" toml:"T"`          // temperature [K]
	P0   float64 `json:"P0" yaml:"P0" toml:"P0"`       // pressure at the top [Pa]
	H    float64 `json:"H" yaml:"H" toml:"H"`          // height [m]
	Grav float64 `json:"grav" yaml:"grav" toml:"grav"` // gravity acceleration [m/s²]
	Np   int     `json:"np" yaml:"np" toml:"np"`       // number of stations
}

// Batch holds all batch data
type Batch struct {

	// input
	Data    Data         `json:"data" yaml:"data" toml:"data"`          // global data
	Queries []*QueryData `json:"queries" yaml:"queries" toml:"queries"` // queries
	Column  *ColumnData  `json:"column" yaml:"column" toml:"column"`    // optional fluid column

	// derived
	Key string `json:"-" yaml:"-" toml:"-"` // batch key; e.g. water.yaml => water
}

// ReadBatch reads a batch file. The format is selected by the extension: .json, .yaml, .yml or .toml.
// Values missing in the file are taken from cfg
func ReadBatch(path string, cfg Config) (o *Batch, err error) {

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadBatch: cannot read batch file %q: %w", path, err)
	}

	// set default values
	o = new(Batch)
	o.SetDefault(cfg)

	// decode
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	case ".toml":
		err = toml.Unmarshal(b, o)
	default:
		return nil, fmt.Errorf("ReadBatch: extension %q of %q is not supported", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadBatch: cannot unmarshal batch file %q: %w", path, err)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(path))

	// check and parse queries
	if err = o.PostProcess(); err != nil {
		return nil, fmt.Errorf("ReadBatch: %q: %w", path, err)
	}
	return
}

// SetDefault sets defaults values
func (o *Batch) SetDefault(cfg Config) {
	o.Data.DirOut = cfg.DirOut
	o.Data.Table = cfg.Table
	o.Data.NumFmt = cfg.NumFmt
}

// PostProcess checks the just read data and parses the queries
func (o *Batch) PostProcess() (err error) {
	if o.Data.Table == "" {
		o.Data.Table = "if97"
	}
	if o.Data.NumFmt == "" {
		o.Data.NumFmt = "%15.8e"
	}
	for i, q := range o.Queries {
		if q == nil {
			return fmt.Errorf("query %d is empty", i)
		}
		if err = q.PostProcess(); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
	}
	if c := o.Column; c != nil {
		if c.T <= 0 || c.P0 <= 0 || c.H <= 0 {
			return fmt.Errorf("column: T, P0 and H must be positive. T=%g, P0=%g, H=%g", c.T, c.P0, c.H)
		}
		if c.Grav == 0 {
			c.Grav = 9.81
		}
		if c.Np < 2 {
			c.Np = 11
		}
	}
	return
}

// PostProcess parses the kind and phase of the query
func (o *QueryData) PostProcess() (err error) {
	kind, err := pvt.ParseKind(o.Kind)
	if err != nil {
		return err
	}
	o.Query = pvt.Query{Kind: kind, T: o.T, P: o.P, H: o.H, S: o.S}
	switch kind {
	case pvt.KindSatP, pvt.KindSatT:
		phase, ok := pvt.ParseSatPhase(o.Phase)
		if !ok {
			return fmt.Errorf("phase %q is invalid", o.Phase)
		}
		o.Query.Phase = phase
	}
	if o.Label == "" {
		o.Label = o.Query.String()
	}
	return
}
