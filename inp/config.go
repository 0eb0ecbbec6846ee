// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment
type Config struct {
	DirOut  string `env:"STEAMTAB_DIROUT" envDefault:"/tmp/steamtab"` // directory for output
	Verbose bool   `env:"STEAMTAB_VERBOSE" envDefault:"false"`        // show messages
	Table   string `env:"STEAMTAB_TABLE" envDefault:"if97"`           // name of property table
	NumFmt  string `env:"STEAMTAB_NUMFMT" envDefault:"%15.8e"`        // format of numbers in result tables
}

// ParseEnv reads the configuration from the environment
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
