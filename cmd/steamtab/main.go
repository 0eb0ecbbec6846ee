// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// steamtab computes properties of water and steam with the IAPWS-IF97 formulation
package main

import (
	"os"

	"github.com/cpmech/gosteam/cmd/steamtab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
