// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/fluid"
	"github.com/cpmech/gosteam/mdl/pvt"
)

// Result holds the outcome of one query
type Result struct {
	Label string     // label of query
	Query pvt.Query  // query
	Entry *pvt.Entry // entry; nil if the table has no entry for this query
}

// Run evaluates all queries of a batch in order
func Run(tab pvt.Table, b *Batch) (res []*Result) {
	res = make([]*Result, len(b.Queries))
	for i, q := range b.Queries {
		e, ok := q.Query.Eval(tab)
		if !ok {
			io.Pforan("%s: no entry\n", q.Label)
			e = nil
		}
		res[i] = &Result{Label: q.Label, Query: q.Query, Entry: e}
	}
	return
}

// FluidModel builds the column model of a batch
func (o *Batch) FluidModel(tab pvt.Table) (*fluid.Model, error) {
	if o.Column == nil {
		return nil, fmt.Errorf("batch %q has no column data", o.Key)
	}
	c := o.Column
	var mdl fluid.Model
	if err := mdl.FromTable(tab, c.T, c.P0, c.H, c.Grav); err != nil {
		return nil, fmt.Errorf("column: %w", err)
	}
	return &mdl, nil
}
