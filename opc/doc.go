// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opc reads CSV exports from an optical particle sizer (such
// as the TSI 3330) and derives particle size distribution quantities
// from the raw per-bin counts.
//
// An export consists of a metadata header of "key,value" lines
// followed by a tabular section. The tabular section begins at the
// first line that starts with a comma; that line names the columns.
// Header keys beginning with "Bin" give the lower diameter boundary
// of each size bin in microns, in bin order.
//
// A Record is built eagerly by Load and is read-only thereafter:
//
//	rec, err := opc.Load("data", "123")
//	if err != nil {
//		...
//	}
//	fmt.Println(rec.TotalCount(), rec.TotalVolume())
//
// Volumes are in femtoliters when diameters are in microns.
package opc // import "github.com/aclements/go-opsizer/opc"
