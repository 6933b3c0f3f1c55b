// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// minimalExport is the smallest well-formed export: two declared
// boundaries and one data row.
const minimalExport = "Bin1,0.3\nBin2,0.5\n,Elapsed Time [s],B1,B2\n0,5,10\n"

// sampleExport resembles an instrument export: assorted metadata,
// four declared boundaries, and three samples with time in column 0.
const sampleExport = `Instrument Name,Optical Particle Sizer
Model Number,3330
Serial Number,3330123
Test Start Time,10:00:00
Bin 1,0.3
Bin 2,0.5
Bin 3,1.0
Bin 4,2.5
Notes
,Bin 1,Bin 2,Bin 3,Bin 4
0,5,10,3,1
1,2,4,0,0
2,7,1,1,2
`

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadExport(t *testing.T, content string) *Record {
	t.Helper()
	dir := t.TempDir()
	writeExport(t, dir, "sample123.csv", content)
	rec, err := Load(dir, "123")
	require.NoError(t, err)
	return rec
}
