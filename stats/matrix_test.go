// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestReductions(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		5, 10,
		1, 2,
		0, 6,
	})

	aeqSlice(t, "ColumnSums", []float64{6, 18}, ColumnSums(m))
	aeqSlice(t, "ColumnMeans", []float64{2, 6}, ColumnMeans(m))
	aeqSlice(t, "RowSums", []float64{15, 3, 6}, RowSums(m))
	aeqSlice(t, "Column", []float64{10, 2, 6}, Column(m, 1))
	if got := Total(m); got != 24 {
		t.Errorf("Total: want 24, got %v", got)
	}
}

func TestColumnIsCopy(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	col := Column(m, 0)
	col[0] = 100
	if m.At(0, 0) != 1 {
		t.Errorf("Column aliased the matrix")
	}
}
