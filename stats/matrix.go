// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Column returns a copy of column j of m.
func Column(m mat.Matrix, j int) []float64 {
	return mat.Col(nil, j, m)
}

// ColumnSums returns the sum of each column of m. This reduces m
// along its rows, so for a time × bin grid it yields one value per
// bin.
func ColumnSums(m mat.Matrix) []float64 {
	_, c := m.Dims()
	sums := make([]float64, c)
	for j := range sums {
		sums[j] = floats.Sum(mat.Col(nil, j, m))
	}
	return sums
}

// ColumnMeans returns the arithmetic mean of each column of m.
func ColumnMeans(m mat.Matrix) []float64 {
	_, c := m.Dims()
	means := make([]float64, c)
	for j := range means {
		means[j] = Sample{Xs: mat.Col(nil, j, m)}.Mean()
	}
	return means
}

// RowSums returns the sum of each row of m.
func RowSums(m mat.Matrix) []float64 {
	r, _ := m.Dims()
	sums := make([]float64, r)
	for i := range sums {
		sums[i] = floats.Sum(mat.Row(nil, i, m))
	}
	return sums
}

// Total returns the sum of every element of m.
func Total(m mat.Matrix) float64 {
	return mat.Sum(m)
}
