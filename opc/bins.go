// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// BinKeyPrefix marks header keys whose values are bin boundaries.
const BinKeyPrefix = "Bin"

// DefaultOversizeCutoff is the upper boundary, in microns, used to
// close the largest bin. The instrument does not report one.
const DefaultOversizeCutoff = 16.6

// BinBoundaries returns the bin boundaries declared in h, in order of
// appearance, followed by oversizeCutoff.
func BinBoundaries(h *Header, oversizeCutoff float64) ([]float64, error) {
	vals := h.WithPrefix(BinKeyPrefix)
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: no %q keys found", ErrMalformedHeader, BinKeyPrefix)
	}

	bounds := make([]float64, 0, len(vals)+1)
	for _, s := range vals {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bin boundary %q: %v", ErrMalformedHeader, s, err)
		}
		bounds = append(bounds, v)
	}
	bounds = append(bounds, oversizeCutoff)
	if len(bounds) < 2 {
		return nil, ErrInsufficientBoundaries
	}
	return bounds, nil
}

// MeanDiameters returns the midpoint of each bin defined by bounds.
func MeanDiameters(bounds []float64) ([]float64, error) {
	if len(bounds) < 2 {
		return nil, ErrInsufficientBoundaries
	}
	means := make([]float64, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		means[i-1] = (bounds[i] + bounds[i-1]) / 2
	}
	return means, nil
}

// DlogD returns the base-10 logarithmic width of each bin defined by
// bounds.
func DlogD(bounds []float64) ([]float64, error) {
	if len(bounds) < 2 {
		return nil, ErrInsufficientBoundaries
	}
	widths := make([]float64, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		widths[i-1] = math.Log10(bounds[i]) - math.Log10(bounds[i-1])
	}
	return widths, nil
}

// BinVolumes returns the volume of a sphere of each diameter.
func BinVolumes(diameters []float64) []float64 {
	vols := make([]float64, len(diameters))
	for i, d := range diameters {
		vols[i] = 4.0 / 3.0 * math.Pi * math.Pow(d/2, 3)
	}
	return vols
}

// Counts returns the numBins bin columns of t as a time × bin matrix.
// Column 0 of t is the time column; bins occupy columns 1 through
// numBins.
func Counts(t *Table, numBins int) (*mat.Dense, error) {
	if numBins < 1 {
		return nil, ErrInsufficientBoundaries
	}
	if numBins+1 > t.NumColumns() {
		return nil, fmt.Errorf("%w: %d bins, %d columns", ErrColumnMismatch, numBins, t.NumColumns())
	}
	if t.NumRows() == 0 {
		return nil, ErrEmptyAggregate
	}

	counts := mat.NewDense(t.NumRows(), numBins, nil)
	for b := 0; b < numBins; b++ {
		col := t.cols[b+1]
		if col.Kind == String {
			return nil, fmt.Errorf("%w: bin column %q is not numeric", ErrMalformedBody, col.Name)
		}
		counts.SetCol(b, col.Values)
	}
	return counts, nil
}
