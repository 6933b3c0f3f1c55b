// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-opsizer/stats"
)

// Defaults for BarPlotWidths.
const (
	DefaultLogBase  = 10
	DefaultBarWidth = 0.25
)

// CountOverTime returns the count summed across all bins at each
// time point.
func (r *Record) CountOverTime() []float64 {
	return stats.RowSums(r.counts)
}

// BinCountOverTime returns the count of a single bin at each time
// point.
func (r *Record) BinCountOverTime(bin int) ([]float64, error) {
	return r.binSeries(r.counts, bin)
}

// VolumeOverTime returns the volume summed across all bins at each
// time point.
func (r *Record) VolumeOverTime() []float64 {
	return stats.RowSums(r.volumes)
}

// BinVolumeOverTime returns the volume of a single bin at each time
// point.
func (r *Record) BinVolumeOverTime(bin int) ([]float64, error) {
	return r.binSeries(r.volumes, bin)
}

func (r *Record) binSeries(m *mat.Dense, bin int) ([]float64, error) {
	if bin < 0 || bin >= r.NumBins() {
		return nil, fmt.Errorf("%w: bin must be between 0 and %d, got %d", ErrIndexOutOfRange, r.NumBins()-1, bin)
	}
	return stats.Column(m, bin), nil
}

// BarPlotWidths returns, for each mean diameter d, the linear width
// of a bar centered at d that spans barWidth on a logarithmic axis
// of the given base, scaled by barWidth:
//
//	barWidth * (base^(log_base(d)+barWidth/2) - base^(log_base(d)-barWidth/2))
//
// It panics if logBase is not positive or is 1.
func (r *Record) BarPlotWidths(logBase, barWidth float64) []float64 {
	if logBase <= 0 || logBase == 1 {
		panic(fmt.Sprint("invalid log base ", logBase))
	}
	lb := math.Log(logBase)
	widths := make([]float64, len(r.means))
	for i, d := range r.means {
		x := math.Log(d) / lb
		widths[i] = barWidth * (math.Pow(logBase, x+barWidth/2) - math.Pow(logBase, x-barWidth/2))
	}
	return widths
}

// SizeDistribution returns dN/dlogD: the time-averaged count of each
// bin normalized by the bin's logarithmic width.
func (r *Record) SizeDistribution() []float64 {
	dist := make([]float64, len(r.meanCounts))
	for i, n := range r.meanCounts {
		dist[i] = n / r.dlogD[i]
	}
	return dist
}

// CountMeanDiameter returns the mean particle diameter, weighting
// each bin's mean diameter by its total count. It is NaN if no
// particles were counted.
func (r *Record) CountMeanDiameter() float64 {
	return stats.Sample{Xs: r.means, Weights: r.sumCounts}.Mean()
}
