// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-opsizer/stats"
)

// TimeColumn is the name of the elapsed-time column.
const TimeColumn = "Elapsed Time [s]"

// Loader holds options for loading a Record.
//
// The zero value of Loader is the default configuration.
type Loader struct {
	// OversizeCutoff is the boundary appended after the
	// header's bin boundaries. If zero, DefaultOversizeCutoff is
	// used.
	OversizeCutoff float64

	// Logger, if non-nil, receives a debug record for each
	// loading stage.
	Logger *slog.Logger
}

// Record is a loaded export together with its derived quantities.
// A Record is immutable; methods that return slices or matrices
// return copies.
type Record struct {
	path   string
	header *Header
	table  *Table

	bounds     []float64
	means      []float64
	dlogD      []float64
	binVolumes []float64
	timePoints []float64

	counts  *mat.Dense
	volumes *mat.Dense

	sumCounts, meanCounts   []float64
	sumVolumes, meanVolumes []float64
	totalCount, totalVolume float64
}

// Load loads the export in dir whose name ends with suffix using the
// default Loader.
func Load(dir, suffix string) (*Record, error) {
	return Loader{}.Load(dir, suffix)
}

// Load locates the export in dir whose name ends with suffix (see
// FindFile) and loads it.
func (l Loader) Load(dir, suffix string) (*Record, error) {
	path, err := FindFile(dir, suffix)
	if err != nil {
		return nil, err
	}
	l.logger().Debug("located export", "dir", dir, "suffix", suffix, "path", path)
	return l.LoadFile(path)
}

// LoadFile loads the export at path.
func (l Loader) LoadFile(path string) (*Record, error) {
	log := l.logger().With("path", path)
	cutoff := l.OversizeCutoff
	if cutoff == 0 {
		cutoff = DefaultOversizeCutoff
	}

	r := &Record{path: path}
	var err error
	if r.header, err = readFile(path, ParseHeader); err != nil {
		return nil, fmt.Errorf("%s: header: %w", path, err)
	}
	log.Debug("parsed header", "keys", r.header.Len())

	// Bins depend only on the header, so a header without bins is
	// reported ahead of any problem in the body.
	if r.bounds, err = BinBoundaries(r.header, cutoff); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if r.means, err = MeanDiameters(r.bounds); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if r.dlogD, err = DlogD(r.bounds); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.binVolumes = BinVolumes(r.means)
	log.Debug("derived bins", "bins", len(r.means), "cutoff", cutoff)

	if r.table, err = readFile(path, ParseTable); err != nil {
		return nil, fmt.Errorf("%s: body: %w", path, err)
	}
	log.Debug("parsed body", "rows", r.table.NumRows(), "columns", r.table.NumColumns())

	if r.counts, err = Counts(r.table, len(r.means)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.timePoints = r.timeColumn().Values

	rows, cols := r.counts.Dims()
	r.volumes = mat.NewDense(rows, cols, nil)
	r.volumes.Apply(func(_, b int, v float64) float64 {
		return v * r.binVolumes[b]
	}, r.counts)

	r.sumCounts = stats.ColumnSums(r.counts)
	r.meanCounts = stats.ColumnMeans(r.counts)
	r.sumVolumes = stats.ColumnSums(r.volumes)
	r.meanVolumes = stats.ColumnMeans(r.volumes)
	r.totalCount = stats.Total(r.counts)
	r.totalVolume = stats.Total(r.volumes)
	log.Debug("loaded record", "timePoints", rows, "totalCount", r.totalCount, "totalVolume", r.totalVolume)
	return r, nil
}

func (l Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

// readFile opens path and passes it to parse.
func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return parse(f)
}

// timeColumn returns the elapsed-time column, or column 0 if the
// table has none by that name.
func (r *Record) timeColumn() Column {
	if c, ok := r.table.ColumnByName(TimeColumn); ok {
		return c
	}
	return r.table.Column(0)
}

func clone(xs []float64) []float64 {
	return append([]float64(nil), xs...)
}

// Path returns the path the Record was loaded from.
func (r *Record) Path() string { return r.path }

// Header returns the export's metadata header.
func (r *Record) Header() *Header { return r.header }

// Table returns the export's tabular section.
func (r *Record) Table() *Table { return r.table }

// NumBins returns the number of size bins.
func (r *Record) NumBins() int { return len(r.means) }

// NumTimePoints returns the number of time samples.
func (r *Record) NumTimePoints() int { return len(r.timePoints) }

// BinBoundaries returns the bin boundaries, including the oversize
// cutoff. It has NumBins()+1 elements.
func (r *Record) BinBoundaries() []float64 { return clone(r.bounds) }

// MeanDiameters returns the midpoint diameter of each bin.
func (r *Record) MeanDiameters() []float64 { return clone(r.means) }

// DlogD returns the base-10 logarithmic width of each bin.
func (r *Record) DlogD() []float64 { return clone(r.dlogD) }

// BinVolumes returns the volume of one particle of each bin's mean
// diameter.
func (r *Record) BinVolumes() []float64 { return clone(r.binVolumes) }

// TimePoints returns the elapsed time of each sample.
func (r *Record) TimePoints() []float64 { return clone(r.timePoints) }

// Counts returns the time × bin particle counts.
func (r *Record) Counts() *mat.Dense { return mat.DenseCopyOf(r.counts) }

// Volumes returns the time × bin particle volumes.
func (r *Record) Volumes() *mat.Dense { return mat.DenseCopyOf(r.volumes) }

// SumCounts returns the count of each bin summed over time.
func (r *Record) SumCounts() []float64 { return clone(r.sumCounts) }

// MeanCounts returns the count of each bin averaged over time.
func (r *Record) MeanCounts() []float64 { return clone(r.meanCounts) }

// SumVolumes returns the volume of each bin summed over time.
func (r *Record) SumVolumes() []float64 { return clone(r.sumVolumes) }

// MeanVolumes returns the volume of each bin averaged over time.
func (r *Record) MeanVolumes() []float64 { return clone(r.meanVolumes) }

// TotalCount returns the particle count over all times and bins.
func (r *Record) TotalCount() float64 { return r.totalCount }

// TotalVolume returns the particle volume over all times and bins.
func (r *Record) TotalVolume() float64 { return r.totalVolume }
