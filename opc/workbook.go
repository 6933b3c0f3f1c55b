// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

// Workbook sheet names.
const (
	SheetHeader  = "Header"
	SheetBins    = "Bins"
	SheetCounts  = "Counts"
	SheetVolumes = "Volumes"
)

var binColumns = []interface{}{
	"Bin", "Lower [um]", "Upper [um]", "Mean Diameter [um]", "dlogD",
	"Bin Volume [fL]", "Sum Count", "Mean Count", "Sum Volume [fL]", "Mean Volume [fL]",
}

// WriteWorkbook writes r to w as an XLSX workbook with four sheets:
// the header key/value pairs, one row of derived quantities per bin,
// and the counts and volumes time series.
func (r *Record) WriteWorkbook(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetHeader); err != nil {
		return err
	}
	for _, name := range []string{SheetBins, SheetCounts, SheetVolumes} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	rows := make([][]interface{}, 0, r.header.Len())
	for _, k := range r.header.keys {
		rows = append(rows, []interface{}{k, r.header.values[k]})
	}
	if err := writeRows(f, SheetHeader, rows); err != nil {
		return err
	}

	rows = [][]interface{}{binColumns}
	for b := range r.means {
		rows = append(rows, []interface{}{
			b + 1, r.bounds[b], r.bounds[b+1], r.means[b], r.dlogD[b],
			r.binVolumes[b], cell(r.sumCounts[b]), cell(r.meanCounts[b]),
			cell(r.sumVolumes[b]), cell(r.meanVolumes[b]),
		})
	}
	if err := writeRows(f, SheetBins, rows); err != nil {
		return err
	}

	if err := writeRows(f, SheetCounts, r.seriesRows(r.counts)); err != nil {
		return err
	}
	if err := writeRows(f, SheetVolumes, r.seriesRows(r.volumes)); err != nil {
		return err
	}
	return f.Write(w)
}

// seriesRows lays out a time × bin matrix with a time column and a
// title row.
func (r *Record) seriesRows(m *mat.Dense) [][]interface{} {
	title := []interface{}{TimeColumn}
	for b := range r.means {
		title = append(title, fmt.Sprintf("Bin %d", b+1))
	}
	rows := [][]interface{}{title}
	for t, ts := range r.timePoints {
		row := []interface{}{cell(ts)}
		for _, v := range m.RawRowView(t) {
			row = append(row, cell(v))
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	return nil
}

// cell maps missing values to empty cells.
func cell(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
