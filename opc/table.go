// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind is the inferred type of a table column.
type Kind int

const (
	// Int columns hold only integers and have no missing cells.
	Int Kind = iota
	// Float columns hold numbers. Missing cells are NaN.
	Float
	// String columns hold at least one non-numeric cell.
	String
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Column is one named column of a Table.
type Column struct {
	Name string
	Kind Kind

	// Values holds the numeric value of each cell. For String
	// columns every value is NaN.
	Values []float64

	// Text holds the raw text of each cell.
	Text []string
}

func (c Column) clone() Column {
	c.Values = append([]float64(nil), c.Values...)
	c.Text = append([]string(nil), c.Text...)
	return c
}

// Table is the tabular section of an export, stored by column.
type Table struct {
	cols  []Column
	nrows int
}

// ParseTable reads the tabular section from r. Lines before the first
// line that begins with a comma are skipped. That line names the
// columns and every following line is a data row.
//
// Rows shorter than the column row are padded with missing cells.
// Rows longer than it, or text that is not valid CSV, are errors.
func ParseTable(r io.Reader) (*Table, error) {
	var body strings.Builder
	started := false
	sc := newLineScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !started {
			if !strings.HasPrefix(line, delim) {
				continue
			}
			started = true
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if !started {
		return nil, fmt.Errorf("%w: no line begins with %q", ErrMalformedBody, delim)
	}

	cr := csv.NewReader(strings.NewReader(body.String()))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return newTable(records)
}

func newTable(records [][]string) (*Table, error) {
	names := records[0]
	rows := records[1:]

	t := &Table{cols: make([]Column, len(names)), nrows: len(rows)}
	for j, name := range names {
		t.cols[j] = Column{Name: strings.TrimSpace(name), Text: make([]string, len(rows))}
	}
	for i, row := range rows {
		if len(row) > len(names) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want at most %d", ErrMalformedBody, i+1, len(row), len(names))
		}
		for j, cell := range row {
			t.cols[j].Text[i] = strings.TrimSpace(cell)
		}
	}
	for j := range t.cols {
		inferColumn(&t.cols[j])
	}
	return t, nil
}

// inferColumn sets c.Kind and c.Values from c.Text. An integer column
// with a missing cell is widened to Float so the cell can be NaN.
func inferColumn(c *Column) {
	c.Kind = Int
	c.Values = make([]float64, len(c.Text))
	for i, s := range c.Text {
		if s == "" {
			c.Values[i] = math.NaN()
			if c.Kind == Int {
				c.Kind = Float
			}
			continue
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			c.Values[i] = float64(n)
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.Kind = String
			break
		}
		c.Values[i] = v
		c.Kind = Float
	}
	if c.Kind == String {
		for i := range c.Values {
			c.Values[i] = math.NaN()
		}
	}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return t.nrows
}

// NumColumns returns the number of columns, including the time column.
func (t *Table) NumColumns() int {
	return len(t.cols)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for j, c := range t.cols {
		names[j] = c.Name
	}
	return names
}

// Column returns a copy of column j.
func (t *Table) Column(j int) Column {
	return t.cols[j].clone()
}

// ColumnByName returns a copy of the first column called name.
func (t *Table) ColumnByName(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.Name == name {
			return c.clone(), true
		}
	}
	return Column{}, false
}

// Row returns the numeric values of row i. Cells of String columns
// are NaN.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.cols))
	for j, c := range t.cols {
		row[j] = c.Values[i]
	}
	return row
}
