// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/aclements/go-opsizer/opc"
)

var heading = color.New(color.Bold)

// printSummary writes the totals of rec followed by one line per bin.
func printSummary(w io.Writer, rec *opc.Record) error {
	heading.Fprintln(w, rec.Path())
	fmt.Fprintf(w, "N %d  bins %d  total count %.6g  total volume %.6g fL", rec.NumTimePoints(), rec.NumBins(), rec.TotalCount(), rec.TotalVolume())
	if d := rec.CountMeanDiameter(); !math.IsNaN(d) {
		fmt.Fprintf(w, "  mean diameter %.4g um", d)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	bounds := rec.BinBoundaries()
	means := rec.MeanDiameters()
	sumCounts, meanCounts := rec.SumCounts(), rec.MeanCounts()
	sumVolumes := rec.SumVolumes()
	dist := rec.SizeDistribution()

	// The table is aligned before the heading row is colored so
	// color escapes do not count toward cell widths.
	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "bin\tlower um\tupper um\tmean um\tcount\tmean count\tdN/dlogD\tvolume fL\t")
	for b := range means {
		fmt.Fprintf(tw, "%d\t%.4g\t%.4g\t%.4g\t%.6g\t%.6g\t%.6g\t%.6g\t\n",
			b+1, bounds[b], bounds[b+1], means[b], sumCounts[b], meanCounts[b], dist[b], sumVolumes[b])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	title, rows, _ := strings.Cut(table.String(), "\n")
	heading.Fprintln(w, title)
	_, err := io.WriteString(w, rows)
	return err
}
