// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// opcstat loads an optical particle sizer export and describes its
// particle size distribution.
//
// Usage:
//
//	opcstat --dir data --suffix 123 [--cutoff 16.6] [--xlsx out.xlsx] [--verbose]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/go-opsizer/opc"
)

type options struct {
	dir     string
	suffix  string
	cutoff  float64
	xlsx    string
	verbose bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "opcstat",
		Short: "Describe the particle size distribution in an optical particle sizer export",
		Long: `opcstat finds the export in --dir whose name ends with --suffix,
derives its bin geometry, counts and volumes, and prints a summary.

With --xlsx it also writes the record to a workbook.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dir, "dir", ".", "directory containing the export")
	flags.StringVar(&opts.suffix, "suffix", "", "file name suffix identifying the export")
	flags.Float64Var(&opts.cutoff, "cutoff", opc.DefaultOversizeCutoff, "upper boundary of the largest bin, in microns (must be positive)")
	flags.StringVar(&opts.xlsx, "xlsx", "", "also write the record to this workbook")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each loading stage")
	_ = cmd.MarkFlagRequired("suffix")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if !(opts.cutoff > 0) {
		return fmt.Errorf("--cutoff must be positive, got %v", opts.cutoff)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	loader := opc.Loader{OversizeCutoff: opts.cutoff, Logger: logger}
	rec, err := loader.Load(opts.dir, opts.suffix)
	if err != nil {
		return err
	}

	if err := printSummary(cmd.OutOrStdout(), rec); err != nil {
		return err
	}

	if opts.xlsx != "" {
		if err := writeWorkbook(opts.xlsx, rec); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		logger.Info("wrote workbook", "path", opts.xlsx)
	}
	return nil
}

func writeWorkbook(path string, rec *opc.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rec.WriteWorkbook(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
