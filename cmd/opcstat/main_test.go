// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-opsizer/opc"
)

const export = `Model Number,3330
Bin 1,0.3
Bin 2,0.5
,Bin 1,Bin 2
0,5,10
1,1,0
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeExport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run123.csv"), []byte(export), 0o644))
	return dir
}

func TestSummary(t *testing.T) {
	dir := writeExport(t)

	out, _, err := execute(t, "--dir", dir, "--suffix", "123")
	require.NoError(t, err)

	assert.Contains(t, out, "run123.csv")
	assert.Contains(t, out, "N 2  bins 2  total count 16")
	assert.Contains(t, out, "dN/dlogD")
	assert.Contains(t, out, "16.6")
}

func TestVerboseAndWorkbook(t *testing.T) {
	dir := writeExport(t)
	xlsx := filepath.Join(t.TempDir(), "run.xlsx")

	_, stderr, err := execute(t, "--dir", dir, "--suffix", "123.csv", "--cutoff", "20", "--xlsx", xlsx, "-v")
	require.NoError(t, err)

	assert.Contains(t, stderr, "parsed header")
	assert.Contains(t, stderr, "wrote workbook")
	assert.FileExists(t, xlsx)
}

func TestErrors(t *testing.T) {
	_, _, err := execute(t, "--dir", t.TempDir())
	assert.Error(t, err, "--suffix is required")

	_, _, err = execute(t, "--dir", t.TempDir(), "--suffix", "123")
	assert.ErrorIs(t, err, opc.ErrFileNotFound)

	dir := writeExport(t)
	for _, cutoff := range []string{"0", "-1"} {
		_, _, err = execute(t, "--dir", dir, "--suffix", "123", "--cutoff", cutoff)
		assert.ErrorContains(t, err, "--cutoff must be positive", cutoff)
	}
}

func TestColoredHeadingAligned(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	rec, err := opc.Load(writeExport(t), "123")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, rec))
	require.Contains(t, buf.String(), "\x1b[", "heading should be colored")

	ansi := regexp.MustCompile("\x1b\\[[0-9;]*m")
	lines := strings.Split(strings.TrimRight(ansi.ReplaceAllString(buf.String(), ""), "\n"), "\n")
	require.Len(t, lines, 3+1+rec.NumBins())
	title := lines[3]
	assert.True(t, strings.HasSuffix(strings.TrimRight(title, " "), "volume fL"))
	for _, row := range lines[4:] {
		assert.Equal(t, len(title), len(row), "row %q", row)
	}
}
