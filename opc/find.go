// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const csvExt = ".csv"

// FindFile returns the path of the first entry in dir whose name ends
// with suffix+".csv" or is exactly suffix. A trailing ".csv" on
// suffix is ignored for the first form, so "123" and "123.csv" find
// the same file.
//
// dir is not searched recursively. If several entries match, the
// first in lexical order wins; callers should keep suffixes unique.
func FindFile(dir, suffix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	stem := strings.TrimSuffix(suffix, csvExt)
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, stem+csvExt) || name == suffix {
			return filepath.Join(dir, name), nil
		}
	}
	return "", fmt.Errorf("%w ending with %s%s in directory %s", ErrFileNotFound, stem, csvExt, dir)
}
