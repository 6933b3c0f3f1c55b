// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import "errors"

// Errors returned by this package wrap one of these values and can
// be tested with errors.Is.
var (
	ErrFileNotFound           = errors.New("no matching file")
	ErrMalformedHeader        = errors.New("malformed header")
	ErrMalformedBody          = errors.New("malformed body")
	ErrInsufficientBoundaries = errors.New("need at least 2 bin boundaries")
	ErrColumnMismatch         = errors.New("number of bins exceeds the available data columns")
	ErrIndexOutOfRange        = errors.New("bin index out of range")
	ErrEmptyAggregate         = errors.New("no data rows")
)
