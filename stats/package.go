// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the sums and means used to summarize
// particle size distributions: weighted samples and reductions over
// the rows and columns of gonum matrices.
package stats // import "github.com/aclements/go-opsizer/stats"

import "math"

var nan = math.NaN()
