// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqSlice(t *testing.T, name string, expect, got []float64) {
	t.Helper()
	if len(expect) != len(got) {
		t.Errorf("%s: want %d values, got %d", name, len(expect), len(got))
		return
	}
	for i := range expect {
		if !aeq(expect[i], got[i]) {
			t.Errorf("%s[%d]: want %v, got %v", name, i, expect[i], got[i])
		}
	}
}
