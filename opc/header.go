// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const delim = ","

// maxLine bounds the length of a single line in an export.
const maxLine = 1 << 20

// Header is the metadata that precedes the tabular section of an
// export. It maps keys to values and remembers the order in which
// keys first appeared.
type Header struct {
	keys   []string
	values map[string]string
}

// ParseHeader reads header lines from r until the first line that
// begins with a comma. Each line containing a comma is split at its
// first comma into a trimmed key and value; other lines are skipped.
// If a key repeats, the later value wins but the key keeps its
// original position.
func ParseHeader(r io.Reader) (*Header, error) {
	h := &Header{values: make(map[string]string)}
	sc := newLineScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, delim) {
			break
		}
		key, value, ok := strings.Cut(line, delim)
		if !ok {
			continue
		}
		h.set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	return h, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return sc
}

func (h *Header) set(key, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value of key and whether it was present.
func (h *Header) Get(key string) (string, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (h *Header) Len() int {
	return len(h.keys)
}

// Keys returns the keys in order of first appearance.
func (h *Header) Keys() []string {
	return append([]string(nil), h.keys...)
}

// Map returns a copy of the header as a map.
func (h *Header) Map() map[string]string {
	m := make(map[string]string, len(h.values))
	for k, v := range h.values {
		m[k] = v
	}
	return m
}

// WithPrefix returns the values of keys that begin with prefix, in
// order of first appearance. The match is case-sensitive.
func (h *Header) WithPrefix(prefix string) []string {
	var vals []string
	for _, k := range h.keys {
		if strings.HasPrefix(k, prefix) {
			vals = append(vals, h.values[k])
		}
	}
	return vals
}
