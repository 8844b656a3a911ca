// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package readpos provides an io.Reader wrapper that tracks the current
// read offset, used by the section reader to report byte-accurate error
// locations.
package readpos

import "io"

// ReadPos wraps R and tracks the cumulative number of bytes read from it
// in CurPos.
type ReadPos struct {
	R      io.Reader
	CurPos int64
}

// Read implements io.Reader.
func (r *ReadPos) Read(p []byte) (int, error) {
	n, err := r.R.Read(p)
	r.CurPos += int64(n)
	return n, err
}
