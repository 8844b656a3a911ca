// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leb128

import "io"

// WriteVarUint32 writes v to w as a LEB128 encoded unsigned integer and
// returns the number of bytes written.
func WriteVarUint32(w io.Writer, v uint32) (int, error) {
	buf := make([]byte, 0, 5)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if v == 0 {
			break
		}
	}
	return w.Write(buf)
}

// WriteVarint32 writes v to w as a LEB128 encoded signed integer.
func WriteVarint32(w io.Writer, v int32) (int, error) {
	return WriteVarint64(w, int64(v))
}

// WriteVarint64 writes v to w as a LEB128 encoded signed integer and
// returns the number of bytes written.
func WriteVarint64(w io.Writer, v int64) (int, error) {
	buf := make([]byte, 0, 10)
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		buf = append(buf, b)
	}
	return w.Write(buf)
}
