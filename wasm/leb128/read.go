// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package leb128 provides functions for reading and writing integer values
// encoded in the Little Endian Base 128 (LEB128) format:
// https://en.wikipedia.org/wiki/LEB128
package leb128

import (
	"io"
)

// ReadVarUint32 reads a LEB128 encoded unsigned 32-bit integer from r, and
// returns the integer value, and the error (if any).
func ReadVarUint32(r io.Reader) (uint32, error) {
	v, _, err := ReadVarUint32Size(r)
	return v, err
}

// ReadVarUint32Size is like ReadVarUint32 but also returns the number of
// bytes consumed from r, which callers need when a section's payload length
// must be adjusted for a variable-length prefix already read.
func ReadVarUint32Size(r io.Reader) (uint32, int, error) {
	v, n, err := readVarUint(r, 32)
	return uint32(v), n, err
}

// ReadVarint32 reads a LEB128 encoded signed 32-bit integer from r, and
// returns the integer value, and the error (if any).
func ReadVarint32(r io.Reader) (int32, error) {
	n, err := ReadVarint64(r)
	return int32(n), err
}

// ReadVarint64 reads a LEB128 encoded signed 64-bit integer from r, and
// returns the integer value, and the error (if any).
func ReadVarint64(r io.Reader) (int64, error) {
	v, _, err := readVarint(r, 64)
	return v, err
}

func readVarUint(r io.Reader, n uint) (uint64, int, error) {
	var (
		b     = make([]byte, 1)
		shift uint
		res   uint64
		read  int
	)
	for {
		if _, err := io.ReadFull(r, b); err != nil {
			return res, read, err
		}
		read++

		cur := uint64(b[0])
		res |= (cur & 0x7f) << shift
		if cur&0x80 == 0 {
			return res, read, nil
		}
		shift += 7
	}
}

func readVarint(r io.Reader, n uint) (int64, int, error) {
	var (
		b     = make([]byte, 1)
		shift uint
		sign  int64 = -1
		res   int64
		read  int
	)

	for {
		if _, err := io.ReadFull(r, b); err != nil {
			return res, read, err
		}
		read++

		cur := int64(b[0])
		res |= (cur & 0x7f) << shift
		shift += 7
		sign <<= 7
		if cur&0x80 == 0 {
			break
		}
	}

	if shift < uint(n) && ((sign>>1)&res) != 0 {
		res |= sign
	}
	return res, read, nil
}
