// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leb128

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

var casesUint = []struct {
	v uint32
	b []byte
}{
	{b: []byte{0x08}, v: 8},
	{b: []byte{0x80, 0x7f}, v: 16256},
	{b: []byte{0x80, 0x80, 0x80, 0xfd, 0x07}, v: 2141192192},
}

func TestReadVarUint32(t *testing.T) {
	for _, c := range casesUint {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			n, err := ReadVarUint32(bytes.NewReader(c.b))
			if err != nil {
				t.Fatal(err)
			}
			if n != c.v {
				t.Fatalf("got = %d; want = %d", n, c.v)
			}
		})
	}
}

func TestReadVarUint32Err(t *testing.T) {
	_, err := ReadVarUint32(bytes.NewReader(nil))
	if got, want := err, io.EOF; got != want {
		t.Fatalf("got err=%v, want=%v", got, want)
	}
}

var casesInt = []struct {
	v int64
	b []byte
}{
	{b: []byte{0xff, 0x7e}, v: -129},
	{b: []byte{0xe4, 0x00}, v: 100},
	{b: []byte{0x80, 0x80, 0x80, 0xfd, 0x07}, v: 2141192192},
}

var varint32Cases = []struct {
	b []byte
	v int32
}{
	{[]byte{0x80, 0x80, 0x80, 0x80, 0x78}, -2147483648}, // int32 min
	{[]byte{0xff, 0xff, 0xff, 0xff, 0x07}, 2147483647},  // int32 max
	{[]byte{0x80, 0x40}, -8192},
	{[]byte{0x80, 0xc0, 0x00}, 8192},
	{[]byte{135, 0x01}, 135},
}

func TestReadVarint32(t *testing.T) {
	for _, c := range varint32Cases {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			n, err := ReadVarint32(bytes.NewReader(c.b))
			if err != nil {
				t.Fatal(err)
			}
			if n != c.v {
				t.Fatalf("got = %d; want = %d", n, c.v)
			}
		})
	}
}

func TestReadVarint32Err(t *testing.T) {
	_, err := ReadVarint32(bytes.NewReader(nil))
	if got, want := err, io.EOF; got != want {
		t.Fatalf("got err=%v, want=%v", got, want)
	}
}

func TestReadVarint64(t *testing.T) {
	for _, c := range casesInt {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			n, err := ReadVarint64(bytes.NewReader(c.b))
			if err != nil {
				t.Fatal(err)
			}
			if n != c.v {
				t.Fatalf("got = %d; want = %d", n, c.v)
			}
		})
	}
}

func TestReadVarUint32Size(t *testing.T) {
	v, n, err := ReadVarUint32Size(bytes.NewReader([]byte{0x80, 0x7f, 0xff}))
	if err != nil {
		t.Fatal(err)
	}
	if v != 16256 {
		t.Fatalf("got v=%d, want=16256", v)
	}
	if n != 2 {
		t.Fatalf("got n=%d, want=2 (bytes consumed)", n)
	}
}
