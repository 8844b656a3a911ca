// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leb128

import (
	"bytes"
	"fmt"
	"testing"
)

func TestWriteVarUint32(t *testing.T) {
	for _, c := range casesUint {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			buf := new(bytes.Buffer)
			if _, err := WriteVarUint32(buf, c.v); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf.Bytes(), c.b) {
				t.Fatalf("unexpected output: %x, want %x", buf.Bytes(), c.b)
			}
		})
	}
}

func TestWriteVarint64(t *testing.T) {
	for _, c := range casesInt {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			buf := new(bytes.Buffer)
			if _, err := WriteVarint64(buf, c.v); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf.Bytes(), c.b) {
				t.Fatalf("unexpected output: %x, want %x", buf.Bytes(), c.b)
			}
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, -64, 64, -65, 12345, -12345, 2147483647, -2147483648}
	for _, v := range values {
		buf := new(bytes.Buffer)
		if _, err := WriteVarint64(buf, v); err != nil {
			t.Fatal(err)
		}
		got, err := ReadVarint64(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Fatalf("round-trip mismatch: wrote %d, read back %d", v, got)
		}
	}
}
