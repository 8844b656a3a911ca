// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

import "github.com/wasmdecompile/wasmdecompile/wasm"

// The sign-extension proposal (spec.md §1's scope includes it alongside
// the MVP): sign-extend a narrower value already held in an i32/i64.

var (
	I32Extend8S  = newOp(0xc0, "i32.extend8_s", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeI32, CategoryUnary)
	I32Extend16S = newOp(0xc1, "i32.extend16_s", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeI32, CategoryUnary)
	I64Extend8S  = newOp(0xc2, "i64.extend8_s", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeI64, CategoryUnary)
	I64Extend16S = newOp(0xc3, "i64.extend16_s", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeI64, CategoryUnary)
	I64Extend32S = newOp(0xc4, "i64.extend32_s", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeI64, CategoryUnary)
)
