// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

import "github.com/wasmdecompile/wasmdecompile/wasm"

// Conversions between numeric types. Result signedness (e.g. the _s/_u
// suffix on truncations) only affects the runtime semantics, never the
// IR result type, per spec.md §4.1's tie-break rule: the integer
// conversions always produce the integer type named in the mnemonic.

var (
	I32WrapI64 = newOp(0xa7, "i32.wrap_i64", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeI32, CategoryUnary)

	I32TruncF32S = newOp(0xa8, "i32.trunc_f32_s", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI32, CategoryUnary)
	I32TruncF32U = newOp(0xa9, "i32.trunc_f32_u", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI32, CategoryUnary)
	I32TruncF64S = newOp(0xaa, "i32.trunc_f64_s", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI32, CategoryUnary)
	I32TruncF64U = newOp(0xab, "i32.trunc_f64_u", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI32, CategoryUnary)

	I64ExtendI32S = newOp(0xac, "i64.extend_i32_s", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeI64, CategoryUnary)
	I64ExtendI32U = newOp(0xad, "i64.extend_i32_u", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeI64, CategoryUnary)

	I64TruncF32S = newOp(0xae, "i64.trunc_f32_s", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI64, CategoryUnary)
	I64TruncF32U = newOp(0xaf, "i64.trunc_f32_u", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI64, CategoryUnary)
	I64TruncF64S = newOp(0xb0, "i64.trunc_f64_s", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI64, CategoryUnary)
	I64TruncF64U = newOp(0xb1, "i64.trunc_f64_u", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI64, CategoryUnary)

	F32ConvertI32S = newOp(0xb2, "f32.convert_i32_s", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeF32, CategoryUnary)
	F32ConvertI32U = newOp(0xb3, "f32.convert_i32_u", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeF32, CategoryUnary)
	F32ConvertI64S = newOp(0xb4, "f32.convert_i64_s", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeF32, CategoryUnary)
	F32ConvertI64U = newOp(0xb5, "f32.convert_i64_u", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeF32, CategoryUnary)
	F32DemoteF64   = newOp(0xb6, "f32.demote_f64", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeF32, CategoryUnary)

	F64ConvertI32S = newOp(0xb7, "f64.convert_i32_s", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeF64, CategoryUnary)
	F64ConvertI32U = newOp(0xb8, "f64.convert_i32_u", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeF64, CategoryUnary)
	F64ConvertI64S = newOp(0xb9, "f64.convert_i64_s", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeF64, CategoryUnary)
	F64ConvertI64U = newOp(0xba, "f64.convert_i64_u", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeF64, CategoryUnary)
	F64PromoteF32  = newOp(0xbb, "f64.promote_f32", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeF64, CategoryUnary)

	I32ReinterpretF32 = newOp(0xbc, "i32.reinterpret_f32", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI32, CategoryUnary)
	I64ReinterpretF64 = newOp(0xbd, "i64.reinterpret_f64", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI64, CategoryUnary)
	F32ReinterpretI32 = newOp(0xbe, "f32.reinterpret_i32", []wasm.ValueType{wasm.ValueTypeI32}, wasm.ValueTypeF32, CategoryUnary)
	F64ReinterpretI64 = newOp(0xbf, "f64.reinterpret_i64", []wasm.ValueType{wasm.ValueTypeI64}, wasm.ValueTypeF64, CategoryUnary)
)
