// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

import "github.com/wasmdecompile/wasmdecompile/wasm"

// The non-trapping-float-to-int (saturating truncation) proposal
// (spec.md §1's scope includes it alongside the MVP): each operator is
// encoded as the prefix byte 0xFC followed by one of these sub-opcodes.

var (
	I32TruncSatF32S = newSatOp(0x00, "i32.trunc_sat_f32_s", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI32)
	I32TruncSatF32U = newSatOp(0x01, "i32.trunc_sat_f32_u", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI32)
	I32TruncSatF64S = newSatOp(0x02, "i32.trunc_sat_f64_s", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI32)
	I32TruncSatF64U = newSatOp(0x03, "i32.trunc_sat_f64_u", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI32)
	I64TruncSatF32S = newSatOp(0x04, "i64.trunc_sat_f32_s", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI64)
	I64TruncSatF32U = newSatOp(0x05, "i64.trunc_sat_f32_u", []wasm.ValueType{wasm.ValueTypeF32}, wasm.ValueTypeI64)
	I64TruncSatF64S = newSatOp(0x06, "i64.trunc_sat_f64_s", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI64)
	I64TruncSatF64U = newSatOp(0x07, "i64.trunc_sat_f64_u", []wasm.ValueType{wasm.ValueTypeF64}, wasm.ValueTypeI64)
)
