// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"github.com/wasmdecompile/wasmdecompile/ir"
	"github.com/wasmdecompile/wasmdecompile/wasm/operators"
)

// unaryOpFor maps the raw opcode byte of every CategoryUnary operator to
// the ir.UnaryOp variant it builds.
var unaryOpFor = map[byte]ir.UnaryOp{
	operators.I32Clz: ir.UnI32Clz, operators.I32Ctz: ir.UnI32Ctz, operators.I32Popcnt: ir.UnI32Popcnt,
	operators.I64Clz: ir.UnI64Clz, operators.I64Ctz: ir.UnI64Ctz, operators.I64Popcnt: ir.UnI64Popcnt,
	operators.F32Abs: ir.UnF32Abs, operators.F32Neg: ir.UnF32Neg, operators.F32Ceil: ir.UnF32Ceil,
	operators.F32Floor: ir.UnF32Floor, operators.F32Trunc: ir.UnF32Trunc, operators.F32Nearest: ir.UnF32Nearest,
	operators.F32Sqrt: ir.UnF32Sqrt,
	operators.F64Abs:  ir.UnF64Abs, operators.F64Neg: ir.UnF64Neg, operators.F64Ceil: ir.UnF64Ceil,
	operators.F64Floor: ir.UnF64Floor, operators.F64Trunc: ir.UnF64Trunc, operators.F64Nearest: ir.UnF64Nearest,
	operators.F64Sqrt: ir.UnF64Sqrt,
	operators.I32WrapI64: ir.UnI32WrapI64,
	operators.I32TruncF32S: ir.UnI32TruncF32S, operators.I32TruncF32U: ir.UnI32TruncF32U,
	operators.I32TruncF64S: ir.UnI32TruncF64S, operators.I32TruncF64U: ir.UnI32TruncF64U,
	operators.I64ExtendI32S: ir.UnI64ExtendI32S, operators.I64ExtendI32U: ir.UnI64ExtendI32U,
	operators.I64TruncF32S: ir.UnI64TruncF32S, operators.I64TruncF32U: ir.UnI64TruncF32U,
	operators.I64TruncF64S: ir.UnI64TruncF64S, operators.I64TruncF64U: ir.UnI64TruncF64U,
	operators.F32ConvertI32S: ir.UnF32ConvertI32S, operators.F32ConvertI32U: ir.UnF32ConvertI32U,
	operators.F32ConvertI64S: ir.UnF32ConvertI64S, operators.F32ConvertI64U: ir.UnF32ConvertI64U,
	operators.F32DemoteF64: ir.UnF32DemoteF64,
	operators.F64ConvertI32S: ir.UnF64ConvertI32S, operators.F64ConvertI32U: ir.UnF64ConvertI32U,
	operators.F64ConvertI64S: ir.UnF64ConvertI64S, operators.F64ConvertI64U: ir.UnF64ConvertI64U,
	operators.F64PromoteF32: ir.UnF64PromoteF32,
	operators.I32ReinterpretF32: ir.UnI32ReinterpretF32, operators.I64ReinterpretF64: ir.UnI64ReinterpretF64,
	operators.F32ReinterpretI32: ir.UnF32ReinterpretI32, operators.F64ReinterpretI64: ir.UnF64ReinterpretI64,
	operators.I32Extend8S: ir.UnI32Extend8S, operators.I32Extend16S: ir.UnI32Extend16S,
	operators.I64Extend8S: ir.UnI64Extend8S, operators.I64Extend16S: ir.UnI64Extend16S, operators.I64Extend32S: ir.UnI64Extend32S,
}

// compareOpFor maps CategoryCompare opcodes (i32.eqz aside, which is
// unary) to the ir.BinaryOp variant they build.
var compareOpFor = map[byte]ir.BinaryOp{
	operators.I32Eq: ir.BinI32Eq, operators.I32Ne: ir.BinI32Ne,
	operators.I32LtS: ir.BinI32LtS, operators.I32LtU: ir.BinI32LtU,
	operators.I32GtS: ir.BinI32GtS, operators.I32GtU: ir.BinI32GtU,
	operators.I32LeS: ir.BinI32LeS, operators.I32LeU: ir.BinI32LeU,
	operators.I32GeS: ir.BinI32GeS, operators.I32GeU: ir.BinI32GeU,
	operators.I64Eq: ir.BinI64Eq, operators.I64Ne: ir.BinI64Ne,
	operators.I64LtS: ir.BinI64LtS, operators.I64LtU: ir.BinI64LtU,
	operators.I64GtS: ir.BinI64GtS, operators.I64GtU: ir.BinI64GtU,
	operators.I64LeS: ir.BinI64LeS, operators.I64LeU: ir.BinI64LeU,
	operators.I64GeS: ir.BinI64GeS, operators.I64GeU: ir.BinI64GeU,
	operators.F32Eq: ir.BinF32Eq, operators.F32Ne: ir.BinF32Ne,
	operators.F32Lt: ir.BinF32Lt, operators.F32Gt: ir.BinF32Gt,
	operators.F32Le: ir.BinF32Le, operators.F32Ge: ir.BinF32Ge,
	operators.F64Eq: ir.BinF64Eq, operators.F64Ne: ir.BinF64Ne,
	operators.F64Lt: ir.BinF64Lt, operators.F64Gt: ir.BinF64Gt,
	operators.F64Le: ir.BinF64Le, operators.F64Ge: ir.BinF64Ge,
}

// binaryOpFor maps CategoryBinary opcodes to the ir.BinaryOp variant
// they build.
var binaryOpFor = map[byte]ir.BinaryOp{
	operators.I32Add: ir.BinI32Add, operators.I32Sub: ir.BinI32Sub, operators.I32Mul: ir.BinI32Mul,
	operators.I32DivS: ir.BinI32DivS, operators.I32DivU: ir.BinI32DivU,
	operators.I32RemS: ir.BinI32RemS, operators.I32RemU: ir.BinI32RemU,
	operators.I32And: ir.BinI32And, operators.I32Or: ir.BinI32Or, operators.I32Xor: ir.BinI32Xor,
	operators.I32Shl: ir.BinI32Shl, operators.I32ShrS: ir.BinI32ShrS, operators.I32ShrU: ir.BinI32ShrU,
	operators.I32Rotl: ir.BinI32Rotl, operators.I32Rotr: ir.BinI32Rotr,
	operators.I64Add: ir.BinI64Add, operators.I64Sub: ir.BinI64Sub, operators.I64Mul: ir.BinI64Mul,
	operators.I64DivS: ir.BinI64DivS, operators.I64DivU: ir.BinI64DivU,
	operators.I64RemS: ir.BinI64RemS, operators.I64RemU: ir.BinI64RemU,
	operators.I64And: ir.BinI64And, operators.I64Or: ir.BinI64Or, operators.I64Xor: ir.BinI64Xor,
	operators.I64Shl: ir.BinI64Shl, operators.I64ShrS: ir.BinI64ShrS, operators.I64ShrU: ir.BinI64ShrU,
	operators.I64Rotl: ir.BinI64Rotl, operators.I64Rotr: ir.BinI64Rotr,
	operators.F32Add: ir.BinF32Add, operators.F32Sub: ir.BinF32Sub, operators.F32Mul: ir.BinF32Mul,
	operators.F32Div: ir.BinF32Div, operators.F32Min: ir.BinF32Min, operators.F32Max: ir.BinF32Max,
	operators.F32Copysign: ir.BinF32Copysign,
	operators.F64Add: ir.BinF64Add, operators.F64Sub: ir.BinF64Sub, operators.F64Mul: ir.BinF64Mul,
	operators.F64Div: ir.BinF64Div, operators.F64Min: ir.BinF64Min, operators.F64Max: ir.BinF64Max,
	operators.F64Copysign: ir.BinF64Copysign,
}

// satUnaryOpFor maps the 0xFC sub-opcode byte to its ir.UnaryOp variant.
var satUnaryOpFor = map[byte]ir.UnaryOp{
	operators.I32TruncSatF32S: ir.UnI32TruncSatF32S, operators.I32TruncSatF32U: ir.UnI32TruncSatF32U,
	operators.I32TruncSatF64S: ir.UnI32TruncSatF64S, operators.I32TruncSatF64U: ir.UnI32TruncSatF64U,
	operators.I64TruncSatF32S: ir.UnI64TruncSatF32S, operators.I64TruncSatF32U: ir.UnI64TruncSatF32U,
	operators.I64TruncSatF64S: ir.UnI64TruncSatF64S, operators.I64TruncSatF64U: ir.UnI64TruncSatF64U,
}

// loadNarrowing describes the width/signedness a CategoryLoad opcode
// narrows its natural-width value to; zero width means a full load.
type loadNarrowing struct {
	widthBits uint8
	signed    bool
}

var loadNarrowingFor = map[byte]loadNarrowing{
	operators.I32Load8s:  {8, true},
	operators.I32Load8u:  {8, false},
	operators.I32Load16s: {16, true},
	operators.I32Load16u: {16, false},
	operators.I64Load8s:  {8, true},
	operators.I64Load8u:  {8, false},
	operators.I64Load16s: {16, true},
	operators.I64Load16u: {16, false},
	operators.I64Load32s: {32, true},
	operators.I64Load32u: {32, false},
}

// storeWidthFor maps a CategoryStore opcode to the width it narrows a
// store to; entries absent from this map are full natural-width stores.
var storeWidthFor = map[byte]uint8{
	operators.I32Store8:  8,
	operators.I32Store16: 16,
	operators.I64Store8:  8,
	operators.I64Store16: 16,
	operators.I64Store32: 32,
}
