// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/wasmdecompile/wasmdecompile/wasm"

// MemArg is the static (alignment, offset) pair carried by every memory
// instruction. The alignment hint is preserved for fidelity but never
// affects decompiled semantics, so the printer renders only Offset.
type MemArg struct {
	Align  uint32
	Offset uint32
}

// ExprKind discriminates Expression's closed variant set.
type ExprKind uint8

const (
	ExprI32Const ExprKind = iota
	ExprI64Const
	ExprF32Const
	ExprF64Const
	ExprBlockParam
	ExprUnary
	ExprBinary
	ExprCall
	ExprCallIndirect
	ExprGetLocal
	ExprGetLocalN
	ExprGetGlobal
	ExprSelect
	ExprMemoryLoad
	ExprMemorySize
	ExprMemoryGrow
	// ExprBottom is synthesized when popping from a polymorphic
	// (post-unreachable) operand stack. It carries no value and must
	// not survive optimization (testable property 4).
	ExprBottom
)

// Expression is a node of the decoder's operand-stack tree. Only the
// fields relevant to Kind are populated.
type Expression struct {
	Kind ExprKind

	// Constant payloads. Float bits are the raw IEEE-754 pattern: NaNs
	// are not canonicalized, per spec.
	I32Value int32
	I64Value int64
	F32Bits  uint32
	F64Bits  uint64

	// ExprBlockParam: zero-based parameter index within the current block.
	ParamIndex uint32

	// ExprUnary / ExprBinary.
	UnaryOp   UnaryOp
	BinaryOp  BinaryOp
	Operand   *Expression   // ExprUnary
	Operands  [2]*Expression // ExprBinary: [lhs, rhs]

	// ExprCall / ExprCallIndirect.
	FuncIndex     uint32
	FuncTypeIndex uint32 // ExprCallIndirect: type index of the callee signature
	Callee        *Expression // ExprCallIndirect: the table-index expression
	Args          []*Expression

	// ExprGetLocal / ExprGetLocalN / ExprGetGlobal.
	LocalIndex   uint32
	LocalIndices []uint32
	GlobalIndex  uint32

	// ExprSelect.
	Condition *Expression
	OnTrue    *Expression
	OnFalse   *Expression

	// ExprMemoryLoad / ExprMemoryGrow.
	MemArg  MemArg
	Address *Expression // ExprMemoryLoad
	Grow    *Expression // ExprMemoryGrow: the delta-pages operand

	// LoadType is the value type a memory load produces; the pretty
	// printer needs it since wasm encodes width/signedness (e.g.
	// i32.load8_s) in the opcode, not in a separate field here.
	LoadType wasm.ValueType
	// LoadWidthBits/LoadSigned describe a narrowing load (8/16 bits for
	// i32, 8/16/32 for i64); LoadWidthBits == 0 means a full
	// natural-width load.
	LoadWidthBits uint8
	LoadSigned    bool
}

// ResultType reports the value-type this expression yields, per the
// operator classifier's tie-breaks (signedness affects integer result
// type; comparisons always yield i32). Returns false for ExprBottom,
// which has no type.
func (e *Expression) ResultType() (wasm.ValueType, bool) {
	switch e.Kind {
	case ExprI32Const:
		return wasm.ValueTypeI32, true
	case ExprI64Const:
		return wasm.ValueTypeI64, true
	case ExprF32Const:
		return wasm.ValueTypeF32, true
	case ExprF64Const:
		return wasm.ValueTypeF64, true
	case ExprUnary:
		return e.UnaryOp.ResultType(), true
	case ExprBinary:
		return e.BinaryOp.ResultType(), true
	case ExprGetGlobal, ExprGetLocal, ExprBlockParam:
		return 0, false // caller resolves via the local/global/param table
	case ExprMemoryLoad:
		return e.LoadType, true
	case ExprMemorySize:
		return wasm.ValueTypeI32, true
	case ExprMemoryGrow:
		return wasm.ValueTypeI32, true
	case ExprBottom:
		return 0, false
	default:
		return 0, false
	}
}

// UnaryOp enumerates every unary expression operator, mirroring the
// decoder's classification of single-operand opcodes.
type UnaryOp uint8

const (
	UnI32Eqz UnaryOp = iota
	UnI64Eqz
	UnI32Clz
	UnI32Ctz
	UnI32Popcnt
	UnI64Clz
	UnI64Ctz
	UnI64Popcnt
	UnF32Abs
	UnF32Neg
	UnF32Ceil
	UnF32Floor
	UnF32Trunc
	UnF32Nearest
	UnF32Sqrt
	UnF64Abs
	UnF64Neg
	UnF64Ceil
	UnF64Floor
	UnF64Trunc
	UnF64Nearest
	UnF64Sqrt
	UnI32WrapI64
	UnI32TruncF32S
	UnI32TruncF32U
	UnI32TruncF64S
	UnI32TruncF64U
	UnI64ExtendI32S
	UnI64ExtendI32U
	UnI64TruncF32S
	UnI64TruncF32U
	UnI64TruncF64S
	UnI64TruncF64U
	UnF32ConvertI32S
	UnF32ConvertI32U
	UnF32ConvertI64S
	UnF32ConvertI64U
	UnF32DemoteF64
	UnF64ConvertI32S
	UnF64ConvertI32U
	UnF64ConvertI64S
	UnF64ConvertI64U
	UnF64PromoteF32
	UnI32ReinterpretF32
	UnI64ReinterpretF64
	UnF32ReinterpretI32
	UnF64ReinterpretI64
	UnI32Extend8S
	UnI32Extend16S
	UnI64Extend8S
	UnI64Extend16S
	UnI64Extend32S
	// UnI32TruncSatF32S ... UnI32TruncSatF64U round out the non-trapping
	// float-to-int proposal; their mnemonics keep the "sat" infix so the
	// printer doesn't need a separate saturating flag.
	UnI32TruncSatF32S
	UnI32TruncSatF32U
	UnI32TruncSatF64S
	UnI32TruncSatF64U
	UnI64TruncSatF32S
	UnI64TruncSatF32U
	UnI64TruncSatF64S
	UnI64TruncSatF64U
)

var unaryMnemonic = [...]string{
	UnI32Eqz: "eqz", UnI64Eqz: "eqz",
	UnI32Clz: "clz", UnI32Ctz: "ctz", UnI32Popcnt: "popcnt",
	UnI64Clz: "clz", UnI64Ctz: "ctz", UnI64Popcnt: "popcnt",
	UnF32Abs: "abs", UnF32Neg: "neg", UnF32Ceil: "ceil", UnF32Floor: "floor",
	UnF32Trunc: "trunc", UnF32Nearest: "nearest", UnF32Sqrt: "sqrt",
	UnF64Abs: "abs", UnF64Neg: "neg", UnF64Ceil: "ceil", UnF64Floor: "floor",
	UnF64Trunc: "trunc", UnF64Nearest: "nearest", UnF64Sqrt: "sqrt",
	UnI32WrapI64:    "wrap_i64",
	UnI32TruncF32S:  "trunc_f32_s", UnI32TruncF32U: "trunc_f32_u",
	UnI32TruncF64S:  "trunc_f64_s", UnI32TruncF64U: "trunc_f64_u",
	UnI64ExtendI32S: "extend_i32_s", UnI64ExtendI32U: "extend_i32_u",
	UnI64TruncF32S:  "trunc_f32_s", UnI64TruncF32U: "trunc_f32_u",
	UnI64TruncF64S:  "trunc_f64_s", UnI64TruncF64U: "trunc_f64_u",
	UnF32ConvertI32S: "convert_i32_s", UnF32ConvertI32U: "convert_i32_u",
	UnF32ConvertI64S: "convert_i64_s", UnF32ConvertI64U: "convert_i64_u",
	UnF32DemoteF64:   "demote_f64",
	UnF64ConvertI32S: "convert_i32_s", UnF64ConvertI32U: "convert_i32_u",
	UnF64ConvertI64S: "convert_i64_s", UnF64ConvertI64U: "convert_i64_u",
	UnF64PromoteF32:      "promote_f32",
	UnI32ReinterpretF32:  "reinterpret_f32",
	UnI64ReinterpretF64:  "reinterpret_f64",
	UnF32ReinterpretI32:  "reinterpret_i32",
	UnF64ReinterpretI64:  "reinterpret_i64",
	UnI32Extend8S:  "extend8_s", UnI32Extend16S: "extend16_s",
	UnI64Extend8S:  "extend8_s", UnI64Extend16S: "extend16_s", UnI64Extend32S: "extend32_s",
	UnI32TruncSatF32S: "trunc_sat_f32_s", UnI32TruncSatF32U: "trunc_sat_f32_u",
	UnI32TruncSatF64S: "trunc_sat_f64_s", UnI32TruncSatF64U: "trunc_sat_f64_u",
	UnI64TruncSatF32S: "trunc_sat_f32_s", UnI64TruncSatF32U: "trunc_sat_f32_u",
	UnI64TruncSatF64S: "trunc_sat_f64_s", UnI64TruncSatF64U: "trunc_sat_f64_u",
}

var unaryResultType = [...]wasm.ValueType{
	UnI32Eqz: wasm.ValueTypeI32, UnI64Eqz: wasm.ValueTypeI32,
	UnI32Clz: wasm.ValueTypeI32, UnI32Ctz: wasm.ValueTypeI32, UnI32Popcnt: wasm.ValueTypeI32,
	UnI64Clz: wasm.ValueTypeI64, UnI64Ctz: wasm.ValueTypeI64, UnI64Popcnt: wasm.ValueTypeI64,
	UnF32Abs: wasm.ValueTypeF32, UnF32Neg: wasm.ValueTypeF32, UnF32Ceil: wasm.ValueTypeF32,
	UnF32Floor: wasm.ValueTypeF32, UnF32Trunc: wasm.ValueTypeF32, UnF32Nearest: wasm.ValueTypeF32,
	UnF32Sqrt: wasm.ValueTypeF32,
	UnF64Abs: wasm.ValueTypeF64, UnF64Neg: wasm.ValueTypeF64, UnF64Ceil: wasm.ValueTypeF64,
	UnF64Floor: wasm.ValueTypeF64, UnF64Trunc: wasm.ValueTypeF64, UnF64Nearest: wasm.ValueTypeF64,
	UnF64Sqrt: wasm.ValueTypeF64,
	UnI32WrapI64: wasm.ValueTypeI32,
	UnI32TruncF32S: wasm.ValueTypeI32, UnI32TruncF32U: wasm.ValueTypeI32,
	UnI32TruncF64S: wasm.ValueTypeI32, UnI32TruncF64U: wasm.ValueTypeI32,
	UnI64ExtendI32S: wasm.ValueTypeI64, UnI64ExtendI32U: wasm.ValueTypeI64,
	UnI64TruncF32S: wasm.ValueTypeI64, UnI64TruncF32U: wasm.ValueTypeI64,
	UnI64TruncF64S: wasm.ValueTypeI64, UnI64TruncF64U: wasm.ValueTypeI64,
	UnF32ConvertI32S: wasm.ValueTypeF32, UnF32ConvertI32U: wasm.ValueTypeF32,
	UnF32ConvertI64S: wasm.ValueTypeF32, UnF32ConvertI64U: wasm.ValueTypeF32,
	UnF32DemoteF64: wasm.ValueTypeF32,
	UnF64ConvertI32S: wasm.ValueTypeF64, UnF64ConvertI32U: wasm.ValueTypeF64,
	UnF64ConvertI64S: wasm.ValueTypeF64, UnF64ConvertI64U: wasm.ValueTypeF64,
	UnF64PromoteF32: wasm.ValueTypeF64,
	UnI32ReinterpretF32: wasm.ValueTypeI32,
	UnI64ReinterpretF64: wasm.ValueTypeI64,
	UnF32ReinterpretI32: wasm.ValueTypeF32,
	UnF64ReinterpretI64: wasm.ValueTypeF64,
	UnI32Extend8S: wasm.ValueTypeI32, UnI32Extend16S: wasm.ValueTypeI32,
	UnI64Extend8S: wasm.ValueTypeI64, UnI64Extend16S: wasm.ValueTypeI64, UnI64Extend32S: wasm.ValueTypeI64,
	UnI32TruncSatF32S: wasm.ValueTypeI32, UnI32TruncSatF32U: wasm.ValueTypeI32,
	UnI32TruncSatF64S: wasm.ValueTypeI32, UnI32TruncSatF64U: wasm.ValueTypeI32,
	UnI64TruncSatF32S: wasm.ValueTypeI64, UnI64TruncSatF32U: wasm.ValueTypeI64,
	UnI64TruncSatF64S: wasm.ValueTypeI64, UnI64TruncSatF64U: wasm.ValueTypeI64,
}

// String renders the operator's printable mnemonic (prefix-call form).
func (u UnaryOp) String() string { return unaryMnemonic[u] }

// ResultType reports the value-type a unary expression with this
// operator produces.
func (u UnaryOp) ResultType() wasm.ValueType { return unaryResultType[u] }

// BinaryOp enumerates every binary expression operator.
type BinaryOp uint8

const (
	BinI32Eq BinaryOp = iota
	BinI32Ne
	BinI32LtS
	BinI32LtU
	BinI32GtS
	BinI32GtU
	BinI32LeS
	BinI32LeU
	BinI32GeS
	BinI32GeU
	BinI64Eq
	BinI64Ne
	BinI64LtS
	BinI64LtU
	BinI64GtS
	BinI64GtU
	BinI64LeS
	BinI64LeU
	BinI64GeS
	BinI64GeU
	BinF32Eq
	BinF32Ne
	BinF32Lt
	BinF32Gt
	BinF32Le
	BinF32Ge
	BinF64Eq
	BinF64Ne
	BinF64Lt
	BinF64Gt
	BinF64Le
	BinF64Ge
	BinI32Add
	BinI32Sub
	BinI32Mul
	BinI32DivS
	BinI32DivU
	BinI32RemS
	BinI32RemU
	BinI32And
	BinI32Or
	BinI32Xor
	BinI32Shl
	BinI32ShrS
	BinI32ShrU
	BinI32Rotl
	BinI32Rotr
	BinI64Add
	BinI64Sub
	BinI64Mul
	BinI64DivS
	BinI64DivU
	BinI64RemS
	BinI64RemU
	BinI64And
	BinI64Or
	BinI64Xor
	BinI64Shl
	BinI64ShrS
	BinI64ShrU
	BinI64Rotl
	BinI64Rotr
	BinF32Add
	BinF32Sub
	BinF32Mul
	BinF32Div
	BinF32Min
	BinF32Max
	BinF32Copysign
	BinF64Add
	BinF64Sub
	BinF64Mul
	BinF64Div
	BinF64Min
	BinF64Max
	BinF64Copysign
)

type infixOp struct {
	text  string
	infix bool
}

var binaryInfix = [...]infixOp{
	BinI32Eq: {"==", true}, BinI32Ne: {"!=", true},
	BinI32LtS: {"<_s", true}, BinI32LtU: {"<_u", true},
	BinI32GtS: {">_s", true}, BinI32GtU: {">_u", true},
	BinI32LeS: {"<=_s", true}, BinI32LeU: {"<=_u", true},
	BinI32GeS: {">=_s", true}, BinI32GeU: {">=_u", true},
	BinI64Eq: {"==", true}, BinI64Ne: {"!=", true},
	BinI64LtS: {"<_s", true}, BinI64LtU: {"<_u", true},
	BinI64GtS: {">_s", true}, BinI64GtU: {">_u", true},
	BinI64LeS: {"<=_s", true}, BinI64LeU: {"<=_u", true},
	BinI64GeS: {">=_s", true}, BinI64GeU: {">=_u", true},
	BinF32Eq: {"==", true}, BinF32Ne: {"!=", true},
	BinF32Lt: {"<", true}, BinF32Gt: {">", true},
	BinF32Le: {"<=", true}, BinF32Ge: {">=", true},
	BinF64Eq: {"==", true}, BinF64Ne: {"!=", true},
	BinF64Lt: {"<", true}, BinF64Gt: {">", true},
	BinF64Le: {"<=", true}, BinF64Ge: {">=", true},
	BinI32Add: {"+", true}, BinI32Sub: {"-", true}, BinI32Mul: {"*", true},
	BinI32DivS: {"/_s", true}, BinI32DivU: {"/_u", true},
	BinI32RemS: {"%_s", true}, BinI32RemU: {"%_u", true},
	BinI32And: {"&", true}, BinI32Or: {"|", true}, BinI32Xor: {"#xor", false},
	BinI32Shl: {"<<", true}, BinI32ShrS: {">>_s", true}, BinI32ShrU: {">>_u", true},
	BinI32Rotl: {"#rotl", false}, BinI32Rotr: {"#rotr", false},
	BinI64Add: {"+", true}, BinI64Sub: {"-", true}, BinI64Mul: {"*", true},
	BinI64DivS: {"/_s", true}, BinI64DivU: {"/_u", true},
	BinI64RemS: {"%_s", true}, BinI64RemU: {"%_u", true},
	BinI64And: {"&", true}, BinI64Or: {"|", true}, BinI64Xor: {"#xor", false},
	BinI64Shl: {"<<", true}, BinI64ShrS: {">>_s", true}, BinI64ShrU: {">>_u", true},
	BinI64Rotl: {"#rotl", false}, BinI64Rotr: {"#rotr", false},
	BinF32Add: {"+", true}, BinF32Sub: {"-", true}, BinF32Mul: {"*", true},
	// Unlike the original source, where F32Div/F64Div's infix strings are
	// empty (a latent bug — every other arithmetic op has a real infix
	// symbol), both render "/" here.
	BinF32Div: {"/", true},
	BinF32Min: {"min", false}, BinF32Max: {"max", false}, BinF32Copysign: {"copysign", false},
	BinF64Add: {"+", true}, BinF64Sub: {"-", true}, BinF64Mul: {"*", true},
	BinF64Div: {"/", true},
	BinF64Min: {"min", false}, BinF64Max: {"max", false}, BinF64Copysign: {"copysign", false},
}

var binaryResultType = [...]wasm.ValueType{
	BinI32Eq: wasm.ValueTypeI32, BinI32Ne: wasm.ValueTypeI32,
	BinI32LtS: wasm.ValueTypeI32, BinI32LtU: wasm.ValueTypeI32,
	BinI32GtS: wasm.ValueTypeI32, BinI32GtU: wasm.ValueTypeI32,
	BinI32LeS: wasm.ValueTypeI32, BinI32LeU: wasm.ValueTypeI32,
	BinI32GeS: wasm.ValueTypeI32, BinI32GeU: wasm.ValueTypeI32,
	BinI64Eq: wasm.ValueTypeI32, BinI64Ne: wasm.ValueTypeI32,
	BinI64LtS: wasm.ValueTypeI32, BinI64LtU: wasm.ValueTypeI32,
	BinI64GtS: wasm.ValueTypeI32, BinI64GtU: wasm.ValueTypeI32,
	BinI64LeS: wasm.ValueTypeI32, BinI64LeU: wasm.ValueTypeI32,
	BinI64GeS: wasm.ValueTypeI32, BinI64GeU: wasm.ValueTypeI32,
	BinF32Eq: wasm.ValueTypeI32, BinF32Ne: wasm.ValueTypeI32,
	BinF32Lt: wasm.ValueTypeI32, BinF32Gt: wasm.ValueTypeI32,
	BinF32Le: wasm.ValueTypeI32, BinF32Ge: wasm.ValueTypeI32,
	BinF64Eq: wasm.ValueTypeI32, BinF64Ne: wasm.ValueTypeI32,
	BinF64Lt: wasm.ValueTypeI32, BinF64Gt: wasm.ValueTypeI32,
	BinF64Le: wasm.ValueTypeI32, BinF64Ge: wasm.ValueTypeI32,
	BinI32Add: wasm.ValueTypeI32, BinI32Sub: wasm.ValueTypeI32, BinI32Mul: wasm.ValueTypeI32,
	BinI32DivS: wasm.ValueTypeI32, BinI32DivU: wasm.ValueTypeI32,
	BinI32RemS: wasm.ValueTypeI32, BinI32RemU: wasm.ValueTypeI32,
	BinI32And: wasm.ValueTypeI32, BinI32Or: wasm.ValueTypeI32, BinI32Xor: wasm.ValueTypeI32,
	BinI32Shl: wasm.ValueTypeI32, BinI32ShrS: wasm.ValueTypeI32, BinI32ShrU: wasm.ValueTypeI32,
	BinI32Rotl: wasm.ValueTypeI32, BinI32Rotr: wasm.ValueTypeI32,
	BinI64Add: wasm.ValueTypeI64, BinI64Sub: wasm.ValueTypeI64, BinI64Mul: wasm.ValueTypeI64,
	BinI64DivS: wasm.ValueTypeI64, BinI64DivU: wasm.ValueTypeI64,
	BinI64RemS: wasm.ValueTypeI64, BinI64RemU: wasm.ValueTypeI64,
	BinI64And: wasm.ValueTypeI64, BinI64Or: wasm.ValueTypeI64, BinI64Xor: wasm.ValueTypeI64,
	BinI64Shl: wasm.ValueTypeI64, BinI64ShrS: wasm.ValueTypeI64, BinI64ShrU: wasm.ValueTypeI64,
	BinI64Rotl: wasm.ValueTypeI64, BinI64Rotr: wasm.ValueTypeI64,
	BinF32Add: wasm.ValueTypeF32, BinF32Sub: wasm.ValueTypeF32, BinF32Mul: wasm.ValueTypeF32,
	BinF32Div: wasm.ValueTypeF32, BinF32Min: wasm.ValueTypeF32, BinF32Max: wasm.ValueTypeF32,
	BinF32Copysign: wasm.ValueTypeF32,
	BinF64Add: wasm.ValueTypeF64, BinF64Sub: wasm.ValueTypeF64, BinF64Mul: wasm.ValueTypeF64,
	BinF64Div: wasm.ValueTypeF64, BinF64Min: wasm.ValueTypeF64, BinF64Max: wasm.ValueTypeF64,
	BinF64Copysign: wasm.ValueTypeF64,
}

// StringAndInfix reports the operator's printable token and whether it
// should render as an infix (`lhs OP rhs`) rather than a prefix call
// (`OP(lhs, rhs)`).
func (b BinaryOp) StringAndInfix() (string, bool) {
	op := binaryInfix[b]
	return op.text, op.infix
}

// ResultType reports the value-type a binary expression with this
// operator produces.
func (b BinaryOp) ResultType() wasm.ValueType { return binaryResultType[b] }
