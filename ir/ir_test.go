// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasmdecompile/wasmdecompile/wasm"
)

func TestTerminatorSuccessors(t *testing.T) {
	br := Terminator{Kind: TermBr, Target: 3}
	assert.Equal(t, []BlockIndex{3}, br.Successors())

	brIf := Terminator{Kind: TermBrIf, TrueTarget: 1, FalseTarget: 2}
	assert.Equal(t, []BlockIndex{1, 2}, brIf.Successors())

	brTable := Terminator{Kind: TermBrTable, Targets: []BlockIndex{4, 5}, Default: 6}
	assert.Equal(t, []BlockIndex{4, 5, 6}, brTable.Successors())

	ret := Terminator{Kind: TermReturn}
	assert.Nil(t, ret.Successors())

	unreachable := Terminator{Kind: TermUnreachable}
	assert.Nil(t, unreachable.Successors())
}

func TestTerminatorRemapBlockIndices(t *testing.T) {
	mapping := map[BlockIndex]BlockIndex{0: 10, 1: 11, 2: 12, 3: 13}

	br := Terminator{Kind: TermBr, Target: 0}
	br.RemapBlockIndices(mapping)
	assert.Equal(t, BlockIndex(10), br.Target)

	brIf := Terminator{Kind: TermBrIf, TrueTarget: 1, FalseTarget: 2}
	brIf.RemapBlockIndices(mapping)
	assert.Equal(t, BlockIndex(11), brIf.TrueTarget)
	assert.Equal(t, BlockIndex(12), brIf.FalseTarget)

	brTable := Terminator{Kind: TermBrTable, Targets: []BlockIndex{0, 1}, Default: 3}
	brTable.RemapBlockIndices(mapping)
	assert.Equal(t, []BlockIndex{10, 11}, brTable.Targets)
	assert.Equal(t, BlockIndex(13), brTable.Default)
}

func TestBlockIsTrivial(t *testing.T) {
	trivial := Block{Terminator: Terminator{Kind: TermBr, Target: 7}}
	target, ok := trivial.IsTrivial()
	require.True(t, ok)
	assert.Equal(t, BlockIndex(7), target)

	withParams := Block{Params: []wasm.ValueType{wasm.ValueTypeI32}, Terminator: Terminator{Kind: TermBr, Target: 7}}
	_, ok = withParams.IsTrivial()
	assert.False(t, ok)

	withStatements := Block{Statements: []Statement{{Kind: StmtNop}}, Terminator: Terminator{Kind: TermBr, Target: 7}}
	_, ok = withStatements.IsTrivial()
	assert.False(t, ok)

	withArgs := Block{Terminator: Terminator{Kind: TermBr, Target: 7, Values: []Expression{{Kind: ExprI32Const}}}}
	_, ok = withArgs.IsTrivial()
	assert.False(t, ok)

	notABranch := Block{Terminator: Terminator{Kind: TermReturn}}
	_, ok = notABranch.IsTrivial()
	assert.False(t, ok)
}

func TestUnaryOpResultTypeAndString(t *testing.T) {
	assert.Equal(t, wasm.ValueTypeI32, UnI32Eqz.ResultType())
	assert.Equal(t, "eqz", UnI32Eqz.String())

	assert.Equal(t, wasm.ValueTypeI64, UnI64ExtendI32S.ResultType())
	assert.Equal(t, "extend_i32_s", UnI64ExtendI32S.String())

	assert.Equal(t, wasm.ValueTypeI32, UnI32TruncSatF64U.ResultType())
	assert.Equal(t, "trunc_sat_f64_u", UnI32TruncSatF64U.String())
}

func TestBinaryOpResultTypeAndInfix(t *testing.T) {
	text, infix := BinI32Add.StringAndInfix()
	assert.Equal(t, "+", text)
	assert.True(t, infix)
	assert.Equal(t, wasm.ValueTypeI32, BinI32Add.ResultType())

	text, infix = BinF32Min.StringAndInfix()
	assert.Equal(t, "min", text)
	assert.False(t, infix)

	// Both float division operators render a real infix symbol, unlike
	// the original source where F32Div renders empty.
	text, infix = BinF32Div.StringAndInfix()
	assert.Equal(t, "/", text)
	assert.True(t, infix)

	text, infix = BinF64Div.StringAndInfix()
	assert.Equal(t, "/", text)
	assert.True(t, infix)

	assert.Equal(t, wasm.ValueTypeI32, BinI32LtS.ResultType())
	assert.Equal(t, wasm.ValueTypeF64, BinF64Mul.ResultType())
}

func TestExpressionResultType(t *testing.T) {
	i32 := Expression{Kind: ExprI32Const, I32Value: 42}
	typ, ok := i32.ResultType()
	require.True(t, ok)
	assert.Equal(t, wasm.ValueTypeI32, typ)

	bottom := Expression{Kind: ExprBottom}
	_, ok = bottom.ResultType()
	assert.False(t, ok)

	unary := Expression{Kind: ExprUnary, UnaryOp: UnF32Sqrt}
	typ, ok = unary.ResultType()
	require.True(t, ok)
	assert.Equal(t, wasm.ValueTypeF32, typ)

	binary := Expression{Kind: ExprBinary, BinaryOp: BinI64Add}
	typ, ok = binary.ResultType()
	require.True(t, ok)
	assert.Equal(t, wasm.ValueTypeI64, typ)
}

func TestFuncAllocBlockAndLocals(t *testing.T) {
	f := NewFunc(0, wasm.FunctionSig{Form: 0x60})
	f.ReserveBlockIndex(1) // entry=0, return-block=1 reserved up front
	idx, b := f.AllocBlock(nil)
	assert.Equal(t, BlockIndex(2), idx)
	assert.NotNil(t, b)

	li := f.AddLocal(wasm.ValueTypeI32, "arg0")
	assert.Equal(t, uint32(0), li)
	li = f.AddLocal(wasm.ValueTypeI64, "tmp0")
	assert.Equal(t, uint32(1), li)
	assert.Len(t, f.Locals, 2)
}

func TestFuncVisualBlockOrder(t *testing.T) {
	f := NewFunc(0, wasm.FunctionSig{})
	f.Blocks[5] = &Block{}
	f.Blocks[1] = &Block{}
	f.Blocks[3] = &Block{}
	assert.Equal(t, []BlockIndex{1, 3, 5}, f.VisualBlockOrder())
}
