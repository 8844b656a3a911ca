// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasmdecompile/wasmdecompile/ir"
	"github.com/wasmdecompile/wasmdecompile/wasm"
)

func TestFuncEmptyBodyElided(t *testing.T) {
	fn := ir.NewFunc(0, wasm.FunctionSig{})
	entry, entryBlock := fn.AllocBlock(nil)
	fn.EntryBlock = entry
	entryBlock.Terminator = ir.Terminator{Kind: ir.TermReturn}

	out := Func(fn)
	assert.Equal(t, "func func0() {}", out)
}

func TestFuncIdentityReturnsParam(t *testing.T) {
	fn := ir.NewFunc(0, wasm.FunctionSig{
		ParamTypes:  []wasm.ValueType{wasm.ValueTypeI32},
		ReturnTypes: []wasm.ValueType{wasm.ValueTypeI32},
	})
	fn.AddLocal(wasm.ValueTypeI32, "p0")
	entry, entryBlock := fn.AllocBlock(nil)
	fn.EntryBlock = entry
	entryBlock.Terminator = ir.Terminator{
		Kind:   ir.TermReturn,
		Values: []ir.Expression{{Kind: ir.ExprGetLocal, LocalIndex: 0}},
	}

	out := Func(fn)
	assert.Contains(t, out, "func func0(p0: i32) -> i32 {")
	assert.Contains(t, out, "return p0")
	assert.NotContains(t, out, "@0")
}

func TestFuncEntryLabelElidedButOthersLabeled(t *testing.T) {
	fn := ir.NewFunc(0, wasm.FunctionSig{ReturnTypes: []wasm.ValueType{wasm.ValueTypeI32}})
	entry, entryBlock := fn.AllocBlock(nil)
	fn.EntryBlock = entry
	joinIdx, joinBlock := fn.AllocBlock([]wasm.ValueType{wasm.ValueTypeI32})

	entryBlock.Terminator = ir.Terminator{
		Kind:   ir.TermBr,
		Target: joinIdx,
		Values: []ir.Expression{{Kind: ir.ExprI32Const, I32Value: 7}},
	}
	joinBlock.Terminator = ir.Terminator{
		Kind:   ir.TermReturn,
		Values: []ir.Expression{{Kind: ir.ExprBlockParam, ParamIndex: 0}},
	}

	out := Func(fn)
	assert.Contains(t, out, "br @1(7)")
	assert.Contains(t, out, "@1(b0: i32):")
	assert.Contains(t, out, "return b0")
}

func TestFuncTrailingEmptyReturnSuppressed(t *testing.T) {
	fn := ir.NewFunc(0, wasm.FunctionSig{})
	entry, entryBlock := fn.AllocBlock(nil)
	fn.EntryBlock = entry
	entryBlock.Statements = []ir.Statement{
		{Kind: ir.StmtDrop, Expr: ir.Expression{Kind: ir.ExprI32Const, I32Value: 1}},
	}
	entryBlock.Terminator = ir.Terminator{Kind: ir.TermReturn}

	out := Func(fn)
	assert.Contains(t, out, "drop(1)")
	assert.NotContains(t, out, "return")
}

func TestExprDocBinaryInfixAndPrefix(t *testing.T) {
	a := Allocator{}
	fn := ir.NewFunc(0, wasm.FunctionSig{})

	lhs := ir.Expression{Kind: ir.ExprI32Const, I32Value: 1}
	rhs := ir.Expression{Kind: ir.ExprI32Const, I32Value: 2}
	add := ir.Expression{Kind: ir.ExprBinary, BinaryOp: ir.BinI32Add, Operands: [2]*ir.Expression{&lhs, &rhs}}
	rotl := ir.Expression{Kind: ir.ExprBinary, BinaryOp: ir.BinI32Rotl, Operands: [2]*ir.Expression{&lhs, &rhs}}

	require.Equal(t, "1 + 2", Render(exprDoc(a, fn, &add)))
	require.Equal(t, "#rotl 1 2", Render(exprDoc(a, fn, &rotl)))
}

func TestFormatF32NaNPreservesSignAndPayload(t *testing.T) {
	// A negative NaN with a non-default payload bit set.
	bits := uint32(0xFFC00001)
	out := formatF32(bits)
	assert.Equal(t, "-nan:0x400001", out)
}
