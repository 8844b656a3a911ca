// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir is the decompiler's intermediate representation: modules,
// functions, basic blocks, statements, terminators and expressions. It
// is purely data — construction lives in package decode, reduction in
// package passes, and rendering in package printer.
package ir

import "github.com/wasmdecompile/wasmdecompile/wasm"

// BlockIndex identifies a Block within a Func's block map. Index 0 is
// always the entry block; decode additionally reserves index 1 for the
// function's return block. Values are dense only after the RPO
// renumbering pass runs.
type BlockIndex uint32

// Block is a straight-line sequence of Statements ending in exactly one
// Terminator. Params are the block's parameter types, standing in for
// SSA phi-nodes: every incoming branch must supply one argument per
// entry of Params.
type Block struct {
	Params      []wasm.ValueType
	Statements  []Statement
	Terminator  Terminator
}

// Successors returns the block indices this block can transfer control
// to, as given by its Terminator.
func (b *Block) Successors() []BlockIndex {
	return b.Terminator.Successors()
}

// RemapBlockIndices rewrites every BlockIndex in the terminator through
// mapping, used by the RPO-renumbering and jump-threading passes.
func (b *Block) RemapBlockIndices(mapping map[BlockIndex]BlockIndex) {
	b.Terminator.RemapBlockIndices(mapping)
}

// IsTrivial reports whether b is a pure forwarding block: no
// parameters, no statements, and an argument-free branch to a single
// target. Jump-threading collapses these away.
func (b *Block) IsTrivial() (BlockIndex, bool) {
	if len(b.Params) != 0 || len(b.Statements) != 0 {
		return 0, false
	}
	if b.Terminator.Kind != TermBr || len(b.Terminator.Values) != 0 {
		return 0, false
	}
	return b.Terminator.Target, true
}

// TerminatorKind discriminates the closed set of ways a Block can end.
type TerminatorKind uint8

const (
	// TermUnknown is the placeholder terminator on a freshly allocated
	// block; decode never leaves one on a reachable block once decoding
	// of the owning function completes.
	TermUnknown TerminatorKind = iota
	TermUnreachable
	TermReturn
	TermBr
	TermBrIf
	TermBrTable
)

// Terminator is a Block's single control transfer. Only the fields
// relevant to Kind are populated; see the per-field comments.
type Terminator struct {
	Kind TerminatorKind

	// Condition is the popped i32 operand deciding a BrIf's direction.
	Condition Expression

	// Values holds the branch arguments for Return, Br and BrTable, and
	// the shared argument tuple passed to both successors of BrIf.
	Values []Expression

	// Target is the Br destination.
	Target BlockIndex

	// TrueTarget/FalseTarget are the BrIf destinations.
	TrueTarget  BlockIndex
	FalseTarget BlockIndex

	// Targets/Default are the BrTable entries and fallback destination.
	Targets []BlockIndex
	Default BlockIndex
}

// IsEmptyReturn reports whether t is a Return with no values, the
// shape the pretty-printer elides at the end of a function body.
func (t *Terminator) IsEmptyReturn() bool {
	return t.Kind == TermReturn && len(t.Values) == 0
}

// Successors lists the block indices t can transfer control to.
func (t *Terminator) Successors() []BlockIndex {
	switch t.Kind {
	case TermBr:
		return []BlockIndex{t.Target}
	case TermBrIf:
		return []BlockIndex{t.TrueTarget, t.FalseTarget}
	case TermBrTable:
		result := make([]BlockIndex, 0, len(t.Targets)+1)
		result = append(result, t.Targets...)
		result = append(result, t.Default)
		return result
	default:
		return nil
	}
}

// RemapBlockIndices rewrites every block reference in t via mapping.
// Every key t dereferences must be present; a missing key is a
// decoder/pass bug, not a user-facing error.
func (t *Terminator) RemapBlockIndices(mapping map[BlockIndex]BlockIndex) {
	switch t.Kind {
	case TermBr:
		t.Target = mapping[t.Target]
	case TermBrIf:
		t.TrueTarget = mapping[t.TrueTarget]
		t.FalseTarget = mapping[t.FalseTarget]
	case TermBrTable:
		for i, target := range t.Targets {
			t.Targets[i] = mapping[target]
		}
		t.Default = mapping[t.Default]
	}
}

// StatementKind discriminates the closed set of side-effecting
// operations that can appear inside a Block's body.
type StatementKind uint8

const (
	StmtNop StatementKind = iota
	StmtDrop
	StmtLocalSet
	StmtLocalSetN
	StmtGlobalSet
	StmtMemoryStore
	StmtCall
	StmtCallIndirect
	// StmtIf is synthesized only by the structurer (passes.mergeIfBlocks);
	// decode never emits it.
	StmtIf
)

// Statement is one entry of a Block's straight-line body. As with
// Expression, only the fields relevant to Kind are populated.
type Statement struct {
	Kind StatementKind

	// Drop, MemoryStore's Value, and the sole Expr operand of Nop-shaped
	// statements live here.
	Expr Expression

	// LocalSet/GlobalSet target index; LocalSetN's multi-index form.
	LocalIndex   uint32
	LocalIndices []uint32
	GlobalIndex  uint32

	// MemoryStore's address operand (MemArg lives alongside it).
	Address Expression
	MemArg  MemArg
	// StoreWidthBits narrows a MemoryStore to i32.store8/16 or
	// i64.store8/16/32; zero means a full natural-width store.
	StoreWidthBits uint8

	// Call/CallIndirect, used when the callee's result arity is zero.
	Call Expression

	// StmtIf fields, populated only by the structurer.
	Condition   Expression
	TrueBody    []Statement
	FalseBody   []Statement
}
