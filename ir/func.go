// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/wasmdecompile/wasmdecompile/wasm"

// Local is one entry of a Func's local list: parameters first, then
// declared locals, then temps synthesized during decoding by the
// materialization policy.
type Local struct {
	Type wasm.ValueType
	Name string
}

// Func is a single decompiled function: its declared type, its full
// local list, and its basic-block graph.
type Func struct {
	Index  uint32
	Type   wasm.FunctionSig
	Locals []Local

	Blocks     map[BlockIndex]*Block
	EntryBlock BlockIndex

	nextBlockIndex BlockIndex
}

// NewFunc creates an empty function ready for decode to populate.
func NewFunc(index uint32, typ wasm.FunctionSig) *Func {
	return &Func{
		Index:  index,
		Type:   typ,
		Blocks: make(map[BlockIndex]*Block),
	}
}

// AllocBlock reserves a fresh BlockIndex and installs an empty Block
// with the given parameter types, returning both.
func (f *Func) AllocBlock(params []wasm.ValueType) (BlockIndex, *Block) {
	idx := f.nextBlockIndex
	f.nextBlockIndex++
	b := &Block{Params: params}
	f.Blocks[idx] = b
	return idx, b
}

// ReserveBlockIndex advances the allocator past idx, so a caller can
// carve out low indices (such as an entry block at 0 and a return block
// at 1) before any other block is allocated.
func (f *Func) ReserveBlockIndex(idx BlockIndex) {
	if f.nextBlockIndex <= idx {
		f.nextBlockIndex = idx + 1
	}
}

// AddLocal appends a new local, returning its index.
func (f *Func) AddLocal(typ wasm.ValueType, name string) uint32 {
	idx := uint32(len(f.Locals))
	f.Locals = append(f.Locals, Local{Type: typ, Name: name})
	return idx
}

// VisualBlockOrder returns the function's block indices in ascending
// order, the order the pretty-printer and the DOT emitter walk blocks
// in before RPO renumbering has run (after renumbering this is also
// RPO order, since indices are dense and monotonic in RPO).
func (f *Func) VisualBlockOrder() []BlockIndex {
	keys := make([]BlockIndex, 0, len(f.Blocks))
	for k := range f.Blocks {
		keys = append(keys, k)
	}
	// Simple insertion sort: block counts per function are small (tens,
	// rarely hundreds), and avoiding a sort.Slice closure keeps this
	// allocation-free.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// Module is the decompiler's module-level IR: the opaque type groups
// read from the binary's type section, the type index of every
// non-imported function, how many of the module's functions are
// imports (and therefore cannot be decompiled), and the decompiled
// functions themselves.
type Module struct {
	RecGroups         []wasm.FunctionSig
	FuncTypeIndices   []uint32
	ImportedFuncCount int
	Funcs             []*Func
}
