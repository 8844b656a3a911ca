// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package operators classifies every WebAssembly operator supported by
// this decompiler (the MVP instruction set plus the sign-extension and
// non-trapping-float-to-int proposals) into the category the function
// decoder needs to build IR, and resolves each opcode's static stack
// effect where one exists.
package operators

import (
	"fmt"

	"github.com/wasmdecompile/wasmdecompile/wasm"
)

// Category groups operators by the shape of IR they produce.
type Category uint8

const (
	CategoryConst Category = iota
	CategoryUnary
	CategoryBinary
	CategoryCompare
	CategoryLoad
	CategoryStore
	CategoryLocalGet
	CategoryLocalSet
	CategoryLocalTee
	CategoryGlobalGet
	CategoryGlobalSet
	CategoryMemorySize
	CategoryMemoryGrow
	CategoryCall
	CategoryCallIndirect
	CategorySelect
	CategoryDrop
	CategoryNop
	CategoryBlock
	CategoryLoop
	CategoryIf
	CategoryElse
	CategoryEnd
	CategoryBr
	CategoryBrIf
	CategoryBrTable
	CategoryReturn
	CategoryUnreachable
)

// noReturn marks an Op that produces no value; it is never a valid
// wasm.ValueType (those are all negative), so zero is a safe sentinel.
const noReturn = wasm.ValueType(0)

// Op describes a single WebAssembly operator: its encoding, its static
// stack effect when one exists, and which IR shape the decoder builds
// for it.
type Op struct {
	Code     byte
	Prefixed bool // Code is a sub-opcode following the 0xFC prefix byte
	Name     string
	// Args and Returns describe the static stack effect. Both are left
	// nil/noReturn for Polymorphic ops, whose effect the decoder
	// derives from immediates or from frame context instead.
	Args        []wasm.ValueType
	Returns     wasm.ValueType
	Polymorphic bool
	Category    Category
}

// IsValid reports whether op was ever registered by name.
func (o Op) IsValid() bool {
	return o.Name != ""
}

var ops [256]Op
var opsSat [8]Op // 0xFC-prefixed trunc_sat_* operators

// InvalidOpcodeError is returned by New/NewSat for an unregistered opcode.
type InvalidOpcodeError byte

func (e InvalidOpcodeError) Error() string {
	return fmt.Sprintf("operators: invalid opcode %#x", byte(e))
}

// New looks up the non-prefixed operator with the given single-byte
// encoding.
func New(b byte) (Op, error) {
	op := ops[b]
	if !op.IsValid() {
		return op, InvalidOpcodeError(b)
	}
	return op, nil
}

// NewSat looks up a 0xFC-prefixed non-trapping float-to-int operator by
// its sub-opcode (the LEB128-encoded immediate following the 0xFC byte).
func NewSat(sub byte) (Op, error) {
	if int(sub) >= len(opsSat) {
		return Op{}, InvalidOpcodeError(sub)
	}
	op := opsSat[sub]
	if !op.IsValid() {
		return op, InvalidOpcodeError(sub)
	}
	return op, nil
}

// newOp registers code's metadata in the package-wide ops table and
// returns code itself, so a declaration like
//
//	I32Add = newOp(0x6a, "i32.add", ..., CategoryBinary)
//
// both populates ops[0x6a] and binds I32Add to the raw opcode, letting
// callers compare a byte read off the wire directly against the named
// constant instead of going through New first.
func newOp(code byte, name string, args []wasm.ValueType, returns wasm.ValueType, cat Category) byte {
	ops[code] = Op{Code: code, Name: name, Args: args, Returns: returns, Category: cat}
	return code
}

func newPolymorphicOp(code byte, name string, cat Category) byte {
	ops[code] = Op{Code: code, Name: name, Returns: noReturn, Polymorphic: true, Category: cat}
	return code
}

func newSatOp(sub byte, name string, args []wasm.ValueType, returns wasm.ValueType) byte {
	opsSat[sub] = Op{Code: sub, Prefixed: true, Name: name, Args: args, Returns: returns, Category: CategoryUnary}
	return sub
}

var byName = map[string]byte{}
var byNameSat = map[string]byte{}

func init() {
	for i, op := range ops {
		if op.IsValid() {
			byName[op.Name] = byte(i)
		}
	}
	for i, op := range opsSat {
		if op.IsValid() {
			byNameSat[op.Name] = byte(i)
		}
	}
}

// ByName supports the text front door's mnemonic-to-opcode lookup.
func ByName(name string) (Op, bool) {
	if c, ok := byName[name]; ok {
		return ops[c], true
	}
	return Op{}, false
}

// ByNameSat is ByName for the 0xFC-prefixed operators.
func ByNameSat(name string) (Op, bool) {
	if c, ok := byNameSat[name]; ok {
		return opsSat[c], true
	}
	return Op{}, false
}
