// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decompile is the module binder: it reads a binary module,
// validates it, and drives package decode over every non-imported
// function body, assembling the results into an ir.Module. Per
// spec.md's component split this is the thin collaborator that hands
// per-function work to the core decoder; all the hard engineering
// lives in package decode and package passes.
package decompile

import (
	"fmt"
	"io"

	"github.com/wasmdecompile/wasmdecompile/decode"
	"github.com/wasmdecompile/wasmdecompile/ir"
	"github.com/wasmdecompile/wasmdecompile/passes"
	"github.com/wasmdecompile/wasmdecompile/validate"
	"github.com/wasmdecompile/wasmdecompile/wasm"
)

// InvalidModuleError reports that the binary failed validation: bad
// magic/version, malformed section, or a stack/type error the
// validator caught while walking a function body.
type InvalidModuleError struct{ Err error }

func (e InvalidModuleError) Error() string { return fmt.Sprintf("invalid module: %v", e.Err) }
func (e InvalidModuleError) Unwrap() error { return e.Err }

// ImportedFunctionRequestedError reports a request (by index) to
// decompile a function that is only declared, never defined locally.
type ImportedFunctionRequestedError struct{ Index uint32 }

func (e ImportedFunctionRequestedError) Error() string {
	return fmt.Sprintf("function %d is imported and has no body to decompile", e.Index)
}

// FunctionIndexOutOfRangeError reports a `-f N` request beyond the
// module's declared function count.
type FunctionIndexOutOfRangeError struct {
	Index uint32
	Count int
}

func (e FunctionIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("function index %d out of range (module declares %d functions)", e.Index, e.Count)
}

// Module reads, validates and fully decompiles a binary module from r:
// every non-imported function is decoded and reduced by the
// optimization pipeline.
func Module(r io.Reader) (*ir.Module, error) {
	wm, err := read(r)
	if err != nil {
		return nil, err
	}

	m := &ir.Module{
		ImportedFuncCount: wm.ImportedFuncs,
	}
	if wm.Types != nil {
		m.RecGroups = wm.Types.Entries
	}
	if wm.Function != nil {
		m.FuncTypeIndices = wm.Function.Types
	}

	for i, fn := range wm.FunctionIndexSpace {
		if fn.IsImported {
			continue
		}
		decoded, err := decodeAndReduce(wm, uint32(i), fn.Body)
		if err != nil {
			return nil, err
		}
		m.Funcs = append(m.Funcs, decoded)
	}
	return m, nil
}

// Func reads and validates a binary module from r, then decompiles
// only the function at funcIndex (the `-f N` CLI path). The index
// ranges over the whole function index space, imports included.
func Func(r io.Reader, funcIndex uint32) (*ir.Func, error) {
	wm, err := read(r)
	if err != nil {
		return nil, err
	}
	if int(funcIndex) >= len(wm.FunctionIndexSpace) {
		return nil, FunctionIndexOutOfRangeError{Index: funcIndex, Count: len(wm.FunctionIndexSpace)}
	}
	fn := wm.FunctionIndexSpace[funcIndex]
	if fn.IsImported {
		return nil, ImportedFunctionRequestedError{Index: funcIndex}
	}
	return decodeAndReduce(wm, funcIndex, fn.Body)
}

// read parses and validates the module, wrapping both failure modes in
// InvalidModuleError per spec.md §7.
func read(r io.Reader) (*wasm.Module, error) {
	wm, err := wasm.ReadModule(r, nil)
	if err != nil {
		return nil, InvalidModuleError{Err: err}
	}
	// A pre-pass over the whole module, rather than interleaved
	// call-by-call with decode: validate.VerifyModule's mockVM already
	// walks an entire function body in one pass and exposes no
	// per-instruction stepping API, and decode.Func maintains its own
	// equivalent frame/stack bookkeeping (mirroring the same invariants,
	// not re-deriving a second source of truth for them). Rejecting a
	// malformed module here still gives decode.Func the "validated
	// operator stream" spec.md promises it.
	if err := validate.VerifyModule(wm); err != nil {
		return nil, InvalidModuleError{Err: err}
	}
	return wm, nil
}

func decodeAndReduce(wm *wasm.Module, funcIndex uint32, body *wasm.FunctionBody) (*ir.Func, error) {
	fn, err := decode.Func(wm, funcIndex, body)
	if err != nil {
		return nil, err
	}
	passes.Reduce(fn)
	return fn, nil
}
