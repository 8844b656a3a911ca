// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"errors"
	"fmt"
)

// Functions for populating and looking up entries in a module's index
// spaces. More info: http://webassembly.org/docs/modules/#function-index-space

// populateFunctions appends the module's own defined functions (those
// backed by a function body) after whatever imported-function
// placeholders populateImports already installed.
func (m *Module) populateFunctions() error {
	if m.Types == nil || m.Function == nil {
		return nil
	}
	if m.Code == nil || len(m.Code.Bodies) != len(m.Function.Types) {
		return errors.New("wasm: function and code section length mismatch")
	}

	for codeIndex, typeIndex := range m.Function.Types {
		if int(typeIndex) >= len(m.Types.Entries) {
			return InvalidFunctionIndexError(typeIndex)
		}
		m.FunctionIndexSpace = append(m.FunctionIndexSpace, Function{
			Sig:  &m.Types.Entries[typeIndex],
			Body: &m.Code.Bodies[codeIndex],
		})
	}
	return nil
}

// GetFunction returns a *Function, based on the function's index in the
// function index space. Returns nil when the index is invalid.
func (m *Module) GetFunction(i int) *Function {
	if i >= len(m.FunctionIndexSpace) || i < 0 {
		return nil
	}
	return &m.FunctionIndexSpace[i]
}

// GetFunctionSig returns the signature of the function at index i in the
// function index space (imports first, then locally-defined functions).
func (m *Module) GetFunctionSig(i uint32) (*FunctionSig, error) {
	fn := m.GetFunction(int(i))
	if fn == nil {
		return nil, errors.New("wasm: function index out of range")
	}
	return fn.Sig, nil
}

func (m *Module) populateGlobals() error {
	if m.Global == nil {
		return nil
	}
	m.GlobalIndexSpace = append(m.GlobalIndexSpace, m.Global.Globals...)
	logger.Printf("There are %d entries in the global index space.", len(m.GlobalIndexSpace))
	return nil
}

type InvalidGlobalIndexError uint32

func (e InvalidGlobalIndexError) Error() string {
	return fmt.Sprintf("wasm: Invalid index to global index space: %#x", uint32(e))
}

// GetGlobal returns a *GlobalEntry, based on the global index space.
// Returns nil when the index is invalid.
func (m *Module) GetGlobal(i int) *GlobalEntry {
	if i >= len(m.GlobalIndexSpace) || i < 0 {
		return nil
	}
	return &m.GlobalIndexSpace[i]
}

// GetGlobalType returns the declared type of the global at index i in
// the global index space (imports first, then locally-declared globals).
func (m *Module) GetGlobalType(i uint32) (*GlobalVar, error) {
	g := m.GetGlobal(int(i))
	if g == nil {
		return nil, errors.New("wasm: global index out of range")
	}
	return g.Type, nil
}
