// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"errors"
	"io"

	"github.com/wasmdecompile/wasmdecompile/wasm/internal/readpos"
)

var ErrInvalidMagic = errors.New("wasm: Invalid magic number")

const (
	Magic   uint32 = 0x6d736100
	Version uint32 = 0x1
)

// Function represents an entry in the function index space of a module.
// Imported functions carry Sig but no Body; IsImported distinguishes them
// so the decoder emits a declaration rather than attempting to decode one.
type Function struct {
	Sig        *FunctionSig
	Body       *FunctionBody
	IsImported bool
	ModuleName string // set when IsImported
	FieldName  string // set when IsImported
}

// Module represents a parsed WebAssembly module:
// http://webassembly.org/docs/modules/
type Module struct {
	Version uint32

	Types    *SectionTypes
	Import   *SectionImports
	Function *SectionFunctions
	Table    *SectionTables
	Memory   *SectionMemories
	Global   *SectionGlobals
	Export   *SectionExports
	Start    *SectionStartFunction
	Elements *SectionElements
	Code     *SectionCode
	Data     *SectionData

	// The function index space of the module: imported functions first,
	// in import order, followed by the module's own defined functions.
	FunctionIndexSpace []Function
	GlobalIndexSpace   []GlobalEntry

	// ImportedFuncs/ImportedGlobals count how many entries at the front
	// of the corresponding index space came from an import. A decompiler
	// never materializes table or linear memory contents, so only their
	// presence (HasTable/HasMemory), not their element counts, matters.
	ImportedFuncs    int
	ImportedGlobals  int
	ImportedTables   int
	ImportedMemories int

	Other []Section // Other holds the custom sections if any
}

// ResolveFunc is a function that takes a module name and returns a
// resolved module. ReadModule accepts one for interface symmetry with
// import-resolving readers, but never calls it: a decompiler never needs
// to load an imported module's definition, only the shape of the import.
type ResolveFunc func(name string) (*Module, error)

// ReadModule reads a module from the reader r.
func ReadModule(r io.Reader, _ ResolveFunc) (*Module, error) {
	reader := &readpos.ReadPos{
		R:      r,
		CurPos: 0,
	}
	m := &Module{}
	magic, err := readU32(reader)
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}
	if m.Version, err = readU32(reader); err != nil {
		return nil, err
	}

	for {
		done, err := m.readSection(reader)
		if err != nil {
			return nil, err
		} else if done {
			break
		}
	}

	for _, fn := range []func() error{
		m.populateImports,
		m.populateGlobals,
		m.populateFunctions,
	} {
		if err := fn(); err != nil {
			return nil, err
		}
	}

	logger.Printf("There are %d entries in the function index space.", len(m.FunctionIndexSpace))
	return m, nil
}

// HasTable reports whether the module declares or imports a table, a
// precondition for call_indirect to be valid.
func (m *Module) HasTable() bool {
	return (m.Table != nil && len(m.Table.Entries) > 0) || m.ImportedTables > 0
}

// HasMemory reports whether the module declares or imports linear memory,
// a precondition for any load/store operator to be valid.
func (m *Module) HasMemory() bool {
	return (m.Memory != nil && len(m.Memory.Entries) > 0) || m.ImportedMemories > 0
}
