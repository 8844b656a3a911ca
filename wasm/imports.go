// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import "fmt"

// Import is an interface implemented by types that can be imported by a
// WebAssembly module.
type Import interface {
	isImport()
}

// ImportEntry describes an import statement in a Wasm module.
type ImportEntry struct {
	ModuleName string // module name string
	FieldName  string // field name string
	Kind       External

	// If Kind is Function, Type is a FuncImport containing the type index of the function signature.
	// If Kind is Table, Type is a TableImport containing the type of the imported table.
	// If Kind is Memory, Type is a MemoryImport containing the type of the imported memory.
	// If Kind is Global, Type is a GlobalVarImport.
	Type Import
}

type FuncImport struct {
	Type uint32
}

func (FuncImport) isImport() {}

type TableImport struct {
	Type Table
}

func (TableImport) isImport() {}

type MemoryImport struct {
	Type Memory
}

func (MemoryImport) isImport() {}

type GlobalVarImport struct {
	Type GlobalVar
}

func (GlobalVarImport) isImport() {}

type InvalidExternalError uint8

func (e InvalidExternalError) Error() string {
	return fmt.Sprintf("wasm: invalid external_kind value %d", uint8(e))
}

type InvalidFunctionIndexError uint32

func (e InvalidFunctionIndexError) Error() string {
	return fmt.Sprintf("wasm: Invalid index to function index space: %#x", uint32(e))
}

// populateImports prepends a placeholder Function entry to the function
// index space for every imported function, and counts imported globals,
// tables and memories. A decompiler never resolves an import to the
// module that defines it: the import's own declared signature is all a
// caller of the import, or a reader of the decompiled output, needs.
func (m *Module) populateImports() error {
	if m.Import == nil {
		return nil
	}

	for _, entry := range m.Import.Entries {
		switch entry.Kind {
		case ExternalFunction:
			fi, ok := entry.Type.(FuncImport)
			if !ok {
				return InvalidExternalError(entry.Kind)
			}
			if int(fi.Type) >= len(m.Types.Entries) {
				return InvalidFunctionIndexError(fi.Type)
			}
			m.FunctionIndexSpace = append(m.FunctionIndexSpace, Function{
				Sig:        &m.Types.Entries[fi.Type],
				IsImported: true,
				ModuleName: entry.ModuleName,
				FieldName:  entry.FieldName,
			})
			m.ImportedFuncs++
		case ExternalGlobal:
			gi, ok := entry.Type.(GlobalVarImport)
			if !ok {
				return InvalidExternalError(entry.Kind)
			}
			m.GlobalIndexSpace = append(m.GlobalIndexSpace, GlobalEntry{Type: &gi.Type})
			m.ImportedGlobals++
		case ExternalTable:
			m.ImportedTables++
		case ExternalMemory:
			m.ImportedMemories++
		default:
			return InvalidExternalError(entry.Kind)
		}
	}
	return nil
}
