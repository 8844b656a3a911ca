// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decompile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasmdecompile/wasmdecompile/wasm/leb128"
	"github.com/wasmdecompile/wasmdecompile/wat"
)

func identityModule(t *testing.T) []byte {
	t.Helper()
	bin, err := wat.Encode(`(module
		(func (param i32) (result i32)
			local.get 0
			return))`)
	require.NoError(t, err)
	return bin
}

// moduleWithImport hand-assembles a type+import+function+code section
// binary (one imported function at index 0, one trivial local function
// at index 1) since wat.Encode's text subset has no import syntax.
func moduleWithImport(t *testing.T) []byte {
	t.Helper()

	var out bytes.Buffer
	out.Write([]byte{0x00, 0x61, 0x73, 0x6d}) // "\0asm"
	out.Write([]byte{0x01, 0x00, 0x00, 0x00}) // version 1

	writeSection(&out, 1, func(b *bytes.Buffer) { // type: () -> ()
		leb128.WriteVarUint32(b, 1)
		leb128.WriteVarint32(b, -0x20) // func form
		leb128.WriteVarUint32(b, 0)    // no params
		leb128.WriteVarUint32(b, 0)    // no results
	})

	writeSection(&out, 2, func(b *bytes.Buffer) { // import: one function
		leb128.WriteVarUint32(b, 1)
		writeName(b, "env")
		writeName(b, "f")
		b.WriteByte(0) // ExternalFunction
		leb128.WriteVarUint32(b, 0)
	})

	writeSection(&out, 3, func(b *bytes.Buffer) { // function: one local func
		leb128.WriteVarUint32(b, 1)
		leb128.WriteVarUint32(b, 0)
	})

	writeSection(&out, 10, func(b *bytes.Buffer) { // code: trivial body
		leb128.WriteVarUint32(b, 1)
		var body bytes.Buffer
		leb128.WriteVarUint32(&body, 0) // no locals
		body.WriteByte(0x0b)            // end
		leb128.WriteVarUint32(b, uint32(body.Len()))
		b.Write(body.Bytes())
	})

	return out.Bytes()
}

func writeSection(out *bytes.Buffer, id byte, fill func(*bytes.Buffer)) {
	var body bytes.Buffer
	fill(&body)
	leb128.WriteVarUint32(out, uint32(id))
	leb128.WriteVarUint32(out, uint32(body.Len()))
	out.Write(body.Bytes())
}

func writeName(out *bytes.Buffer, s string) {
	leb128.WriteVarUint32(out, uint32(len(s)))
	out.WriteString(s)
}

func TestModuleDecompilesEveryLocalFunction(t *testing.T) {
	mod, err := Module(bytes.NewReader(identityModule(t)))
	require.NoError(t, err)
	require.Len(t, mod.Funcs, 1)
	assert.Equal(t, 0, mod.ImportedFuncCount)
}

func TestFuncDecompilesOneFunctionByIndex(t *testing.T) {
	fn, err := Func(bytes.NewReader(identityModule(t)), 0)
	require.NoError(t, err)
	assert.NotNil(t, fn)
}

func TestFuncRejectsOutOfRangeIndex(t *testing.T) {
	_, err := Func(bytes.NewReader(identityModule(t)), 7)
	var target FunctionIndexOutOfRangeError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, uint32(7), target.Index)
	assert.Equal(t, 1, target.Count)
}

func TestFuncRejectsImportedIndex(t *testing.T) {
	bin := moduleWithImport(t)
	_, err := Func(bytes.NewReader(bin), 0)
	var target ImportedFunctionRequestedError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, uint32(0), target.Index)
}

func TestModuleSkipsImportedFuncsButDecompilesLocalOnes(t *testing.T) {
	bin := moduleWithImport(t)
	mod, err := Module(bytes.NewReader(bin))
	require.NoError(t, err)
	assert.Equal(t, 1, mod.ImportedFuncCount)
	assert.Len(t, mod.Funcs, 1)
}

func TestModuleRejectsBadMagic(t *testing.T) {
	_, err := Module(bytes.NewReader([]byte("not a wasm module")))
	var target InvalidModuleError
	require.ErrorAs(t, err, &target)
}

func TestFuncRejectsTruncatedModule(t *testing.T) {
	_, err := Func(bytes.NewReader([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}), 0)
	require.Error(t, err)
}
