// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wasmdecompile/wasmdecompile/wasm"
	"github.com/wasmdecompile/wasmdecompile/wasm/leb128"
	"github.com/wasmdecompile/wasmdecompile/wasm/operators"
)

// satPrefix introduces the 8 non-trapping float-to-int conversions,
// mirroring decode's own satPrefix constant; the two packages don't
// share it since this one encodes the opcode rather than reading it.
const satPrefix = 0xfc

const blockTypeEmpty = -0x40

// Encode transcodes src into a binary WebAssembly module: a type
// section, a function section and a code section, one entry per
// top-level (func ...) form. Every other top-level form is ignored,
// so a module written for a human reader (named exports, a memory
// declaration) still transcodes for the functions it defines.
func Encode(src string) ([]byte, error) {
	root, err := parseSource(src)
	if err != nil {
		return nil, err
	}
	if root.head != "module" {
		return nil, fmt.Errorf("wat: expected a top-level (module ...) form, got %q", root.head)
	}

	b := &builder{}
	for _, it := range root.items[1:] {
		if !it.isList() || it.list.head != "func" {
			continue
		}
		if err := b.addFunc(it.list); err != nil {
			return nil, err
		}
	}
	return b.bytes(), nil
}

type builder struct {
	types     []wasm.FunctionSig
	funcTypes []uint32
	bodies    [][]byte
}

func (b *builder) addType(sig wasm.FunctionSig) uint32 {
	for i, t := range b.types {
		if sigEqual(t, sig) {
			return uint32(i)
		}
	}
	b.types = append(b.types, sig)
	return uint32(len(b.types) - 1)
}

func sigEqual(a, b wasm.FunctionSig) bool {
	if len(a.ParamTypes) != len(b.ParamTypes) || len(a.ReturnTypes) != len(b.ReturnTypes) {
		return false
	}
	for i := range a.ParamTypes {
		if a.ParamTypes[i] != b.ParamTypes[i] {
			return false
		}
	}
	for i := range a.ReturnTypes {
		if a.ReturnTypes[i] != b.ReturnTypes[i] {
			return false
		}
	}
	return true
}

// addFunc parses one (func (param ...)* (result ...)* (local ...)*
// <instr>*) form and appends its signature and body to the builder.
func (b *builder) addFunc(fn *sexpr) error {
	idx := 1
	var params, results, locals []wasm.ValueType

headerLoop:
	for idx < len(fn.items) {
		it := fn.items[idx]
		if !it.isList() {
			break
		}
		switch it.list.head {
		case "param":
			vts, err := parseValueTypeList(it.list)
			if err != nil {
				return err
			}
			params = append(params, vts...)
		case "result":
			vts, err := parseValueTypeList(it.list)
			if err != nil {
				return err
			}
			results = append(results, vts...)
		case "local":
			vts, err := parseValueTypeList(it.list)
			if err != nil {
				return err
			}
			locals = append(locals, vts...)
		default:
			break headerLoop
		}
		idx++
	}

	sig := wasm.FunctionSig{Form: int8(wasm.TypeFunc), ParamTypes: params, ReturnTypes: results}
	typeIdx := b.addType(sig)
	b.funcTypes = append(b.funcTypes, typeIdx)

	var code bytes.Buffer
	enc := &instrEncoder{items: fn.items[idx:], buf: &code}
	if err := enc.run(); err != nil {
		return fmt.Errorf("wat: function %d: %w", len(b.bodies), err)
	}
	code.WriteByte(operators.End)

	var body bytes.Buffer
	writeLocalEntries(&body, locals)
	body.Write(code.Bytes())

	b.bodies = append(b.bodies, body.Bytes())
	return nil
}

// parseValueTypeList reads a (param|result|local ...) header list,
// accepting both the anonymous form ((param i32 i32)) and the single
// named form ((param $x i32)); names are otherwise unused since this
// package never echoes identifiers back out.
func parseValueTypeList(h *sexpr) ([]wasm.ValueType, error) {
	var out []wasm.ValueType
	items := h.items[1:]
	for i := 0; i < len(items); i++ {
		it := items[i]
		if it.isList() {
			return nil, fmt.Errorf("wat: unexpected nested list in (%s ...)", h.head)
		}
		if strings.HasPrefix(it.atom, "$") {
			i++
			if i >= len(items) {
				return nil, fmt.Errorf("wat: %s name %q has no type", h.head, it.atom)
			}
			it = items[i]
		}
		vt, err := valueType(it.atom)
		if err != nil {
			return nil, err
		}
		out = append(out, vt)
	}
	return out, nil
}

func valueType(s string) (wasm.ValueType, error) {
	switch s {
	case "i32":
		return wasm.ValueTypeI32, nil
	case "i64":
		return wasm.ValueTypeI64, nil
	case "f32":
		return wasm.ValueTypeF32, nil
	case "f64":
		return wasm.ValueTypeF64, nil
	default:
		return 0, fmt.Errorf("wat: unknown value type %q", s)
	}
}

func writeLocalEntries(body *bytes.Buffer, locals []wasm.ValueType) {
	leb128.WriteVarUint32(body, uint32(len(locals)))
	for _, vt := range locals {
		leb128.WriteVarUint32(body, 1)
		leb128.WriteVarint32(body, int32(vt))
	}
}

// instrEncoder walks one flat instruction stream — a function's body,
// or a folded if's then/else branch — emitting binary instructions.
// Structured control in this subset is written the way the text
// format's non-folded style already is: block/loop/end sit as plain
// sibling atoms in the same stream as everything else, so no recursion
// is needed for them. The one folded form this package accepts, (if
// (result T)? (then ...) (else ...)?), does recurse.
type instrEncoder struct {
	items []item
	pos   int
	buf   *bytes.Buffer
}

func (e *instrEncoder) run() error {
	for e.pos < len(e.items) {
		if err := e.step(); err != nil {
			return err
		}
	}
	return nil
}

func (e *instrEncoder) step() error {
	it := e.items[e.pos]
	e.pos++
	if it.isList() {
		if it.list.head != "if" {
			return fmt.Errorf("wat: unsupported folded form %q", it.list.head)
		}
		return e.encodeFoldedIf(it.list)
	}
	return e.encodeAtom(it.atom)
}

func (e *instrEncoder) encodeAtom(name string) error {
	if op, ok := operators.ByName(name); ok {
		return e.encodeOp(op, name)
	}
	if op, ok := operators.ByNameSat(name); ok {
		e.buf.WriteByte(satPrefix)
		_, err := leb128.WriteVarUint32(e.buf, uint32(op.Code))
		return err
	}
	return fmt.Errorf("wat: unknown instruction %q", name)
}

func (e *instrEncoder) encodeOp(op operators.Op, name string) error {
	switch op.Category {
	case operators.CategoryBlock, operators.CategoryLoop, operators.CategoryIf:
		e.buf.WriteByte(op.Code)
		return e.encodeBlockType()

	case operators.CategoryElse, operators.CategoryEnd,
		operators.CategoryReturn, operators.CategoryUnreachable, operators.CategoryNop,
		operators.CategoryDrop, operators.CategorySelect,
		operators.CategoryUnary, operators.CategoryBinary, operators.CategoryCompare:
		e.buf.WriteByte(op.Code)
		return nil

	case operators.CategoryBr, operators.CategoryBrIf:
		depth, err := e.nextUint32()
		if err != nil {
			return err
		}
		e.buf.WriteByte(op.Code)
		_, err = leb128.WriteVarUint32(e.buf, depth)
		return err

	case operators.CategoryBrTable:
		return e.encodeBrTable(op)

	case operators.CategoryCall:
		idx, err := e.nextUint32()
		if err != nil {
			return err
		}
		e.buf.WriteByte(op.Code)
		_, err = leb128.WriteVarUint32(e.buf, idx)
		return err

	case operators.CategoryCallIndirect:
		typeIdx, err := e.nextUint32()
		if err != nil {
			return err
		}
		e.buf.WriteByte(op.Code)
		if _, err := leb128.WriteVarUint32(e.buf, typeIdx); err != nil {
			return err
		}
		return e.buf.WriteByte(0x00)

	case operators.CategoryLocalGet, operators.CategoryLocalSet, operators.CategoryLocalTee,
		operators.CategoryGlobalGet, operators.CategoryGlobalSet:
		idx, err := e.nextUint32()
		if err != nil {
			return err
		}
		e.buf.WriteByte(op.Code)
		_, err = leb128.WriteVarUint32(e.buf, idx)
		return err

	case operators.CategoryConst:
		return e.encodeConst(op, name)

	case operators.CategoryLoad, operators.CategoryStore:
		return e.encodeMemArg(op)

	case operators.CategoryMemorySize, operators.CategoryMemoryGrow:
		e.buf.WriteByte(op.Code)
		return e.buf.WriteByte(0x00)

	default:
		return fmt.Errorf("wat: unsupported instruction %q", name)
	}
}

func (e *instrEncoder) nextUint32() (uint32, error) {
	if e.pos >= len(e.items) || e.items[e.pos].isList() {
		return 0, fmt.Errorf("wat: expected an integer immediate")
	}
	s := e.items[e.pos].atom
	e.pos++
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("wat: invalid integer immediate %q: %w", s, err)
	}
	return uint32(v), nil
}

func (e *instrEncoder) encodeBlockType() error {
	if e.pos < len(e.items) && e.items[e.pos].isList() && e.items[e.pos].list.head == "result" {
		vts, err := parseValueTypeList(e.items[e.pos].list)
		if err != nil {
			return err
		}
		e.pos++
		if len(vts) != 1 {
			return fmt.Errorf("wat: a block's inline result accepts exactly one type")
		}
		_, err = leb128.WriteVarint32(e.buf, int32(vts[0]))
		return err
	}
	_, err := leb128.WriteVarint32(e.buf, blockTypeEmpty)
	return err
}

// encodeFoldedIf handles the one folded sugar this package accepts:
// (if (result T)? (then <instr>*) (else <instr>*)?). The condition
// itself is never part of this form — it is whatever the flat stream
// already pushed before the (if ...) list was reached, exactly as in
// the binary encoding, where the if opcode just pops the top of stack.
func (e *instrEncoder) encodeFoldedIf(ifList *sexpr) error {
	e.buf.WriteByte(operators.If)
	items := ifList.items[1:]
	idx := 0

	if idx < len(items) && items[idx].isList() && items[idx].list.head == "result" {
		vts, err := parseValueTypeList(items[idx].list)
		if err != nil {
			return err
		}
		if len(vts) != 1 {
			return fmt.Errorf("wat: an if's inline result accepts exactly one type")
		}
		if _, err := leb128.WriteVarint32(e.buf, int32(vts[0])); err != nil {
			return err
		}
		idx++
	} else {
		if _, err := leb128.WriteVarint32(e.buf, blockTypeEmpty); err != nil {
			return err
		}
	}

	if idx >= len(items) || !items[idx].isList() || items[idx].list.head != "then" {
		return fmt.Errorf("wat: an if form requires a (then ...) branch")
	}
	thenEnc := &instrEncoder{items: items[idx].list.items[1:], buf: e.buf}
	if err := thenEnc.run(); err != nil {
		return err
	}
	idx++

	if idx < len(items) && items[idx].isList() && items[idx].list.head == "else" {
		e.buf.WriteByte(operators.Else)
		elseEnc := &instrEncoder{items: items[idx].list.items[1:], buf: e.buf}
		if err := elseEnc.run(); err != nil {
			return err
		}
		idx++
	}

	if idx != len(items) {
		return fmt.Errorf("wat: unexpected trailing form inside an if")
	}
	e.buf.WriteByte(operators.End)
	return nil
}

func (e *instrEncoder) encodeConst(op operators.Op, name string) error {
	if e.pos >= len(e.items) || e.items[e.pos].isList() {
		return fmt.Errorf("wat: %s requires a literal immediate", name)
	}
	lit := e.items[e.pos].atom
	e.pos++
	e.buf.WriteByte(op.Code)

	switch name {
	case "i32.const":
		v, err := strconv.ParseInt(lit, 0, 32)
		if err != nil {
			return fmt.Errorf("wat: invalid i32 literal %q: %w", lit, err)
		}
		_, err = leb128.WriteVarint32(e.buf, int32(v))
		return err
	case "i64.const":
		v, err := strconv.ParseInt(lit, 0, 64)
		if err != nil {
			return fmt.Errorf("wat: invalid i64 literal %q: %w", lit, err)
		}
		_, err = leb128.WriteVarint64(e.buf, v)
		return err
	case "f32.const":
		v, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			return fmt.Errorf("wat: invalid f32 literal %q: %w", lit, err)
		}
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(v)))
		_, err = e.buf.Write(b[:])
		return err
	case "f64.const":
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return fmt.Errorf("wat: invalid f64 literal %q: %w", lit, err)
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		_, err = e.buf.Write(b[:])
		return err
	default:
		return fmt.Errorf("wat: unknown const mnemonic %q", name)
	}
}

// encodeMemArg reads the optional "offset=N"/"align=N" trailing atoms
// a load/store mnemonic may carry; either or both may be omitted, in
// which case they default to zero.
func (e *instrEncoder) encodeMemArg(op operators.Op) error {
	align, offset := uint32(0), uint32(0)

loop:
	for e.pos < len(e.items) && !e.items[e.pos].isList() {
		s := e.items[e.pos].atom
		switch {
		case strings.HasPrefix(s, "offset="):
			v, err := strconv.ParseUint(s[len("offset="):], 0, 32)
			if err != nil {
				return fmt.Errorf("wat: invalid offset %q: %w", s, err)
			}
			offset = uint32(v)
		case strings.HasPrefix(s, "align="):
			v, err := strconv.ParseUint(s[len("align="):], 0, 32)
			if err != nil {
				return fmt.Errorf("wat: invalid align %q: %w", s, err)
			}
			align = uint32(v)
		default:
			break loop
		}
		e.pos++
	}

	e.buf.WriteByte(op.Code)
	if _, err := leb128.WriteVarUint32(e.buf, align); err != nil {
		return err
	}
	_, err := leb128.WriteVarUint32(e.buf, offset)
	return err
}

func (e *instrEncoder) encodeBrTable(op operators.Op) error {
	var depths []uint32
	for e.pos < len(e.items) && !e.items[e.pos].isList() {
		if _, err := strconv.ParseUint(e.items[e.pos].atom, 0, 32); err != nil {
			break
		}
		v, err := e.nextUint32()
		if err != nil {
			return err
		}
		depths = append(depths, v)
	}
	if len(depths) == 0 {
		return fmt.Errorf("wat: br_table requires at least a default target")
	}

	targets := depths[:len(depths)-1]
	def := depths[len(depths)-1]

	e.buf.WriteByte(op.Code)
	if _, err := leb128.WriteVarUint32(e.buf, uint32(len(targets))); err != nil {
		return err
	}
	for _, t := range targets {
		if _, err := leb128.WriteVarUint32(e.buf, t); err != nil {
			return err
		}
	}
	_, err := leb128.WriteVarUint32(e.buf, def)
	return err
}

func (b *builder) bytes() []byte {
	var out bytes.Buffer
	writeU32LE(&out, wasm.Magic)
	writeU32LE(&out, wasm.Version)

	writeSection(&out, wasm.SectionIDType, func(body *bytes.Buffer) {
		leb128.WriteVarUint32(body, uint32(len(b.types)))
		for _, t := range b.types {
			leb128.WriteVarint32(body, int32(wasm.TypeFunc))
			leb128.WriteVarUint32(body, uint32(len(t.ParamTypes)))
			for _, vt := range t.ParamTypes {
				leb128.WriteVarint32(body, int32(vt))
			}
			leb128.WriteVarUint32(body, uint32(len(t.ReturnTypes)))
			for _, vt := range t.ReturnTypes {
				leb128.WriteVarint32(body, int32(vt))
			}
		}
	})

	writeSection(&out, wasm.SectionIDFunction, func(body *bytes.Buffer) {
		leb128.WriteVarUint32(body, uint32(len(b.funcTypes)))
		for _, idx := range b.funcTypes {
			leb128.WriteVarUint32(body, idx)
		}
	})

	writeSection(&out, wasm.SectionIDCode, func(body *bytes.Buffer) {
		leb128.WriteVarUint32(body, uint32(len(b.bodies)))
		for _, code := range b.bodies {
			leb128.WriteVarUint32(body, uint32(len(code)))
			body.Write(code)
		}
	})

	return out.Bytes()
}

func writeU32LE(out *bytes.Buffer, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	out.Write(buf[:])
}

func writeSection(out *bytes.Buffer, id wasm.SectionID, fill func(*bytes.Buffer)) {
	var body bytes.Buffer
	fill(&body)
	leb128.WriteVarUint32(out, uint32(id))
	leb128.WriteVarUint32(out, uint32(body.Len()))
	out.Write(body.Bytes())
}
