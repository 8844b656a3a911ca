// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decode lowers a single function body's stack-machine bytecode
// into the control-flow-graph form in package ir: one basic block per
// structured-control-flow edge, with block parameters standing in for
// the values a branch carries across a merge point.
package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/wasmdecompile/wasmdecompile/ir"
	"github.com/wasmdecompile/wasmdecompile/wasm"
	"github.com/wasmdecompile/wasmdecompile/wasm/leb128"
	"github.com/wasmdecompile/wasmdecompile/wasm/operators"
)

// satPrefix introduces the 8 non-trapping float-to-int conversions; the
// operators package has no exported name for it since it is a framing
// byte, not an operator.
const satPrefix = 0xfc

const blockTypeEmpty = -0x40

// frameKind discriminates the structured control constructs a function
// body can nest: the implicit outermost function frame, a plain block,
// a loop, and an if (an if that has entered its else arm is the same
// frameKind with hasElse set, not a separate state).
type frameKind uint8

const (
	frameFunc frameKind = iota
	frameBlock
	frameLoop
	frameIf
)

// frame tracks one level of control-construct nesting while a function
// body is being decoded. branchTarget is where a `br` naming this
// frame's relative depth lands: a block/if's continuation, a loop's own
// header (branching to a loop always means "continue"), or (for the
// function frame) the function's shared return block. contBlock is
// where decoding resumes once this construct's `end` is reached; it
// differs from branchTarget only for a loop, whose post-loop code is
// never itself a branch target in this subset.
type frame struct {
	kind         frameKind
	branchTarget ir.BlockIndex
	contBlock    ir.BlockIndex
	elseBlock    ir.BlockIndex
	hasElse      bool
	hasResult    bool
	resultType   wasm.ValueType
	stackBase    int
	unreachable  bool
}

// decoder holds the state threaded through one function body's decode.
type decoder struct {
	module  *wasm.Module
	funcIdx uint32
	fn      *ir.Func
	code    *bytes.Reader

	frames []frame
	stack  []ir.Expression

	cur         ir.BlockIndex
	returnBlock ir.BlockIndex
	tempCount   uint32
}

// Func decodes the body of the funcIndex'th entry of module's function
// index space into IR. Callers are expected to have already skipped
// imported functions (IsImported == true), which carry no Body.
func Func(module *wasm.Module, funcIndex uint32, body *wasm.FunctionBody) (*ir.Func, error) {
	sig, err := module.GetFunctionSig(funcIndex)
	if err != nil {
		return nil, err
	}
	if len(sig.ReturnTypes) > 1 {
		return nil, UnsupportedFeatureError{Feature: "multi-value function result", FuncIdx: funcIndex}
	}

	fn := ir.NewFunc(funcIndex, *sig)
	for i, t := range sig.ParamTypes {
		fn.AddLocal(t, paramName(i))
	}
	addDeclaredLocals(fn, body.Locals)

	hasResult := len(sig.ReturnTypes) == 1
	var resultType wasm.ValueType
	if hasResult {
		resultType = sig.ReturnTypes[0]
	}

	d := &decoder{
		module:  module,
		funcIdx: funcIndex,
		fn:      fn,
		code:    bytes.NewReader(body.Code),
	}

	entryIdx, _ := fn.AllocBlock(nil)
	returnIdx, returnBlock := fn.AllocBlock(blockParams(hasResult, resultType))
	returnBlock.Terminator = ir.Terminator{Kind: ir.TermReturn, Values: paramExprs(hasResult)}
	fn.EntryBlock = entryIdx
	d.returnBlock = returnIdx
	d.cur = entryIdx
	d.frames = []frame{{
		kind:         frameFunc,
		branchTarget: returnIdx,
		contBlock:    returnIdx,
		hasResult:    hasResult,
		resultType:   resultType,
		stackBase:    0,
	}}

	for d.code.Len() > 0 {
		op, err := d.fetchByte()
		if err != nil {
			return nil, err
		}
		if err := d.step(op); err != nil {
			return nil, err
		}
	}
	if err := d.finishFunc(); err != nil {
		return nil, err
	}
	return fn, nil
}

func paramName(i int) string { return fmt.Sprintf("p%d", i) }

// addDeclaredLocals appends body's local declarations to fn, naming
// each by a short prefix for its type and a per-type counter (p0, p1
// are parameters; i0, l0, f0, d0 are the first declared i32/i64/f32/f64
// local respectively).
func addDeclaredLocals(fn *ir.Func, entries []wasm.LocalEntry) {
	prefix := map[wasm.ValueType]string{
		wasm.ValueTypeI32: "i",
		wasm.ValueTypeI64: "l",
		wasm.ValueTypeF32: "f",
		wasm.ValueTypeF64: "d",
	}
	counters := map[wasm.ValueType]int{}
	for _, entry := range entries {
		for i := uint32(0); i < entry.Count; i++ {
			n := counters[entry.Type]
			counters[entry.Type] = n + 1
			fn.AddLocal(entry.Type, fmt.Sprintf("%s%d", prefix[entry.Type], n))
		}
	}
}

func blockParams(hasResult bool, t wasm.ValueType) []wasm.ValueType {
	if !hasResult {
		return nil
	}
	return []wasm.ValueType{t}
}

func paramExprs(hasResult bool) []ir.Expression {
	if !hasResult {
		return nil
	}
	return []ir.Expression{{Kind: ir.ExprBlockParam, ParamIndex: 0}}
}

// step reads one operator's immediates — unconditionally, since the
// byte stream must advance regardless of reachability — then builds IR
// for it unless the enclosing frame is already unreachable, in which
// case only structured control operators (which must still balance
// frames correctly) run.
func (d *decoder) step(op byte) error {
	switch op {
	case operators.Block:
		return d.visitBlockOp()
	case operators.Loop:
		return d.visitLoopOp()
	case operators.If:
		return d.visitIfOp()
	case operators.Else:
		return d.visitElseOp()
	case operators.End:
		return d.visitEndOp()

	case operators.Unreachable:
		if d.frameUnreachable(0) {
			return nil
		}
		return d.visitUnreachableOp()

	case operators.Return:
		if d.frameUnreachable(0) {
			return nil
		}
		return d.visitReturnOp()

	case operators.Br:
		depth, err := d.fetchVarUint32()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.visitBrOp(depth)

	case operators.BrIf:
		depth, err := d.fetchVarUint32()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.visitBrIfOp(depth)

	case operators.BrTable:
		depths, def, err := d.fetchBrTable()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.visitBrTableOp(depths, def)

	case satPrefix:
		sub, err := d.fetchVarUint32()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		uop, ok := satUnaryOpFor[byte(sub)]
		if !ok {
			return InvalidOpcodeError{FuncIdx: d.funcIdx, Opcode: byte(sub)}
		}
		v := d.pop()
		d.push(ir.Expression{Kind: ir.ExprUnary, UnaryOp: uop, Operand: &v})
		return nil

	default:
		return d.visitGeneralOp(op)
	}
}

// visitGeneralOp handles every operator outside structured control flow
// and branching: constants, arithmetic, memory access, locals, globals,
// calls and the two stack-shape operators (drop, select).
func (d *decoder) visitGeneralOp(op byte) error {
	info, err := operators.New(op)
	if err != nil {
		return InvalidOpcodeError{FuncIdx: d.funcIdx, Opcode: op}
	}

	switch info.Category {
	case operators.CategoryConst:
		return d.visitConstOp(op)

	case operators.CategoryLocalGet, operators.CategoryLocalSet, operators.CategoryLocalTee:
		idx, err := d.fetchVarUint32()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.emitLocalOp(info.Category, idx)

	case operators.CategoryGlobalGet, operators.CategoryGlobalSet:
		idx, err := d.fetchVarUint32()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.emitGlobalOp(info.Category, idx)

	case operators.CategoryLoad:
		mem, err := d.fetchMemArg()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.emitLoad(op, info, mem)

	case operators.CategoryStore:
		mem, err := d.fetchMemArg()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.emitStore(op, mem)

	case operators.CategoryMemorySize:
		if _, err := d.fetchByte(); err != nil { // reserved
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		d.push(ir.Expression{Kind: ir.ExprMemorySize})
		return nil

	case operators.CategoryMemoryGrow:
		if _, err := d.fetchByte(); err != nil { // reserved
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		delta := d.pop()
		d.push(ir.Expression{Kind: ir.ExprMemoryGrow, Grow: &delta})
		return nil

	case operators.CategoryCall:
		idx, err := d.fetchVarUint32()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.emitCall(idx)

	case operators.CategoryCallIndirect:
		typeIdx, err := d.fetchVarUint32()
		if err != nil {
			return err
		}
		if _, err := d.fetchByte(); err != nil { // table index (always 0 in this subset)
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		return d.emitCallIndirect(typeIdx)

	case operators.CategoryDrop:
		if d.frameUnreachable(0) {
			return nil
		}
		v := d.pop()
		d.emitStmt(ir.Statement{Kind: ir.StmtDrop, Expr: v})
		return nil

	case operators.CategorySelect:
		if d.frameUnreachable(0) {
			return nil
		}
		cond := d.pop()
		onFalse := d.pop()
		onTrue := d.pop()
		d.push(ir.Expression{Kind: ir.ExprSelect, Condition: &cond, OnTrue: &onTrue, OnFalse: &onFalse})
		return nil

	case operators.CategoryNop:
		if d.frameUnreachable(0) {
			return nil
		}
		d.emitStmt(ir.Statement{Kind: ir.StmtNop})
		return nil

	case operators.CategoryUnary, operators.CategoryBinary, operators.CategoryCompare:
		if d.frameUnreachable(0) {
			return nil
		}
		return d.emitArith(op, info.Category)

	default:
		return InvalidOpcodeError{FuncIdx: d.funcIdx, Opcode: op}
	}
}

func (d *decoder) visitConstOp(op byte) error {
	switch op {
	case operators.I32Const:
		v, err := d.fetchVarint32()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		d.push(ir.Expression{Kind: ir.ExprI32Const, I32Value: v})
	case operators.I64Const:
		v, err := d.fetchVarint64()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		d.push(ir.Expression{Kind: ir.ExprI64Const, I64Value: v})
	case operators.F32Const:
		v, err := d.fetchUint32()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		d.push(ir.Expression{Kind: ir.ExprF32Const, F32Bits: v})
	case operators.F64Const:
		v, err := d.fetchUint64()
		if err != nil {
			return err
		}
		if d.frameUnreachable(0) {
			return nil
		}
		d.push(ir.Expression{Kind: ir.ExprF64Const, F64Bits: v})
	}
	return nil
}

func (d *decoder) emitLocalOp(cat operators.Category, idx uint32) error {
	switch cat {
	case operators.CategoryLocalGet:
		d.push(ir.Expression{Kind: ir.ExprGetLocal, LocalIndex: idx})
	case operators.CategoryLocalSet:
		v := d.pop()
		d.emitStmt(ir.Statement{Kind: ir.StmtLocalSet, LocalIndex: idx, Expr: v})
	case operators.CategoryLocalTee:
		v := d.pop()
		d.emitStmt(ir.Statement{Kind: ir.StmtLocalSet, LocalIndex: idx, Expr: v})
		d.push(ir.Expression{Kind: ir.ExprGetLocal, LocalIndex: idx})
	}
	return nil
}

func (d *decoder) emitGlobalOp(cat operators.Category, idx uint32) error {
	switch cat {
	case operators.CategoryGlobalGet:
		d.push(ir.Expression{Kind: ir.ExprGetGlobal, GlobalIndex: idx})
	case operators.CategoryGlobalSet:
		v := d.pop()
		d.emitStmt(ir.Statement{Kind: ir.StmtGlobalSet, GlobalIndex: idx, Expr: v})
	}
	return nil
}

func (d *decoder) emitLoad(op byte, info operators.Op, mem ir.MemArg) error {
	addr := d.pop()
	var widthBits uint8
	var signed bool
	if n, ok := loadNarrowingFor[op]; ok {
		widthBits, signed = n.widthBits, n.signed
	}
	d.push(ir.Expression{
		Kind:          ir.ExprMemoryLoad,
		LoadType:      info.Returns,
		LoadWidthBits: widthBits,
		LoadSigned:    signed,
		MemArg:        mem,
		Address:       &addr,
	})
	return nil
}

func (d *decoder) emitStore(op byte, mem ir.MemArg) error {
	value := d.pop()
	addr := d.pop()
	d.emitStmt(ir.Statement{
		Kind:           ir.StmtMemoryStore,
		Address:        addr,
		Expr:           value,
		MemArg:         mem,
		StoreWidthBits: storeWidthFor[op],
	})
	return nil
}

func (d *decoder) emitArith(op byte, cat operators.Category) error {
	switch cat {
	case operators.CategoryUnary:
		uop, ok := unaryOpFor[op]
		if !ok {
			return InvalidOpcodeError{FuncIdx: d.funcIdx, Opcode: op}
		}
		v := d.pop()
		d.push(ir.Expression{Kind: ir.ExprUnary, UnaryOp: uop, Operand: &v})

	case operators.CategoryCompare:
		if op == operators.I32Eqz {
			v := d.pop()
			d.push(ir.Expression{Kind: ir.ExprUnary, UnaryOp: ir.UnI32Eqz, Operand: &v})
			return nil
		}
		if op == operators.I64Eqz {
			v := d.pop()
			d.push(ir.Expression{Kind: ir.ExprUnary, UnaryOp: ir.UnI64Eqz, Operand: &v})
			return nil
		}
		bop, ok := compareOpFor[op]
		if !ok {
			return InvalidOpcodeError{FuncIdx: d.funcIdx, Opcode: op}
		}
		rhs, lhs := d.pop(), d.pop()
		d.push(ir.Expression{Kind: ir.ExprBinary, BinaryOp: bop, Operands: [2]*ir.Expression{&lhs, &rhs}})

	case operators.CategoryBinary:
		bop, ok := binaryOpFor[op]
		if !ok {
			return InvalidOpcodeError{FuncIdx: d.funcIdx, Opcode: op}
		}
		rhs, lhs := d.pop(), d.pop()
		d.push(ir.Expression{Kind: ir.ExprBinary, BinaryOp: bop, Operands: [2]*ir.Expression{&lhs, &rhs}})
	}
	return nil
}

func (d *decoder) emitCall(funcIndex uint32) error {
	sig, err := d.module.GetFunctionSig(funcIndex)
	if err != nil {
		return err
	}
	if len(sig.ReturnTypes) > 1 {
		return UnsupportedFeatureError{Feature: "multi-value call result", FuncIdx: d.funcIdx}
	}
	args := d.popExprPtrs(len(sig.ParamTypes))
	call := ir.Expression{Kind: ir.ExprCall, FuncIndex: funcIndex, Args: args}
	if len(sig.ReturnTypes) == 0 {
		d.emitStmt(ir.Statement{Kind: ir.StmtCall, Call: call})
		return nil
	}
	d.push(call)
	return nil
}

func (d *decoder) emitCallIndirect(typeIndex uint32) error {
	if d.module.Types == nil || int(typeIndex) >= len(d.module.Types.Entries) {
		return fmt.Errorf("decode: function %d: invalid type index %d", d.funcIdx, typeIndex)
	}
	sig := d.module.Types.Entries[typeIndex]
	if len(sig.ReturnTypes) > 1 {
		return UnsupportedFeatureError{Feature: "multi-value call result", FuncIdx: d.funcIdx}
	}
	callee := d.pop()
	args := d.popExprPtrs(len(sig.ParamTypes))
	call := ir.Expression{Kind: ir.ExprCallIndirect, FuncTypeIndex: typeIndex, Callee: &callee, Args: args}
	if len(sig.ReturnTypes) == 0 {
		d.emitStmt(ir.Statement{Kind: ir.StmtCallIndirect, Call: call})
		return nil
	}
	d.push(call)
	return nil
}

// visitBlockOp lowers `block`: the enclosing block branches into a
// fresh body block, and a join block (carrying the blocktype's result,
// if any, as its sole parameter) is reserved for what follows `end`.
func (d *decoder) visitBlockOp() error {
	hasResult, resultType, err := d.fetchBlockType()
	if err != nil {
		return err
	}
	innerIdx, _ := d.fn.AllocBlock(nil)
	joinIdx, _ := d.fn.AllocBlock(blockParams(hasResult, resultType))

	d.syncStackBeforeStatement()
	stackBase := len(d.stack)

	d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBr, Target: innerIdx}
	d.cur = innerIdx
	d.frames = append(d.frames, frame{
		kind: frameBlock, branchTarget: joinIdx, contBlock: joinIdx,
		hasResult: hasResult, resultType: resultType, stackBase: stackBase,
	})
	return nil
}

// visitLoopOp lowers `loop`: branching to relative depth 0 from inside
// the loop means "continue", i.e. jump back to the loop's own header
// block, not to whatever follows `end`.
func (d *decoder) visitLoopOp() error {
	hasResult, resultType, err := d.fetchBlockType()
	if err != nil {
		return err
	}
	headerIdx, _ := d.fn.AllocBlock(nil)
	joinIdx, _ := d.fn.AllocBlock(blockParams(hasResult, resultType))

	d.syncStackBeforeStatement()
	stackBase := len(d.stack)

	d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBr, Target: headerIdx}
	d.cur = headerIdx
	d.frames = append(d.frames, frame{
		kind: frameLoop, branchTarget: headerIdx, contBlock: joinIdx,
		hasResult: hasResult, resultType: resultType, stackBase: stackBase,
	})
	return nil
}

// visitIfOp lowers `if`: the condition selects between a then-block and
// an else-block, both branching to a shared join block. The else-block
// gets no terminator here: visitElseOp moves decoding into it if an
// `else` is actually present, and visitEndOp gives it a bare Br(join)
// if not (the no-else case is only valid with an empty blocktype in
// this subset).
func (d *decoder) visitIfOp() error {
	hasResult, resultType, err := d.fetchBlockType()
	if err != nil {
		return err
	}
	thenIdx, _ := d.fn.AllocBlock(nil)
	elseIdx, _ := d.fn.AllocBlock(nil)
	joinIdx, _ := d.fn.AllocBlock(blockParams(hasResult, resultType))

	cond := d.pop()
	d.syncStackBeforeStatement()
	stackBase := len(d.stack)

	d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBrIf, Condition: cond, TrueTarget: thenIdx, FalseTarget: elseIdx}
	d.cur = thenIdx
	d.frames = append(d.frames, frame{
		kind: frameIf, branchTarget: joinIdx, contBlock: joinIdx, elseBlock: elseIdx,
		hasResult: hasResult, resultType: resultType, stackBase: stackBase,
	})
	return nil
}

func (d *decoder) visitElseOp() error {
	f := d.frames[len(d.frames)-1]
	vals := d.popResultValues(f.hasResult)
	if f.unreachable {
		d.stack = d.stack[:f.stackBase]
	} else {
		d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBr, Target: f.contBlock, Values: vals}
	}

	f.hasElse = true
	f.unreachable = false
	d.frames[len(d.frames)-1] = f
	d.cur = f.elseBlock
	return nil
}

func (d *decoder) visitEndOp() error {
	f := d.frames[len(d.frames)-1]
	d.frames = d.frames[:len(d.frames)-1]
	vals := d.popResultValues(f.hasResult)
	if f.unreachable {
		d.stack = d.stack[:f.stackBase]
	}

	switch f.kind {
	case frameFunc:
		if !f.unreachable {
			d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBr, Target: f.branchTarget, Values: vals}
		}
		// The trailing End opcode of the function's own body is stripped
		// before decoding begins; finishFunc performs the real close.
		d.frames = append(d.frames, f)

	case frameBlock, frameLoop:
		if !f.unreachable {
			d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBr, Target: f.contBlock, Values: vals}
		}
		d.cur = f.contBlock
		if f.hasResult {
			d.push(ir.Expression{Kind: ir.ExprBlockParam, ParamIndex: 0})
		}

	case frameIf:
		if !f.unreachable {
			d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBr, Target: f.contBlock, Values: vals}
		}
		if !f.hasElse {
			d.fn.Blocks[f.elseBlock].Terminator = ir.Terminator{Kind: ir.TermBr, Target: f.contBlock}
		}
		d.cur = f.contBlock
		if f.hasResult {
			d.push(ir.Expression{Kind: ir.ExprBlockParam, ParamIndex: 0})
		}
	}
	return nil
}

// finishFunc closes the implicit function frame once the byte stream
// (which never carries the function body's own trailing End opcode) is
// exhausted.
func (d *decoder) finishFunc() error {
	if len(d.frames) != 1 {
		return fmt.Errorf("decode: function %d: %d unclosed block(s) at end of body", d.funcIdx, len(d.frames)-1)
	}
	f := d.frames[0]
	vals := d.popResultValues(f.hasResult)
	if !f.unreachable {
		d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBr, Target: f.branchTarget, Values: vals}
	}
	return nil
}

func (d *decoder) visitUnreachableOp() error {
	d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermUnreachable}
	d.afterUnconditionalBranch()
	return nil
}

// visitReturnOp pops the function's results and terminates the current
// block with TermReturn directly, rather than branching to the shared
// return block.
func (d *decoder) visitReturnOp() error {
	vals := d.popBranchParams(uint32(len(d.frames) - 1))
	d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermReturn, Values: vals}
	d.afterUnconditionalBranch()
	return nil
}

// visitBrOp always targets a Br block, never a raw Return terminator:
// the function frame's branchTarget is the shared return block, so a
// branch naming the function's own depth still lowers to Br. TermReturn
// appears only on the return block (set once, in Func) and on blocks
// ended by a `return` opcode.
func (d *decoder) visitBrOp(depth uint32) error {
	vals := d.popBranchParams(depth)
	target := d.branchTargetBlock(depth)
	d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBr, Target: target, Values: vals}
	d.afterUnconditionalBranch()
	return nil
}

// visitBrIfOp's fallthrough path is genuinely reachable, so (unlike the
// original this is ported from) it does not mark the enclosing frame
// unreachable, and it re-supplies the branch's shared argument(s) as
// the fallthrough block's own parameters so code after the br_if can
// still reference them.
func (d *decoder) visitBrIfOp(depth uint32) error {
	cond := d.pop()
	vals := d.popBranchParams(depth)
	d.syncStackBeforeStatement()

	target := d.branchTargetBlock(depth)
	paramTypes := make([]wasm.ValueType, 0, len(vals))
	for _, v := range vals {
		if t, ok := d.exprType(v); ok {
			paramTypes = append(paramTypes, t)
		}
	}
	fallthroughIdx, _ := d.fn.AllocBlock(paramTypes)

	d.fn.Blocks[d.cur].Terminator = ir.Terminator{
		Kind: ir.TermBrIf, Condition: cond, TrueTarget: target, FalseTarget: fallthroughIdx, Values: vals,
	}
	d.cur = fallthroughIdx
	for i := range paramTypes {
		d.push(ir.Expression{Kind: ir.ExprBlockParam, ParamIndex: uint32(i)})
	}
	return nil
}

func (d *decoder) visitBrTableOp(depths []uint32, defaultDepth uint32) error {
	defaultTarget := d.branchTargetBlock(defaultDepth)
	vals := d.popBranchParams(defaultDepth)

	targets := make([]ir.BlockIndex, len(depths))
	for i, depth := range depths {
		targets[i] = d.branchTargetBlock(depth)
	}

	d.fn.Blocks[d.cur].Terminator = ir.Terminator{Kind: ir.TermBrTable, Targets: targets, Default: defaultTarget, Values: vals}
	d.afterUnconditionalBranch()
	return nil
}

// frameAt returns the frame relativeDepth levels out from the
// innermost (0 names the current frame).
func (d *decoder) frameAt(relativeDepth uint32) frame {
	return d.frames[len(d.frames)-1-int(relativeDepth)]
}

func (d *decoder) frameUnreachable(relativeDepth uint32) bool {
	return d.frameAt(relativeDepth).unreachable
}

func (d *decoder) branchTargetBlock(relativeDepth uint32) ir.BlockIndex {
	return d.frameAt(relativeDepth).branchTarget
}

func (d *decoder) popBranchParams(relativeDepth uint32) []ir.Expression {
	return d.popResultValues(d.frameAt(relativeDepth).hasResult)
}

func (d *decoder) popResultValues(hasResult bool) []ir.Expression {
	if !hasResult {
		return nil
	}
	return []ir.Expression{d.pop()}
}

// afterUnconditionalBranch marks the current frame unreachable and
// drops (via explicit Drop statements, preserving any side effects)
// whatever operands the branch leaves stranded above the frame's base.
// Only genuinely unconditional control transfers (unreachable, br,
// br_table, the implicit br of return) call this. br_if's fallthrough
// stays reachable, so it must not drop anything: like block/loop/if
// entry, it leaves syncStackBeforeStatement's materialized temps sitting
// on d.stack so the fallthrough block still observes them.
func (d *decoder) afterUnconditionalBranch() {
	d.dropClobberedOperands()
	d.frames[len(d.frames)-1].unreachable = true
}

func (d *decoder) dropClobberedOperands() {
	base := d.frames[len(d.frames)-1].stackBase
	for len(d.stack) > base {
		v := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		d.appendStmt(ir.Statement{Kind: ir.StmtDrop, Expr: v})
	}
}

// pop removes and returns the top of the operand stack. Underflowing
// below the current frame's stackBase is only legal once the frame has
// gone unreachable (a polymorphic stack, where Bottom stands in for a
// value the validator proved dead code never actually produces); an
// underflow in reachable code means the decoder's own bookkeeping lost
// track of a value, so it panics there instead of manufacturing Bottom.
func (d *decoder) pop() ir.Expression {
	f := &d.frames[len(d.frames)-1]
	if len(d.stack) > f.stackBase {
		v := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		return v
	}
	if !f.unreachable {
		panic(StackUnderflowError{FuncIdx: d.funcIdx, Op: "pop"})
	}
	return ir.Expression{Kind: ir.ExprBottom}
}

func (d *decoder) popn(n int) []ir.Expression {
	out := make([]ir.Expression, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = d.pop()
	}
	return out
}

func (d *decoder) popExprPtrs(n int) []*ir.Expression {
	vals := d.popn(n)
	out := make([]*ir.Expression, n)
	for i := range vals {
		out[i] = &vals[i]
	}
	return out
}

func (d *decoder) push(e ir.Expression) {
	d.stack = append(d.stack, e)
}

func (d *decoder) appendStmt(s ir.Statement) {
	b := d.fn.Blocks[d.cur]
	b.Statements = append(b.Statements, s)
}

// emitStmt first materializes every expression still sitting on the
// operand stack into a temp local and then appends s, so the evaluation
// order a reader sees in the printed output matches the order the
// original bytecode actually computed these values in.
func (d *decoder) emitStmt(s ir.Statement) {
	d.syncStackBeforeStatement()
	d.appendStmt(s)
}

func (d *decoder) syncStackBeforeStatement() {
	base := d.frames[len(d.frames)-1].stackBase
	for i := base; i < len(d.stack); i++ {
		if d.stack[i].Kind == ir.ExprBottom {
			continue
		}
		typ, ok := d.exprType(d.stack[i])
		if !ok {
			continue
		}
		init := d.stack[i]
		idx := d.fn.AddLocal(typ, fmt.Sprintf("temp%d", d.tempCount))
		d.tempCount++
		d.stack[i] = ir.Expression{Kind: ir.ExprGetLocal, LocalIndex: idx}
		d.appendStmt(ir.Statement{Kind: ir.StmtLocalSet, LocalIndex: idx, Expr: init})
	}
}

// exprType resolves the value type an already-built Expression yields,
// for the handful of kinds whose type isn't self-contained (a local,
// global or block-param read needs the decoder's tables; a call needs
// its callee's signature).
func (d *decoder) exprType(e ir.Expression) (wasm.ValueType, bool) {
	switch e.Kind {
	case ir.ExprGetLocal:
		if int(e.LocalIndex) >= len(d.fn.Locals) {
			return 0, false
		}
		return d.fn.Locals[e.LocalIndex].Type, true
	case ir.ExprGetLocalN:
		if len(e.LocalIndices) == 0 {
			return 0, false
		}
		last := e.LocalIndices[len(e.LocalIndices)-1]
		if int(last) >= len(d.fn.Locals) {
			return 0, false
		}
		return d.fn.Locals[last].Type, true
	case ir.ExprGetGlobal:
		g, err := d.module.GetGlobalType(e.GlobalIndex)
		if err != nil {
			return 0, false
		}
		return g.Type, true
	case ir.ExprBlockParam:
		b := d.fn.Blocks[d.cur]
		if int(e.ParamIndex) >= len(b.Params) {
			return 0, false
		}
		return b.Params[e.ParamIndex], true
	case ir.ExprCall:
		sig, err := d.module.GetFunctionSig(e.FuncIndex)
		if err != nil || len(sig.ReturnTypes) == 0 {
			return 0, false
		}
		return sig.ReturnTypes[0], true
	case ir.ExprCallIndirect:
		if d.module.Types == nil || int(e.FuncTypeIndex) >= len(d.module.Types.Entries) {
			return 0, false
		}
		sig := d.module.Types.Entries[e.FuncTypeIndex]
		if len(sig.ReturnTypes) == 0 {
			return 0, false
		}
		return sig.ReturnTypes[0], true
	case ir.ExprSelect:
		return d.exprType(*e.OnTrue)
	default:
		return e.ResultType()
	}
}

// fetchBlockType reads a structured control operator's blocktype
// immediate. Wasm's varint33 blocktype can also encode a function-type
// index (the multi-value proposal); this module's wasm.BlockType is
// declared as a plain varint7 ValueType and cannot represent that case,
// so it surfaces as UnsupportedFeatureError rather than silently
// misreading the stream.
func (d *decoder) fetchBlockType() (hasResult bool, resultType wasm.ValueType, err error) {
	raw, err := leb128.ReadVarint32(d.code)
	if err != nil {
		return false, 0, TruncatedCodeError{d.funcIdx}
	}
	if raw == blockTypeEmpty {
		return false, 0, nil
	}
	vt := wasm.ValueType(raw)
	switch vt {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		return true, vt, nil
	default:
		return false, 0, UnsupportedFeatureError{Feature: "multi-value block type", FuncIdx: d.funcIdx}
	}
}

func (d *decoder) fetchMemArg() (ir.MemArg, error) {
	align, err := d.fetchVarUint32()
	if err != nil {
		return ir.MemArg{}, err
	}
	offset, err := d.fetchVarUint32()
	if err != nil {
		return ir.MemArg{}, err
	}
	return ir.MemArg{Align: align, Offset: offset}, nil
}

func (d *decoder) fetchBrTable() (targets []uint32, def uint32, err error) {
	count, err := d.fetchVarUint32()
	if err != nil {
		return nil, 0, err
	}
	targets = make([]uint32, count)
	for i := range targets {
		if targets[i], err = d.fetchVarUint32(); err != nil {
			return nil, 0, err
		}
	}
	if def, err = d.fetchVarUint32(); err != nil {
		return nil, 0, err
	}
	return targets, def, nil
}

func (d *decoder) fetchByte() (byte, error) {
	b, err := d.code.ReadByte()
	if err != nil {
		return 0, TruncatedCodeError{d.funcIdx}
	}
	return b, nil
}

func (d *decoder) fetchVarUint32() (uint32, error) {
	v, err := leb128.ReadVarUint32(d.code)
	if err != nil {
		return 0, TruncatedCodeError{d.funcIdx}
	}
	return v, nil
}

func (d *decoder) fetchVarint32() (int32, error) {
	v, err := leb128.ReadVarint32(d.code)
	if err != nil {
		return 0, TruncatedCodeError{d.funcIdx}
	}
	return v, nil
}

func (d *decoder) fetchVarint64() (int64, error) {
	v, err := leb128.ReadVarint64(d.code)
	if err != nil {
		return 0, TruncatedCodeError{d.funcIdx}
	}
	return v, nil
}

func (d *decoder) fetchUint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(d.code, buf[:]); err != nil {
		return 0, TruncatedCodeError{d.funcIdx}
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (d *decoder) fetchUint64() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(d.code, buf[:]); err != nil {
		return 0, TruncatedCodeError{d.funcIdx}
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
