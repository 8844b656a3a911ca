// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package printer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wasmdecompile/wasmdecompile/ir"
	"github.com/wasmdecompile/wasmdecompile/wasm"
)

// Func renders a whole decompiled function as pseudo-source text.
func Func(fn *ir.Func) string {
	a := Allocator{}
	return Render(funcDoc(a, fn))
}

func funcDoc(a Allocator, fn *ir.Func) Doc {
	nparams := len(fn.Type.ParamTypes)

	var items []Doc
	for _, local := range fn.Locals[nparams:] {
		items = append(items, a.Text(fmt.Sprintf("%s: %s", local.Name, local.Type)))
	}

	order := fn.VisualBlockOrder()
	for i, idx := range order {
		block := fn.Blocks[idx]
		isLast := i == len(order)-1
		if doc, ok := blockDoc(a, fn, idx, block, idx == fn.EntryBlock, isLast); ok {
			items = append(items, doc)
		}
	}

	header := a.Text("func " + funcName(fn.Index) + signature(fn, nparams))
	if len(items) == 0 {
		return a.Concat(header, a.Space(), a.Text("{}"))
	}

	body := a.Nest(2, a.Concat(
		a.Hardline(),
		a.Intersperse(items, a.Concat(a.Hardline(), a.Hardline())),
	))
	return a.Concat(header, a.Space(), a.Text("{"), body, a.Hardline(), a.Text("}"))
}

func funcName(index uint32) string { return fmt.Sprintf("func%d", index) }

func signature(fn *ir.Func, nparams int) string {
	parts := make([]string, nparams)
	for i := 0; i < nparams; i++ {
		parts[i] = fmt.Sprintf("%s: %s", fn.Locals[i].Name, fn.Locals[i].Type)
	}
	sig := "(" + strings.Join(parts, ", ") + ")"
	if len(fn.Type.ReturnTypes) == 1 {
		sig += " -> " + fn.Type.ReturnTypes[0].String()
	}
	return sig
}

// blockDoc renders one block. The entry block's own label is elided —
// its statements and terminator read as the function's straight-line
// start — and a final, parameter-free, value-free return is dropped
// entirely (the function simply falls off the end).
func blockDoc(a Allocator, fn *ir.Func, idx ir.BlockIndex, block *ir.Block, isEntry, isLast bool) (Doc, bool) {
	var lines []Doc
	for _, stmt := range block.Statements {
		lines = append(lines, statementDoc(a, fn, stmt))
	}
	if doc, ok := terminatorDoc(a, fn, block.Terminator, isLast); ok {
		lines = append(lines, doc)
	}

	if len(lines) == 0 {
		if isEntry {
			return Doc{}, false
		}
		return a.Text(blockLabel(idx, block.Params) + ":"), true
	}

	body := a.Nest(2, a.Concat(a.Hardline(), a.Intersperse(lines, a.Hardline())))
	if isEntry {
		return body, true
	}
	return a.Concat(a.Text(blockLabel(idx, block.Params)+":"), body), true
}

// Block renders a single block standalone, always with its label and
// full terminator (no entry-label elision or trailing-return
// suppression — both are whole-function conventions that make no
// sense applied to one node of a DOT graph).
func Block(fn *ir.Func, idx ir.BlockIndex, block *ir.Block) string {
	a := Allocator{}
	var lines []Doc
	for _, stmt := range block.Statements {
		lines = append(lines, statementDoc(a, fn, stmt))
	}
	if doc, ok := terminatorDoc(a, fn, block.Terminator, false); ok {
		lines = append(lines, doc)
	}

	label := a.Text(blockLabel(idx, block.Params) + ":")
	if len(lines) == 0 {
		return Render(label)
	}
	body := a.Nest(2, a.Concat(a.Hardline(), a.Intersperse(lines, a.Hardline())))
	return Render(a.Concat(label, body))
}

func blockLabel(idx ir.BlockIndex, params []wasm.ValueType) string {
	if len(params) == 0 {
		return fmt.Sprintf("@%d", idx)
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("b%d: %s", i, p)
	}
	return fmt.Sprintf("@%d(%s)", idx, strings.Join(parts, ", "))
}

func statementDoc(a Allocator, fn *ir.Func, s ir.Statement) Doc {
	switch s.Kind {
	case ir.StmtNop:
		return a.Text("nop")
	case ir.StmtDrop:
		return a.Concat(a.Text("drop"), a.Parens(exprDoc(a, fn, &s.Expr)))
	case ir.StmtLocalSet:
		return a.Concat(a.Text(fn.Locals[s.LocalIndex].Name), a.Text(" = "), exprDoc(a, fn, &s.Expr))
	case ir.StmtLocalSetN:
		names := make([]string, len(s.LocalIndices))
		for i, idx := range s.LocalIndices {
			names[i] = fn.Locals[idx].Name
		}
		return a.Concat(a.Text(strings.Join(names, ", ")), a.Text(" = "), exprDoc(a, fn, &s.Expr))
	case ir.StmtGlobalSet:
		return a.Concat(a.Text(fmt.Sprintf("globals[%d] = ", s.GlobalIndex)), exprDoc(a, fn, &s.Expr))
	case ir.StmtMemoryStore:
		width := ""
		if s.StoreWidthBits != 0 {
			width = fmt.Sprintf(".%d", s.StoreWidthBits)
		}
		return a.Concat(
			a.Text(fmt.Sprintf("*%s", width)), a.Parens(exprDoc(a, fn, &s.Address)),
			a.Text(" = "), exprDoc(a, fn, &s.Expr),
		)
	case ir.StmtCall, ir.StmtCallIndirect:
		return exprDoc(a, fn, &s.Call)
	case ir.StmtIf:
		trueBody := a.Nest(2, a.Concat(a.Hardline(), statementsDoc(a, fn, s.TrueBody)))
		falseBody := a.Nest(2, a.Concat(a.Hardline(), statementsDoc(a, fn, s.FalseBody)))
		return a.Concat(
			a.Text("if "), exprDoc(a, fn, &s.Condition), a.Text(" {"),
			trueBody, a.Hardline(), a.Text("} else {"),
			falseBody, a.Hardline(), a.Text("}"),
		)
	default:
		return a.Text("<unknown statement>")
	}
}

func statementsDoc(a Allocator, fn *ir.Func, stmts []ir.Statement) Doc {
	if len(stmts) == 0 {
		return a.Text("nop")
	}
	docs := make([]Doc, len(stmts))
	for i, s := range stmts {
		docs[i] = statementDoc(a, fn, s)
	}
	return a.Intersperse(docs, a.Hardline())
}

// terminatorDoc renders t, or reports false when t is the suppressed
// trailing empty return (only at the last block of the function).
func terminatorDoc(a Allocator, fn *ir.Func, t ir.Terminator, isLast bool) (Doc, bool) {
	if isLast && t.IsEmptyReturn() {
		return Doc{}, false
	}
	switch t.Kind {
	case ir.TermUnreachable:
		return a.Text("unreachable"), true
	case ir.TermReturn:
		return a.Concat(a.Text("return "), exprListDoc(a, fn, t.Values)), true
	case ir.TermBr:
		return a.Concat(a.Text(fmt.Sprintf("br @%d", t.Target)), parenValues(a, fn, t.Values)), true
	case ir.TermBrIf:
		vals := parenValues(a, fn, t.Values)
		return a.Concat(
			a.Text("if "), exprDoc(a, fn, &t.Condition), a.Hardline(),
			a.Nest(2, a.Concat(a.Text(fmt.Sprintf("br @%d", t.TrueTarget)), vals)),
			a.Hardline(), a.Text("else"), a.Hardline(),
			a.Nest(2, a.Concat(a.Text(fmt.Sprintf("br @%d", t.FalseTarget)), vals)),
		), true
	case ir.TermBrTable:
		targets := make([]string, len(t.Targets))
		for i, target := range t.Targets {
			targets[i] = fmt.Sprintf("@%d", target)
		}
		return a.Text(fmt.Sprintf("br_table [%s] default @%d", strings.Join(targets, ", "), t.Default)), true
	default:
		return a.Text("<unterminated>"), true
	}
}

func parenValues(a Allocator, fn *ir.Func, values []ir.Expression) Doc {
	if len(values) == 0 {
		return a.Nil()
	}
	return a.Parens(exprListDoc(a, fn, values))
}

func exprListDoc(a Allocator, fn *ir.Func, values []ir.Expression) Doc {
	docs := make([]Doc, len(values))
	for i := range values {
		docs[i] = exprDoc(a, fn, &values[i])
	}
	return a.Intersperse(docs, a.Text(", "))
}

// formatF32/formatF64 render a raw bit pattern without canonicalizing
// NaN: a NaN's sign and payload survive into the printed form, unlike
// simply formatting math.Float32frombits's result (which always prints
// the platform's canonical "NaN").
func formatF32(bits uint32) string {
	f := math.Float32frombits(bits)
	if !math.IsNaN(float64(f)) {
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	sign := ""
	if bits&0x80000000 != 0 {
		sign = "-"
	}
	return fmt.Sprintf("%snan:0x%06x", sign, bits&0x7fffff)
}

func formatF64(bits uint64) string {
	f := math.Float64frombits(bits)
	if !math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	sign := ""
	if bits&0x8000000000000000 != 0 {
		sign = "-"
	}
	return fmt.Sprintf("%snan:0x%013x", sign, bits&0xfffffffffffff)
}

func exprDoc(a Allocator, fn *ir.Func, e *ir.Expression) Doc {
	switch e.Kind {
	case ir.ExprI32Const:
		return a.Text(strconv.FormatInt(int64(e.I32Value), 10))
	case ir.ExprI64Const:
		return a.Text(strconv.FormatInt(e.I64Value, 10))
	case ir.ExprF32Const:
		return a.Text(formatF32(e.F32Bits))
	case ir.ExprF64Const:
		return a.Text(formatF64(e.F64Bits))
	case ir.ExprBlockParam:
		return a.Text(fmt.Sprintf("b%d", e.ParamIndex))
	case ir.ExprUnary:
		return a.Concat(a.Text(e.UnaryOp.String()), a.Parens(exprDoc(a, fn, e.Operand)))
	case ir.ExprBinary:
		text, infix := e.BinaryOp.StringAndInfix()
		lhs, rhs := exprDoc(a, fn, e.Operands[0]), exprDoc(a, fn, e.Operands[1])
		if infix {
			return a.Concat(lhs, a.Text(" "+text+" "), rhs)
		}
		return a.Concat(a.Text(text+" "), lhs, a.Text(" "), rhs)
	case ir.ExprCall:
		args := make([]Doc, len(e.Args))
		for i, arg := range e.Args {
			args[i] = exprDoc(a, fn, arg)
		}
		return a.Concat(a.Text(funcName(e.FuncIndex)), a.Parens(a.Intersperse(args, a.Text(", "))))
	case ir.ExprCallIndirect:
		args := make([]Doc, len(e.Args))
		for i, arg := range e.Args {
			args[i] = exprDoc(a, fn, arg)
		}
		return a.Concat(exprDoc(a, fn, e.Callee), a.Parens(a.Intersperse(args, a.Text(", "))))
	case ir.ExprGetLocal:
		return a.Text(fn.Locals[e.LocalIndex].Name)
	case ir.ExprGetLocalN:
		names := make([]string, len(e.LocalIndices))
		for i, idx := range e.LocalIndices {
			names[i] = fn.Locals[idx].Name
		}
		return a.Text(strings.Join(names, ", "))
	case ir.ExprGetGlobal:
		return a.Text(fmt.Sprintf("globals[%d]", e.GlobalIndex))
	case ir.ExprSelect:
		return a.Concat(
			exprDoc(a, fn, e.Condition), a.Text(" ? "),
			exprDoc(a, fn, e.OnTrue), a.Text(" : "), exprDoc(a, fn, e.OnFalse),
		)
	case ir.ExprMemoryLoad:
		return a.Concat(a.Text("memory"), a.Brackets(exprDoc(a, fn, e.Address)))
	case ir.ExprMemorySize:
		return a.Text("memory.size")
	case ir.ExprMemoryGrow:
		return a.Concat(a.Text("memory.grow"), a.Parens(exprDoc(a, fn, e.Grow)))
	case ir.ExprBottom:
		return a.Text("<bottom>")
	default:
		return a.Text("<unknown expr>")
	}
}
