// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dot renders a decompiled ir.Func as a GraphViz DOT graph,
// backing the CLI's `-g` flag.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/wasmdecompile/wasmdecompile/ir"
	"github.com/wasmdecompile/wasmdecompile/printer"
)

// Write renders fn's block graph as a DOT digraph to w: one node per
// block, labeled with its rendered body, and one edge per control
// transfer; the entry block is filled a distinct color.
func Write(w io.Writer, fn *ir.Func) error {
	if _, err := fmt.Fprintf(w, "digraph func_%d {\n", fn.Index); err != nil {
		return err
	}
	io.WriteString(w, "  rankdir=TB;\n")
	io.WriteString(w, "  node [shape=box, style=filled, fillcolor=lightblue, labeljust=l];\n\n")

	order := fn.VisualBlockOrder()
	for _, idx := range order {
		block, ok := fn.Blocks[idx]
		if !ok {
			continue
		}
		label := blockLabel(fn, idx, block)
		if _, err := fmt.Fprintf(w, "  block_%d [label=\"%s\"];\n", idx, label); err != nil {
			return err
		}
	}
	io.WriteString(w, "\n")

	for _, idx := range order {
		block, ok := fn.Blocks[idx]
		if !ok {
			continue
		}
		for _, succ := range block.Successors() {
			if _, err := fmt.Fprintf(w, "  block_%d -> block_%d;\n", idx, succ); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "  block_%d [fillcolor=lightgreen];\n", fn.EntryBlock); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// blockLabel renders one block's body through the pretty-printer and
// escapes it for DOT's quoted-string label syntax: backslashes and
// quotes are escaped, and newlines become GraphViz's left-justified
// line break ("\l") so a multi-statement block reads top-to-bottom
// instead of collapsing onto one line.
func blockLabel(fn *ir.Func, idx ir.BlockIndex, block *ir.Block) string {
	body := printer.Block(fn, idx, block)
	body = strings.ReplaceAll(body, `\`, `\\`)
	body = strings.ReplaceAll(body, `"`, `\"`)
	body = strings.ReplaceAll(body, "\n", `\l`)
	return body + `\l`
}
