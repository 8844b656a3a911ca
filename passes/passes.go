// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package passes reduces a freshly decoded ir.Func into the smaller,
// more readable block graph the pretty-printer and DOT emitter expect:
// jump-threading collapses pure forwarding blocks, the two-rule
// structurer folds diamond-shaped br_if regions into an if/else
// statement, dead-code elimination drops anything the structurer or
// jump-threading orphaned, and a final reverse-postorder renumbering
// makes the surviving block indices dense and print-order-friendly.
package passes

import "github.com/wasmdecompile/wasmdecompile/ir"

// Reduce runs the full optimization pipeline on fn in place.
func Reduce(fn *ir.Func) {
	jumpThreading(fn)
	eliminateDeadCode(fn)

	for mergeTrivialBranchBlocks(fn) || mergeIfBlocks(fn) {
		eliminateDeadCode(fn)
	}

	renumber(fn)
}
