// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package passes

import "github.com/wasmdecompile/wasmdecompile/ir"

// jumpThreading collapses references to pure forwarding blocks (no
// params, no statements, a bare branch to one target) onto their
// target directly. It is a single pass, not a fixed-point: a chain of
// two trivial blocks back to back is resolved over successive Reduce
// passes as eliminateDeadCode and the structurer loop re-run, not
// within this call.
func jumpThreading(fn *ir.Func) {
	redirect := make(map[ir.BlockIndex]ir.BlockIndex, len(fn.Blocks))
	for idx, block := range fn.Blocks {
		if target, ok := block.IsTrivial(); ok {
			redirect[idx] = target
		} else {
			redirect[idx] = idx
		}
	}
	for _, block := range fn.Blocks {
		block.RemapBlockIndices(redirect)
	}
}
