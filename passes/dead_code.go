// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package passes

import "github.com/wasmdecompile/wasmdecompile/ir"

// eliminateDeadCode discards every block unreachable from the entry
// block, following jump-threading (which can orphan the blocks it
// routes around) and the structurer (which folds whole regions into
// their predecessor).
func eliminateDeadCode(fn *ir.Func) {
	alive := map[ir.BlockIndex]bool{fn.EntryBlock: true}
	stack := []ir.BlockIndex{fn.EntryBlock}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		block, ok := fn.Blocks[current]
		if !ok {
			continue
		}
		for _, succ := range block.Successors() {
			if !alive[succ] {
				alive[succ] = true
				stack = append(stack, succ)
			}
		}
	}

	for idx := range fn.Blocks {
		if !alive[idx] {
			delete(fn.Blocks, idx)
		}
	}
}
