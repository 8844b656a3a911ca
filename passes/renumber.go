// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package passes

import "github.com/wasmdecompile/wasmdecompile/ir"

// renumber reassigns block indices to their reverse-postorder position,
// so the dense range [0, len(blocks)) both matches print order and
// keeps every branch pointing forward except loop back-edges.
func renumber(fn *ir.Func) {
	order := rpo(fn)

	mapping := make(map[ir.BlockIndex]ir.BlockIndex, len(order))
	for i, old := range order {
		mapping[old] = ir.BlockIndex(i)
	}

	newBlocks := make(map[ir.BlockIndex]*ir.Block, len(fn.Blocks))
	for old, block := range fn.Blocks {
		block.RemapBlockIndices(mapping)
		newBlocks[mapping[old]] = block
	}
	fn.Blocks = newBlocks
	fn.EntryBlock = mapping[fn.EntryBlock]
}

// rpo computes a reverse postorder over the block graph reachable from
// the entry block.
func rpo(fn *ir.Func) []ir.BlockIndex {
	visited := make(map[ir.BlockIndex]bool, len(fn.Blocks))
	var post []ir.BlockIndex

	// Naive recursion: block graphs produced by a single function body
	// are shallow enough in practice that this hasn't needed replacing
	// with an explicit stack.
	var visit func(ir.BlockIndex)
	visit = func(idx ir.BlockIndex) {
		if visited[idx] {
			return
		}
		visited[idx] = true
		block, ok := fn.Blocks[idx]
		if !ok {
			return
		}
		for _, succ := range block.Successors() {
			visit(succ)
		}
		post = append(post, idx)
	}
	visit(fn.EntryBlock)

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}
