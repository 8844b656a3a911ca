// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

// Structured control and branch operators. All of these have a stack
// effect that depends on immediates (a block's declared signature, a
// branch's target arity, a callee's signature) rather than a static
// Args/Returns pair, so they are registered Polymorphic and the
// decoder derives their effect from the frame stack.

var (
	Unreachable  = newPolymorphicOp(0x00, "unreachable", CategoryUnreachable)
	Nop          = newOp(0x01, "nop", nil, noReturn, CategoryNop)
	Block        = newPolymorphicOp(0x02, "block", CategoryBlock)
	Loop         = newPolymorphicOp(0x03, "loop", CategoryLoop)
	If           = newPolymorphicOp(0x04, "if", CategoryIf)
	Else         = newPolymorphicOp(0x05, "else", CategoryElse)
	End          = newPolymorphicOp(0x0b, "end", CategoryEnd)
	Br           = newPolymorphicOp(0x0c, "br", CategoryBr)
	BrIf         = newPolymorphicOp(0x0d, "br_if", CategoryBrIf)
	BrTable      = newPolymorphicOp(0x0e, "br_table", CategoryBrTable)
	Return       = newPolymorphicOp(0x0f, "return", CategoryReturn)
	Call         = newPolymorphicOp(0x10, "call", CategoryCall)
	CallIndirect = newPolymorphicOp(0x11, "call_indirect", CategoryCallIndirect)
)
