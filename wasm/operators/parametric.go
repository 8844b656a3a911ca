// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

// Drop and Select both have a stack effect that depends on the type of
// the value(s) involved, not a fixed Args/Returns pair.

var (
	Drop   = newPolymorphicOp(0x1a, "drop", CategoryDrop)
	Select = newPolymorphicOp(0x1b, "select", CategorySelect)
)
