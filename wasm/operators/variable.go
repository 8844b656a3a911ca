// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operators

// Local/global accessors: the value type involved depends on the
// referenced local or global's declared type, so these are Polymorphic
// and the decoder resolves the type from the function's local list or
// the module's global index space.

var (
	GetLocal  = newPolymorphicOp(0x20, "local.get", CategoryLocalGet)
	SetLocal  = newPolymorphicOp(0x21, "local.set", CategoryLocalSet)
	TeeLocal  = newPolymorphicOp(0x22, "local.tee", CategoryLocalTee)
	GetGlobal = newPolymorphicOp(0x23, "global.get", CategoryGlobalGet)
	SetGlobal = newPolymorphicOp(0x24, "global.set", CategoryGlobalSet)
)
