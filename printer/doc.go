// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package printer renders a decompiled ir.Func as pseudo-source text.
// Rendering is driven by a small document allocator — nest/hardline/
// text/concat combinators — rather than direct string concatenation,
// so indentation stays a property of the document tree instead of
// something every call site has to track by hand.
package printer

import "strings"

// Doc is an immutable node of a pretty-printed document. The zero
// value is the empty document.
type Doc struct {
	kind   docKind
	text   string
	indent int
	parts  []Doc
}

type docKind uint8

const (
	docNil docKind = iota
	docText
	docHardline
	docConcat
	docNest
)

// Allocator builds Docs. It carries no state; its only purpose is to
// give the construction methods a receiver, matching the teacher
// corpus's convention of grouping related builders behind one type
// (e.g. wasm/operators' table-building helpers) instead of bare
// package-level functions.
type Allocator struct{}

// Text wraps a literal string as a Doc.
func (Allocator) Text(s string) Doc { return Doc{kind: docText, text: s} }

// Nil is the empty document; appending it is a no-op.
func (Allocator) Nil() Doc { return Doc{kind: docNil} }

// Space is a single literal space.
func (a Allocator) Space() Doc { return a.Text(" ") }

// Hardline forces a line break, followed by the current indent.
func (Allocator) Hardline() Doc { return Doc{kind: docHardline} }

// Concat joins docs in sequence.
func (Allocator) Concat(docs ...Doc) Doc {
	return Doc{kind: docConcat, parts: docs}
}

// Append is Concat for exactly two docs, the common case of chaining.
func (a Allocator) Append(d, next Doc) Doc { return a.Concat(d, next) }

// Nest increases the indent level applied after every Hardline inside
// d by n columns.
func (Allocator) Nest(n int, d Doc) Doc { return Doc{kind: docNest, indent: n, parts: []Doc{d}} }

// Intersperse concatenates docs, inserting sep between each pair.
func (a Allocator) Intersperse(docs []Doc, sep Doc) Doc {
	if len(docs) == 0 {
		return a.Nil()
	}
	parts := make([]Doc, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return a.Concat(parts...)
}

// Wrap encloses d in the given open/close brackets.
func (a Allocator) Wrap(open string, d Doc, close string) Doc {
	return a.Concat(a.Text(open), d, a.Text(close))
}

func (a Allocator) Parens(d Doc) Doc   { return a.Wrap("(", d, ")") }
func (a Allocator) Brackets(d Doc) Doc { return a.Wrap("[", d, "]") }
func (a Allocator) Braces(d Doc) Doc   { return a.Wrap("{", d, "}") }

// Render flattens d into text, applying each Nest's indent at every
// Hardline within its scope. There is no line-fitting decision to make
// here — every Hardline in this document set is unconditional, since
// nothing in this renderer groups for a width budget.
func Render(d Doc) string {
	var b strings.Builder
	render(&b, d, 0)
	return b.String()
}

func render(b *strings.Builder, d Doc, indent int) {
	switch d.kind {
	case docNil:
	case docText:
		b.WriteString(d.text)
	case docHardline:
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", indent))
	case docConcat:
		for _, part := range d.parts {
			render(b, part, indent)
		}
	case docNest:
		render(b, d.parts[0], indent+d.indent)
	}
}
