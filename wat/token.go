// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wat transcodes a small, flat subset of the WebAssembly text
// format into the binary format the rest of this module reads. It
// exists so the CLI can accept a .wat source directly instead of
// requiring a pre-assembled .wasm file — the text format is otherwise
// outside this decompiler's scope, so only the forms needed to write a
// module by hand are supported: a module of functions, each a
// parameter/result/local header followed by a flat instruction stream,
// with the conventional (if (then ...) (else ...)) sugar for
// structured conditionals.
package wat

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokLParen tokenKind = iota
	tokRParen
	tokAtom
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	line int
}

// tokenize splits src into parens and atoms, skipping whitespace and
// ";; line" / "(; block ;)" comments. Atoms are not quote-aware: string
// literals (import/export names, data segments) never appear in the
// subset this package accepts.
func tokenize(src string) ([]token, error) {
	var toks []token
	line := 1
	i := 0
	n := len(src)

	for i < n {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '(' && i+1 < n && src[i+1] == ';':
			end := strings.Index(src[i+2:], ";)")
			if end < 0 {
				return nil, fmt.Errorf("wat: unterminated block comment starting on line %d", line)
			}
			line += strings.Count(src[i:i+2+end], "\n")
			i += 2 + end + 2
		case c == ';' && i+1 < n && src[i+1] == ';':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				i = n
			} else {
				i += end
			}
		case c == '(':
			toks = append(toks, token{kind: tokLParen, line: line})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, line: line})
			i++
		default:
			start := i
			for i < n && !isDelim(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokAtom, text: src[start:i], line: line})
		}
	}

	toks = append(toks, token{kind: tokEOF, line: line})
	return toks, nil
}

func isDelim(c byte) bool {
	return c == '(' || c == ')' || c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
