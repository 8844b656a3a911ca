// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wat

import "fmt"

// sexpr is one parenthesized form: (head item item ...). Each item is
// either a bare atom or a nested sexpr, in source order, so a mixed
// stream of flat instructions and folded forms (e.g. a bare "local.get
// 0" next to a folded "(if (then ...) (else ...))") parses without
// losing their relative order.
type sexpr struct {
	head  string
	items []item
}

type item struct {
	atom string
	list *sexpr // non-nil iff this item is a nested list
}

func (it item) isList() bool { return it.list != nil }

type parser struct {
	toks []token
	pos  int
}

func parseSource(src string) (*sexpr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().kind != tokLParen {
		return nil, p.errorf("expected '(' to open the module")
	}
	p.next()
	root, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, p.errorf("unexpected trailing input after module")
	}
	return root, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("wat: line %d: %s", p.peek().line, fmt.Sprintf(format, args...))
}

// parseList reads items until a matching ')', assuming the opening '('
// has already been consumed. The first atom becomes head; everything
// after, atoms and nested lists alike, becomes items in source order
// (head is also pushed as items[0] so callers that want the whole flat
// instruction stream, header keywords included, can walk items
// uniformly).
func (p *parser) parseList() (*sexpr, error) {
	s := &sexpr{}
	first := true
	for {
		switch p.peek().kind {
		case tokEOF:
			return nil, p.errorf("unexpected end of input inside a list")
		case tokRParen:
			p.next()
			return s, nil
		case tokLParen:
			p.next()
			child, err := p.parseList()
			if err != nil {
				return nil, err
			}
			s.items = append(s.items, item{list: child})
			first = false
		default:
			t := p.next()
			if first {
				s.head = t.text
				first = false
			}
			s.items = append(s.items, item{atom: t.text})
		}
	}
}
