// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Recursive-descent parser for the pattern grammar.
//
//	pattern := clause { ";" clause } [ ";" ]
//	clause  := "(" term ")" "-" "[" term "]" "->" "(" term ")"
//	term    := [ "*" | ident ] [ ( "=" | "~" ) quoted ]
//	quoted  := '"' ... '"' | "'" ... "'"      (backslash escapes the next rune)
//	ident   := letter { letter | digit | "_" }
//
// Whitespace is allowed between any two tokens.

package pattern

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse compiles src into a Pattern.
// Errors wrap ErrSyntax and carry the byte offset of the failure.
func Parse(src string) (Pattern, error) {
	p := &parser{src: src}

	var out Pattern
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		c, err := p.clause()
		if err != nil {
			return Pattern{}, err
		}
		out.Clauses = append(out.Clauses, c)

		p.skipSpace()
		if p.eof() {
			break
		}
		if err := p.expect(";"); err != nil {
			return Pattern{}, err
		}
	}
	if len(out.Clauses) == 0 {
		return Pattern{}, p.fail("empty pattern")
	}

	return out, nil
}

// MustParse is Parse that panics on error; for package-level patterns.
func MustParse(src string) Pattern {
	p, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return p
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *parser) skipSpace() {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) fail(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

// expect consumes tok after optional whitespace.
func (p *parser) expect(tok string) error {
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.pos:], tok) {
		if p.eof() {
			return p.fail("expected %q, got end of input", tok)
		}
		return p.fail("expected %q, got %q", tok, p.peek())
	}
	p.pos += len(tok)

	return nil
}

func (p *parser) clause() (Clause, error) {
	var c Clause
	var err error

	if err = p.expect("("); err != nil {
		return c, err
	}
	if c.Src, err = p.term(); err != nil {
		return c, err
	}
	if err = p.expect(")"); err != nil {
		return c, err
	}
	if err = p.expect("-"); err != nil {
		return c, err
	}
	if err = p.expect("["); err != nil {
		return c, err
	}
	if c.Label, err = p.term(); err != nil {
		return c, err
	}
	if err = p.expect("]"); err != nil {
		return c, err
	}
	if err = p.expect("->"); err != nil {
		return c, err
	}
	if err = p.expect("("); err != nil {
		return c, err
	}
	if c.Dst, err = p.term(); err != nil {
		return c, err
	}
	if err = p.expect(")"); err != nil {
		return c, err
	}

	return c, nil
}

func (p *parser) term() (Term, error) {
	var t Term

	p.skipSpace()
	switch r := p.peek(); {
	case p.eof():
		return t, p.fail("unterminated term")
	case r == '*':
		p.pos++
	case unicode.IsLetter(r) || r == '_':
		t.Var = p.ident()
	}

	p.skipSpace()
	switch p.peek() {
	case '=':
		t.Op = OpEqual
	case '~':
		t.Op = OpContains
	default:
		return t, nil
	}
	p.pos++

	v, err := p.quoted()
	if err != nil {
		return t, err
	}
	t.Value = v

	return t, nil
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		p.pos += size
	}

	return p.src[start:p.pos]
}

func (p *parser) quoted() (string, error) {
	p.skipSpace()
	if p.eof() {
		return "", p.fail("expected quoted literal, got end of input")
	}
	quote := p.peek()
	if quote != '"' && quote != '\'' {
		return "", p.fail("expected quoted literal, got %q", quote)
	}
	open := p.pos
	p.pos++

	var b strings.Builder
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		p.pos += size
		switch {
		case r == quote:
			return b.String(), nil
		case r == '\\':
			if p.eof() {
				break
			}
			esc, n := utf8.DecodeRuneInString(p.src[p.pos:])
			p.pos += n
			b.WriteRune(esc)
		default:
			b.WriteRune(r)
		}
	}
	p.pos = open

	return "", p.fail("unterminated literal")
}
