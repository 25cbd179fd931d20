package sexpr

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxDepth bounds list nesting accepted by Parse.
const DefaultMaxDepth = 256

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("s-expression syntax error")

// SyntaxError reports malformed input text. Offset is a byte offset, Line and
// Column are 1-based.
type SyntaxError struct {
	Offset int
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ParseOption configures Parse.
type ParseOption func(*parser)

// WithMaxDepth overrides DefaultMaxDepth. Values below 1 are ignored.
func WithMaxDepth(depth int) ParseOption {
	return func(p *parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

type parser struct {
	src      string
	pos      int
	maxDepth int
}

// Parse reads exactly one top-level list from text. Surrounding whitespace is
// allowed, anything else after the list is an error.
func Parse(text string, opts ...ParseOption) (List, error) {
	p := &parser{src: text, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}

	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errorf(p.pos, "expected an expression, got end of input")
	}

	if p.src[p.pos] != '(' {
		return nil, p.errorf(p.pos, "expected '(' to start an expression, got %q", p.peekToken())
	}

	list, err := p.list(1)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf(p.pos, "unexpected %q after the top-level expression", p.peekToken())
	}

	return list, nil
}

func (p *parser) list(depth int) (List, error) {
	start := p.pos
	if depth > p.maxDepth {
		return nil, p.errorf(start, "nesting deeper than %d levels", p.maxDepth)
	}

	p.pos++ // '('

	list := List{}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf(start, "unmatched '('")
		}

		switch p.src[p.pos] {
		case ')':
			p.pos++
			return list, nil
		case '(':
			sub, err := p.list(depth + 1)
			if err != nil {
				return nil, err
			}

			list = append(list, sub)
		case '"':
			atom, err := p.quoted()
			if err != nil {
				return nil, err
			}

			list = append(list, atom)
		default:
			list = append(list, p.bare())
		}
	}
}

func (p *parser) quoted() (Atom, error) {
	start := p.pos
	p.pos++ // opening quote

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++
			return Str(b.String()), nil
		case c == '\\' && p.pos+1 < len(p.src) && (p.src[p.pos+1] == '\\' || p.src[p.pos+1] == '"'):
			b.WriteByte(p.src[p.pos+1])
			p.pos += 2
		default:
			b.WriteByte(c)
			p.pos++
		}
	}

	return Atom{}, p.errorf(start, "unterminated string")
}

func (p *parser) bare() Atom {
	start := p.pos
	for p.pos < len(p.src) && !isDelimiter(p.src[p.pos]) {
		p.pos++
	}

	return Sym(p.src[start:p.pos])
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) peekToken() string {
	if p.pos >= len(p.src) {
		return ""
	}

	if isDelimiter(p.src[p.pos]) {
		return p.src[p.pos : p.pos+1]
	}

	end := p.pos
	for end < len(p.src) && !isDelimiter(p.src[end]) {
		end++
	}

	return p.src[p.pos:end]
}

func (p *parser) errorf(offset int, format string, args ...any) *SyntaxError {
	line, col := 1, 1
	for i := 0; i < offset && i < len(p.src); i++ {
		if p.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '"'
}
