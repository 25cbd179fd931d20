package sexpr

import "strings"

// Render writes an expression as text. Lists are parenthesised with single
// spaces between elements; quoted atoms escape only '\' and '"'.
func Render(e Expr) string {
	var b strings.Builder
	write(&b, e)

	return b.String()
}

func write(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Atom:
		writeAtom(b, e)
	case List:
		b.WriteByte('(')
		for i, item := range e {
			if i > 0 {
				b.WriteByte(' ')
			}

			write(b, item)
		}
		b.WriteByte(')')
	}
}

func writeAtom(b *strings.Builder, a Atom) {
	if !a.Quoted && !NeedsQuote(a.Text) {
		b.WriteString(a.Text)
		return
	}

	b.WriteByte('"')
	for i := 0; i < len(a.Text); i++ {
		c := a.Text[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}

		b.WriteByte(c)
	}
	b.WriteByte('"')
}

// NeedsQuote reports whether text cannot be written as a bare atom.
func NeedsQuote(text string) bool {
	if text == "" {
		return true
	}

	for _, r := range text {
		if isSpecial(r) {
			return true
		}
	}

	return false
}

func isSpecial(r rune) bool {
	switch r {
	case ' ', '(', ')', '"', '\\', '\u00a0', '\u0085', '\u2000':
		return true
	}

	return r < 0x20
}
