package sexpr

// Expr is a node of an expression tree: either an Atom or a List.
type Expr interface {
	exprNode()
}

// Atom is a leaf of the tree. Quoted records whether the text was (or must
// be) written between double quotes.
type Atom struct {
	Text   string
	Quoted bool
}

// List is a parenthesised group of expressions.
type List []Expr

func (Atom) exprNode() {}
func (List) exprNode() {}

// Sym returns a bare atom.
func Sym(text string) Atom {
	return Atom{Text: text}
}

// Str returns a quoted atom.
func Str(text string) Atom {
	return Atom{Text: text, Quoted: true}
}

// Tag returns the leading bare atom of the list.
func (l List) Tag() (string, bool) {
	if len(l) == 0 {
		return "", false
	}

	a, ok := l[0].(Atom)
	if !ok || a.Quoted {
		return "", false
	}

	return a.Text, true
}

// Args returns everything after the leading element.
func (l List) Args() List {
	if len(l) == 0 {
		return nil
	}

	return l[1:]
}

// Group builds a list headed by a bare tag atom.
func Group(tag string, args ...Expr) List {
	l := make(List, 0, len(args)+1)
	l = append(l, Sym(tag))

	return append(l, args...)
}

func (a Atom) String() string {
	return Render(a)
}

func (l List) String() string {
	return Render(l)
}
