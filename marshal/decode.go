package marshal

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/RCoeurjoly/edea/grammar"
	"github.com/RCoeurjoly/edea/internal/match"
	"github.com/RCoeurjoly/edea/primitive"
	"github.com/RCoeurjoly/edea/sexpr"
)

type decoder struct {
	c *Catalog
}

// occurrence is one appearance of a keyword after the positional run: a
// group (name args...) or a bare flag atom.
type occurrence struct {
	args sexpr.List
	flag bool
}

type group struct {
	name string
	occ  []occurrence
}

// Decode fills the record out points to from the arguments of its
// expression, that is the list without the leading tag.
func (c *Catalog) Decode(args sexpr.List, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode needs a non-nil pointer, got %T", out)
	}

	rec, ok := c.records[rv.Elem().Type()]
	if !ok {
		return fmt.Errorf("%s is not a registered record", typeStr(rv.Elem().Type()))
	}

	v, err := (&decoder{c: c}).record(rec, args, 0)
	if err != nil {
		return err
	}

	rv.Elem().Set(v)

	return nil
}

// Unmarshal decodes a tagged expression into out, checking that the tag
// matches the record.
func (c *Catalog) Unmarshal(expr sexpr.List, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("unmarshal needs a non-nil pointer, got %T", out)
	}

	want, ok := c.TagOf(rv.Elem().Type())
	if !ok {
		return fmt.Errorf("%s is not a registered record", typeStr(rv.Elem().Type()))
	}

	tag, _ := expr.Tag()
	if tag != want {
		return &MismatchError{Record: want, Msg: fmt.Sprintf("expected (%s ...), got %s", want, describe(expr))}
	}

	if err := c.Decode(expr.Args(), out); err != nil {
		return withPath(err, tag)
	}

	return nil
}

// DecodeExpr dispatches on the tag of expr and returns a pointer to the
// first record declaring that tag which accepts the arguments. When every
// candidate fails, the first candidate's error is returned.
func (c *Catalog) DecodeExpr(expr sexpr.List) (any, error) {
	tag, ok := expr.Tag()
	if !ok {
		return nil, &MismatchError{Record: "expression", Msg: fmt.Sprintf("expected a tagged list, got %s", describe(expr))}
	}

	candidates := c.byTag[tag]
	if len(candidates) == 0 {
		e := &UnknownTagError{Tag: tag}
		e.Suggestion, _ = match.Suggest(tag, c.Tags())

		return nil, e
	}

	d := &decoder{c: c}

	var first error
	for _, rec := range candidates {
		v, err := d.record(rec, expr.Args(), 0)
		if err == nil {
			return v.Addr().Interface(), nil
		}

		if first == nil {
			first = withPath(err, tag)
		}
	}

	return nil, first
}

func (d *decoder) record(rec *record, args sexpr.List, depth int) (reflect.Value, error) {
	if depth > d.c.maxDepth {
		return reflect.Value{}, &MismatchError{Record: rec.tag, GoType: rec.goType, Msg: fmt.Sprintf("deeper than %d levels", d.c.maxDepth), Err: ErrMaxDepth}
	}

	v := rec.zero()

	positional, groups, err := d.split(rec, args)
	if err != nil {
		return reflect.Value{}, err
	}

	positional = d.flags(rec, v, positional)

	seen := make(map[*field]bool, len(groups))
	for _, g := range groups {
		f, ok := rec.keyword[g.name]
		if !ok {
			e := rec.mismatch(nil, "unknown field (%s ...)", g.name)
			e.Suggestion, _ = match.Suggest(g.name, rec.keywords())

			return reflect.Value{}, e
		}

		fv, err := d.keyword(rec, f, g, depth)
		if err != nil {
			return reflect.Value{}, err
		}

		v.FieldByIndex(f.index).Set(fv)
		seen[f] = true
	}

	for _, f := range rec.fields {
		if f.Tags.Has(grammar.TagRequired) && !seen[f] {
			return reflect.Value{}, rec.mismatch(f, "missing required (%s ...)", f.Name)
		}
	}

	if err := d.positional(rec, v, positional, depth); err != nil {
		return reflect.Value{}, err
	}

	if rec.normalizes {
		if err := v.Addr().Interface().(Normalizer).Normalize(); err != nil {
			return reflect.Value{}, &MismatchError{Record: rec.tag, GoType: rec.goType, Msg: "normalize", Err: err}
		}
	}

	return v, nil
}

// split separates the leading positional run from the keyword groups that
// follow it. Bare atoms after the first group are flag occurrences.
func (d *decoder) split(rec *record, args sexpr.List) (sexpr.List, []*group, error) {
	i := 0
	for ; i < len(args); i++ {
		if l, ok := args[i].(sexpr.List); ok && !d.c.isPositionalList(l) {
			break
		}
	}

	positional := make(sexpr.List, i)
	copy(positional, args[:i])

	var groups []*group
	index := make(map[string]*group)

	for _, e := range args[i:] {
		var name string
		var occ occurrence

		switch e := e.(type) {
		case sexpr.Atom:
			if e.Quoted {
				return nil, nil, rec.mismatch(nil, "unexpected string %s among keyword fields", describe(e))
			}

			name, occ = e.Text, occurrence{flag: true}
		case sexpr.List:
			tag, ok := e.Tag()
			if !ok {
				return nil, nil, rec.mismatch(nil, "expected a keyword group, got %s", describe(e))
			}

			name, occ = tag, occurrence{args: e.Args()}
		}

		g, ok := index[name]
		if !ok {
			g = &group{name: name}
			index[name] = g
			groups = append(groups, g)
		}

		g.occ = append(g.occ, occ)
	}

	return positional, groups, nil
}

// flags takes kwbool keywords out of the positional run. Only bare atoms
// match, a quoted "hide" is a string.
func (d *decoder) flags(rec *record, v reflect.Value, positional sexpr.List) sexpr.List {
	for _, f := range rec.flags {
		for i, e := range positional {
			if a, ok := e.(sexpr.Atom); ok && !a.Quoted && a.Text == f.Name {
				v.FieldByIndex(f.index).SetBool(true)
				positional = append(positional[:i], positional[i+1:]...)

				break
			}
		}
	}

	return positional
}

func (d *decoder) keyword(rec *record, f *field, g *group, depth int) (reflect.Value, error) {
	switch {
	case f.Tags.Has(grammar.TagKeywordBool):
		if len(g.occ) != 1 || !g.occ[0].flag {
			return reflect.Value{}, rec.mismatch(f, "expected the bare flag %s", f.Name)
		}

		return boolValue(f.base, true), nil
	case f.Tags.Has(grammar.TagKeywordBoolEmpty):
		if len(g.occ) != 1 || g.occ[0].flag || len(g.occ[0].args) != 0 {
			return reflect.Value{}, rec.mismatch(f, "expected (%s) with no arguments", f.Name)
		}

		return boolValue(f.base, true), nil
	}

	if f.Shape == ShapeRecordList {
		out := reflect.MakeSlice(f.base, 0, len(g.occ))
		for i, occ := range g.occ {
			if occ.flag {
				return reflect.Value{}, rec.mismatch(f, "expected (%s ...), got the bare atom %s", f.Name, f.Name)
			}

			item, err := d.record(f.record, occ.args, depth+1)
			if err != nil {
				return reflect.Value{}, withPath(err, indexed(f.Name, i))
			}

			out = reflect.Append(out, item)
		}

		return out, nil
	}

	if len(g.occ) != 1 {
		return reflect.Value{}, rec.mismatch(f, "(%s ...) given %d times", f.Name, len(g.occ))
	}

	if g.occ[0].flag {
		return reflect.Value{}, rec.mismatch(f, "expected (%s ...), got the bare atom %s", f.Name, f.Name)
	}

	v, err := d.value(f, g.occ[0].args, depth)
	if err != nil {
		return reflect.Value{}, rec.wrap(f, f.Name, err)
	}

	return v, nil
}

// value decodes the arguments of a keyword group.
func (d *decoder) value(f *field, args sexpr.List, depth int) (reflect.Value, error) {
	var v reflect.Value
	var err error

	switch f.Shape {
	case ShapeRecord:
		v, err = d.record(f.record, args, depth+1)
	case ShapeUnion:
		v, err = d.union(f.union, args, depth+1)
	case ShapeTuple:
		v, err = tuple(f.base, args)
	case ShapeSequence:
		v, err = sequence(f.base, args)
	case ShapeScalar:
		if len(args) != 1 {
			return reflect.Value{}, fmt.Errorf("expected one value, got %d", len(args))
		}

		if f.Tags.Has(grammar.TagYesNo) {
			v, err = yesNo(f.base, args[0])
		} else {
			v, err = scalar(f.base, args[0])
		}
	}

	if err != nil {
		return reflect.Value{}, err
	}

	return f.wrapOptional(v), nil
}

func (d *decoder) positional(rec *record, v reflect.Value, args sexpr.List, depth int) error {
	i := 0
	for _, f := range rec.positional {
		if f.Shape == ShapeSequence || f.Shape == ShapeRecordList {
			rest := args[i:]
			i = len(args)

			if len(rest) == 0 {
				continue
			}

			fv, err := d.run(f, rest, depth)
			if err != nil {
				return rec.wrap(f, f.Name, err)
			}

			v.FieldByIndex(f.index).Set(fv)

			continue
		}

		if i >= len(args) {
			if f.skippable() {
				continue
			}

			return rec.mismatch(f, "missing positional value")
		}

		fv, err := d.element(f, args[i], depth)
		if err != nil {
			if f.skippable() {
				continue
			}

			return rec.wrap(f, f.Name, err)
		}

		v.FieldByIndex(f.index).Set(fv)
		i++
	}

	if i < len(args) {
		return rec.mismatch(nil, "unexpected positional value %s", describe(args[i]))
	}

	return nil
}

// element decodes one positional element.
func (d *decoder) element(f *field, e sexpr.Expr, depth int) (reflect.Value, error) {
	var v reflect.Value
	var err error

	if f.Shape == ShapeRecord {
		l, ok := e.(sexpr.List)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected a list, got %s", describe(e))
		}

		v, err = d.record(f.record, l, depth+1)
	} else {
		v, err = scalar(f.base, e)
	}

	if err != nil {
		return reflect.Value{}, err
	}

	return f.wrapOptional(v), nil
}

// run decodes the rest of the positional run into a slice field.
func (d *decoder) run(f *field, rest sexpr.List, depth int) (reflect.Value, error) {
	if f.Shape == ShapeSequence {
		return sequence(f.base, rest)
	}

	out := reflect.MakeSlice(f.base, 0, len(rest))
	for i, e := range rest {
		l, ok := e.(sexpr.List)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected a list, got %s", describe(e))
		}

		item, err := d.record(f.record, l, depth+1)
		if err != nil {
			return reflect.Value{}, withPath(err, indexed(f.Name, i))
		}

		out = reflect.Append(out, item)
	}

	return out, nil
}

func (d *decoder) union(u *union, args sexpr.List, depth int) (reflect.Value, error) {
	var first error
	for _, m := range u.members {
		var mv reflect.Value
		var err error

		switch {
		case m.record != nil:
			mv, err = d.record(m.record, args, depth)
		case len(args) != 1:
			err = fmt.Errorf("%s: expected one value, got %d", m.typ.Name(), len(args))
		default:
			mv, err = scalar(m.typ, args[0])
		}

		if err == nil {
			out := reflect.New(u.typ).Elem()
			out.Set(mv)

			return out, nil
		}

		if first == nil {
			first = err
		}
	}

	return reflect.Value{}, &UnionError{Union: typeStr(u.typ), Members: u.names(), Err: first}
}

func (f *field) wrapOptional(v reflect.Value) reflect.Value {
	if !f.Optional {
		return v
	}

	p := reflect.New(f.base)
	p.Elem().Set(v)

	return p
}

func scalar(t reflect.Type, e sexpr.Expr) (reflect.Value, error) {
	a, ok := e.(sexpr.Atom)
	if !ok {
		return reflect.Value{}, fmt.Errorf("expected a value, got %s", describe(e))
	}

	return primitive.Parse(a.Text, t)
}

func yesNo(t reflect.Type, e sexpr.Expr) (reflect.Value, error) {
	a, ok := e.(sexpr.Atom)
	if !ok {
		return reflect.Value{}, fmt.Errorf("expected yes or no, got %s", describe(e))
	}

	b, err := primitive.ParseYesNo(a.Text)
	if err != nil {
		return reflect.Value{}, err
	}

	return boolValue(t, b), nil
}

func tuple(t reflect.Type, args sexpr.List) (reflect.Value, error) {
	if len(args) != t.Len() {
		return reflect.Value{}, fmt.Errorf("expected %d values, got %d", t.Len(), len(args))
	}

	out := reflect.New(t).Elem()
	for i, e := range args {
		v, err := scalar(t.Elem(), e)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("value %d: %w", i+1, err)
		}

		out.Index(i).Set(v)
	}

	return out, nil
}

func sequence(t reflect.Type, args sexpr.List) (reflect.Value, error) {
	out := reflect.MakeSlice(t, len(args), len(args))
	for i, e := range args {
		v, err := scalar(t.Elem(), e)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("value %d: %w", i+1, err)
		}

		out.Index(i).Set(v)
	}

	return out, nil
}

func boolValue(t reflect.Type, b bool) reflect.Value {
	v := reflect.New(t).Elem()
	v.SetBool(b)

	return v
}

// describe renders e for error messages, shortening long lists.
func describe(e sexpr.Expr) string {
	const limit = 60

	text := sexpr.Render(e)
	if len(text) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}

		return text[:cut] + "..."
	}

	return text
}
