package marshal

import (
	"fmt"
	"reflect"

	"github.com/RCoeurjoly/edea/grammar"
	"github.com/RCoeurjoly/edea/primitive"
	"github.com/RCoeurjoly/edea/sexpr"
)

type encoder struct {
	c        *Catalog
	defaults map[*record]reflect.Value
}

func (c *Catalog) newEncoder() *encoder {
	return &encoder{c: c, defaults: make(map[*record]reflect.Value)}
}

// Encode returns the arguments of the expression for a record value, that
// is the list without the leading tag. v may be a record or a pointer to
// one.
func (c *Catalog) Encode(v any) (sexpr.List, error) {
	rec, rv, err := c.recordOf(v)
	if err != nil {
		return nil, err
	}

	return c.newEncoder().record(rec, rv)
}

// EncodeExpr returns the tagged expression for a record value.
func (c *Catalog) EncodeExpr(v any) (sexpr.List, error) {
	rec, rv, err := c.recordOf(v)
	if err != nil {
		return nil, err
	}

	args, err := c.newEncoder().record(rec, rv)
	if err != nil {
		return nil, withPath(err, rec.tag)
	}

	return sexpr.Group(rec.tag, args...), nil
}

// Marshal renders the tagged expression for a record value as text.
func (c *Catalog) Marshal(v any) (string, error) {
	expr, err := c.EncodeExpr(v)
	if err != nil {
		return "", err
	}

	return sexpr.Render(expr), nil
}

func (e *encoder) defaultOf(rec *record) reflect.Value {
	if v, ok := e.defaults[rec]; ok {
		return v
	}

	v := rec.zero()
	e.defaults[rec] = v

	return v
}

func (e *encoder) record(rec *record, v reflect.Value) (sexpr.List, error) {
	if rec.validates {
		if err := v.Interface().(Validator).Validate(); err != nil {
			return nil, &MismatchError{Record: rec.tag, GoType: rec.goType, Msg: "cannot be encoded", Err: err}
		}
	}

	var def reflect.Value
	if rec.omits {
		def = e.defaultOf(rec)
	}

	out := sexpr.List{}
	for _, f := range rec.fields {
		fv := v.FieldByIndex(f.index)
		if f.absent(fv) {
			continue
		}

		if f.Tags.Has(grammar.TagOmitDefault) && equalValues(fv, def.FieldByIndex(f.index), e.c.precision) {
			continue
		}

		items, err := e.field(rec, f, fv)
		if err != nil {
			return nil, err
		}

		out = append(out, items...)
	}

	return out, nil
}

func (e *encoder) field(rec *record, f *field, fv reflect.Value) ([]sexpr.Expr, error) {
	if f.Optional {
		fv = fv.Elem()
	}

	switch {
	case f.Tags.Has(grammar.TagKeywordBool):
		if fv.Bool() {
			return []sexpr.Expr{sexpr.Sym(f.Name)}, nil
		}

		return nil, nil
	case f.Tags.Has(grammar.TagKeywordBoolEmpty):
		if fv.Bool() {
			return []sexpr.Expr{sexpr.Group(f.Name)}, nil
		}

		return nil, nil
	case f.Tags.Has(grammar.TagYesNo):
		return []sexpr.Expr{sexpr.Group(f.Name, sexpr.Sym(primitive.FormatYesNo(fv.Bool())))}, nil
	case f.IsPositional():
		items, err := e.positional(f, fv)
		if err != nil {
			return nil, rec.wrap(f, f.Name, err)
		}

		return items, nil
	}

	switch f.Shape {
	case ShapeRecordList:
		out := make([]sexpr.Expr, 0, fv.Len())
		for i := range fv.Len() {
			args, err := e.record(f.record, fv.Index(i))
			if err != nil {
				return nil, withPath(err, indexed(f.Name, i))
			}

			out = append(out, sexpr.Group(f.Name, args...))
		}

		return out, nil
	case ShapeRecord:
		args, err := e.record(f.record, fv)
		if err != nil {
			return nil, withPath(err, f.Name)
		}

		return []sexpr.Expr{sexpr.Group(f.Name, args...)}, nil
	case ShapeUnion:
		args, err := e.union(f, fv)
		if err != nil {
			return nil, rec.wrap(f, f.Name, err)
		}

		return []sexpr.Expr{sexpr.Group(f.Name, args...)}, nil
	default:
		atoms, err := e.atoms(f, fv)
		if err != nil {
			return nil, rec.wrap(f, f.Name, err)
		}

		return []sexpr.Expr{sexpr.Group(f.Name, atoms...)}, nil
	}
}

func (e *encoder) positional(f *field, fv reflect.Value) ([]sexpr.Expr, error) {
	switch f.Shape {
	case ShapeRecord:
		args, err := e.record(f.record, fv)
		if err != nil {
			return nil, err
		}

		return []sexpr.Expr{args}, nil
	case ShapeRecordList:
		out := make([]sexpr.Expr, 0, fv.Len())
		for i := range fv.Len() {
			args, err := e.record(f.record, fv.Index(i))
			if err != nil {
				return nil, withPath(err, indexed(f.Name, i))
			}

			out = append(out, args)
		}

		return out, nil
	default:
		return e.atoms(f, fv)
	}
}

func (e *encoder) atoms(f *field, fv reflect.Value) ([]sexpr.Expr, error) {
	if f.Shape == ShapeScalar {
		a, err := e.atom(f, fv)
		if err != nil {
			return nil, err
		}

		return []sexpr.Expr{a}, nil
	}

	out := make([]sexpr.Expr, 0, fv.Len())
	for i := range fv.Len() {
		a, err := e.atom(f, fv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}

		out = append(out, a)
	}

	return out, nil
}

func (e *encoder) atom(f *field, v reflect.Value) (sexpr.Atom, error) {
	text, err := primitive.Format(v, e.c.precision)
	if err != nil {
		return sexpr.Atom{}, err
	}

	return sexpr.Atom{Text: text, Quoted: f.Tags.Has(grammar.TagQuote) || sexpr.NeedsQuote(text)}, nil
}

func (e *encoder) union(f *field, fv reflect.Value) ([]sexpr.Expr, error) {
	dyn := fv.Elem()
	if dyn.Kind() == reflect.Pointer {
		if dyn.IsNil() {
			return nil, fmt.Errorf("nil %s in %s", dyn.Type(), typeStr(f.union.typ))
		}

		dyn = dyn.Elem()
	}

	m := f.union.member(dyn.Type())
	if m == nil {
		return nil, fmt.Errorf("%s is not a registered member of %s", typeStr(dyn.Type()), typeStr(f.union.typ))
	}

	if m.record != nil {
		return e.record(m.record, dyn)
	}

	a, err := e.atom(f, dyn)
	if err != nil {
		return nil, err
	}

	return []sexpr.Expr{a}, nil
}
