package marshal

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"

	"github.com/RCoeurjoly/edea/grammar"
	"github.com/RCoeurjoly/edea/internal/match"
	"github.com/RCoeurjoly/edea/primitive"
)

// TagNamer overrides the tag name of a record.
type TagNamer interface {
	SexpTag() string
}

// Defaulter fills in default field values. It is called on a fresh value
// before decoding and to compute omitdefault comparisons.
type Defaulter interface {
	SetDefaults()
}

// Normalizer derives or canonicalises fields after a successful decode.
type Normalizer interface {
	Normalize() error
}

// Validator rejects values the encoder cannot write so that they decode
// back unchanged. Validate has a value receiver and runs before encoding.
type Validator interface {
	Validate() error
}

// Enum is implemented by named string types with a closed set of values.
type Enum = primitive.Enum

// FieldSpec describes one grammar field of a record.
type FieldSpec struct {
	Name     string // keyword, or a descriptive name for positional fields
	GoName   string
	Type     reflect.Type
	Shape    ShapeEnum
	Tags     grammar.TagEnum
	Optional bool // pointer field, absent when nil
}

func (f FieldSpec) IsPositional() bool {
	return f.Tags.Has(grammar.TagPositional)
}

type field struct {
	FieldSpec

	index  []int
	base   reflect.Type // Type without the pointer
	elem   reflect.Type // element type for tuples, sequences and record lists
	record *record      // for ShapeRecord and ShapeRecordList
	union  *union       // for ShapeUnion
}

// skippable reports whether a positional field may be left out when the
// next element does not fit it.
func (f *field) skippable() bool {
	return f.Optional || f.Tags.Has(grammar.TagOmitDefault)
}

// absent reports whether a field value writes nothing.
func (f *field) absent(v reflect.Value) bool {
	switch {
	case f.Optional, f.Shape == ShapeUnion:
		return v.IsNil()
	case f.Shape == ShapeSequence, f.Shape == ShapeRecordList:
		return v.Len() == 0
	}

	return false
}

type record struct {
	typ        reflect.Type
	tag        string
	goType     string // set when tag is not the snake_case type name
	fields     []*field
	positional []*field
	keyword    map[string]*field
	flags      []*field // kwbool fields, also matched in the positional run
	defaults   bool
	normalizes bool
	validates  bool
	omits      bool
}

func compileRecord(t reflect.Type) (*record, error) {
	rec := &record{
		typ:        t,
		tag:        tagName(t),
		keyword:    make(map[string]*field),
		defaults:   reflect.PointerTo(t).Implements(reflect.TypeFor[Defaulter]()),
		normalizes: reflect.PointerTo(t).Implements(reflect.TypeFor[Normalizer]()),
		validates:  t.Implements(reflect.TypeFor[Validator]()),
	}

	if rec.tag != match.SnakeCase(t.Name()) {
		rec.goType = t.String()
	}

	if err := rec.collect(t, nil); err != nil {
		return nil, err
	}

	return rec, nil
}

func tagName(t reflect.Type) string {
	if implements[TagNamer](t) {
		return reflect.New(t).Interface().(TagNamer).SexpTag()
	}

	return match.SnakeCase(t.Name())
}

func (r *record) collect(t reflect.Type, index []int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, tagged := sf.Tag.Lookup(grammar.Key)

		// untagged embedded structs contribute their fields, like encoding/json
		if sf.Anonymous && !tagged && sf.Type.Kind() == reflect.Struct {
			if err := r.collect(sf.Type, append(slices.Clone(index), i)); err != nil {
				return err
			}

			continue
		}

		if !sf.IsExported() {
			continue
		}

		spec, err := grammar.Parse(tag)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", typeStr(r.typ), sf.Name, err)
		}

		if spec.Skip {
			continue
		}

		f, err := newField(sf, spec, append(slices.Clone(index), i))
		if err != nil {
			return fmt.Errorf("%s.%s: %w", typeStr(r.typ), sf.Name, err)
		}

		if err := r.add(f); err != nil {
			return err
		}
	}

	return nil
}

func (r *record) add(f *field) error {
	if f.IsPositional() {
		r.positional = append(r.positional, f)
	} else {
		if _, dup := r.keyword[f.Name]; dup {
			return fmt.Errorf("%s: keyword %q is used by more than one field", typeStr(r.typ), f.Name)
		}

		r.keyword[f.Name] = f
	}

	if f.Tags.Has(grammar.TagKeywordBool) {
		r.flags = append(r.flags, f)
	}

	if f.Tags.Has(grammar.TagOmitDefault) {
		r.omits = true
	}

	r.fields = append(r.fields, f)

	return nil
}

func newField(sf reflect.StructField, spec grammar.Spec, index []int) (*field, error) {
	f := &field{
		FieldSpec: FieldSpec{
			Name:   spec.Name,
			GoName: sf.Name,
			Type:   sf.Type,
			Tags:   spec.Tags,
		},
		index: index,
	}

	if f.Name == "" {
		f.Name = match.SnakeCase(sf.Name)
	}

	depth, base := ptrDepthAndBase(sf.Type)
	if depth > 1 {
		return nil, errors.New("multiple pointer indirection is not supported")
	}

	f.Optional = depth == 1
	f.base = base
	f.Shape = Dispatch(base)

	switch f.Shape {
	case ShapeUnknown:
		return nil, fmt.Errorf("unsupported field type %s", typeStr(sf.Type))
	case ShapeTuple, ShapeSequence, ShapeRecordList:
		f.elem = base.Elem()
	case ShapeRecord:
		f.elem = base
	}

	if err := f.check(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *field) check() error {
	if f.Optional {
		switch f.Shape {
		case ShapeSequence, ShapeRecordList, ShapeUnion:
			return fmt.Errorf("pointer to %s is not supported, an empty value is already absent", f.Shape)
		}
	}

	if f.Tags&grammar.TagBoolean != 0 && (f.Optional || f.base.Kind() != reflect.Bool) {
		return fmt.Errorf("%s needs a plain bool field, got %s", f.Tags&grammar.TagBoolean, typeStr(f.Type))
	}

	if f.Tags.Has(grammar.TagQuote) && f.Shape != ShapeUnion {
		t := f.base
		if f.elem != nil {
			t = f.elem
		}

		if !primitive.FromReflectType(t).IsText() {
			return fmt.Errorf("quote needs a string field, got %s", typeStr(f.Type))
		}
	}

	if f.Tags.Has(grammar.TagRequired) && f.Optional {
		return errors.New("required field cannot be a pointer")
	}

	if f.IsPositional() {
		switch f.Shape {
		case ShapeTuple, ShapeUnion:
			return fmt.Errorf("positional %s is not supported", f.Shape)
		}
	}

	return nil
}

// zero returns an addressable value with defaults applied.
func (r *record) zero() reflect.Value {
	p := reflect.New(r.typ)
	if r.defaults {
		p.Interface().(Defaulter).SetDefaults()
	}

	return p.Elem()
}

func (r *record) keywords() []string {
	out := make([]string, 0, len(r.keyword))
	for name := range r.keyword {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

func (r *record) specs() []FieldSpec {
	out := make([]FieldSpec, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.FieldSpec
	}

	return out
}

func (r *record) mismatch(f *field, format string, args ...any) *MismatchError {
	e := &MismatchError{Record: r.tag, GoType: r.goType, Msg: fmt.Sprintf(format, args...)}
	if f != nil {
		e.Field = f.Name
	}

	return e
}

// wrap attributes err to field f. Typed errors from nested records get the
// field added to their path, anything else becomes a MismatchError of r.
func (r *record) wrap(f *field, seg string, err error) error {
	switch err.(type) {
	case *MismatchError, *UnionError:
		return withPath(err, seg)
	}

	return &MismatchError{Record: r.tag, GoType: r.goType, Field: f.Name, Err: err}
}
