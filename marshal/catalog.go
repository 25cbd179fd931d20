package marshal

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/RCoeurjoly/edea/primitive"
	"github.com/RCoeurjoly/edea/sexpr"
)

// Catalog is the compiled set of records and unions a decoder dispatches
// over.
type Catalog struct {
	records    map[reflect.Type]*record
	ordered    []*record
	byTag      map[string][]*record
	unions     map[reflect.Type]*union
	precision  int
	maxDepth   int
	positional func(sexpr.List) bool
}

type Option func(*config)

type config struct {
	roots      []reflect.Type
	unions     []unionDecl
	precision  int
	maxDepth   int
	positional func(sexpr.List) bool
	errs       []error
}

// Records registers record types. Values may be zero values or typed nil
// pointers. Records reachable from these through fields or union members
// are registered too.
func Records(values ...any) Option {
	return func(cfg *config) {
		for _, v := range values {
			t := reflect.TypeOf(v)
			if t == nil {
				cfg.errs = append(cfg.errs, errors.New("nil record value"))
				continue
			}

			if t.Kind() == reflect.Pointer {
				t = t.Elem()
			}

			cfg.roots = append(cfg.roots, t)
		}
	}
}

// WithPrecision sets the number of fraction digits floats are written with.
func WithPrecision(digits int) Option {
	return func(cfg *config) {
		if digits < 0 || digits > 17 {
			cfg.errs = append(cfg.errs, fmt.Errorf("precision %d out of range 0..17", digits))
			return
		}

		cfg.precision = digits
	}
}

// WithMaxDepth bounds record nesting while decoding.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) {
		if depth < 1 {
			cfg.errs = append(cfg.errs, fmt.Errorf("max depth %d must be positive", depth))
			return
		}

		cfg.maxDepth = depth
	}
}

// WithPositionalList installs a predicate for lists that belong to the
// positional run even though they are lists, such as board layer
// definitions.
func WithPositionalList(fn func(sexpr.List) bool) Option {
	return func(cfg *config) {
		cfg.positional = fn
	}
}

// NewCatalog compiles the field tables of all registered records.
func NewCatalog(opts ...Option) (*Catalog, error) {
	cfg := config{precision: primitive.DefaultPrecision, maxDepth: sexpr.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.errs) > 0 {
		return nil, errors.Join(cfg.errs...)
	}

	c := &Catalog{
		records:    make(map[reflect.Type]*record),
		byTag:      make(map[string][]*record),
		unions:     make(map[reflect.Type]*union),
		precision:  cfg.precision,
		maxDepth:   cfg.maxDepth,
		positional: cfg.positional,
	}

	var dealer Dealer
	for _, t := range cfg.roots {
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("record %s is not a struct", typeStr(t))
		}

		dealer.Needs(t)
	}

	for _, decl := range cfg.unions {
		u, err := c.addUnion(decl, &dealer)
		if err != nil {
			return nil, err
		}

		c.unions[decl.iface] = u
	}

	for t, ok := dealer.Next(); ok; t, ok = dealer.Next() {
		rec, err := compileRecord(t)
		if err != nil {
			return nil, err
		}

		for _, f := range rec.fields {
			switch f.Shape {
			case ShapeRecord, ShapeRecordList:
				dealer.Needs(f.elem)
			case ShapeUnion:
				if _, ok := c.unions[f.base]; !ok {
					return nil, fmt.Errorf("%s.%s: interface %s has no registered union members",
						typeStr(t), f.GoName, typeStr(f.base))
				}
			}
		}

		c.records[t] = rec
		c.ordered = append(c.ordered, rec)
		c.byTag[rec.tag] = append(c.byTag[rec.tag], rec)
	}

	c.link()

	return c, nil
}

func (c *Catalog) addUnion(decl unionDecl, dealer *Dealer) (*union, error) {
	if decl.iface.Kind() != reflect.Interface {
		return nil, fmt.Errorf("union %s is not an interface", typeStr(decl.iface))
	}

	if _, dup := c.unions[decl.iface]; dup {
		return nil, fmt.Errorf("union %s registered twice", typeStr(decl.iface))
	}

	if len(decl.members) == 0 {
		return nil, fmt.Errorf("union %s has no members", typeStr(decl.iface))
	}

	u := &union{typ: decl.iface}
	for _, mt := range decl.members {
		switch {
		case mt == nil:
			return nil, fmt.Errorf("union %s: nil member", typeStr(decl.iface))
		case mt.Kind() == reflect.Struct:
			dealer.Needs(mt)
		case primitive.FromReflectType(mt) != 0:
		default:
			return nil, fmt.Errorf("union %s: member %s must be a struct or scalar value type",
				typeStr(decl.iface), typeStr(mt))
		}

		u.members = append(u.members, &member{typ: mt})
	}

	return u, nil
}

func (c *Catalog) link() {
	for _, rec := range c.ordered {
		for _, f := range rec.fields {
			switch f.Shape {
			case ShapeRecord, ShapeRecordList:
				f.record = c.records[f.elem]
			case ShapeUnion:
				f.union = c.unions[f.base]
			}
		}
	}

	for _, u := range c.unions {
		for _, m := range u.members {
			m.record = c.records[m.typ]
		}
	}
}

func (c *Catalog) Precision() int {
	return c.precision
}

func (c *Catalog) MaxDepth() int {
	return c.maxDepth
}

// Types returns every record type, registered roots first, then the
// records discovered from them in discovery order.
func (c *Catalog) Types() []reflect.Type {
	out := make([]reflect.Type, len(c.ordered))
	for i, rec := range c.ordered {
		out[i] = rec.typ
	}

	return out
}

// Tags returns the distinct record tags in sorted order.
func (c *Catalog) Tags() []string {
	out := make([]string, 0, len(c.byTag))
	for tag := range c.byTag {
		out = append(out, tag)
	}

	sort.Strings(out)

	return out
}

// Lookup returns the record types declaring tag, in dispatch order.
func (c *Catalog) Lookup(tag string) []reflect.Type {
	recs := c.byTag[tag]
	out := make([]reflect.Type, len(recs))
	for i, rec := range recs {
		out[i] = rec.typ
	}

	return out
}

// TagOf returns the tag name of a registered record type.
func (c *Catalog) TagOf(t reflect.Type) (string, bool) {
	rec, ok := c.records[t]
	if !ok {
		return "", false
	}

	return rec.tag, true
}

// Describe returns the field table of a registered record type.
func (c *Catalog) Describe(t reflect.Type) ([]FieldSpec, bool) {
	rec, ok := c.records[t]
	if !ok {
		return nil, false
	}

	return rec.specs(), true
}

// Members returns the registered members of a union interface.
func (c *Catalog) Members(iface reflect.Type) []reflect.Type {
	u, ok := c.unions[iface]
	if !ok {
		return nil
	}

	out := make([]reflect.Type, len(u.members))
	for i, m := range u.members {
		out[i] = m.typ
	}

	return out
}

func (c *Catalog) recordOf(v any) (*record, reflect.Value, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, reflect.Value{}, fmt.Errorf("nil %s", rv.Type())
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return nil, reflect.Value{}, errors.New("nil value")
	}

	rec, ok := c.records[rv.Type()]
	if !ok {
		return nil, reflect.Value{}, fmt.Errorf("%s is not a registered record", typeStr(rv.Type()))
	}

	return rec, rv, nil
}

func (c *Catalog) isPositionalList(l sexpr.List) bool {
	return c.positional != nil && c.positional(l)
}
