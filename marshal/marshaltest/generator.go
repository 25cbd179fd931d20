// Package marshaltest generates random record values and checks that they
// survive an encode and decode through a catalog.
package marshaltest

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/primitive"
	"github.com/RCoeurjoly/edea/sexpr"
)

// SampleStrings are the free text values a Generator picks from. They cover
// quoting, escapes and non-ASCII text.
var SampleStrings = []string{
	"", "R1", "Device:R", "two words", `quote"d`, `back\slash`, `\n`, "tab\there", "(paren)", "Ω", "a b", "~",
}

const (
	maxSliceDepth  = 2
	validateTries  = 10
	maxSliceLength = 4
)

// Generator fills record values with random content that stays inside what
// the grammar can express. It is not safe for concurrent use.
type Generator struct {
	rnd   *rand.Rand
	c     *marshal.Catalog
	depth int
}

func NewGenerator(c *marshal.Catalog, seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), c: c}
}

// New returns a pointer to a random value of t.
func (g *Generator) New(t reflect.Type) any {
	p := reflect.New(t)
	g.Fill(p.Elem())

	return p.Interface()
}

// Fill sets v, which must be settable, to a random value. Structs are
// normalized, and refilled while their Validate method rejects them.
func (g *Generator) Fill(v reflect.Value) {
	t := v.Type()

	switch t.Kind() {
	case reflect.Pointer:
		if g.rnd.IntN(3) == 0 {
			v.SetZero()
			return
		}

		p := reflect.New(t.Elem())
		g.Fill(p.Elem())
		v.Set(p)
	case reflect.Interface:
		members := g.c.Members(t)
		if len(members) == 0 || g.rnd.IntN(4) == 0 {
			v.SetZero()
			return
		}

		m := reflect.New(members[g.rnd.IntN(len(members))]).Elem()
		g.Fill(m)
		v.Set(m)
	case reflect.Struct:
		for range validateTries {
			g.fillStruct(v)
			if val, ok := v.Interface().(marshal.Validator); !ok || val.Validate() == nil {
				return
			}
		}
	case reflect.Slice:
		if g.depth > maxSliceDepth {
			v.SetZero()
			return
		}

		g.depth++
		n := g.rnd.IntN(maxSliceLength)
		s := reflect.MakeSlice(t, n, n)
		for i := range n {
			g.Fill(s.Index(i))
		}
		v.Set(s)
		g.depth--
	case reflect.Array:
		for i := range v.Len() {
			g.Fill(v.Index(i))
		}
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(g.rnd.IntN(200001)-100000) / 1000)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(g.rnd.IntN(200) - 100))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(g.rnd.IntN(100)))
	case reflect.Bool:
		v.SetBool(g.rnd.IntN(2) == 0)
	case reflect.String:
		pool := SampleStrings
		if values := primitive.EnumValues(t); values != nil {
			pool = values
		}

		v.SetString(pool[g.rnd.IntN(len(pool))])
	}
}

func (g *Generator) fillStruct(v reflect.Value) {
	for i := range v.NumField() {
		if f := v.Field(i); f.CanSet() {
			g.Fill(f)
		}
	}

	if n, ok := v.Addr().Interface().(marshal.Normalizer); ok {
		_ = n.Normalize()
	}
}

// ErrChanged is returned by RoundTrip when the decoded value or its second
// encoding differs from the original.
var ErrChanged = errors.New("round trip changed the value")

// RoundTrip encodes the record v points to, parses and decodes the text and
// compares the result with v. The second encoding must equal the first.
func RoundTrip(c *marshal.Catalog, v any) error {
	text, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	tree, err := sexpr.Parse(text, sexpr.WithMaxDepth(c.MaxDepth()))
	if err != nil {
		return fmt.Errorf("parse %s: %w", text, err)
	}

	back := reflect.New(reflect.TypeOf(v).Elem()).Interface()
	if err := c.Unmarshal(tree, back); err != nil {
		return fmt.Errorf("decode %s: %w", text, err)
	}

	if diff := cmp.Diff(v, back, cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		return fmt.Errorf("%w (-orig +back):\n%s\ntext: %s", ErrChanged, diff, text)
	}

	if !c.Equal(v, back) {
		return fmt.Errorf("%w: catalog equality disagrees with cmp\ntext: %s", ErrChanged, text)
	}

	again, err := c.Marshal(back)
	if err != nil {
		return fmt.Errorf("encode again: %w", err)
	}

	if again != text {
		return fmt.Errorf("%w: encoding is not stable\nfirst:  %s\nsecond: %s", ErrChanged, text, again)
	}

	return nil
}
