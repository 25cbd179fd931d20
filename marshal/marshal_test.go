package marshal_test

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RCoeurjoly/edea/grammar"
	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/sexpr"
)

func parse(t *testing.T, text string) sexpr.List {
	t.Helper()

	tree, err := sexpr.Parse(text)
	require.NoError(t, err)

	return tree
}

func ptr[T any](v T) *T { return &v }

func TestUnmarshal_SymbolWithPins(t *testing.T) {
	c := mustCatalog()
	text := `(symbol (lib_id "Device:R") (unit 2) (in_bom no) (dnp yes) (fields_autoplaced)` +
		` (pin input line (at 1.27 -2.54 450) (length 2.54) hide (name "A") (number "1")` +
		` (alternate "ALT" output inverted) (alternate "B" passive line)))`

	var got Symbol
	require.NoError(t, c.Unmarshal(parse(t, text), &got))

	want := Symbol{
		LibID:            "Device:R",
		Unit:             2,
		InBOM:            false,
		OnBoard:          true,
		DNP:              true,
		FieldsAutoplaced: true,
		Pins: []Pin{{
			Type:   "input",
			Style:  "line",
			At:     At{X: 1.27, Y: -2.54, Angle: 90},
			Length: 2.54,
			Hide:   true,
			Name:   "A",
			Number: "1",
			Alternate: []PinAlternate{
				{Name: "ALT", Type: "output", Style: "inverted"},
				{Name: "B", Type: "passive", Style: "line"},
			},
		}},
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("decoded symbol mismatch (-want +got):\n%s", diff)
	}

	out, err := c.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, `(symbol (lib_id "Device:R") (unit 2) (in_bom no) (dnp true) (fields_autoplaced)`+
		` (pin input line (at 1.27 -2.54 90) (length 2.54) hide (name "A") (number "1")`+
		` (alternate "ALT" output inverted) (alternate "B" passive line)))`, out)
}

func TestDecode_OptionalPositionalIsSkipped(t *testing.T) {
	c := mustCatalog()

	tests := []struct {
		text string
		want Justify
	}{
		{"(justify top)", Justify{Vertical: "top"}},
		{"(justify left bottom mirror)", Justify{Horizontal: ptr(Horizontal("left")), Vertical: "bottom", Mirror: true}},
		{"(justify mirror)", Justify{Mirror: true}},
		{"(justify right)", Justify{Horizontal: ptr(Horizontal("right"))}},
		{"(justify)", Justify{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var effects Effects
			require.NoError(t, c.Decode(sexpr.List{parse(t, tt.text)}, &effects))
			require.NotNil(t, effects.Justify)
			assert.Equal(t, tt.want, *effects.Justify)
			assert.Equal(t, [2]float64{1.27, 1.27}, effects.Size, "defaults apply to absent fields")
		})
	}

	var effects Effects
	err := c.Decode(sexpr.List{parse(t, "(justify sideways)")}, &effects)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "unexpected positional value sideways")
}

func TestMarshal_Numbers(t *testing.T) {
	c := mustCatalog()

	tests := []struct {
		at   At
		want string
	}{
		{At{X: 1, Y: 2}, "(at 1 2)"},
		{At{X: 1.0000001, Y: -0.0000001}, "(at 1 0)"},
		{At{X: 0.1 + 0.2, Y: -2.5, Angle: 180}, "(at 0.3 -2.5 180)"},
		{At{X: 1e9, Y: 1e-6}, "(at 1000000000 0.000001)"},
	}

	for _, tt := range tests {
		out, err := c.Marshal(tt.at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}

	_, err := c.Marshal(At{X: math.NaN()})
	assert.Error(t, err)

	coarse := mustCatalog(marshal.WithPrecision(2))
	out, err := coarse.Marshal(At{X: 1.23456, Y: 0.005})
	require.NoError(t, err)
	assert.Equal(t, "(at 1.23 0.01)", out)

	var at At
	require.NoError(t, c.Unmarshal(parse(t, "(at 1e2 -.5)"), &at))
	assert.Equal(t, At{X: 100, Y: -0.5}, at)
}

func TestBooleans(t *testing.T) {
	c := mustCatalog()

	var sym Symbol
	require.NoError(t, c.Unmarshal(parse(t, `(symbol (in_bom yes) (on_board no) (dnp true))`), &sym))
	assert.True(t, sym.InBOM)
	assert.False(t, sym.OnBoard)
	assert.True(t, sym.DNP)
	assert.False(t, sym.FieldsAutoplaced)

	out, err := c.Marshal(sym)
	require.NoError(t, err)
	assert.Equal(t, `(symbol (lib_id "") (unit 1) (in_bom yes) (on_board no) (dnp true))`, out)

	for _, text := range []string{
		`(symbol (in_bom true))`,
		`(symbol (dnp maybe))`,
		`(symbol (fields_autoplaced yes))`,
		`(symbol fields_autoplaced)`,
	} {
		err := c.Unmarshal(parse(t, text), &sym)
		assert.ErrorIs(t, err, marshal.ErrSchemaMismatch, text)
	}
}

func TestMarshal_OmitDefault(t *testing.T) {
	c := mustCatalog()

	sym := Symbol{Unit: 1, InBOM: true, OnBoard: true, Offset: ptr(0.0)}
	out, err := c.Marshal(sym)
	require.NoError(t, err)
	assert.Equal(t, `(symbol (lib_id "") (unit 1) (in_bom yes) (dnp false) (offset 0))`, out)

	sym.Keywords = []string{"res", "two words"}
	sym.Offset = nil
	out, err = c.Marshal(&sym)
	require.NoError(t, err)
	assert.Equal(t, `(symbol (lib_id "") (unit 1) (in_bom yes) (dnp false) (keywords "res" "two words"))`, out)
}

func TestDecode_UnknownField(t *testing.T) {
	c := mustCatalog()

	_, err := c.DecodeExpr(parse(t, `(symbol (lib_idd "x"))`))
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)

	var mismatch *marshal.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "lib_id", mismatch.Suggestion)
	assert.Equal(t, marshal.Path{"symbol"}, mismatch.Path)
	assert.Contains(t, err.Error(), `unknown field (lib_idd ...) (did you mean "lib_id"?)`)

	// dispatch reports the first candidate, Symbol, whose type name is its tag
	assert.Empty(t, mismatch.GoType)
	assert.Contains(t, err.Error(), "symbol: symbol: unknown field")

	var lib LibSymbol
	err = c.Unmarshal(parse(t, `(symbol (lib_idd "x"))`), &lib)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "marshal_test.LibSymbol", mismatch.GoType)
	assert.Contains(t, err.Error(), "symbol (marshal_test.LibSymbol): unknown field")
}

func TestUnmarshal_WrongTagMessageKeepsRunes(t *testing.T) {
	c := mustCatalog()

	var sym Symbol
	err := c.Unmarshal(parse(t, `(fo "`+strings.Repeat("Ω", 40)+`")`), &sym)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)
	assert.True(t, utf8.ValidString(err.Error()), err.Error())
	assert.Contains(t, err.Error(), `got (fo "ΩΩ`)
	assert.True(t, strings.HasSuffix(err.Error(), "Ω..."), err.Error())
}

func TestDecode_Union(t *testing.T) {
	c := mustCatalog()

	var rect Rectangle
	require.NoError(t, c.Unmarshal(parse(t, `(rectangle (start 0 0) (end 1 1) (fill (type outline)))`), &rect))
	assert.Equal(t, FillSimple{Type: "outline"}, rect.Fill)

	require.NoError(t, c.Unmarshal(parse(t, `(rectangle (fill (color 1 2 3 0.5)))`), &rect))
	assert.Equal(t, FillColor{Color: [4]float64{1, 2, 3, 0.5}}, rect.Fill)

	out, err := c.Marshal(rect)
	require.NoError(t, err)
	assert.Equal(t, "(rectangle (start 0 0) (end 0 0) (fill (color 1 2 3 0.5)))", out)

	err = c.Unmarshal(parse(t, `(rectangle (fill (type bogus)))`), &rect)
	require.ErrorIs(t, err, marshal.ErrUnionExhausted)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch, "union errors carry the first member's failure")

	var union *marshal.UnionError
	require.ErrorAs(t, err, &union)
	assert.Equal(t, []string{"FillSimple", "FillColor"}, union.Members)
	assert.Equal(t, marshal.Path{"rectangle", "fill"}, union.Path)

	var first *marshal.MismatchError
	require.ErrorAs(t, err, &first)
	assert.Equal(t, "fill", first.Record)
	assert.Equal(t, "marshal_test.FillSimple", first.GoType)
	assert.Equal(t, "type", first.Field)
}

func TestDecode_LayerTable(t *testing.T) {
	c := mustCatalog()
	text := `(board (version 20221018) (layers (0 "F.Cu" signal) (31 "B.Cu" signal "Back") (44 "Edge.Cuts" user)))`

	v, err := c.DecodeExpr(parse(t, text))
	require.NoError(t, err)

	board, ok := v.(*Board)
	require.True(t, ok)
	require.Len(t, board.Layers.Defs, 3)
	assert.Equal(t, LayerDef{Ordinal: 31, Name: "B.Cu", Type: "signal", UserName: ptr("Back")}, board.Layers.Defs[1])
	assert.Nil(t, board.Layers.Defs[2].UserName)

	out, err := c.Marshal(board)
	require.NoError(t, err)
	assert.Equal(t, text, out)

	plain, err := marshal.NewCatalog(
		marshal.Records(Board{}),
		marshal.Union[Fill](FillSimple{}, FillColor{}),
	)
	require.NoError(t, err)

	_, err = plain.DecodeExpr(parse(t, text))
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch, "without the predicate layer lists are keyword groups")
}

func TestDecodeExpr_Dispatch(t *testing.T) {
	c := mustCatalog()

	v, err := c.DecodeExpr(parse(t, `(symbol "Device:R" (power))`))
	require.NoError(t, err)
	assert.Equal(t, &LibSymbol{Name: "Device:R", Power: true}, v)

	v, err = c.DecodeExpr(parse(t, `(symbol (lib_id "x"))`))
	require.NoError(t, err)
	assert.IsType(t, &Symbol{}, v)

	_, err = c.DecodeExpr(parse(t, `(symbl)`))
	require.ErrorIs(t, err, marshal.ErrUnknownTag)

	var unknown *marshal.UnknownTagError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "symbol", unknown.Suggestion)

	_, err = c.DecodeExpr(sexpr.List{sexpr.Str("quoted")})
	assert.ErrorIs(t, err, marshal.ErrSchemaMismatch)

	assert.Equal(t, []reflect.Type{reflect.TypeFor[Symbol](), reflect.TypeFor[LibSymbol]()}, c.Lookup("symbol"))
}

func TestDecode_Required(t *testing.T) {
	c := mustCatalog()

	var pin Pin
	err := c.Decode(parse(t, `(input line (length 1))`), &pin)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "missing required (at ...)")

	err = c.Decode(parse(t, `(input (at 0 0))`), &pin)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "missing positional value")
}

func TestDecode_Duplicates(t *testing.T) {
	c := mustCatalog()

	var sym Symbol
	err := c.Unmarshal(parse(t, `(symbol (unit 1) (unit 2))`), &sym)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "given 2 times")

	err = c.Unmarshal(parse(t, `(symbol (pin input line (at 0 0)) "stray")`), &sym)
	assert.ErrorIs(t, err, marshal.ErrSchemaMismatch)
}

func TestDecode_MaxDepth(t *testing.T) {
	text := strings.Repeat("(node ", 10) + strings.Repeat(")", 10)

	_, err := mustCatalog().DecodeExpr(parse(t, text))
	require.NoError(t, err)

	_, err = mustCatalog(marshal.WithMaxDepth(5)).DecodeExpr(parse(t, text))
	require.ErrorIs(t, err, marshal.ErrMaxDepth)
	assert.ErrorIs(t, err, marshal.ErrSchemaMismatch)
}

func TestDecode_NormalizeError(t *testing.T) {
	c := mustCatalog()

	var s Strict
	err := c.Unmarshal(parse(t, `(strict (value -1))`), &s)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "must not be negative")

	require.NoError(t, c.Unmarshal(parse(t, `(strict (value 3))`), &s))
	assert.Equal(t, 3, s.Value)
}

func TestDecode_PathInErrors(t *testing.T) {
	c := mustCatalog()

	var sym Symbol
	err := c.Unmarshal(parse(t, `(symbol (pin input line (at 0 0)) (pin input line (at 0 0) (alternate "x" sideways line)))`), &sym)
	require.Error(t, err)

	var mismatch *marshal.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, marshal.Path{"symbol", "pin[1]", "alternate[0]"}, mismatch.Path)
	assert.Equal(t, "alternate", mismatch.Record)
	assert.Contains(t, err.Error(), `"sideways" is not a valid ElectricalType`)
}

func TestEncode_Errors(t *testing.T) {
	c := mustCatalog()

	_, err := c.Marshal(struct{}{})
	assert.ErrorContains(t, err, "not a registered record")

	_, err = c.Marshal((*Symbol)(nil))
	assert.Error(t, err)

	_, err = c.Marshal(Symbol{Pins: []Pin{{Type: "sideways", Style: "line"}}})
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)

	var mismatch *marshal.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, marshal.Path{"symbol", "pin[0]"}, mismatch.Path)
}

type otherFill struct{}

func (otherFill) fill() {}

func TestEncode_UnregisteredMember(t *testing.T) {
	_, err := mustCatalog().Marshal(Rectangle{Fill: otherFill{}})
	assert.ErrorContains(t, err, "is not a registered member")
}

type noUnion struct{ F Fill }

type badOption struct {
	X int `sexp:"x,bogus"`
}

type boolOnInt struct {
	X int `sexp:"x,kwbool"`
}

type duplicate struct {
	A int `sexp:"same"`
	B int `sexp:"same"`
}

type quotedInt struct {
	X int `sexp:"x,quote"`
}

type mapField struct {
	M map[string]int
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []marshal.Option
		msg  string
	}{
		{"unregistered union", []marshal.Option{marshal.Records(noUnion{})}, "no registered union members"},
		{"bad option", []marshal.Option{marshal.Records(badOption{})}, "unknown sexp tag option"},
		{"kwbool on int", []marshal.Option{marshal.Records(boolOnInt{})}, "needs a plain bool field"},
		{"duplicate keyword", []marshal.Option{marshal.Records(duplicate{})}, "used by more than one field"},
		{"quote on int", []marshal.Option{marshal.Records(quotedInt{})}, "quote needs a string field"},
		{"map field", []marshal.Option{marshal.Records(mapField{})}, "unsupported field type"},
		{"non struct", []marshal.Option{marshal.Records(42)}, "is not a struct"},
		{"nil record", []marshal.Option{marshal.Records(nil)}, "nil record"},
		{"union twice", []marshal.Option{
			marshal.Union[Fill](FillSimple{}),
			marshal.Union[Fill](FillColor{}),
		}, "registered twice"},
		{"bad precision", []marshal.Option{marshal.WithPrecision(-1)}, "precision"},
		{"bad depth", []marshal.Option{marshal.WithMaxDepth(0)}, "max depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := marshal.NewCatalog(tt.opts...)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestDescribe(t *testing.T) {
	c := mustCatalog()

	specs, ok := c.Describe(reflect.TypeFor[Pin]())
	require.True(t, ok)

	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{"type", "style", "at", "length", "hide", "name", "number", "effects", "alternate"}, names)
	assert.True(t, specs[0].IsPositional())
	assert.Equal(t, marshal.ShapeRecord, specs[2].Shape)
	assert.Equal(t, grammar.TagRequired, specs[2].Tags)
	assert.True(t, specs[7].Optional)
	assert.Equal(t, marshal.ShapeRecordList, specs[8].Shape)

	_, ok = c.Describe(reflect.TypeFor[int]())
	assert.False(t, ok)

	tag, ok := c.TagOf(reflect.TypeFor[PinAlternate]())
	require.True(t, ok)
	assert.Equal(t, "alternate", tag)

	assert.Equal(t, []reflect.Type{reflect.TypeFor[FillSimple](), reflect.TypeFor[FillColor]()},
		c.Members(reflect.TypeFor[Fill]()))
	assert.Contains(t, c.Tags(), "layers")
	assert.Contains(t, c.Types(), reflect.TypeFor[LayerDef]())
}

func TestEqual(t *testing.T) {
	assert.True(t, marshal.Equal(At{X: 0.1 + 0.2}, At{X: 0.3}))
	assert.False(t, marshal.Equal(At{X: 0.1}, At{X: 0.2}))
	assert.True(t, marshal.Equal(Symbol{Keywords: nil}, Symbol{Keywords: []string{}}))
	assert.False(t, marshal.Equal(Rectangle{Fill: FillSimple{}}, Rectangle{Fill: FillColor{}}))
	assert.True(t, marshal.Equal(Rectangle{}, Rectangle{}))
	assert.False(t, marshal.Equal(At{}, Pin{}))
	assert.False(t, marshal.Equal(Effects{Justify: &Justify{}}, Effects{}))

	coarse := mustCatalog(marshal.WithPrecision(1))
	assert.True(t, coarse.Equal(At{X: 0.11}, At{X: 0.12}))
}

func TestUnmarshal_WrongTag(t *testing.T) {
	var sym Symbol
	err := mustCatalog().Unmarshal(parse(t, `(rectangle)`), &sym)
	require.ErrorIs(t, err, marshal.ErrSchemaMismatch)

	err = mustCatalog().Unmarshal(parse(t, `(symbol)`), sym)
	assert.ErrorContains(t, err, "non-nil pointer")

	require.NoError(t, mustCatalog().Decode(nil, &sym))
	assert.Equal(t, 1, sym.Unit)
	assert.True(t, sym.OnBoard)
}
