package marshal_test

import (
	"errors"
	"math"
	"strconv"

	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/sexpr"
)

type ElectricalType string

func (ElectricalType) Values() []string { return []string{"input", "output", "passive"} }

type GraphicStyle string

func (GraphicStyle) Values() []string { return []string{"line", "inverted"} }

type Horizontal string

func (Horizontal) Values() []string { return []string{"left", "right"} }

type Vertical string

func (Vertical) Values() []string { return []string{"", "top", "bottom"} }

type FillType string

func (FillType) Values() []string { return []string{"none", "outline", "background"} }

type LayerType string

func (LayerType) Values() []string { return []string{"signal", "power", "user"} }

type At struct {
	X     float64 `sexp:"x,positional"`
	Y     float64 `sexp:"y,positional"`
	Angle float64 `sexp:"angle,positional,omitdefault"`
}

type Justify struct {
	Horizontal *Horizontal `sexp:"horizontal,positional"`
	Vertical   Vertical    `sexp:"vertical,positional,omitdefault"`
	Mirror     bool        `sexp:"mirror,kwbool"`
}

type Effects struct {
	Size    [2]float64 `sexp:"size"`
	Justify *Justify   `sexp:"justify"`
	Hide    bool       `sexp:"hide,kwbool"`
}

func (e *Effects) SetDefaults() {
	e.Size = [2]float64{1.27, 1.27}
}

type PinAlternate struct {
	Name  string         `sexp:"name,positional,quote"`
	Type  ElectricalType `sexp:"type,positional"`
	Style GraphicStyle   `sexp:"style,positional"`
}

func (PinAlternate) SexpTag() string { return "alternate" }

type Pin struct {
	Type      ElectricalType `sexp:"type,positional"`
	Style     GraphicStyle   `sexp:"style,positional"`
	At        At             `sexp:"at,required"`
	Length    float64        `sexp:"length"`
	Hide      bool           `sexp:"hide,kwbool"`
	Name      string         `sexp:"name,quote"`
	Number    string         `sexp:"number,quote"`
	Effects   *Effects       `sexp:"effects"`
	Alternate []PinAlternate `sexp:"alternate"`
}

func (p *Pin) Normalize() error {
	p.At.Angle = math.Mod(p.At.Angle, 360)
	if p.At.Angle < 0 {
		p.At.Angle += 360
	}

	return nil
}

type Fill interface{ fill() }

type FillSimple struct {
	Type FillType `sexp:"type"`
}

func (FillSimple) fill() {}

func (FillSimple) SexpTag() string { return "fill" }

type FillColor struct {
	Color [4]float64 `sexp:"color"`
}

func (FillColor) fill() {}

func (FillColor) SexpTag() string { return "fill" }

type Rectangle struct {
	Start [2]float64 `sexp:"start"`
	End   [2]float64 `sexp:"end"`
	Fill  Fill       `sexp:"fill"`
}

type Symbol struct {
	LibID            string      `sexp:"lib_id,quote"`
	Unit             int         `sexp:"unit"`
	InBOM            bool        `sexp:"in_bom,yesno"`
	OnBoard          bool        `sexp:"on_board,yesno,omitdefault"`
	DNP              bool        `sexp:"dnp"`
	FieldsAutoplaced bool        `sexp:"fields_autoplaced,kwbool_empty"`
	Pins             []Pin       `sexp:"pin"`
	Rectangles       []Rectangle `sexp:"rectangle"`
	Keywords         []string    `sexp:"keywords,quote"`
	Offset           *float64    `sexp:"offset,omitdefault"`
}

func (s *Symbol) SetDefaults() {
	s.Unit = 1
	s.InBOM = true
	s.OnBoard = true
}

type LayerDef struct {
	Ordinal  int       `sexp:"ordinal,positional"`
	Name     string    `sexp:"name,positional,quote"`
	Type     LayerType `sexp:"type,positional"`
	UserName *string   `sexp:"user_name,positional,quote"`
}

type LayerTable struct {
	Defs []LayerDef `sexp:"defs,positional"`
}

func (LayerTable) SexpTag() string { return "layers" }

type Board struct {
	Version int        `sexp:"version,required"`
	Layers  LayerTable `sexp:"layers"`
}

// Two records share the symbol tag; dispatch must try them in order.
type LibSymbol struct {
	Name  string `sexp:"name,positional,quote"`
	Power bool   `sexp:"power,kwbool_empty"`
}

func (LibSymbol) SexpTag() string { return "symbol" }

type Tree struct {
	Children []Tree `sexp:"node"`
}

func (Tree) SexpTag() string { return "node" }

type Strict struct {
	Value int `sexp:"value"`
}

func (s *Strict) Normalize() error {
	if s.Value < 0 {
		return errors.New("value must not be negative")
	}

	return nil
}

func isLayerDef(l sexpr.List) bool {
	if len(l) < 3 || len(l) > 4 {
		return false
	}

	first, ok := l[0].(sexpr.Atom)
	if !ok || first.Quoted {
		return false
	}

	_, err := strconv.Atoi(first.Text)

	return err == nil
}

func newTestCatalog(opts ...marshal.Option) (*marshal.Catalog, error) {
	base := []marshal.Option{
		marshal.Records(Symbol{}, Board{}, LibSymbol{}, Tree{}, Strict{}),
		marshal.Union[Fill](FillSimple{}, FillColor{}),
		marshal.WithPositionalList(isLayerDef),
	}

	return marshal.NewCatalog(append(base, opts...)...)
}

func mustCatalog(opts ...marshal.Option) *marshal.Catalog {
	c, err := newTestCatalog(opts...)
	if err != nil {
		panic(err)
	}

	return c
}
