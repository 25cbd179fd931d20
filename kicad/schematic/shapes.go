package schematic

import (
	"github.com/RCoeurjoly/edea/kicad/common"
)

type FillType string

const (
	FillNone       FillType = "none"
	FillOutline    FillType = "outline"
	FillBackground FillType = "background"
)

func (FillType) Values() []string { return []string{"none", "outline", "background"} }

// Fill is how a closed shape is filled. KiCad writes three different
// layouts under the same (fill ...) tag.
type Fill interface {
	fill()
}

// FillSimple is (fill (type none|outline|background)).
type FillSimple struct {
	Type FillType `sexp:"type"`
}

func (FillSimple) SexpTag() string { return "fill" }

func (f *FillSimple) SetDefaults() {
	f.Type = FillBackground
}

// FillColor is (fill (color r g b a)), used by sheets.
type FillColor struct {
	Color common.Color `sexp:"color"`
}

func (FillColor) SexpTag() string { return "fill" }

type colorFill string

func (colorFill) Values() []string { return []string{"color"} }

// FillTypeColor is (fill (type color) (color r g b a)).
type FillTypeColor struct {
	Type  colorFill    `sexp:"type,required"`
	Color common.Color `sexp:"color"`
}

func (FillTypeColor) SexpTag() string { return "fill" }

func (f *FillTypeColor) SetDefaults() {
	f.Type = "color"
}

func (FillSimple) fill()    {}
func (FillColor) fill()     {}
func (FillTypeColor) fill() {}

type Polyline struct {
	Pts    common.Pts    `sexp:"pts"`
	Stroke common.Stroke `sexp:"stroke"`
	Fill   Fill          `sexp:"fill"`
}

func (p *Polyline) SetDefaults() {
	p.Stroke.SetDefaults()
}

type Bezier struct {
	Pts    common.Pts    `sexp:"pts"`
	Stroke common.Stroke `sexp:"stroke"`
	Fill   Fill          `sexp:"fill"`
}

func (b *Bezier) SetDefaults() {
	b.Stroke.SetDefaults()
}

type Rectangle struct {
	Start  [2]float64    `sexp:"start"`
	End    [2]float64    `sexp:"end"`
	Stroke common.Stroke `sexp:"stroke"`
	Fill   Fill          `sexp:"fill"`
}

func (r *Rectangle) SetDefaults() {
	r.Stroke.SetDefaults()
}

type Circle struct {
	Center [2]float64    `sexp:"center"`
	Radius float64       `sexp:"radius"`
	Stroke common.Stroke `sexp:"stroke"`
	Fill   Fill          `sexp:"fill"`
}

func (c *Circle) SetDefaults() {
	c.Stroke.SetDefaults()
}

// Radius is the legacy center and angle form some arcs still carry.
type Radius struct {
	At     [2]float64 `sexp:"at"`
	Length float64    `sexp:"length"`
	Angles [2]float64 `sexp:"angles"`
}

type Arc struct {
	Start  [2]float64    `sexp:"start"`
	Mid    [2]float64    `sexp:"mid"`
	End    [2]float64    `sexp:"end"`
	Radius *Radius       `sexp:"radius"`
	Stroke common.Stroke `sexp:"stroke"`
	Fill   Fill          `sexp:"fill"`
}

func (a *Arc) SetDefaults() {
	a.Stroke.SetDefaults()
}
