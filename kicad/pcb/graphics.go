package pcb

import (
	"github.com/RCoeurjoly/edea/kicad/common"
)

type GraphicFill string

func (GraphicFill) Values() []string { return []string{"solid", "yes", "none"} }

// LayerRef is a layer reference that may knock out the text from a filled
// area, (layer "F.SilkS" knockout).
type LayerRef struct {
	Name     string `sexp:"name,positional,quote"`
	Knockout bool   `sexp:"knockout,kwbool"`
}

func (LayerRef) SexpTag() string { return "layer" }

type GraphicText struct {
	Text    string         `sexp:"text,positional,quote"`
	Locked  bool           `sexp:"locked,kwbool"`
	At      Position       `sexp:"at"`
	Layer   *LayerRef      `sexp:"layer"`
	Tstamp  *common.UUID   `sexp:"tstamp"`
	Effects common.Effects `sexp:"effects"`
}

func (GraphicText) SexpTag() string { return "gr_text" }

func (t *GraphicText) SetDefaults() {
	t.Effects.SetDefaults()
}

// TextBox is the body shared by gr_text_box and fp_text_box.
type TextBox struct {
	Locked  bool           `sexp:"locked,kwbool"`
	Text    string         `sexp:"text,positional,quote"`
	Start   *[2]float64    `sexp:"start"`
	End     *[2]float64    `sexp:"end"`
	Pts     *common.Pts    `sexp:"pts"`
	Angle   *float64       `sexp:"angle"`
	Layer   string         `sexp:"layer,quote"`
	Tstamp  common.UUID    `sexp:"tstamp"`
	Effects common.Effects `sexp:"effects"`
	Stroke  *common.Stroke `sexp:"stroke"`
	Hide    bool           `sexp:"hide,kwbool"`
}

func (t *TextBox) SetDefaults() {
	t.Layer = "F.Cu"
	t.Effects.SetDefaults()
}

type GraphicTextBox struct {
	TextBox
}

func (GraphicTextBox) SexpTag() string { return "gr_text_box" }

type GraphicLine struct {
	Locked bool           `sexp:"locked,kwbool"`
	Start  [2]float64     `sexp:"start"`
	End    [2]float64     `sexp:"end"`
	Angle  *float64       `sexp:"angle"`
	Width  *float64       `sexp:"width"`
	Stroke *common.Stroke `sexp:"stroke"`
	Layer  *string        `sexp:"layer,quote"`
	Tstamp *common.UUID   `sexp:"tstamp"`
}

func (GraphicLine) SexpTag() string { return "gr_line" }

type GraphicRect struct {
	Locked bool           `sexp:"locked,kwbool"`
	Start  [2]float64     `sexp:"start"`
	End    [2]float64     `sexp:"end"`
	Width  *float64       `sexp:"width"`
	Stroke *common.Stroke `sexp:"stroke"`
	Fill   *GraphicFill   `sexp:"fill"`
	Layer  *string        `sexp:"layer,quote"`
	Tstamp *common.UUID   `sexp:"tstamp"`
}

func (GraphicRect) SexpTag() string { return "gr_rect" }

type GraphicCircle struct {
	Locked bool           `sexp:"locked,kwbool"`
	Center [2]float64     `sexp:"center"`
	End    [2]float64     `sexp:"end"`
	Width  *float64       `sexp:"width"`
	Stroke *common.Stroke `sexp:"stroke"`
	Fill   *GraphicFill   `sexp:"fill"`
	Layer  *string        `sexp:"layer,quote"`
	Tstamp *common.UUID   `sexp:"tstamp"`
}

func (GraphicCircle) SexpTag() string { return "gr_circle" }

type GraphicArc struct {
	Locked bool           `sexp:"locked,kwbool"`
	Start  [2]float64     `sexp:"start"`
	Mid    [2]float64     `sexp:"mid"`
	End    [2]float64     `sexp:"end"`
	Width  *float64       `sexp:"width"`
	Stroke *common.Stroke `sexp:"stroke"`
	Layer  *string        `sexp:"layer,quote"`
	Tstamp *common.UUID   `sexp:"tstamp"`
}

func (GraphicArc) SexpTag() string { return "gr_arc" }

type GraphicPoly struct {
	Locked bool           `sexp:"locked,kwbool"`
	Pts    common.Pts     `sexp:"pts"`
	Width  *float64       `sexp:"width"`
	Stroke *common.Stroke `sexp:"stroke"`
	Fill   *GraphicFill   `sexp:"fill"`
	Layer  *string        `sexp:"layer,quote"`
	Tstamp *common.UUID   `sexp:"tstamp"`
}

func (GraphicPoly) SexpTag() string { return "gr_poly" }

type GraphicBezier struct {
	Locked bool           `sexp:"locked,kwbool"`
	Pts    common.Pts     `sexp:"pts"`
	Width  *float64       `sexp:"width"`
	Stroke *common.Stroke `sexp:"stroke"`
	Layer  *string        `sexp:"layer,quote"`
	Tstamp *common.UUID   `sexp:"tstamp"`
}

func (GraphicBezier) SexpTag() string { return "bezier" }

// GraphicCurve is the older spelling of a bezier.
type GraphicCurve struct {
	GraphicBezier
}

func (GraphicCurve) SexpTag() string { return "gr_curve" }

type GraphicBBox struct {
	Locked bool       `sexp:"locked,kwbool"`
	Start  [2]float64 `sexp:"start"`
	End    [2]float64 `sexp:"end"`
}

func (GraphicBBox) SexpTag() string { return "gr_bbox" }

type DimensionType string

func (DimensionType) Values() []string {
	return []string{"aligned", "leader", "center", "orthogonal", "radial"}
}

type DimensionUnits string

func (DimensionUnits) Values() []string { return []string{"0", "1", "2", "3", "4"} }

type DimensionUnitsFormat string

func (DimensionUnitsFormat) Values() []string { return []string{"0", "1", "2", "3"} }

type DimensionFormat struct {
	Units          DimensionUnits       `sexp:"units,required"`
	UnitsFormat    DimensionUnitsFormat `sexp:"units_format,required"`
	Precision      int                  `sexp:"precision,required"`
	Prefix         *string              `sexp:"prefix,quote"`
	Suffix         *string              `sexp:"suffix,quote"`
	OverrideValue  *string              `sexp:"override_value,quote"`
	SuppressZeroes bool                 `sexp:"suppress_zeroes,kwbool"`
}

func (DimensionFormat) SexpTag() string { return "format" }

type TextPositionMode string

func (TextPositionMode) Values() []string { return []string{"0", "1", "2"} }

type TextFrame string

func (TextFrame) Values() []string { return []string{"0", "1", "2", "3"} }

type DimensionStyle struct {
	Thickness        float64          `sexp:"thickness"`
	ArrowLength      float64          `sexp:"arrow_length"`
	TextPositionMode TextPositionMode `sexp:"text_position_mode"`
	ExtensionHeight  *float64         `sexp:"extension_height"`
	ExtensionOffset  *float64         `sexp:"extension_offset"`
	TextFrame        *TextFrame       `sexp:"text_frame"`
	KeepTextAligned  bool             `sexp:"keep_text_aligned,kwbool"`
}

func (DimensionStyle) SexpTag() string { return "style" }

func (s *DimensionStyle) SetDefaults() {
	s.TextPositionMode = "0"
}

type Dimension struct {
	Locked       bool             `sexp:"locked,kwbool"`
	Type         DimensionType    `sexp:"type"`
	Layer        string           `sexp:"layer,quote"`
	Tstamp       common.UUID      `sexp:"tstamp"`
	Pts          common.Pts       `sexp:"pts"`
	Height       *float64         `sexp:"height"`
	Orientation  *float64         `sexp:"orientation"`
	LeaderLength *float64         `sexp:"leader_length"`
	GrText       *GraphicText     `sexp:"gr_text"`
	Format       *DimensionFormat `sexp:"format"`
	Style        DimensionStyle   `sexp:"style"`
}

func (d *Dimension) SetDefaults() {
	d.Type = "aligned"
	d.Layer = "F.Cu"
	d.Style.SetDefaults()
}
