package pcb

import (
	"errors"

	"github.com/RCoeurjoly/edea/kicad/common"
)

// ErrDrillWidthOnly is returned when encoding a drill with a width but no
// diameter; the single number would be read back as the diameter.
var ErrDrillWidthOnly = errors.New("drill width set without a diameter")

type FootprintType string

func (FootprintType) Values() []string { return []string{"smd", "through_hole"} }

// FootprintAttributes is (attr [smd|through_hole] flags...).
type FootprintAttributes struct {
	Type                   *FootprintType `sexp:"type,positional"`
	BoardOnly              bool           `sexp:"board_only,kwbool"`
	ExcludeFromPosFiles    bool           `sexp:"exclude_from_pos_files,kwbool"`
	ExcludeFromBOM         bool           `sexp:"exclude_from_bom,kwbool"`
	AllowMissingCourtyard  bool           `sexp:"allow_missing_courtyard,kwbool"`
	AllowSoldermaskBridges bool           `sexp:"allow_soldermask_bridges,kwbool"`
}

func (FootprintAttributes) SexpTag() string { return "attr" }

type ZoneConnection string

const (
	ZoneNoConnection  ZoneConnection = "0"
	ZoneThermalRelief ZoneConnection = "1"
	ZoneSolidFill     ZoneConnection = "2"
)

func (ZoneConnection) Values() []string { return []string{"0", "1", "2"} }

type FootprintTextType string

func (FootprintTextType) Values() []string { return []string{"reference", "value", "user"} }

type FootprintText struct {
	Type    FootprintTextType `sexp:"type,positional"`
	Locked  bool              `sexp:"locked,kwbool"`
	Text    string            `sexp:"text,positional,quote"`
	At      Position          `sexp:"at"`
	Layer   LayerRef          `sexp:"layer"`
	Hide    bool              `sexp:"hide,kwbool"`
	Effects common.Effects    `sexp:"effects"`
	Tstamp  common.UUID       `sexp:"tstamp"`
}

func (FootprintText) SexpTag() string { return "fp_text" }

func (t *FootprintText) SetDefaults() {
	t.Type = "user"
	t.Layer.Name = "F.SilkS"
	t.Effects.SetDefaults()
}

type FootprintTextBox struct {
	TextBox
}

func (FootprintTextBox) SexpTag() string { return "fp_text_box" }

type FootprintLine struct {
	Locked bool           `sexp:"locked,kwbool"`
	Start  [2]float64     `sexp:"start"`
	End    [2]float64     `sexp:"end"`
	Stroke *common.Stroke `sexp:"stroke"`
	Layer  string         `sexp:"layer,quote"`
	Width  *float64       `sexp:"width"`
	Tstamp common.UUID    `sexp:"tstamp"`
}

func (FootprintLine) SexpTag() string { return "fp_line" }

func (l *FootprintLine) SetDefaults() {
	l.Layer = "F.Cu"
}

type FootprintRect struct {
	Locked bool           `sexp:"locked,kwbool"`
	Start  [2]float64     `sexp:"start"`
	End    [2]float64     `sexp:"end"`
	Stroke *common.Stroke `sexp:"stroke"`
	Fill   *GraphicFill   `sexp:"fill"`
	Layer  string         `sexp:"layer,quote"`
	Width  *float64       `sexp:"width"`
	Tstamp common.UUID    `sexp:"tstamp"`
}

func (FootprintRect) SexpTag() string { return "fp_rect" }

func (r *FootprintRect) SetDefaults() {
	r.Layer = "F.Cu"
}

type FootprintCircle struct {
	Locked bool           `sexp:"locked,kwbool"`
	Center [2]float64     `sexp:"center"`
	End    [2]float64     `sexp:"end"`
	Stroke *common.Stroke `sexp:"stroke"`
	Fill   *GraphicFill   `sexp:"fill"`
	Layer  string         `sexp:"layer,quote"`
	Width  *float64       `sexp:"width"`
	Tstamp common.UUID    `sexp:"tstamp"`
}

func (FootprintCircle) SexpTag() string { return "fp_circle" }

func (c *FootprintCircle) SetDefaults() {
	c.Layer = "F.Cu"
}

type FootprintArc struct {
	Locked bool           `sexp:"locked,kwbool"`
	Start  [2]float64     `sexp:"start"`
	Mid    [2]float64     `sexp:"mid"`
	End    [2]float64     `sexp:"end"`
	Stroke *common.Stroke `sexp:"stroke"`
	Layer  string         `sexp:"layer,quote"`
	Width  *float64       `sexp:"width"`
	Tstamp common.UUID    `sexp:"tstamp"`
}

func (FootprintArc) SexpTag() string { return "fp_arc" }

func (a *FootprintArc) SetDefaults() {
	a.Layer = "F.Cu"
}

type FootprintPoly struct {
	Locked bool           `sexp:"locked,kwbool"`
	Pts    common.Pts     `sexp:"pts"`
	Stroke *common.Stroke `sexp:"stroke"`
	Width  *float64       `sexp:"width"`
	Fill   *GraphicFill   `sexp:"fill"`
	Layer  string         `sexp:"layer,quote"`
	Tstamp common.UUID    `sexp:"tstamp"`
}

func (FootprintPoly) SexpTag() string { return "fp_poly" }

func (p *FootprintPoly) SetDefaults() {
	p.Layer = "F.Cu"
}

type FootprintCurve struct {
	Locked bool           `sexp:"locked,kwbool"`
	Pts    common.Pts     `sexp:"pts"`
	Stroke *common.Stroke `sexp:"stroke"`
	Layer  string         `sexp:"layer,quote,required"`
	Tstamp common.UUID    `sexp:"tstamp,required"`
}

func (FootprintCurve) SexpTag() string { return "fp_curve" }

// PadDrill covers every drill layout KiCad writes: (drill 0.8),
// (drill oval 1.2 0.8), (drill oval 1.2), (drill 0.8 (offset 0 0.2)) and
// (drill oval (offset 0 0)).
type PadDrill struct {
	Oval     bool        `sexp:"oval,kwbool"`
	Diameter *float64    `sexp:"diameter,positional"`
	Width    *float64    `sexp:"width,positional"`
	Offset   *[2]float64 `sexp:"offset"`
}

func (PadDrill) SexpTag() string { return "drill" }

func (d PadDrill) Validate() error {
	if d.Diameter == nil && d.Width != nil {
		return ErrDrillWidthOnly
	}

	return nil
}

type PadOptionClearance string

func (PadOptionClearance) Values() []string { return []string{"outline", "convexhull"} }

type PadOptionAnchor string

func (PadOptionAnchor) Values() []string { return []string{"rect", "circle"} }

type PadOptions struct {
	Clearance PadOptionClearance `sexp:"clearance,required"`
	Anchor    PadOptionAnchor    `sexp:"anchor,required"`
}

func (PadOptions) SexpTag() string { return "options" }

// PadPrimitives are the graphics of a custom pad shape.
type PadPrimitives struct {
	GrPoly   []GraphicPoly   `sexp:"gr_poly"`
	GrLine   []GraphicLine   `sexp:"gr_line"`
	GrRect   []GraphicRect   `sexp:"gr_rect"`
	GrCircle []GraphicCircle `sexp:"gr_circle"`
	GrArc    []GraphicArc    `sexp:"gr_arc"`
	Bezier   []GraphicBezier `sexp:"bezier"`
	Width    *float64        `sexp:"width"`
	Fill     bool            `sexp:"fill,yesno,omitdefault"`
}

func (PadPrimitives) SexpTag() string { return "primitives" }

type PadType string

func (PadType) Values() []string { return []string{"thru_hole", "smd", "connect", "np_thru_hole"} }

type PadShape string

func (PadShape) Values() []string {
	return []string{"rect", "circle", "oval", "trapezoid", "roundrect", "custom"}
}

type ChamferCorner string

func (ChamferCorner) Values() []string {
	return []string{"top_left", "top_right", "bottom_left", "bottom_right"}
}

type Pad struct {
	Number                 string          `sexp:"number,positional,quote"`
	Type                   PadType         `sexp:"type,positional"`
	Shape                  PadShape        `sexp:"shape,positional"`
	Locked                 bool            `sexp:"locked,kwbool"`
	At                     Position        `sexp:"at"`
	Size                   [2]float64      `sexp:"size"`
	Drill                  *PadDrill       `sexp:"drill"`
	Property               []string        `sexp:"property"`
	Layers                 []string        `sexp:"layers,quote"`
	RemoveUnusedLayers     bool            `sexp:"remove_unused_layers,kwbool_empty"`
	KeepEndLayers          bool            `sexp:"keep_end_layers,kwbool_empty"`
	ZoneLayerConnections   []string        `sexp:"zone_layer_connections,quote"`
	RoundrectRratio        *float64        `sexp:"roundrect_rratio"`
	ChamferRatio           *float64        `sexp:"chamfer_ratio"`
	Chamfer                []ChamferCorner `sexp:"chamfer"`
	Net                    *Net            `sexp:"net"`
	PinFunction            *string         `sexp:"pinfunction,quote"`
	PinType                *string         `sexp:"pintype,quote"`
	SolderMaskMargin       *float64        `sexp:"solder_mask_margin"`
	SolderPasteMargin      *float64        `sexp:"solder_paste_margin"`
	SolderPasteMarginRatio *float64        `sexp:"solder_paste_margin_ratio"`
	Clearance              *float64        `sexp:"clearance"`
	ZoneConnect            *ZoneConnection `sexp:"zone_connect"`
	DieLength              *float64        `sexp:"die_length"`
	ThermalBridgeWidth     float64         `sexp:"thermal_bridge_width,omitdefault"`
	ThermalBridgeAngle     int             `sexp:"thermal_bridge_angle,omitdefault"`
	ThermalWidth           *float64        `sexp:"thermal_width"`
	ThermalGap             *float64        `sexp:"thermal_gap"`
	Options                *PadOptions     `sexp:"options"`
	Primitives             *PadPrimitives  `sexp:"primitives"`
	RectDelta              *[2]float64     `sexp:"rect_delta"`
	Tstamp                 common.UUID     `sexp:"tstamp"`
}

type ModelCoord struct {
	XYZ [3]float64 `sexp:"xyz"`
}

type ModelOffset struct{ ModelCoord }

func (ModelOffset) SexpTag() string { return "offset" }

type ModelScale struct{ ModelCoord }

func (ModelScale) SexpTag() string { return "scale" }

func (s *ModelScale) SetDefaults() {
	s.XYZ = [3]float64{1, 1, 1}
}

type ModelRotate struct{ ModelCoord }

func (ModelRotate) SexpTag() string { return "rotate" }

// Model is a 3D model attached to a footprint.
type Model struct {
	File    string      `sexp:"file,positional,quote"`
	Hide    bool        `sexp:"hide,kwbool"`
	Opacity *float64    `sexp:"opacity"`
	Offset  ModelOffset `sexp:"offset,omitdefault"`
	Scale   ModelScale  `sexp:"scale,omitdefault"`
	Rotate  ModelRotate `sexp:"rotate,omitdefault"`
}

func (m *Model) SetDefaults() {
	m.Scale.SetDefaults()
}

type AutoplaceCost int

// Footprint is a placed footprint with its text, graphics, pads and
// models.
type Footprint struct {
	LibraryLink       string               `sexp:"library_link,positional,quote"`
	Locked            bool                 `sexp:"locked,kwbool"`
	Placed            bool                 `sexp:"placed,kwbool"`
	Layer             string               `sexp:"layer,quote"`
	Tedit             *string              `sexp:"tedit"`
	Tstamp            *common.UUID         `sexp:"tstamp"`
	At                *Position            `sexp:"at"`
	Descr             *string              `sexp:"descr,quote"`
	Tags              *string              `sexp:"tags,quote"`
	Property          []Property           `sexp:"property"`
	Path              *string              `sexp:"path,quote"`
	AutoplaceCost90   *AutoplaceCost       `sexp:"autoplace_cost90"`
	AutoplaceCost180  *AutoplaceCost       `sexp:"autoplace_cost180"`
	SolderMaskMargin  *float64             `sexp:"solder_mask_margin"`
	SolderPasteMargin *float64             `sexp:"solder_paste_margin"`
	SolderPasteRatio  *float64             `sexp:"solder_paste_ratio"`
	Clearance         *float64             `sexp:"clearance"`
	ZoneConnect       *ZoneConnection      `sexp:"zone_connect"`
	ThermalWidth      *float64             `sexp:"thermal_width"`
	ThermalGap        *float64             `sexp:"thermal_gap"`
	Attr              *FootprintAttributes `sexp:"attr"`
	NetTiePadGroups   []string             `sexp:"net_tie_pad_groups,quote"`
	FpText            []FootprintText      `sexp:"fp_text"`
	FpTextBox         []FootprintTextBox   `sexp:"fp_text_box"`
	Image             []common.Image       `sexp:"image"`
	FpLine            []FootprintLine      `sexp:"fp_line"`
	FpRect            []FootprintRect      `sexp:"fp_rect"`
	FpCircle          []FootprintCircle    `sexp:"fp_circle"`
	FpArc             []FootprintArc       `sexp:"fp_arc"`
	FpPoly            []FootprintPoly      `sexp:"fp_poly"`
	FpCurve           []FootprintCurve     `sexp:"fp_curve"`
	Dimension         []Dimension          `sexp:"dimension"`
	Pad               []Pad                `sexp:"pad"`
	Zone              []Zone               `sexp:"zone"`
	Group             []Group              `sexp:"group"`
	Model             []Model              `sexp:"model"`
}

func (f *Footprint) SetDefaults() {
	f.Layer = "F.Cu"
}
