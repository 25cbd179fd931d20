package schematic

import (
	"github.com/RCoeurjoly/edea/kicad/common"
)

// Version is the only schematic file format version the catalog accepts.
const Version = 20230121

type MirrorAxis string

func (MirrorAxis) Values() []string { return []string{"x", "y"} }

// PinAssignment records the UUID and selected alternate of a placed
// symbol's pin.
type PinAssignment struct {
	Number    string      `sexp:"number,positional,quote"`
	UUID      common.UUID `sexp:"uuid"`
	Alternate *string     `sexp:"alternate,quote"`
}

func (PinAssignment) SexpTag() string { return "pin" }

type DefaultInstance struct {
	Reference string `sexp:"reference,quote,required"`
	Unit      int    `sexp:"unit"`
	Value     string `sexp:"value,quote"`
	Footprint string `sexp:"footprint,quote"`
}

func (d *DefaultInstance) SetDefaults() {
	d.Unit = 1
}

type SymbolInstancePath struct {
	Name      string  `sexp:"name,positional,quote"`
	Reference string  `sexp:"reference,quote,required"`
	Unit      int     `sexp:"unit"`
	Value     *string `sexp:"value,quote"`
	Footprint *string `sexp:"footprint,quote"`
}

func (SymbolInstancePath) SexpTag() string { return "path" }

func (p *SymbolInstancePath) SetDefaults() {
	p.Unit = 1
}

type SymbolInstanceProject struct {
	Name string               `sexp:"name,positional,quote"`
	Path []SymbolInstancePath `sexp:"path"`
}

func (SymbolInstanceProject) SexpTag() string { return "project" }

type SymbolInstances struct {
	Project []SymbolInstanceProject `sexp:"project"`
}

func (SymbolInstances) SexpTag() string { return "instances" }

// SymbolUse is a symbol placed on the sheet.
type SymbolUse struct {
	LibName          *string          `sexp:"lib_name,quote"`
	LibID            string           `sexp:"lib_id,quote"`
	At               At               `sexp:"at"`
	Mirror           *MirrorAxis      `sexp:"mirror"`
	Unit             int              `sexp:"unit"`
	Convert          *int             `sexp:"convert"`
	InBOM            bool             `sexp:"in_bom,yesno"`
	OnBoard          bool             `sexp:"on_board,yesno"`
	DNP              bool             `sexp:"dnp,yesno"`
	FieldsAutoplaced bool             `sexp:"fields_autoplaced,kwbool_empty"`
	UUID             common.UUID      `sexp:"uuid"`
	DefaultInstance  *DefaultInstance `sexp:"default_instance"`
	Property         []Property       `sexp:"property"`
	Pin              []PinAssignment  `sexp:"pin"`
	Instances        *SymbolInstances `sexp:"instances"`
}

func (SymbolUse) SexpTag() string { return "symbol" }

func (s *SymbolUse) SetDefaults() {
	s.Unit = 1
	s.InBOM = true
	s.OnBoard = true
}

type Wire struct {
	Pts    common.Pts    `sexp:"pts"`
	Stroke common.Stroke `sexp:"stroke"`
	UUID   common.UUID   `sexp:"uuid"`
}

func (w *Wire) SetDefaults() {
	w.Stroke.SetDefaults()
}

type Bus struct {
	Pts    common.Pts    `sexp:"pts,omitdefault"`
	Stroke common.Stroke `sexp:"stroke"`
	UUID   common.UUID   `sexp:"uuid"`
}

func (b *Bus) SetDefaults() {
	b.Stroke.SetDefaults()
}

type BusEntry struct {
	At     [2]float64    `sexp:"at"`
	Size   [2]float64    `sexp:"size"`
	Stroke common.Stroke `sexp:"stroke"`
	UUID   common.UUID   `sexp:"uuid"`
}

func (b *BusEntry) SetDefaults() {
	b.Stroke.SetDefaults()
}

// BusAlias names a group of bus members, (bus_alias "A" (members "a" "b")).
type BusAlias struct {
	Name    string   `sexp:"name,positional,quote"`
	Members []string `sexp:"members,quote"`
}

type Junction struct {
	At       [2]float64   `sexp:"at"`
	Diameter float64      `sexp:"diameter"`
	Color    common.Color `sexp:"color"`
	UUID     common.UUID  `sexp:"uuid"`
}

type NoConnect struct {
	At   [2]float64  `sexp:"at"`
	UUID common.UUID `sexp:"uuid"`
}

// LocalLabel is a net label visible on its own sheet only.
type LocalLabel struct {
	Text             string         `sexp:"text,positional,quote"`
	At               At             `sexp:"at"`
	FieldsAutoplaced bool           `sexp:"fields_autoplaced,kwbool_empty"`
	Effects          common.Effects `sexp:"effects"`
	UUID             common.UUID    `sexp:"uuid"`
	Property         []Property     `sexp:"property"`
}

func (LocalLabel) SexpTag() string { return "label" }

func (l *LocalLabel) SetDefaults() {
	l.Effects.SetDefaults()
}

// Text is a free text note, laid out like a label.
type Text struct {
	LocalLabel
}

func (Text) SexpTag() string { return "text" }

type TextBox struct {
	Text    string         `sexp:"text,positional,quote"`
	At      At             `sexp:"at"`
	Size    [2]float64     `sexp:"size"`
	Stroke  common.Stroke  `sexp:"stroke"`
	Fill    Fill           `sexp:"fill"`
	Effects common.Effects `sexp:"effects"`
	UUID    common.UUID    `sexp:"uuid"`
}

func (t *TextBox) SetDefaults() {
	t.Stroke.SetDefaults()
	t.Effects.SetDefaults()
}

type LabelShape string

const (
	ShapeInput         LabelShape = "input"
	ShapeOutput        LabelShape = "output"
	ShapeBidirectional LabelShape = "bidirectional"
	ShapeTriState      LabelShape = "tri_state"
	ShapePassive       LabelShape = "passive"
)

func (LabelShape) Values() []string {
	return []string{"input", "output", "bidirectional", "tri_state", "passive"}
}

type GlobalLabel struct {
	Text             string         `sexp:"text,positional,quote"`
	Shape            LabelShape     `sexp:"shape"`
	At               At             `sexp:"at"`
	FieldsAutoplaced bool           `sexp:"fields_autoplaced,kwbool_empty"`
	Effects          common.Effects `sexp:"effects"`
	UUID             common.UUID    `sexp:"uuid"`
	Property         []Property     `sexp:"property"`
}

func (l *GlobalLabel) SetDefaults() {
	l.Shape = ShapeBidirectional
	l.Effects.SetDefaults()
}

type HierarchicalLabel struct {
	Text             string         `sexp:"text,positional,quote"`
	Shape            LabelShape     `sexp:"shape"`
	At               At             `sexp:"at"`
	FieldsAutoplaced bool           `sexp:"fields_autoplaced,kwbool_empty"`
	Effects          common.Effects `sexp:"effects"`
	UUID             common.UUID    `sexp:"uuid"`
	Property         []Property     `sexp:"property"`
}

func (l *HierarchicalLabel) SetDefaults() {
	l.Shape = ShapeBidirectional
	l.Effects.SetDefaults()
}

type NetclassFlagShape string

func (NetclassFlagShape) Values() []string { return []string{"rectangle", "round", "diamond", "dot"} }

type NetclassFlag struct {
	Text             string            `sexp:"text,positional,quote"`
	Length           float64           `sexp:"length"`
	Shape            NetclassFlagShape `sexp:"shape,required"`
	At               At                `sexp:"at"`
	FieldsAutoplaced bool              `sexp:"fields_autoplaced,kwbool_empty"`
	Effects          common.Effects    `sexp:"effects"`
	UUID             common.UUID       `sexp:"uuid"`
	Property         []Property        `sexp:"property"`
}

func (f *NetclassFlag) SetDefaults() {
	f.Shape = "round"
	f.Effects.SetDefaults()
}

// Top-level shapes carry a UUID, the ones inside symbols do not.

type PolylineTopLevel struct {
	Pts    common.Pts    `sexp:"pts"`
	Stroke common.Stroke `sexp:"stroke"`
	Fill   Fill          `sexp:"fill"`
	UUID   common.UUID   `sexp:"uuid"`
}

func (PolylineTopLevel) SexpTag() string { return "polyline" }

func (p *PolylineTopLevel) SetDefaults() {
	p.Stroke.SetDefaults()
}

type RectangleTopLevel struct {
	Rectangle
	UUID common.UUID `sexp:"uuid"`
}

func (RectangleTopLevel) SexpTag() string { return "rectangle" }

type CircleTopLevel struct {
	Circle
	UUID common.UUID `sexp:"uuid"`
}

func (CircleTopLevel) SexpTag() string { return "circle" }

type ArcTopLevel struct {
	Arc
	UUID common.UUID `sexp:"uuid"`
}

func (ArcTopLevel) SexpTag() string { return "arc" }
