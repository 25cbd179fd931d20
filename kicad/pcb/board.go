package pcb

import (
	"github.com/RCoeurjoly/edea/kicad/common"
)

// Version is the only board file format version the catalog accepts.
const Version = 20221018

// Position is (at x y [angle] [unlocked]).
type Position struct {
	X        float64 `sexp:"x,positional"`
	Y        float64 `sexp:"y,positional"`
	Angle    float64 `sexp:"angle,positional,omitdefault"`
	Unlocked bool    `sexp:"unlocked,kwbool"`
}

func (Position) SexpTag() string { return "at" }

// Property is a free key value pair, (property "key" "value").
type Property struct {
	Key   string `sexp:"key,positional,quote"`
	Value string `sexp:"value,positional,quote"`
}

// Net is (net number "name"), both the board net table entry and the net a
// pad is connected to.
type Net struct {
	Number int    `sexp:"number,positional"`
	Name   string `sexp:"name,positional,quote"`
}

type General struct {
	Thickness float64 `sexp:"thickness"`
}

type StackupLayerThickness struct {
	Value  float64 `sexp:"value,positional"`
	Locked bool    `sexp:"locked,kwbool"`
}

func (StackupLayerThickness) SexpTag() string { return "thickness" }

// StackupLayer is a physical layer of the stackup. Its name is free text,
// dielectric layers are called "dielectric 1" and so on.
type StackupLayer struct {
	Name        string                 `sexp:"name,positional,quote"`
	Type        string                 `sexp:"type,quote"`
	Color       *string                `sexp:"color,quote"`
	Thickness   *StackupLayerThickness `sexp:"thickness"`
	Material    *string                `sexp:"material,quote"`
	EpsilonR    *float64               `sexp:"epsilon_r"`
	LossTangent *float64               `sexp:"loss_tangent"`
}

func (StackupLayer) SexpTag() string { return "layer" }

type EdgeConnector string

func (EdgeConnector) Values() []string { return []string{"yes", "bevelled"} }

type Stackup struct {
	Layer                 []StackupLayer `sexp:"layer"`
	CopperFinish          *string        `sexp:"copper_finish,quote"`
	DielectricConstraints bool           `sexp:"dielectric_constraints,yesno,omitdefault"`
	EdgeConnector         *EdgeConnector `sexp:"edge_connector"`
	CastellatedPads       bool           `sexp:"castellated_pads,yesno,omitdefault"`
	EdgePlating           bool           `sexp:"edge_plating,yesno,omitdefault"`
}

type PlotOutputFormat string

const (
	PlotGerber     PlotOutputFormat = "0"
	PlotPostscript PlotOutputFormat = "1"
	PlotSVG        PlotOutputFormat = "2"
	PlotDXF        PlotOutputFormat = "3"
	PlotHPGL       PlotOutputFormat = "4"
	PlotPDF        PlotOutputFormat = "5"
)

func (PlotOutputFormat) Values() []string { return []string{"0", "1", "2", "3", "4", "5"} }

// PlotSettings are the fabrication output settings, (pcbplotparams ...).
type PlotSettings struct {
	LayerSelection              string           `sexp:"layerselection"`
	PlotOnAllLayersSelection    string           `sexp:"plot_on_all_layers_selection"`
	DisableApertMacros          bool             `sexp:"disableapertmacros"`
	UseGerberExtensions         bool             `sexp:"usegerberextensions"`
	UseGerberAttributes         bool             `sexp:"usegerberattributes"`
	UseGerberAdvancedAttributes bool             `sexp:"usegerberadvancedattributes"`
	CreateGerberJobFile         bool             `sexp:"creategerberjobfile"`
	GerberPrecision             *int             `sexp:"gerberprecision"`
	DashedLineDashRatio         *float64         `sexp:"dashed_line_dash_ratio"`
	DashedLineGapRatio          *float64         `sexp:"dashed_line_gap_ratio"`
	SVGPrecision                int              `sexp:"svgprecision"`
	ExcludeEdgeLayer            bool             `sexp:"excludeedgelayer,omitdefault"`
	PlotFrameRef                bool             `sexp:"plotframeref"`
	ViasOnMask                  bool             `sexp:"viasonmask"`
	Mode                        int              `sexp:"mode"`
	UseAuxOrigin                bool             `sexp:"useauxorigin"`
	HPGLPenNumber               int              `sexp:"hpglpennumber"`
	HPGLPenSpeed                int              `sexp:"hpglpenspeed"`
	HPGLPenDiameter             float64          `sexp:"hpglpendiameter"`
	DXFPolygonMode              bool             `sexp:"dxfpolygonmode"`
	DXFImperialUnits            bool             `sexp:"dxfimperialunits"`
	DXFUsePcbnewFont            bool             `sexp:"dxfusepcbnewfont"`
	PSNegative                  bool             `sexp:"psnegative"`
	PSA4Output                  bool             `sexp:"psa4output"`
	PlotReference               bool             `sexp:"plotreference"`
	PlotValue                   bool             `sexp:"plotvalue"`
	PlotInvisibleText           bool             `sexp:"plotinvisibletext"`
	SketchPadsOnFab             bool             `sexp:"sketchpadsonfab"`
	SubtractMaskFromSilk        bool             `sexp:"subtractmaskfromsilk"`
	OutputFormat                PlotOutputFormat `sexp:"outputformat"`
	Mirror                      bool             `sexp:"mirror"`
	DrillShape                  int              `sexp:"drillshape"`
	ScaleSelection              int              `sexp:"scaleselection"`
	OutputDirectory             string           `sexp:"outputdirectory,quote"`
}

func (PlotSettings) SexpTag() string { return "pcbplotparams" }

func (p *PlotSettings) SetDefaults() {
	p.LayerSelection = "0x00010fc_ffffffff"
	p.PlotOnAllLayersSelection = "0x0000000_00000000"
	p.UseGerberAttributes = true
	p.UseGerberAdvancedAttributes = true
	p.CreateGerberJobFile = true
	p.SVGPrecision = 4
	p.Mode = 1
	p.HPGLPenNumber = 1
	p.HPGLPenSpeed = 20
	p.HPGLPenDiameter = 15
	p.DXFPolygonMode = true
	p.DXFImperialUnits = true
	p.DXFUsePcbnewFont = true
	p.PlotReference = true
	p.PlotValue = true
	p.OutputFormat = PlotGerber
}

type Setup struct {
	Stackup                            *Stackup     `sexp:"stackup"`
	PadToMaskClearance                 float64      `sexp:"pad_to_mask_clearance"`
	SolderMaskMinWidth                 float64      `sexp:"solder_mask_min_width,omitdefault"`
	PadToPasteClearance                float64      `sexp:"pad_to_paste_clearance,omitdefault"`
	PadToPasteClearanceRatio           float64      `sexp:"pad_to_paste_clearance_ratio,omitdefault"`
	AllowSoldermaskBridgesInFootprints bool         `sexp:"allow_soldermask_bridges_in_footprints,yesno,omitdefault"`
	AuxAxisOrigin                      [2]float64   `sexp:"aux_axis_origin,omitdefault"`
	GridOrigin                         [2]float64   `sexp:"grid_origin,omitdefault"`
	PlotSettings                       PlotSettings `sexp:"pcbplotparams"`
}

func (s *Setup) SetDefaults() {
	s.PadToPasteClearanceRatio = 100
	s.PlotSettings.SetDefaults()
}

// Target is a layer alignment target.
type Target struct {
	Type   string       `sexp:"type,positional"`
	At     Position     `sexp:"at,required"`
	Size   float64      `sexp:"size,required"`
	Width  float64      `sexp:"width,required"`
	Layer  string       `sexp:"layer,quote,required"`
	Tstamp *common.UUID `sexp:"tstamp"`
}

type Group struct {
	Name    string        `sexp:"name,positional,quote"`
	Locked  bool          `sexp:"locked,kwbool"`
	ID      common.UUID   `sexp:"id"`
	Members []common.UUID `sexp:"members"`
}

// Board is the root of a .kicad_pcb file.
type Board struct {
	Version    int                `sexp:"version,required"`
	Generator  string             `sexp:"generator"`
	General    General            `sexp:"general"`
	Paper      common.Paper       `sexp:"paper"`
	TitleBlock *common.TitleBlock `sexp:"title_block"`
	Layers     LayerTable         `sexp:"layers"`
	Setup      Setup              `sexp:"setup"`
	Property   []Property         `sexp:"property"`
	Net        []Net              `sexp:"net"`
	Footprint  []Footprint        `sexp:"footprint"`
	Zone       []Zone             `sexp:"zone"`
	Image      []common.Image     `sexp:"image"`
	GrLine     []GraphicLine      `sexp:"gr_line"`
	GrText     []GraphicText      `sexp:"gr_text"`
	GrTextBox  []GraphicTextBox   `sexp:"gr_text_box"`
	GrRect     []GraphicRect      `sexp:"gr_rect"`
	GrCircle   []GraphicCircle    `sexp:"gr_circle"`
	GrArc      []GraphicArc       `sexp:"gr_arc"`
	GrCurve    []GraphicCurve     `sexp:"gr_curve"`
	GrPoly     []GraphicPoly      `sexp:"gr_poly"`
	Bezier     []GraphicBezier    `sexp:"bezier"`
	GrBBox     []GraphicBBox      `sexp:"gr_bbox"`
	Dimension  []Dimension        `sexp:"dimension"`
	Segment    []Segment          `sexp:"segment"`
	Via        []Via              `sexp:"via"`
	Arc        []Arc              `sexp:"arc"`
	Group      []Group            `sexp:"group"`
	Target     []Target           `sexp:"target"`
}

func (Board) SexpTag() string { return "kicad_pcb" }

func (b *Board) SetDefaults() {
	b.Version = Version
	b.Generator = "edea"
	b.Paper = common.PaperStandard{Format: common.PaperA4}
	b.Setup.SetDefaults()
}

func (b Board) Validate() error {
	if b.Paper == nil {
		return common.ErrNoPaper
	}

	return nil
}

// New returns an empty A4 board.
func New() *Board {
	b := &Board{}
	b.SetDefaults()

	return b
}

func (b *Board) FormatVersion() int { return b.Version }

func (*Board) VersionRange() (lo, hi int) { return Version, Version }
