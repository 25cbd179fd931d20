package pcb

import (
	"github.com/RCoeurjoly/edea/kicad/common"
)

type PadConnection string

func (PadConnection) Values() []string { return []string{"", "yes", "no", "full", "thru_hole_only"} }

// ConnectionPads is (connect_pads [mode] (clearance n)). Without a mode pads
// connect through thermal reliefs.
type ConnectionPads struct {
	Type      PadConnection `sexp:"type,positional,omitdefault"`
	Clearance float64       `sexp:"clearance"`
}

func (ConnectionPads) SexpTag() string { return "connect_pads" }

type KeepoutRule string

func (KeepoutRule) Values() []string { return []string{"allowed", "not_allowed"} }

type ZoneKeepout struct {
	Tracks     KeepoutRule `sexp:"tracks,required"`
	Vias       KeepoutRule `sexp:"vias,required"`
	Pads       KeepoutRule `sexp:"pads,required"`
	Copperpour KeepoutRule `sexp:"copperpour,required"`
	Footprints KeepoutRule `sexp:"footprints,required"`
}

func (ZoneKeepout) SexpTag() string { return "keepout" }

type ZoneFillMode string

func (ZoneFillMode) Values() []string { return []string{"solid", "hatch"} }

type ZoneSmoothing string

func (ZoneSmoothing) Values() []string { return []string{"none", "chamfer", "fillet"} }

type IslandRemovalMode string

const (
	IslandsRemoveAll   IslandRemovalMode = "0"
	IslandsKeepAll     IslandRemovalMode = "1"
	IslandsMinimumArea IslandRemovalMode = "2"
)

func (IslandRemovalMode) Values() []string { return []string{"0", "1", "2"} }

type HatchSmoothingLevel string

func (HatchSmoothingLevel) Values() []string { return []string{"0", "1", "2", "3"} }

type HatchBorderAlgorithm string

func (HatchBorderAlgorithm) Values() []string { return []string{"zone_min_thickness", "hatch_thickness"} }

// ZoneFill is (fill [yes] ...). The bare yes marks a filled zone.
type ZoneFill struct {
	Yes                  bool                  `sexp:"yes,kwbool"`
	Mode                 ZoneFillMode          `sexp:"mode,omitdefault"`
	ThermalGap           *float64              `sexp:"thermal_gap"`
	ThermalBridgeWidth   *float64              `sexp:"thermal_bridge_width"`
	Smoothing            *ZoneSmoothing        `sexp:"smoothing"`
	Radius               *float64              `sexp:"radius"`
	IslandRemovalMode    *IslandRemovalMode    `sexp:"island_removal_mode"`
	IslandAreaMin        *float64              `sexp:"island_area_min"`
	HatchThickness       *float64              `sexp:"hatch_thickness"`
	HatchGap             *float64              `sexp:"hatch_gap"`
	HatchOrientation     *float64              `sexp:"hatch_orientation"`
	HatchSmoothingLevel  *HatchSmoothingLevel  `sexp:"hatch_smoothing_level"`
	HatchSmoothingValue  *float64              `sexp:"hatch_smoothing_value"`
	HatchBorderAlgorithm *HatchBorderAlgorithm `sexp:"hatch_border_algorithm"`
	HatchMinHoleArea     *float64              `sexp:"hatch_min_hole_area"`
}

func (ZoneFill) SexpTag() string { return "fill" }

func (f *ZoneFill) SetDefaults() {
	f.Mode = "solid"
}

type HatchStyle string

func (HatchStyle) Values() []string { return []string{"none", "edge", "full"} }

// ZoneHatch is the outline display style, (hatch edge 0.508).
type ZoneHatch struct {
	Style HatchStyle `sexp:"style,positional"`
	Pitch float64    `sexp:"pitch,positional"`
}

func (ZoneHatch) SexpTag() string { return "hatch" }

type TeardropType string

func (TeardropType) Values() []string { return []string{"padvia", "track_end"} }

type ZoneTeardrop struct {
	Type TeardropType `sexp:"type"`
}

func (ZoneTeardrop) SexpTag() string { return "teardrop" }

func (t *ZoneTeardrop) SetDefaults() {
	t.Type = "padvia"
}

type ZoneAttr struct {
	Teardrop ZoneTeardrop `sexp:"teardrop,required"`
}

func (ZoneAttr) SexpTag() string { return "attr" }

type Polygon struct {
	Pts []common.Pts `sexp:"pts"`
}

type FilledPolygon struct {
	Layer  string     `sexp:"layer,quote,required"`
	Island bool       `sexp:"island,kwbool_empty"`
	Pts    common.Pts `sexp:"pts"`
}

// Zone is a copper pour or keepout area. Zones on a single layer are
// written with (layer ...), others with (layers ...); after decoding Layers
// always lists every layer.
type Zone struct {
	Locked               bool            `sexp:"locked,kwbool"`
	Net                  int             `sexp:"net"`
	NetName              string          `sexp:"net_name,quote"`
	Layer                *string         `sexp:"layer,quote"`
	Layers               []string        `sexp:"layers,quote"`
	Tstamp               common.UUID     `sexp:"tstamp"`
	Name                 *string         `sexp:"name,quote"`
	Hatch                ZoneHatch       `sexp:"hatch"`
	Priority             *int            `sexp:"priority"`
	Attr                 *ZoneAttr       `sexp:"attr"`
	ConnectPads          ConnectionPads  `sexp:"connect_pads"`
	MinThickness         float64         `sexp:"min_thickness"`
	FilledAreasThickness bool            `sexp:"filled_areas_thickness,yesno,omitdefault"`
	Keepout              *ZoneKeepout    `sexp:"keepout"`
	Fill                 ZoneFill        `sexp:"fill,omitdefault"`
	Polygon              []Polygon       `sexp:"polygon"`
	FilledPolygon        []FilledPolygon `sexp:"filled_polygon"`
}

func (z *Zone) SetDefaults() {
	z.Hatch.Style = "none"
	z.FilledAreasThickness = true
	z.Fill.SetDefaults()
}

func (z *Zone) Normalize() error {
	if z.Layer != nil && len(z.Layers) == 0 {
		z.Layers = []string{*z.Layer}
	}

	return nil
}
