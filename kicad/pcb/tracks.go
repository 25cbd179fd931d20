package pcb

import (
	"github.com/RCoeurjoly/edea/kicad/common"
)

type Segment struct {
	Locked bool        `sexp:"locked,kwbool"`
	Start  [2]float64  `sexp:"start"`
	End    [2]float64  `sexp:"end"`
	Width  float64     `sexp:"width"`
	Layer  string      `sexp:"layer,quote"`
	Net    int         `sexp:"net"`
	Tstamp common.UUID `sexp:"tstamp"`
}

func (s *Segment) SetDefaults() {
	s.Layer = "F.Cu"
}

type ViaType string

func (ViaType) Values() []string { return []string{"through", "blind", "micro"} }

type Via struct {
	Type                 ViaType     `sexp:"type,positional,omitdefault"`
	Locked               bool        `sexp:"locked,kwbool"`
	At                   [2]float64  `sexp:"at"`
	Size                 float64     `sexp:"size"`
	Drill                float64     `sexp:"drill"`
	Layers               []string    `sexp:"layers,quote"`
	RemoveUnusedLayers   bool        `sexp:"remove_unused_layers,kwbool_empty"`
	KeepEndLayers        bool        `sexp:"keep_end_layers,kwbool_empty"`
	Free                 bool        `sexp:"free,kwbool_empty"`
	ZoneLayerConnections []string    `sexp:"zone_layer_connections,quote"`
	Net                  int         `sexp:"net"`
	Tstamp               common.UUID `sexp:"tstamp"`
}

func (v *Via) SetDefaults() {
	v.Type = "through"
}

// Arc is a curved track, not to be confused with the graphic gr_arc.
type Arc struct {
	Locked bool        `sexp:"locked,kwbool"`
	Start  [2]float64  `sexp:"start"`
	Mid    [2]float64  `sexp:"mid"`
	End    [2]float64  `sexp:"end"`
	Width  float64     `sexp:"width"`
	Layer  string      `sexp:"layer,quote"`
	Net    int         `sexp:"net"`
	Tstamp common.UUID `sexp:"tstamp"`
}

func (a *Arc) SetDefaults() {
	a.Layer = "F.Cu"
}
