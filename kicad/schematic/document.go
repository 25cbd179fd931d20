package schematic

import (
	"github.com/RCoeurjoly/edea/kicad/common"
)

// Schematic is the root of a .kicad_sch file.
type Schematic struct {
	Version           int                  `sexp:"version,required"`
	Generator         string               `sexp:"generator"`
	UUID              common.UUID          `sexp:"uuid"`
	Paper             common.Paper         `sexp:"paper"`
	TitleBlock        *common.TitleBlock   `sexp:"title_block"`
	LibSymbols        LibSymbols           `sexp:"lib_symbols"`
	Arc               []ArcTopLevel        `sexp:"arc"`
	Circle            []CircleTopLevel     `sexp:"circle"`
	Sheet             []Sheet              `sexp:"sheet"`
	Symbol            []SymbolUse          `sexp:"symbol"`
	Rectangle         []RectangleTopLevel  `sexp:"rectangle"`
	Wire              []Wire               `sexp:"wire"`
	Polyline          []PolylineTopLevel   `sexp:"polyline"`
	Bus               []Bus                `sexp:"bus"`
	Image             []common.Image       `sexp:"image"`
	Junction          []Junction           `sexp:"junction"`
	NoConnect         []NoConnect          `sexp:"no_connect"`
	BusEntry          []BusEntry           `sexp:"bus_entry"`
	Text              []Text               `sexp:"text"`
	TextBox           []TextBox            `sexp:"text_box"`
	Label             []LocalLabel         `sexp:"label"`
	HierarchicalLabel []HierarchicalLabel  `sexp:"hierarchical_label"`
	GlobalLabel       []GlobalLabel        `sexp:"global_label"`
	NetclassFlag      []NetclassFlag       `sexp:"netclass_flag"`
	BusAlias          []BusAlias           `sexp:"bus_alias"`
	SheetInstances    *SheetInstances      `sexp:"sheet_instances"`
	SymbolInstances   SymbolInstancesTable `sexp:"symbol_instances,omitdefault"`
}

func (Schematic) SexpTag() string { return "kicad_sch" }

func (s *Schematic) SetDefaults() {
	s.Version = Version
	s.Generator = "edea"
	s.Paper = common.PaperStandard{Format: common.PaperA4}
}

func (s Schematic) Validate() error {
	if s.Paper == nil {
		return common.ErrNoPaper
	}

	return nil
}

// New returns an empty A4 schematic with a fresh UUID.
func New() *Schematic {
	s := &Schematic{UUID: common.NewUUID()}
	s.SetDefaults()

	return s
}

func (s *Schematic) FormatVersion() int { return s.Version }

func (*Schematic) VersionRange() (lo, hi int) { return Version, Version }
