package schematic

import (
	"github.com/RCoeurjoly/edea/kicad/common"
)

// SheetPin connects a hierarchical label of the child sheet.
type SheetPin struct {
	Name    string         `sexp:"name,positional,quote"`
	Shape   LabelShape     `sexp:"shape,positional"`
	At      At             `sexp:"at"`
	Effects common.Effects `sexp:"effects"`
	UUID    common.UUID    `sexp:"uuid"`
}

func (SheetPin) SexpTag() string { return "pin" }

func (p *SheetPin) SetDefaults() {
	p.Shape = ShapeBidirectional
	p.Effects.SetDefaults()
}

type SheetInstancePath struct {
	Name string `sexp:"name,positional,quote"`
	Page string `sexp:"page,quote,required"`
}

func (SheetInstancePath) SexpTag() string { return "path" }

type SheetInstanceProject struct {
	Name string              `sexp:"name,positional,quote"`
	Path []SheetInstancePath `sexp:"path"`
}

func (SheetInstanceProject) SexpTag() string { return "project" }

// SubSheetInstances lists the pages a sheet has in each project.
type SubSheetInstances struct {
	Project []SheetInstanceProject `sexp:"project"`
}

func (SubSheetInstances) SexpTag() string { return "instances" }

// Sheet is a hierarchical sheet placed on this one. Its name and file are
// the Sheetname and Sheetfile properties.
type Sheet struct {
	At               [2]float64         `sexp:"at"`
	Size             [2]float64         `sexp:"size"`
	FieldsAutoplaced bool               `sexp:"fields_autoplaced,kwbool_empty"`
	Stroke           common.Stroke      `sexp:"stroke"`
	Fill             FillColor          `sexp:"fill"`
	UUID             common.UUID        `sexp:"uuid"`
	Property         []Property         `sexp:"property"`
	Pin              []SheetPin         `sexp:"pin"`
	Instances        *SubSheetInstances `sexp:"instances"`
}

func (s *Sheet) SetDefaults() {
	s.Stroke.SetDefaults()
}

// SheetInstances is the top-level page table of the root sheet.
type SheetInstances struct {
	Path []SheetInstancePath `sexp:"path"`
}

// SymbolInstancesPath is an entry of the legacy top-level symbol_instances
// table.
type SymbolInstancesPath struct {
	Path      string `sexp:"path,positional,quote"`
	Reference string `sexp:"reference,quote,required"`
	Unit      int    `sexp:"unit,required"`
	Value     string `sexp:"value,quote,required"`
	Footprint string `sexp:"footprint,quote,required"`
}

func (SymbolInstancesPath) SexpTag() string { return "path" }

type SymbolInstancesTable struct {
	Path []SymbolInstancesPath `sexp:"path"`
}

func (SymbolInstancesTable) SexpTag() string { return "symbol_instances" }
