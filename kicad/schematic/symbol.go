package schematic

import (
	"math"

	"github.com/RCoeurjoly/edea/kicad/common"
)

// At is a position with rotation in degrees. Rotations are folded into
// [0, 360) on decode, files in the wild carry values such as 900.
type At struct {
	X     float64 `sexp:"x,positional"`
	Y     float64 `sexp:"y,positional"`
	Angle float64 `sexp:"angle,positional"`
}

func (a *At) Normalize() error {
	a.Angle = math.Mod(a.Angle, 360)
	if a.Angle < 0 {
		a.Angle += 360
	}

	// math.Mod keeps the sign of a negative zero
	if a.Angle == 0 {
		a.Angle = 0
	}

	return nil
}

type PinElectricalType string

func (PinElectricalType) Values() []string {
	return []string{
		"input", "output", "bidirectional", "tri_state", "passive", "free", "unspecified",
		"power_in", "power_out", "open_collector", "open_emitter", "no_connect",
	}
}

type PinGraphicStyle string

func (PinGraphicStyle) Values() []string {
	return []string{
		"line", "inverted", "clock", "inverted_clock", "input_low", "clock_low",
		"output_low", "edge_clock_high", "non_logic",
	}
}

// Property is a symbol or sheet field such as Reference or Value.
type Property struct {
	Key     string         `sexp:"key,positional,quote"`
	Value   string         `sexp:"value,positional,quote"`
	ID      *int           `sexp:"id"`
	At      At             `sexp:"at"`
	Effects common.Effects `sexp:"effects"`
}

func (p *Property) SetDefaults() {
	p.Effects.SetDefaults()
}

type PinName struct {
	Text    string         `sexp:"text,positional,quote"`
	Effects common.Effects `sexp:"effects"`
}

func (PinName) SexpTag() string { return "name" }

func (p *PinName) SetDefaults() {
	p.Effects.SetDefaults()
}

type PinNumber struct {
	Text    string         `sexp:"text,positional,quote"`
	Effects common.Effects `sexp:"effects"`
}

func (PinNumber) SexpTag() string { return "number" }

func (p *PinNumber) SetDefaults() {
	p.Effects.SetDefaults()
}

type PinAlternate struct {
	Name           string            `sexp:"name,positional,quote"`
	ElectricalType PinElectricalType `sexp:"electrical_type,positional"`
	GraphicStyle   PinGraphicStyle   `sexp:"graphic_style,positional"`
}

func (PinAlternate) SexpTag() string { return "alternate" }

// Pin is a pin of a library symbol.
type Pin struct {
	ElectricalType PinElectricalType `sexp:"electrical_type,positional"`
	GraphicStyle   PinGraphicStyle   `sexp:"graphic_style,positional"`
	At             At                `sexp:"at"`
	Length         float64           `sexp:"length"`
	Hide           bool              `sexp:"hide,kwbool"`
	Name           PinName           `sexp:"name"`
	Number         PinNumber         `sexp:"number"`
	Alternate      []PinAlternate    `sexp:"alternate"`
}

func (p *Pin) SetDefaults() {
	p.ElectricalType = "unspecified"
	p.GraphicStyle = "line"
	p.Name.SetDefaults()
	p.Number.SetDefaults()
}

// PinNameSettings is (pin_names (offset n) hide).
type PinNameSettings struct {
	Offset *float64 `sexp:"offset"`
	Hide   bool     `sexp:"hide,kwbool"`
}

func (PinNameSettings) SexpTag() string { return "pin_names" }

type PinNumberSettings struct {
	Hide bool `sexp:"hide,kwbool"`
}

func (PinNumberSettings) SexpTag() string { return "pin_numbers" }

// SymbolText is free text drawn as part of a symbol.
type SymbolText struct {
	Text    string         `sexp:"text,positional,quote"`
	At      At             `sexp:"at"`
	Effects common.Effects `sexp:"effects"`
}

func (SymbolText) SexpTag() string { return "text" }

func (t *SymbolText) SetDefaults() {
	t.Effects.SetDefaults()
}

// SubSymbol holds the graphics and pins of one unit and body style,
// named <symbol>_<unit>_<style>.
type SubSymbol struct {
	Name      string       `sexp:"name,positional,quote"`
	Arc       []Arc        `sexp:"arc"`
	Bezier    []Bezier     `sexp:"bezier"`
	Circle    []Circle     `sexp:"circle"`
	Polyline  []Polyline   `sexp:"polyline"`
	Rectangle []Rectangle  `sexp:"rectangle"`
	Text      []SymbolText `sexp:"text"`
	Pin       []Pin        `sexp:"pin"`
}

func (SubSymbol) SexpTag() string { return "symbol" }

// LibSymbol is a symbol definition cached in the lib_symbols section.
type LibSymbol struct {
	Name       string             `sexp:"name,positional,quote"`
	Extends    *string            `sexp:"extends,quote"`
	Power      bool               `sexp:"power,kwbool_empty"`
	PinNumbers *PinNumberSettings `sexp:"pin_numbers"`
	PinNames   *PinNameSettings   `sexp:"pin_names"`
	InBOM      bool               `sexp:"in_bom,yesno"`
	OnBoard    bool               `sexp:"on_board,yesno"`
	Property   []Property         `sexp:"property"`
	Symbol     []SubSymbol        `sexp:"symbol"`
	Arc        []Arc              `sexp:"arc"`
	Circle     []Circle           `sexp:"circle"`
	Polyline   []Polyline         `sexp:"polyline"`
	Rectangle  []Rectangle        `sexp:"rectangle"`
	Text       []SymbolText       `sexp:"text"`
	Pin        []Pin              `sexp:"pin"`
}

func (LibSymbol) SexpTag() string { return "symbol" }

func (s *LibSymbol) SetDefaults() {
	s.InBOM = true
	s.OnBoard = true
}

type LibSymbols struct {
	Symbol []LibSymbol `sexp:"symbol"`
}
