package common

import "errors"

// ErrNoPaper is returned when encoding a document without a sheet size.
// KiCad always writes one and reading a file without it yields A4.
var ErrNoPaper = errors.New("paper is not set")

// Paper is the drawing sheet size, either a standard format or a user
// defined one.
type Paper interface {
	// Dimensions returns width and height in millimetres as the sheet is
	// oriented.
	Dimensions() (width, height float64)
}

type PaperFormat string

const (
	PaperA0       PaperFormat = "A0"
	PaperA1       PaperFormat = "A1"
	PaperA2       PaperFormat = "A2"
	PaperA3       PaperFormat = "A3"
	PaperA4       PaperFormat = "A4"
	PaperA5       PaperFormat = "A5"
	PaperA        PaperFormat = "A"
	PaperB        PaperFormat = "B"
	PaperC        PaperFormat = "C"
	PaperD        PaperFormat = "D"
	PaperE        PaperFormat = "E"
	PaperUSLetter PaperFormat = "USLetter"
	PaperUSLegal  PaperFormat = "USLegal"
	PaperUSLedger PaperFormat = "USLedger"
)

func (PaperFormat) Values() []string {
	return []string{"A0", "A1", "A2", "A3", "A4", "A5", "A", "B", "C", "D", "E", "USLetter", "USLegal", "USLedger"}
}

type PaperOrientation string

const (
	Landscape PaperOrientation = ""
	Portrait  PaperOrientation = "portrait"
)

func (PaperOrientation) Values() []string { return []string{"", "portrait"} }

type userFormat string

func (userFormat) Values() []string { return []string{"User"} }

// PaperUser is a custom sheet, (paper "User" width height).
type PaperUser struct {
	Format userFormat `sexp:"format,positional,quote"`
	Width  float64    `sexp:"width,positional"`
	Height float64    `sexp:"height,positional"`
}

func (PaperUser) SexpTag() string { return "paper" }

func (p *PaperUser) SetDefaults() {
	p.Format = "User"
}

func (p PaperUser) Dimensions() (float64, float64) {
	return p.Width, p.Height
}

// PaperStandard is a named sheet size, landscape unless marked portrait.
type PaperStandard struct {
	Format      PaperFormat      `sexp:"format,positional,quote"`
	Orientation PaperOrientation `sexp:"orientation,positional,omitdefault"`
}

func (PaperStandard) SexpTag() string { return "paper" }

func (p *PaperStandard) SetDefaults() {
	p.Format = PaperA4
}

const inch = 25.4

// portrait sizes in millimetres
var paperSizes = map[PaperFormat][2]float64{
	PaperA5:       {148, 210},
	PaperA4:       {210, 297},
	PaperA3:       {297, 420},
	PaperA2:       {420, 594},
	PaperA1:       {594, 841},
	PaperA0:       {841, 1189},
	PaperA:        {8.5 * inch, 11 * inch},
	PaperB:        {11 * inch, 17 * inch},
	PaperC:        {17 * inch, 22 * inch},
	PaperD:        {22 * inch, 34 * inch},
	PaperE:        {34 * inch, 44 * inch},
	PaperUSLetter: {8.5 * inch, 11 * inch},
	PaperUSLegal:  {8.5 * inch, 14 * inch},
	PaperUSLedger: {11 * inch, 17 * inch},
}

func (p PaperStandard) Dimensions() (float64, float64) {
	size := paperSizes[p.Format]
	if p.Orientation == Landscape {
		return size[1], size[0]
	}

	return size[0], size[1]
}
