package common

type JustifyHorizontal string

const (
	JustifyLeft    JustifyHorizontal = "left"
	JustifyHCenter JustifyHorizontal = "center"
	JustifyRight   JustifyHorizontal = "right"
)

func (JustifyHorizontal) Values() []string { return []string{"left", "center", "right"} }

type JustifyVertical string

const (
	JustifyTop     JustifyVertical = "top"
	JustifyVCenter JustifyVertical = "center"
	JustifyBottom  JustifyVertical = "bottom"
)

func (JustifyVertical) Values() []string { return []string{"top", "center", "bottom"} }

// Justify aligns text. Centered axes are not written, so (justify top)
// leaves the horizontal alignment centered.
type Justify struct {
	Horizontal JustifyHorizontal `sexp:"horizontal,positional,omitdefault"`
	Vertical   JustifyVertical   `sexp:"vertical,positional,omitdefault"`
	Mirror     bool              `sexp:"mirror,kwbool"`
}

func (j *Justify) SetDefaults() {
	j.Horizontal = JustifyHCenter
	j.Vertical = JustifyVCenter
}

type Font struct {
	Face        *string    `sexp:"face,quote"`
	Size        [2]float64 `sexp:"size"`
	Thickness   *float64   `sexp:"thickness,omitdefault"`
	Bold        bool       `sexp:"bold,kwbool"`
	Italic      bool       `sexp:"italic,kwbool"`
	LineSpacing *float64   `sexp:"line_spacing"`
	Color       *Color     `sexp:"color"`
}

func (f *Font) SetDefaults() {
	f.Size = [2]float64{1.27, 1.27}
}

type Effects struct {
	Font    Font    `sexp:"font"`
	Justify Justify `sexp:"justify,omitdefault"`
	Hide    bool    `sexp:"hide,kwbool"`
}

func (e *Effects) SetDefaults() {
	e.Font.SetDefaults()
	e.Justify.SetDefaults()
}

// NewEffects returns effects with the default 1.27 mm font, centered.
func NewEffects() Effects {
	var e Effects
	e.SetDefaults()

	return e
}
