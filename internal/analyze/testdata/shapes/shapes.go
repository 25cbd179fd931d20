package shapes

type Shape interface{ shape() }

type Circle struct {
	Radius float64 `sexp:"radius"`
}

func (Circle) shape() {}

// Square implements Shape only through its pointer.
type Square struct {
	Side float64 `sexp:"side"`
}

func (*Square) shape() {}

type Drawing struct {
	Name   string     `sexp:"name,positional,quote"`
	Shape  Shape      `sexp:"shape"`
	Origin [2]float64 `sexp:"origin"`
	Skip   int        `sexp:"-"`
}

type Labelled struct {
	Drawing
}

type draft struct {
	X int `sexp:"x"`
}

type Note struct {
	Text string
}
