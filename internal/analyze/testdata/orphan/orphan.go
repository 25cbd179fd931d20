package orphan

type Shape interface{ Area() float64 }

type Drawing struct {
	Shape Shape `sexp:"shape"`
}
