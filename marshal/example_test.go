package marshal_test

import (
	"fmt"
	"reflect"

	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/sexpr"
)

func ExampleDispatch() {
	fmt.Println(marshal.Dispatch(reflect.TypeFor[float64]()))
	fmt.Println(marshal.Dispatch(reflect.TypeFor[[2]float64]()))
	fmt.Println(marshal.Dispatch(reflect.TypeFor[[]string]()))
	fmt.Println(marshal.Dispatch(reflect.TypeFor[At]()))
	fmt.Println(marshal.Dispatch(reflect.TypeFor[[]Pin]()))
	fmt.Println(marshal.Dispatch(reflect.TypeFor[Fill]()))
	fmt.Println(marshal.Dispatch(reflect.TypeFor[map[string]int]()))
	// Output:
	// ShapeScalar
	// ShapeTuple
	// ShapeSequence
	// ShapeRecord
	// ShapeRecordList
	// ShapeUnion
	// ShapeUnknown
}

func ExampleDealer() {
	var d marshal.Dealer

	d.Needs(reflect.TypeFor[At]())
	d.Needs(reflect.TypeFor[Pin]())
	d.Needs(reflect.TypeFor[At]())

	t, ok := d.Next()
	fmt.Println("first:", t.Name(), ok)

	t, ok = d.Next()
	fmt.Println("second:", t.Name(), ok)

	_, ok = d.Next()
	fmt.Println("no duplicates:", ok)

	d.Needs(reflect.TypeFor[Pin]())
	_, ok = d.Next()
	fmt.Println("done stays done:", ok, d.Seen(reflect.TypeFor[Pin]()))

	// Output:
	// first: At true
	// second: Pin true
	// no duplicates: false
	// done stays done: false true
}

func ExampleCatalog_DecodeExpr() {
	catalog, err := marshal.NewCatalog(
		marshal.Records(Symbol{}),
		marshal.Union[Fill](FillSimple{}, FillColor{}),
	)
	if err != nil {
		panic(err)
	}

	tree, err := sexpr.Parse(`(symbol (lib_id "Device:C") (in_bom yes) (pin passive line (at 0 3.81 270) (length 2.79)))`)
	if err != nil {
		panic(err)
	}

	v, err := catalog.DecodeExpr(tree)
	if err != nil {
		panic(err)
	}

	sym := v.(*Symbol)
	fmt.Println(sym.LibID, sym.Unit, sym.Pins[0].At.Angle)

	sym.Pins[0].Length = 2.54
	text, err := catalog.Marshal(sym)
	if err != nil {
		panic(err)
	}

	fmt.Println(text)
	// Output:
	// Device:C 1 270
	// (symbol (lib_id "Device:C") (unit 1) (in_bom yes) (dnp false) (pin passive line (at 0 3.81 270) (length 2.54) (name "") (number "")))
}
