package sexpr_test

import (
	"fmt"

	"github.com/RCoeurjoly/edea/sexpr"
)

func ExampleParse() {
	tree, err := sexpr.Parse(`(property "Reference" R1 (at 0 0 90))`)
	if err != nil {
		panic(err)
	}

	tag, _ := tree.Tag()
	fmt.Println(tag, len(tree.Args()))
	fmt.Println(sexpr.Render(tree))

	// Output:
	// property 3
	// (property "Reference" R1 (at 0 0 90))
}
