package marshal

import (
	"reflect"

	"github.com/RCoeurjoly/edea/primitive"
)

// Dispatch classifies a Go type by the tree shape it maps to. Interfaces
// report ShapeUnion; whether members are registered is the catalog's
// concern.
func Dispatch(t reflect.Type) ShapeEnum {
	if t.Kind() == reflect.Pointer {
		panic("dispatcher is not allowing pointer reflect types")
	}

	switch t.Kind() {
	case reflect.Interface:
		return ShapeUnion
	case reflect.Struct:
		return ShapeRecord
	case reflect.Array:
		if primitive.FromReflectType(t.Elem()) != 0 {
			return ShapeTuple
		}

		return ShapeUnknown
	case reflect.Slice:
		elem := t.Elem()
		if primitive.FromReflectType(elem) != 0 {
			return ShapeSequence
		}

		if elem.Kind() == reflect.Struct {
			return ShapeRecordList
		}

		return ShapeUnknown
	}

	if primitive.FromReflectType(t) != 0 {
		return ShapeScalar
	}

	return ShapeUnknown
}

// ptrDepthAndBase returns the pointer depth and the final base type.
func ptrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	depth, base = 0, t
	for base != nil && base.Kind() == reflect.Pointer {
		depth++
		base = base.Elem()
	}

	return
}
