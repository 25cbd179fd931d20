package marshal

import (
	"reflect"

	"github.com/RCoeurjoly/edea/primitive"
)

// Equal reports whether a and b are structurally equal. Floats are equal
// when they format to the same text at the default precision, nil and
// empty slices are equal, and unions compare their dynamic values.
func Equal(a, b any) bool {
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b), primitive.DefaultPrecision)
}

// Equal is like the package level Equal at the catalog's precision.
func (c *Catalog) Equal(a, b any) bool {
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b), c.precision)
}

func equalValues(a, b reflect.Value, precision int) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		return primitive.FormatFloat(a.Float(), precision) == primitive.FormatFloat(b.Float(), precision)
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}

		return equalValues(a.Elem(), b.Elem(), precision)
	case reflect.Struct:
		for i := range a.NumField() {
			if !equalValues(a.Field(i), b.Field(i), precision) {
				return false
			}
		}

		return true
	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			return false
		}

		for i := range a.Len() {
			if !equalValues(a.Index(i), b.Index(i), precision) {
				return false
			}
		}

		return true
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}

		for _, k := range a.MapKeys() {
			bv := b.MapIndex(k)
			if !bv.IsValid() || !equalValues(a.MapIndex(k), bv, precision) {
				return false
			}
		}

		return true
	case reflect.String:
		return a.String() == b.String()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	default:
		return a.Equal(b)
	}
}
