package primitive

import (
	"reflect"
	"strconv"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the Go types that map to a single atom. The zero
// value means the type is not a primitive.
type KindEnum int

const (
	_ KindEnum = iota

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindPrimitiveEnum // named string type with a closed set of values, see Enum
)

// Enum is implemented by named string types whose values form a closed set.
// Values is called on the zero value and must not depend on the receiver.
type Enum interface {
	Values() []string
}

var enumType = reflect.TypeFor[Enum]()

var kinds = map[reflect.Kind]KindEnum{
	reflect.Int:     KindInt,
	reflect.Int8:    KindInt8,
	reflect.Int16:   KindInt16,
	reflect.Int32:   KindInt32,
	reflect.Int64:   KindInt64,
	reflect.Uint:    KindUint,
	reflect.Uint8:   KindUint8,
	reflect.Uint16:  KindUint16,
	reflect.Uint32:  KindUint32,
	reflect.Uint64:  KindUint64,
	reflect.Float32: KindFloat32,
	reflect.Float64: KindFloat64,
	reflect.Bool:    KindBool,
	reflect.String:  KindString,
}

func (k KindEnum) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

func (k KindEnum) IsSigned() bool { return k >= KindInt && k <= KindInt64 }

func (k KindEnum) IsUnsigned() bool { return k >= KindUint && k <= KindUint64 }

// IsText reports whether values of the kind are written as free text.
func (k KindEnum) IsText() bool {
	return k == KindString || k == KindPrimitiveEnum
}

// Bits is the size of a numeric kind, as taken by the strconv parsers.
func (k KindEnum) Bits() int {
	switch k {
	case KindInt, KindUint:
		return strconv.IntSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}

	panic("primitive: Bits of non-numeric kind " + k.String())
}

// FromReflectType classifies a Go type by its underlying kind, so named
// numeric types (type Millimetres float64) count as numbers. Named string
// types are KindPrimitiveEnum when they implement Enum.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	k := kinds[rtype.Kind()]
	if k == KindString && rtype.Implements(enumType) {
		return KindPrimitiveEnum
	}

	return k
}

// EnumValues returns the allowed values of an enum type, nil for other types.
func EnumValues(rtype reflect.Type) []string {
	if FromReflectType(rtype) != KindPrimitiveEnum {
		return nil
	}

	return reflect.Zero(rtype).Interface().(Enum).Values()
}
