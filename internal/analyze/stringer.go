package analyze

import (
	"fmt"
	"go/types"

	"github.com/RCoeurjoly/edea/internal/common"
)

// TypeStringer writes types the way generated code refers to them, named
// types qualified with their package name.
type TypeStringer struct {
	// Local is the import path of the package the code is written in, its
	// types are not qualified.
	Local string
}

func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// Qualified returns pkg.Name for a named type.
func (s *TypeStringer) Qualified(id TypeID) string {
	if id.PkgPath == "" || id.PkgPath == s.Local {
		return id.Name
	}

	return common.PkgAlias(id.PkgPath) + "." + id.Name
}

// TypeString writes t as Go source would, "*common.Stroke" or "[2]float64".
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	switch {
	case t == nil:
		return "<nil>"
	case t.IsNamed():
		return s.Qualified(t.ID)
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + s.TypeString(t.ElemType)
	case TypeKindSlice:
		return "[]" + s.TypeString(t.ElemType)
	case TypeKindArray:
		n := "..."
		if arr, ok := t.GoType.Underlying().(*types.Array); ok {
			n = fmt.Sprint(arr.Len())
		}

		return "[" + n + "]" + s.TypeString(t.ElemType)
	case TypeKindStruct:
		return "struct{...}"
	}

	return t.GoType.String()
}

// Literal returns an expression for the zero value of a named type, as
// passed to marshal.Records and marshal.Union.
func (s *TypeStringer) Literal(t *TypeInfo) string {
	if t.Kind == TypeKindStruct {
		return s.Qualified(t.ID) + "{}"
	}

	return "*new(" + s.Qualified(t.ID) + ")"
}
