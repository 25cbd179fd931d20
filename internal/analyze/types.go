package analyze

import (
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"github.com/RCoeurjoly/edea/grammar"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "github.com/RCoeurjoly/edea/kicad/common"
	Name    string // e.g., "Stroke"
}

func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool and so on
	TypeKindStruct
	TypeKindPointer
	TypeKindSlice
	TypeKindArray
	TypeKindAlias     // named type over a basic or composite type
	TypeKindInterface
	TypeKindExternal  // named non-basic type from a package outside the graph
)

var typeKindNames = [...]string{
	TypeKindBasic:     "basic",
	TypeKindStruct:    "struct",
	TypeKindPointer:   "pointer",
	TypeKindSlice:     "slice",
	TypeKindArray:     "array",
	TypeKindAlias:     "alias",
	TypeKindInterface: "interface",
	TypeKindExternal:  "external",
}

func (k TypeKind) String() string {
	if k <= TypeKindUnknown || int(k) >= len(typeKindNames) {
		return "unknown"
	}

	return typeKindNames[k]
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID         // empty for unnamed types like *T or []T
	Kind       TypeKind       // struct, alias, interface and so on
	Underlying *TypeInfo      // for named non-struct types
	ElemType   *TypeInfo      // for pointers, slices and arrays
	Fields     []FieldInfo    // for structs
	GoType     types.Type     // the original go/types.Type
	Pos        token.Position // declaration of named types
}

func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Deref strips pointers.
func (t *TypeInfo) Deref() *TypeInfo {
	for t != nil && t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	return t
}

// FieldInfo is a struct field kept by the analyzer: exported, or embedded.
type FieldInfo struct {
	Name     string
	Type     *TypeInfo
	Tag      reflect.StructTag
	Embedded bool
}

// SexpName returns the keyword from the sexp tag, and whether the field
// carries one. Fields tagged "-" are skipped.
func (f *FieldInfo) SexpName() (string, bool) {
	tag, ok := f.Tag.Lookup(grammar.Key)
	if !ok || tag == "-" {
		return "", false
	}

	name, _, _ := strings.Cut(tag, ",")

	return name, true
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

type PackageInfo struct {
	Path  string   // import path
	Name  string   // package name
	Dir   string   // directory of the sources
	Types []TypeID // exported named types in declaration order
}
