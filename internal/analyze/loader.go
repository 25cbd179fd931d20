package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"

	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports

// Analyzer loads packages with go/packages and describes their exported
// named types.
type Analyzer struct {
	dir   string
	graph *TypeGraph
	seen  map[types.Type]*TypeInfo
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{graph: NewTypeGraph(), seen: map[types.Type]*TypeInfo{}}
}

// WithDir sets the directory relative patterns are resolved in.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir
	return a
}

// LoadPackages loads the packages matching patterns, for example
// "./kicad/common" or "github.com/RCoeurjoly/edea/kicad/pcb", and adds
// their types to the graph.
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: loadMode, Dir: a.dir}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	var errs []error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e)
		}
	})

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("package errors: %w", err)
	}

	// every package is known before any type is described, so references
	// between them are not taken for external types
	for _, p := range pkgs {
		a.graph.Packages[p.PkgPath] = &PackageInfo{Path: p.PkgPath, Name: p.Name}
	}

	for _, p := range pkgs {
		a.addPackage(p)
	}

	return a.graph, nil
}

// addPackage records the exported named types of p, files by base name and
// then by position in the file.
func (a *Analyzer) addPackage(p *packages.Package) {
	info := a.graph.Packages[p.PkgPath]
	if len(p.GoFiles) > 0 {
		info.Dir = filepath.Dir(p.GoFiles[0])
	}

	scope := p.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}

		id := TypeID{PkgPath: p.PkgPath, Name: name}
		t := a.describe(tn.Type())
		t.ID = id
		t.Pos = p.Fset.Position(tn.Pos())

		a.graph.Types[id] = t
		info.Types = append(info.Types, id)
	}

	slices.SortStableFunc(info.Types, func(x, y TypeID) int {
		px, py := a.graph.Types[x].Pos, a.graph.Types[y].Pos
		if bx, by := filepath.Base(px.Filename), filepath.Base(py.Filename); bx != by {
			if bx < by {
				return -1
			}

			return 1
		}

		return px.Offset - py.Offset
	})
}

// describe converts t, memoizing so that recursive types terminate.
func (a *Analyzer) describe(t types.Type) *TypeInfo {
	if info, ok := a.seen[t]; ok {
		return info
	}

	info := &TypeInfo{GoType: t}
	a.seen[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.describeNamed(tt, info)
	case *types.Basic:
		info.Kind = TypeKindBasic
	case *types.Pointer:
		info.Kind, info.ElemType = TypeKindPointer, a.describe(tt.Elem())
	case *types.Slice:
		info.Kind, info.ElemType = TypeKindSlice, a.describe(tt.Elem())
	case *types.Array:
		info.Kind, info.ElemType = TypeKindArray, a.describe(tt.Elem())
	case *types.Struct:
		info.Kind, info.Fields = TypeKindStruct, a.fields(tt)
	case *types.Interface:
		info.Kind = TypeKindInterface
	}

	return info
}

func (a *Analyzer) describeNamed(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	info.ID.Name = obj.Name()
	if obj.Pkg() != nil {
		info.ID.PkgPath = obj.Pkg().Path()
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind, info.Fields = TypeKindStruct, a.fields(ut)
	case *types.Interface:
		info.Kind = TypeKindInterface
	default:
		// type StrokeType string, type Color [4]float64
		if _, local := a.graph.Packages[info.ID.PkgPath]; !local && !isBasic(ut) {
			info.Kind = TypeKindExternal
			return
		}

		info.Kind, info.Underlying = TypeKindAlias, a.describe(ut)
	}
}

func isBasic(t types.Type) bool {
	_, ok := t.(*types.Basic)
	return ok
}

// fields lists exported fields and embedded ones; an unexported embedded
// struct still contributes its fields.
func (a *Analyzer) fields(st *types.Struct) []FieldInfo {
	var out []FieldInfo
	for i := range st.NumFields() {
		v := st.Field(i)
		if !v.Exported() && !v.Embedded() {
			continue
		}

		out = append(out, FieldInfo{
			Name:     v.Name(),
			Type:     a.describe(v.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: v.Embedded(),
		})
	}

	return out
}

// GetStruct returns a loaded named struct type.
func (a *Analyzer) GetStruct(pkgPath, name string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: name}

	switch info := a.graph.GetType(id); {
	case info == nil:
		return nil, fmt.Errorf("type %s not found", id)
	case info.Kind != TypeKindStruct:
		return nil, fmt.Errorf("type %s is a %s, not a struct", id, info.Kind)
	default:
		return info, nil
	}
}
