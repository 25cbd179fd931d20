package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"sort"
)

// Union is an interface and the types of its package implementing it, in
// declaration order.
type Union struct {
	Interface TypeID
	Members   []TypeID
}

// Catalog is the registration list for a set of record packages.
type Catalog struct {
	Records []TypeID
	Unions  []Union
}

// Packages returns the import paths of the records and unions, sorted.
func (c *Catalog) Packages() []string {
	seen := make(map[string]bool)
	for _, id := range c.Records {
		seen[id.PkgPath] = true
	}

	for _, u := range c.Unions {
		seen[u.Interface.PkgPath] = true
		for _, m := range u.Members {
			seen[m.PkgPath] = true
		}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}

	sort.Strings(out)

	return out
}

// Catalog collects the records and unions of every loaded package.
// Packages are visited by import path, types in declaration order. An
// interface used by a record field without any implementing type is an
// error, the decoder could never fill it.
func (g *TypeGraph) Catalog() (*Catalog, error) {
	paths := make([]string, 0, len(g.Packages))
	for p := range g.Packages {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	cat := &Catalog{}
	unions := make(map[TypeID]bool)

	for _, p := range paths {
		pkg := g.Packages[p]

		for _, id := range pkg.Types {
			t := g.Types[id]

			switch {
			case IsRecord(t):
				cat.Records = append(cat.Records, id)
			case t.Kind == TypeKindInterface:
				u, ok := g.union(pkg, t)
				if ok {
					cat.Unions = append(cat.Unions, u)
					unions[id] = true
				}
			}
		}
	}

	var errs []error
	for _, id := range cat.Records {
		errs = append(errs, g.checkUnions(id.Name, g.Types[id], unions)...)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cat, nil
}

// IsRecord reports whether t is a struct with sexp tagged fields, directly
// or through an untagged embedded struct.
func IsRecord(t *TypeInfo) bool {
	if t == nil || t.Kind != TypeKindStruct {
		return false
	}

	for i := range t.Fields {
		f := &t.Fields[i]
		if _, ok := f.SexpName(); ok {
			return true
		}

		if f.Embedded && f.Tag == "" && IsRecord(f.Type) {
			return true
		}
	}

	return false
}

func (g *TypeGraph) union(pkg *PackageInfo, iface *TypeInfo) (Union, bool) {
	it, ok := iface.GoType.Underlying().(*types.Interface)
	if !ok || it.NumMethods() == 0 {
		return Union{}, false
	}

	u := Union{Interface: iface.ID}
	for _, id := range pkg.Types {
		t := g.Types[id]
		if t.Kind == TypeKindInterface {
			continue
		}

		// members are registered as values, pointer receivers do not count
		if types.Implements(t.GoType, it) {
			u.Members = append(u.Members, id)
		}
	}

	return u, len(u.Members) > 0
}

// checkUnions reports interface fields of t, at path, that no record of the
// graph implements.
func (g *TypeGraph) checkUnions(path string, t *TypeInfo, unions map[TypeID]bool) []error {
	var errs []error
	for i := range t.Fields {
		f := &t.Fields[i]

		if f.Embedded && f.Tag == "" {
			errs = append(errs, g.checkUnions(path, f.Type, unions)...)
			continue
		}

		if _, ok := f.SexpName(); !ok {
			continue
		}

		ft := f.Type.Deref()
		if ft.Kind == TypeKindInterface && !unions[ft.ID] {
			errs = append(errs, fmt.Errorf("%s: interface %s has no implementing types in its package",
				path+"."+f.Name, NewTypeStringer().TypeString(ft)))
		}
	}

	return errs
}
