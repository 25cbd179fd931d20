package pcb

import (
	"fmt"
	"slices"

	"github.com/RCoeurjoly/edea/sexpr"
)

type LayerType string

func (LayerType) Values() []string { return []string{"signal", "power", "mixed", "jumper", "user"} }

// CanonicalLayerNames lists every layer name KiCad 7 knows, copper first.
var CanonicalLayerNames = canonicalLayerNames()

func canonicalLayerNames() []string {
	names := []string{"F.Cu"}
	for i := 1; i <= 30; i++ {
		names = append(names, fmt.Sprintf("In%d.Cu", i))
	}

	names = append(names,
		"B.Cu",
		"B.Adhes", "F.Adhes",
		"B.Paste", "F.Paste",
		"B.SilkS", "F.SilkS",
		"B.Mask", "F.Mask",
		"Dwgs.User", "Cmts.User", "Eco1.User", "Eco2.User",
		"Edge.Cuts", "Margin",
		"B.CrtYd", "F.CrtYd",
		"B.Fab", "F.Fab",
	)

	for i := 1; i <= 9; i++ {
		names = append(names, fmt.Sprintf("User.%d", i))
	}

	return names
}

// IsCanonicalLayer reports whether name is a KiCad 7 layer name.
func IsCanonicalLayer(name string) bool {
	return slices.Contains(CanonicalLayerNames, name)
}

// LayerName is the canonical name of a layer; user names are kept in
// LayerDef.UserName.
type LayerName string

func (LayerName) Values() []string { return CanonicalLayerNames }

// LayerDef is one entry of the board layer table:
// (ordinal "name" type ["user name"]).
type LayerDef struct {
	Ordinal  uint      `sexp:"ordinal,positional"`
	Name     LayerName `sexp:"name,positional,quote"`
	Type     LayerType `sexp:"type,positional"`
	UserName *string   `sexp:"user_name,positional,quote"`
}

type LayerTable struct {
	Defs []LayerDef `sexp:"defs,positional"`
}

func (LayerTable) SexpTag() string { return "layers" }

// IsLayerDefinition reports whether l is a layer table entry rather than a
// keyword group: three or four elements, a bare ordinal of decimal digits, a
// known layer name and a layer type.
func IsLayerDefinition(l sexpr.List) bool {
	if len(l) < 3 || len(l) > 4 {
		return false
	}

	ordinal, ok := l[0].(sexpr.Atom)
	if !ok || ordinal.Quoted {
		return false
	}

	if !isDigits(ordinal.Text) {
		return false
	}

	name, ok := l[1].(sexpr.Atom)
	if !ok || !IsCanonicalLayer(name.Text) {
		return false
	}

	typ, ok := l[2].(sexpr.Atom)

	return ok && slices.Contains(LayerType("").Values(), typ.Text)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
