package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	commonPkg = "github.com/RCoeurjoly/edea/kicad/common"
	shapesPkg = "github.com/RCoeurjoly/edea/internal/analyze/testdata/shapes"
)

func names(ids []TypeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Name
	}

	return out
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(commonPkg, "github.com/RCoeurjoly/edea/kicad/schematic")
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.Contains(t, graph.Packages, commonPkg)
	assert.Contains(t, graph.Packages, "github.com/RCoeurjoly/edea/kicad/schematic")
	assert.Equal(t, "common", graph.Packages[commonPkg].Name)
	assert.NotEmpty(t, graph.Packages[commonPkg].Dir)

	assert.Contains(t, graph.Types, TypeID{PkgPath: commonPkg, Name: "Stroke"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: "github.com/RCoeurjoly/edea/kicad/schematic", Name: "Schematic"})
	assert.NotContains(t, graph.Types, TypeID{PkgPath: commonPkg, Name: "userFormat"})
}

func TestAnalyzer_DeclarationOrder(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(commonPkg)
	require.NoError(t, err)

	got := names(graph.Packages[commonPkg].Types)
	assert.Equal(t, []string{"UUID", "Color", "StrokeType", "Stroke", "XY"}, got[:5])
	assert.Equal(t, []string{"Paper", "PaperFormat", "PaperOrientation", "PaperUser", "PaperStandard"}, got[len(got)-5:])
}

func TestAnalyzer_Kinds(t *testing.T) {
	a := NewAnalyzer()
	graph, err := a.LoadPackages(commonPkg)
	require.NoError(t, err)

	stroke, err := a.GetStruct(commonPkg, "Stroke")
	require.NoError(t, err)
	require.Len(t, stroke.Fields, 3)

	width := stroke.Fields[0]
	assert.Equal(t, "Width", width.Name)
	assert.Equal(t, TypeKindBasic, width.Type.Kind)
	name, ok := width.SexpName()
	assert.True(t, ok)
	assert.Equal(t, "width", name)

	color := stroke.Fields[2]
	assert.Equal(t, TypeKindPointer, color.Type.Kind)
	assert.Equal(t, TypeKindAlias, color.Type.Deref().Kind)
	assert.Equal(t, TypeKindArray, color.Type.Deref().Underlying.Kind)

	paper := graph.GetType(TypeID{PkgPath: commonPkg, Name: "Paper"})
	require.NotNil(t, paper)
	assert.Equal(t, TypeKindInterface, paper.Kind)

	_, err = a.GetStruct(commonPkg, "Paper")
	assert.Error(t, err)
	_, err = a.GetStruct(commonPkg, "Missing")
	assert.Error(t, err)
}

func TestCatalog_Shapes(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(shapesPkg)
	require.NoError(t, err)

	cat, err := graph.Catalog()
	require.NoError(t, err)

	assert.Equal(t, []string{"Circle", "Square", "Drawing", "Labelled"}, names(cat.Records))
	require.Len(t, cat.Unions, 1)
	assert.Equal(t, "Shape", cat.Unions[0].Interface.Name)
	assert.Equal(t, []string{"Circle"}, names(cat.Unions[0].Members))
	assert.Equal(t, []string{shapesPkg}, cat.Packages())
}

func TestCatalog_Kicad(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(commonPkg)
	require.NoError(t, err)

	cat, err := graph.Catalog()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Stroke", "XY", "PolygonArc", "Pts", "Image", "TitleBlockComment", "TitleBlock",
		"Justify", "Font", "Effects",
		"PaperUser", "PaperStandard",
	}, names(cat.Records))
	require.Len(t, cat.Unions, 1)
	assert.Equal(t, []string{"PaperUser", "PaperStandard"}, names(cat.Unions[0].Members))
}

func TestCatalog_InterfaceWithoutMembers(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages("github.com/RCoeurjoly/edea/internal/analyze/testdata/orphan")
	require.NoError(t, err)

	_, err = graph.Catalog()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Drawing.Shape: interface orphan.Shape has no implementing types")
}

func TestIsRecord(t *testing.T) {
	tagged := &TypeInfo{Kind: TypeKindStruct, Fields: []FieldInfo{{Name: "X", Tag: `sexp:"x"`}}}
	skipped := &TypeInfo{Kind: TypeKindStruct, Fields: []FieldInfo{{Name: "X", Tag: `sexp:"-"`}}}
	embedding := &TypeInfo{Kind: TypeKindStruct, Fields: []FieldInfo{{Name: "Inner", Embedded: true, Type: tagged}}}

	assert.True(t, IsRecord(tagged))
	assert.False(t, IsRecord(skipped))
	assert.True(t, IsRecord(embedding))
	assert.False(t, IsRecord(&TypeInfo{Kind: TypeKindAlias}))
	assert.False(t, IsRecord(nil))
}
