package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"github.com/RCoeurjoly/edea/internal/analyze"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the package the file belongs to.
	PackageName string
	// PackagePath is its import path, types from it are not qualified.
	PackagePath string
	// Filename of the generated file.
	Filename string
	// FuncName is the name of the generated function.
	FuncName string
	// MarshalPath is the import path of the marshal package.
	MarshalPath string
	// OutputDir receives a sidecar copy of code that fails to format.
	OutputDir string
	// Command is named in the generated header.
	Command string
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "kicad",
		PackagePath: "github.com/RCoeurjoly/edea/kicad",
		Filename:    "catalog_gen.go",
		FuncName:    "catalogOptions",
		MarshalPath: "github.com/RCoeurjoly/edea/marshal",
		Command:     "catalog-gen",
	}
}

type Generator struct {
	config GeneratorConfig
}

func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

type unionData struct {
	Interface string
	Members   []string
}

type templateData struct {
	Command     string
	PackageName string
	FuncName    string
	Imports     []string
	Records     []string
	Unions      []unionData
}

// Generate renders the registration file for cat. Types are looked up in
// graph to tell structs from named scalars.
func (g *Generator) Generate(cat *analyze.Catalog, graph *analyze.TypeGraph) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(cat, graph)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := catalogTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildTemplateData(cat *analyze.Catalog, graph *analyze.TypeGraph) (*templateData, error) {
	s := &analyze.TypeStringer{Local: g.config.PackagePath}

	literal := func(id analyze.TypeID) (string, error) {
		t := graph.GetType(id)
		if t == nil {
			return "", fmt.Errorf("type %s not found", id)
		}

		return s.Literal(t), nil
	}

	data := &templateData{
		Command:     g.config.Command,
		PackageName: g.config.PackageName,
		FuncName:    g.config.FuncName,
	}

	for _, id := range cat.Records {
		lit, err := literal(id)
		if err != nil {
			return nil, err
		}

		data.Records = append(data.Records, lit)
	}

	for _, u := range cat.Unions {
		ud := unionData{Interface: s.Qualified(u.Interface)}
		for _, m := range u.Members {
			lit, err := literal(m)
			if err != nil {
				return nil, err
			}

			ud.Members = append(ud.Members, lit)
		}

		data.Unions = append(data.Unions, ud)
	}

	imports := map[string]bool{g.config.MarshalPath: true}
	for _, p := range cat.Packages() {
		if p != g.config.PackagePath {
			imports[p] = true
		}
	}

	for p := range imports {
		data.Imports = append(data.Imports, p)
	}

	sort.Strings(data.Imports)

	return data, nil
}

var catalogTemplate = template.Must(template.New("catalog").Parse(`// Code generated by {{.Command}}. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	"{{.}}"
{{end}})

func {{.FuncName}}() []marshal.Option {
	return []marshal.Option{
		marshal.Records(
{{range .Records}}			{{.}},
{{end}}		),
{{range .Unions}}		marshal.Union[{{.Interface}}](
{{range .Members}}			{{.}},
{{end}}		),
{{end}}	}
}
`))
