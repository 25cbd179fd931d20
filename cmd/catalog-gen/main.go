// Command catalog-gen writes the registration file of a record catalog.
//
// It loads the given packages, collects every struct with sexp field tags
// and every interface implemented by some of them, and writes a function
// returning the matching marshal options into the package of the output
// file. It is meant to be run from go:generate:
//
//	//go:generate go run ../cmd/catalog-gen -o catalog_gen.go ./common ./schematic ./pcb
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"

	"github.com/RCoeurjoly/edea/internal/analyze"
	"github.com/RCoeurjoly/edea/internal/gen"
)

func main() {
	config := gen.DefaultGeneratorConfig()

	var output string

	rootCmd := &cobra.Command{
		Use:   "catalog-gen [flags] packages...",
		Short: "Generate the marshal catalog registration for record packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(config, output, args)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&output, "output", "o", config.Filename, "Output file, its directory selects the package")
	rootCmd.Flags().StringVar(&config.FuncName, "func", config.FuncName, "Name of the generated function")
	rootCmd.Flags().StringVar(&config.MarshalPath, "marshal", config.MarshalPath, "Import path of the marshal package")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(config gen.GeneratorConfig, output string, patterns []string) error {
	outDir := filepath.Dir(output)

	name, path, err := targetPackage(outDir)
	if err != nil {
		return err
	}

	config.PackageName = name
	config.PackagePath = path
	config.Filename = filepath.Base(output)
	config.OutputDir = outDir

	graph, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return err
	}

	cat, err := graph.Catalog()
	if err != nil {
		return err
	}

	file, err := gen.NewGenerator(config).Generate(cat, graph)
	if err != nil {
		return err
	}

	return gen.WriteFiles([]gen.GeneratedFile{*file}, outDir)
}

// targetPackage returns the name and import path of the package in dir.
func targetPackage(dir string) (string, string, error) {
	cfg := &packages.Config{Mode: packages.NeedName, Dir: dir}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", "", fmt.Errorf("loading output package: %w", err)
	}

	if len(pkgs) != 1 || pkgs[0].Name == "" {
		return "", "", fmt.Errorf("no Go package in %s", dir)
	}

	return pkgs[0].Name, pkgs[0].PkgPath, nil
}
