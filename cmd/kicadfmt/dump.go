package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RCoeurjoly/edea/sexpr"
)

var dumpFormats = []string{"sexpr", "yaml", "cbor", "go"}

func (a *app) newDumpCmd() *cobra.Command {
	var (
		format string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "dump [--format sexpr|yaml|cbor|go] FILE",
		Short: "Print a document as a tree or as the decoded Go value",
		Long: `Print the decoded document. The tree formats show the document as fmt
would write it; with --raw they show the file as parsed, without decoding.
The go format prints the decoded records.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(dumpFormats, format) {
				return fmt.Errorf("unknown format %q, want one of %s", format, strings.Join(dumpFormats, ", "))
			}

			if raw && format == "go" {
				return fmt.Errorf("--raw has no Go value to print")
			}

			return a.dump(args[0], format, raw)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "sexpr", "Output format: "+strings.Join(dumpFormats, ", "))
	cmd.Flags().BoolVar(&raw, "raw", false, "Dump the parsed file without decoding it")

	return cmd
}

func (a *app) dump(path, format string, raw bool) error {
	text, err := a.readInput(path)
	if err != nil {
		return err
	}

	tree, err := a.codec.Parse(text)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if !raw {
		doc, err := a.codec.DecodeTree(tree)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if format == "go" {
			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
			cfg.Fdump(a.stdout, doc)

			return nil
		}

		if tree, err = a.codec.EncodeTree(doc); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)

		if err := enc.Encode(sexpr.ToYAML(tree)); err != nil {
			return err
		}

		return enc.Close()
	case "cbor":
		data, err := sexpr.MarshalCBOR(tree)
		if err != nil {
			return err
		}

		_, err = a.stdout.Write(data)

		return err
	default:
		_, err := fmt.Fprintln(a.stdout, sexpr.Render(tree))
		return err
	}
}
