package main

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/RCoeurjoly/edea/internal/match"
	"github.com/RCoeurjoly/edea/marshal"
)

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [NAME]",
		Short: "List the records of the catalog or describe one",
		Long: `Without a name every record is listed with its tag. NAME is a tag such as
pad, or a Go type such as pcb.Pad; the field table of every matching record
is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.listRecords()
			}

			return a.describe(args[0])
		},
	}
}

func typeName(t reflect.Type) string {
	return t.String()
}

func (a *app) listRecords() error {
	cat := a.codec.Catalog()

	types := cat.Types()
	sort.Slice(types, func(i, j int) bool { return typeName(types[i]) < typeName(types[j]) })

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, t := range types {
		tag, _ := cat.TagOf(t)
		fmt.Fprintf(w, "%s\t%s\n", typeName(t), tag)
	}

	return w.Flush()
}

// resolve finds the record types a name refers to, by tag first and then
// by Go type name with or without the package.
func resolve(cat *marshal.Catalog, name string) []reflect.Type {
	if ts := cat.Lookup(name); len(ts) > 0 {
		return ts
	}

	var out []reflect.Type
	for _, t := range cat.Types() {
		if typeName(t) == name || t.Name() == name {
			out = append(out, t)
		}
	}

	return out
}

func (a *app) describe(name string) error {
	cat := a.codec.Catalog()

	types := resolve(cat, name)
	if len(types) == 0 {
		if s := suggestRecord(cat, name); s != "" {
			return fmt.Errorf("unknown record %q (did you mean %q?)", name, s)
		}

		return fmt.Errorf("unknown record %q", name)
	}

	for i, t := range types {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}

		if err := a.describeType(cat, t); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) describeType(cat *marshal.Catalog, t reflect.Type) error {
	tag, _ := cat.TagOf(t)
	specs, _ := cat.Describe(t)

	fmt.Fprintf(a.stdout, "(%s ...) %s\n", tag, typeName(t))

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  FIELD\tGO\tTYPE\tSHAPE\tFLAGS")

	for _, f := range specs {
		flags := f.Tags.String()
		if f.Optional {
			flags += ",optional"
		}

		typ := f.Type.String()
		if f.Shape == marshal.ShapeUnion {
			var members []string
			for _, m := range cat.Members(f.Type) {
				members = append(members, m.Name())
			}

			typ += " = " + strings.Join(members, " | ")
		}

		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", f.Name, f.GoName, typ, shapeName(f.Shape), flags)
	}

	return w.Flush()
}

func shapeName(s marshal.ShapeEnum) string {
	return strings.ToLower(strings.TrimPrefix(s.String(), "Shape"))
}

// suggestRecord prefers fuzzy subsequence matches, "padopt" finds
// pad_options, and falls back to edit distance for typos.
func suggestRecord(cat *marshal.Catalog, name string) string {
	candidates := cat.Tags()
	for _, t := range cat.Types() {
		candidates = append(candidates, typeName(t))
	}

	if ranks := fuzzy.RankFindNormalizedFold(name, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	s, _ := match.Suggest(name, candidates)

	return s
}
