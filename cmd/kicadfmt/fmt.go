package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [-w] [FILE...]",
		Short: "Rewrite files in canonical form",
		Long: `Decode each file and encode it again. Defaults are left out, numbers are
written in canonical form and the document is printed on one line. Without
files standard input is formatted to standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if write {
					return fmt.Errorf("cannot use -w with standard input")
				}

				args = []string{"-"}
			}

			if write {
				return a.formatInPlace(cmd.Context(), args)
			}

			for _, path := range args {
				if err := a.formatFile(path, false); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file instead of stdout")

	return cmd
}

// formatInPlace rewrites files concurrently, stopping at the first failure.
func (a *app) formatInPlace(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Check.Jobs)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := a.formatFile(path, true); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			return nil
		})
	}

	return g.Wait()
}

func (a *app) formatFile(path string, write bool) error {
	text, err := a.readInput(path)
	if err != nil {
		return err
	}

	out, err := a.canonical(text)
	if err != nil {
		return err
	}

	if !write {
		_, err := fmt.Fprint(a.stdout, out)
		return err
	}

	if out == text {
		a.log.Debug("unchanged", "file", path)
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return err
	}

	a.log.Info("formatted", "file", path)

	return nil
}

// canonical returns the re-encoded document with a trailing newline.
func (a *app) canonical(text string) (string, error) {
	doc, err := a.codec.DecodeDocument(text)
	if err != nil {
		return "", err
	}

	out, err := a.codec.EncodeDocument(doc)
	if err != nil {
		return "", err
	}

	return out + "\n", nil
}
