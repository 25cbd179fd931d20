package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/RCoeurjoly/edea/internal/diagnostic"
	"github.com/RCoeurjoly/edea/sexpr"
)

// errCheckFailed is returned when a check reported errors. They have
// already been printed.
var errCheckFailed = errors.New("check failed")

func (a *app) newCheckCmd() *cobra.Command {
	var (
		watch     bool
		roundTrip bool
		jobs      int
	)

	cmd := &cobra.Command{
		Use:   "check [--watch] FILE...",
		Short: "Decode files and report every one that does not fit the KiCad 7 format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("roundtrip") {
				a.cfg.Check.RoundTrip = roundTrip
			}

			if cmd.Flags().Changed("jobs") {
				if jobs < 1 {
					return fmt.Errorf("--jobs must be positive, got %d", jobs)
				}

				a.cfg.Check.Jobs = jobs
			}

			if watch {
				return a.watch(cmd.Context(), args)
			}

			diags, err := a.checkFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			return a.report(diags)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Check again whenever a file changes")
	cmd.Flags().BoolVar(&roundTrip, "roundtrip", false, "Re-encode each file and verify it decodes to the same document")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of files checked at once")

	return cmd
}

// checkFiles checks paths concurrently. Per-file failures are diagnostics,
// the error is only set when the context is cancelled.
func (a *app) checkFiles(ctx context.Context, paths []string) (diagnostic.Diagnostics, error) {
	var (
		mu  sync.Mutex
		all diagnostic.Diagnostics
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Check.Jobs)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			d := a.checkFile(path)
			a.log.Debug("checked", "file", path, "errors", len(d.Errors), "elapsed", time.Since(start))

			mu.Lock()
			all.Merge(d)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return all, err
	}

	all.Sort()

	return all, nil
}

func (a *app) checkFile(path string) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	text, err := a.readInput(path)
	if err != nil {
		d.Add(diagnostic.FromError(path, err))
		return d
	}

	tree, err := a.codec.Parse(text)
	if err != nil {
		d.Add(diagnostic.FromError(path, err))
		return d
	}

	doc, err := a.codec.DecodeTree(tree)
	if err != nil {
		d.Add(diagnostic.FromError(path, err))
		return d
	}

	if !a.cfg.Check.RoundTrip {
		return d
	}

	encoded, err := a.codec.EncodeTree(doc)
	if err != nil {
		d.AddError(diagnostic.CodeRoundTrip, "encoding failed: "+err.Error(), path, "")
		return d
	}

	again, err := a.codec.DecodeTree(encoded)
	if err != nil {
		d.AddError(diagnostic.CodeRoundTrip, "re-encoded document does not decode: "+err.Error(), path, "")
		return d
	}

	if !a.codec.Catalog().Equal(doc, again) {
		d.AddError(diagnostic.CodeRoundTrip, "re-encoded document decodes to a different value", path, "")
		return d
	}

	same, err := sameTree(tree, encoded)
	if err != nil {
		d.AddError(diagnostic.CodeInternal, err.Error(), path, "")
		return d
	}

	if !same {
		d.AddInfo(diagnostic.CodeNotCanonical, "fmt would drop defaults or rewrite numbers", path, "")
	}

	return d
}

func sameTree(a, b sexpr.Expr) (bool, error) {
	fa, err := sexpr.Fingerprint(a)
	if err != nil {
		return false, err
	}

	fb, err := sexpr.Fingerprint(b)
	if err != nil {
		return false, err
	}

	return fa == fb, nil
}

// report prints diagnostics, errors and warnings to stderr and infos only
// when verbose.
func (a *app) report(d diagnostic.Diagnostics) error {
	for _, diag := range d.All() {
		if diag.Severity == diagnostic.DiagnosticInfo && !a.verbose {
			continue
		}

		fmt.Fprintln(a.stderr, diag.String())
	}

	if d.HasErrors() || len(d.Warnings) > 0 {
		fmt.Fprintln(a.stderr, d.Summary())
	}

	if d.HasErrors() {
		return errCheckFailed
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
