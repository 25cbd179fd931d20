// Command kicadfmt reads, checks and rewrites KiCad 7 schematic and board
// files.
//
//	kicadfmt fmt [-w] FILE...
//	kicadfmt check [--watch] [--roundtrip] FILE...
//	kicadfmt dump --format sexpr|yaml|cbor|go FILE
//	kicadfmt schema [NAME]
//
// Settings are read from .kicadfmt.yaml in the working directory, or the
// file given with --config. Flags override the file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/RCoeurjoly/edea/internal/config"
	"github.com/RCoeurjoly/edea/kicad"
)

type app struct {
	configPath string
	verbose    bool
	precision  int
	maxDepth   int

	cfg   *config.Config
	codec *kicad.Codec
	log   *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "kicadfmt",
		Short:         "Read, check and rewrite KiCad 7 schematic and board files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Configuration file (default "+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().IntVar(&a.precision, "precision", -1, "Fraction digits of written numbers")
	rootCmd.PersistentFlags().IntVar(&a.maxDepth, "max-depth", 0, "Maximum nesting depth of input files")

	rootCmd.AddCommand(
		a.newFmtCmd(),
		a.newCheckCmd(),
		a.newDumpCmd(),
		a.newSchemaCmd(),
	)

	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the
// codec shared by the subcommands.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("precision") {
		cfg.Precision = a.precision
	}

	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = a.maxDepth
	}

	a.cfg = cfg

	codec, err := kicad.NewCodec(cfg.CatalogOptions()...)
	if err != nil {
		return err
	}

	a.codec = codec

	if a.verbose {
		a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		a.log = slog.New(slog.DiscardHandler)
	}

	return nil
}

// readInput reads a file, or standard input for "-".
func (a *app) readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
