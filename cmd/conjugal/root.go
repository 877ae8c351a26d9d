package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"conjugal/internal/catalog"
)

var errNoCatalog = errors.New("no catalog given (use --catalog)")

// app carries the persistent flags shared by every subcommand.
type app struct {
	colorMode   string
	catalogPath string
	verbose     bool
	debug       bool

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "conjugal",
		Short:        "Compose affixes and conjugate nouns",
		Long:         `conjugal renders prefixes, suffixes, infixes, circumfixes, ambifixes and duplifixes, and writes out quantities of nouns`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	flags.StringVar(&a.catalogPath, "catalog", "", "catalog file (.yaml, .yml or .toml)")
	flags.BoolVar(&a.verbose, "verbose", false, "log what is loaded to stderr")
	flags.BoolVar(&a.debug, "debug", false, "dump parsed catalogs to stderr")

	root.AddCommand(
		newRenderCmd(),
		newApplyCmd(a),
		newFlavorsCmd(),
		newNounCmd(a),
		newCheckCmd(a),
		newScanCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	switch a.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("unknown color mode %q (must be auto, on or off)", a.colorMode)
	}

	if a.verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "conjugal: ", 0)
	}

	return nil
}

// load reads a catalog file, dumping it with --debug.
func (a *app) load(cmd *cobra.Command, path string) (*catalog.File, error) {
	f, err := (&catalog.Loader{Logger: a.logger}).Load(path)
	if err != nil {
		return nil, err
	}

	if a.debug {
		dump(cmd.ErrOrStderr(), f)
	}

	return f, nil
}

// buildCatalog loads and builds the --catalog file.
func (a *app) buildCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if a.catalogPath == "" {
		return nil, errNoCatalog
	}

	f, err := a.load(cmd, a.catalogPath)
	if err != nil {
		return nil, err
	}

	return catalog.Build(f, nil)
}

func (a *app) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

func dump(w io.Writer, v any) {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	cfg.Fdump(w, v)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
