package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"conjugal/affix"
	"conjugal/internal/catalog"
	"conjugal/internal/match"
	"conjugal/options"
)

type renderOptions struct {
	joiner     string
	joinerName string
	at         int64
	highlight  []string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <flavor> <stem> [morpheme] [morpheme2]",
		Short: "Render a single affixation",
		Long: `Render attaches a morpheme to a stem. Infixes need --at; a circumfix
takes two morphemes, or one morpheme split at --at.`,
		Example: `  conjugal render suffix yolo swag --joiner '#'
  conjugal render infix absolutely bloody --at 4
  conjugal render circumfix mach get --at 2`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.joiner, "joiner", "j", "", "text written between fragments")
	cmd.Flags().StringVar(&opts.joinerName, "joiner-name", "", "named joiner ("+strings.Join(affix.JoinerNames(), "|")+")")
	cmd.Flags().Int64Var(&opts.at, "at", 0, "insertion point in runes, negative counts from the end")
	cmd.Flags().StringSliceVar(&opts.highlight, "highlight", nil, "parts to color ("+strings.Join(partNames(), "|")+")")
	cmd.MarkFlagsMutuallyExclusive("joiner", "joiner-name")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	parts, err := parseParts(opts.highlight)
	if err != nil {
		return err
	}

	def := catalog.AffixDef{
		Name:       "render",
		Flavor:     args[0],
		Morpheme:   argOrEmpty(args, 2),
		Morpheme2:  argOrEmpty(args, 3),
		Joiner:     opts.joiner,
		JoinerName: opts.joinerName,
	}

	if cmd.Flags().Changed("at") {
		def.At = &opts.at
	}

	a, err := def.Affix()
	if err != nil {
		return err
	}

	out, err := renderParts(a.WithStem(args[1]), parts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}

// renderParts renders plainly, or highlighted when any part is selected.
func renderParts(ax affix.Affixation, parts options.PartEnum) (string, error) {
	if parts == options.PartNone {
		return ax.Render()
	}

	return ax.Highlight(parts)
}

func parseParts(names []string) (options.PartEnum, error) {
	parts := options.PartNone

	for _, name := range names {
		p, ok := options.ParsePart(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			err := fmt.Errorf("unknown part %q", name)
			if s := match.Suggest(name, partNames(), 1); len(s) > 0 {
				err = fmt.Errorf("%w (did you mean %q?)", err, s[0])
			}

			return options.PartNone, err
		}

		parts |= p
	}

	return parts, nil
}

func partNames() []string {
	return append(options.PartAll.Names(), "all", "none")
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
