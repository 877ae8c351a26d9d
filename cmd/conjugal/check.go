package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"conjugal/internal/catalog"
	"conjugal/internal/diagnostic"
)

var severityColors = map[diagnostic.Severity]*color.Color{
	diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
	diagnostic.SeverityWarning: color.New(color.FgYellow),
	diagnostic.SeverityInfo:    color.New(color.FgCyan),
}

func newCheckCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a catalog file",
		Long: `Check reports every problem in a catalog file. With --output the
normalized catalog is written out, converting between YAML and TOML by extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			res := catalog.Validate(f)
			writeDiagnostics(cmd.OutOrStdout(), res)

			if err := res.Error(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d affixes, %d units, %d nouns\n",
				color.GreenString("ok"), len(f.Affixes), len(f.Units), len(f.Nouns))

			if output == "" {
				return nil
			}

			if err := catalog.WriteFile(f, output); err != nil {
				return err
			}

			a.logf("wrote %s", output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the normalized catalog to this file")

	return cmd
}

func writeDiagnostics(w io.Writer, res *diagnostic.Diagnostics) {
	for _, d := range res.All() {
		fmt.Fprintf(w, "%s: %s\n", severityColors[d.Severity].Sprint(d.Severity), d)
	}
}
