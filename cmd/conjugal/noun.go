package main

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"conjugal/noun"
)

func newNounCmd(a *app) *cobra.Command {
	var count float64

	cmd := &cobra.Command{
		Use:   "noun <name>",
		Short: "Show the forms of a catalog noun, or a quantity of it with --count",
		Example: `  conjugal --catalog words.yaml noun Die
  conjugal --catalog words.yaml noun Rock --count 2.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.buildCatalog(cmd)
			if err != nil {
				return err
			}

			n, err := c.Noun(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("count") {
				writeNoun(cmd.OutOrStdout(), n)
				return nil
			}

			return writeQuantity(cmd.OutOrStdout(), n, count)
		},
	}

	cmd.Flags().Float64VarP(&count, "count", "n", 0, "quantity to write out")

	return cmd
}

func writeNoun(w io.Writer, n noun.Conjugation) {
	rows := [][]string{
		{"lemma", n.Lemma},
		{"singular", n.Singular},
		{"plural", n.Plural},
		{"countability", n.Countability.String()},
		{"abbreviation", n.AbbreviationPlurable().String()},
		{"nounal verb", n.NounalVerb},
	}

	if n.PreferredCasing.IsSet() {
		rows = append(rows, []string{"casing", n.PreferredCasing.String()})
	}

	if n.Unit != nil {
		rows = append(rows, []string{"unit", n.Unit.String()})
	}

	writeTable(w, rows)
}

// writeQuantity writes the quantity, then the abbreviation for whole counts.
func writeQuantity(w io.Writer, n noun.Conjugation, count float64) error {
	out, err := n.Quantify(count)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, out)

	if whole, err := safecast.Convert[int](count); err == nil {
		fmt.Fprintln(w, n.Abbreviate(whole))
	}

	return nil
}
