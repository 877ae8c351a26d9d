package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newApplyCmd(a *app) *cobra.Command {
	var highlight []string

	cmd := &cobra.Command{
		Use:     "apply <affix> <stem>...",
		Short:   "Apply a catalog affix to stems",
		Example: `  conjugal --catalog words.yaml apply expletive absolutely fantastic`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := parseParts(highlight)
			if err != nil {
				return err
			}

			c, err := a.buildCatalog(cmd)
			if err != nil {
				return err
			}

			x, err := c.Affix(args[0])
			if err != nil {
				return err
			}

			for _, stem := range args[1:] {
				out, err := renderParts(x.WithStem(stem), parts)
				if err != nil {
					return fmt.Errorf("%s on %q: %w", args[0], stem, err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&highlight, "highlight", nil, "parts to color ("+strings.Join(partNames(), "|")+")")

	return cmd
}
