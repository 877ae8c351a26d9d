package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"conjugal/internal/analyze"
	"conjugal/internal/catalog"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		output string
		kinds  []string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "scan <package>...",
		Short: "Propose catalog nouns for the exported types of Go packages",
		Long: `Scan loads Go packages and writes a catalog with one noun per exported
struct. Types opt in, refine or opt out with a //conjugal:noun directive.`,
		Example: `  conjugal scan ./... --output nouns.yaml
  conjugal scan ./model --kind struct --kind basic`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var selected []analyze.TypeKind

			for _, name := range kinds {
				k, err := analyze.ParseKind(name)
				if err != nil {
					return err
				}

				selected = append(selected, k)
			}

			analyzer := analyze.NewAnalyzer()
			analyzer.Dir = dir

			graph, err := analyzer.LoadPackages(args...)
			if err != nil {
				return err
			}

			a.logf("scanned %d packages, %d exported types", len(graph.Packages), len(graph.Types))

			f, err := graph.Catalog(selected)
			if err != nil {
				return err
			}

			res := catalog.Validate(f)
			writeDiagnostics(cmd.ErrOrStderr(), res)

			if err := res.Error(); err != nil {
				return err
			}

			if a.debug {
				dump(cmd.ErrOrStderr(), f)
			}

			if output != "" {
				if err := catalog.WriteFile(f, output); err != nil {
					return err
				}

				a.logf("wrote %d nouns to %s", len(f.Nouns), output)

				return nil
			}

			data, err := catalog.Marshal(f, catalog.FormatYAML)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the catalog to this file instead of stdout")
	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "type kinds to propose without a directive (struct|basic|interface|collection|func)")
	cmd.Flags().StringVar(&dir, "dir", "", "directory to resolve packages in")

	return cmd
}
