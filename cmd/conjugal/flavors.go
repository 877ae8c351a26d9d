package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"conjugal/affix"
)

func newFlavorsCmd() *cobra.Command {
	var joiners bool

	cmd := &cobra.Command{
		Use:   "flavors",
		Short: "List affix flavors, or named joiners with --joiners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if joiners {
				return writeJoiners(cmd.OutOrStdout())
			}

			writeFlavors(cmd.OutOrStdout())

			return nil
		},
	}

	cmd.Flags().BoolVar(&joiners, "joiners", false, "list named joiners instead")

	return cmd
}

func writeFlavors(w io.Writer) {
	rows := [][]string{{"FLAVOR", "INSERTION POINT", "JOINERS"}}

	for _, f := range affix.Flavors() {
		name := strings.ToLower(f.String())

		requires, err := f.RequiresInsertionPoint()
		if err != nil {
			rows = append(rows, []string{name, "-", "not implemented"})
			continue
		}

		point := "forbidden"
		if requires {
			point = "required"
		}

		count, _ := f.JoinerCount()
		rows = append(rows, []string{name, point, strconv.Itoa(count)})
	}

	writeTable(w, rows)
}

func writeJoiners(w io.Writer) error {
	rows := [][]string{{"JOINER", "TEXT"}}

	for _, name := range affix.JoinerNames() {
		j, err := affix.ParseJoiner(name)
		if err != nil {
			return err
		}

		text, err := j.Text()
		if err != nil {
			return err
		}

		rows = append(rows, []string{name, strconv.Quote(text)})
	}

	writeTable(w, rows)

	return nil
}

// writeTable left-aligns columns by display width.
func writeTable(w io.Writer, rows [][]string) {
	var widths []int

	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}

			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}

			cells[i] = runewidth.FillRight(cell, widths[i])
		}

		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
}
