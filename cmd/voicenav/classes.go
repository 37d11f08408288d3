package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dshills/voicenav/internal/pattern"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	nameStyle   = cellStyle.Foreground(lipgloss.Color("220"))
)

// renderTable renders rows with the first column highlighted.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		}).
		String()
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the named target classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs := pattern.DefaultClasses().Defs()
			rows := make([][]string, 0, len(defs))
			for _, d := range defs {
				rows = append(rows, []string{d.Name, d.Expr, d.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Class", "Expression", "Description"}, rows))
			return nil
		},
	}
}
