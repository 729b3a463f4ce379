package view

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Table renders rows under a styled header. Columns listed in numeric are
// right-aligned.
func Table(headers []string, rows [][]string, numeric ...int) string {
	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.Rule).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = theme.TableHeader.Padding(0, 1)
			}
			if right[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	return t.Render()
}
