package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/idilsaglam/meetings/internal/schedule"
	"github.com/idilsaglam/meetings/internal/tz"
)

const maxTitle = 40

// Headers are the result table columns after the position column.
func Headers() []string {
	h := []string{"Title"}
	for _, z := range tz.Zones {
		h = append(h, z.String())
	}
	return h
}

// Cells flattens a row into Title followed by one time per zone.
func Cells(r schedule.Row) []string {
	out := []string{Truncate(r.Title, maxTitle)}
	for _, z := range tz.Zones {
		out = append(out, r.Times[z])
	}
	return out
}

// Truncate shortens s to n runes with an ellipsis.
func Truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-3]) + "..."
}

// MeetingTable renders rows with 1-based positions for `rm`.
func MeetingTable(rows []schedule.Row) string {
	t := table.New().
		Border(current.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(current.BorderColor)).
		Headers(append([]string{"#"}, Headers()...)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return current.Title.Padding(0, 1)
			}
			if col == 0 {
				return current.Muted.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for i, r := range rows {
		t.Row(append([]string{strconv.Itoa(i + 1)}, Cells(r)...)...)
	}
	return t.String()
}
