package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render("✔ "+msg))
}

func Warn(w io.Writer, title, msg string) {
	fmt.Fprintln(w, current.Warn.Render("⚠ "+title+": "+msg))
}

func Fail(w io.Writer, title, msg string) {
	fmt.Fprintln(w, current.Error.Render("✖ "+title+": "+msg))
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(strings.Join(lines, "\n")))
}

func PanelString(inner string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Print writes n as a warning or failure line.
func Print(w io.Writer, n Notice) {
	if n.Level == LevelWarn {
		Warn(w, n.Title, n.Msg)
		return
	}
	Fail(w, n.Title, n.Msg)
}
