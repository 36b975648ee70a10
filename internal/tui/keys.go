package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Cycle   key.Binding
	Back    key.Binding
	DayUp   key.Binding
	DayDown key.Binding
	Add     key.Binding
	Delete  key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var keys = keyMap{
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Cycle:   key.NewBinding(key.WithKeys("right", " "), key.WithHelp("←/→", "change")),
	Back:    key.NewBinding(key.WithKeys("left")),
	DayUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "change day")),
	DayDown: key.NewBinding(key.WithKeys("down")),
	Add:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add meeting")),
	Delete:  key.NewBinding(key.WithKeys("d", "delete", "ctrl+d"), key.WithHelp("d", "delete meeting")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Confirm: key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes")),
	Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Next, k.Cycle, k.Add, k.Delete}
}

func (k keyMap) dateHelp() []key.Binding {
	return []key.Binding{k.Next, k.DayUp, k.Add, k.Delete}
}

func (k keyMap) tableHelp() []key.Binding {
	return []key.Binding{k.Next, k.Delete, k.Quit}
}
