package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	undo   key.Binding
	redo   key.Binding
	back   key.Binding
	quit   key.Binding
	force  key.Binding
	next   key.Binding
	prev   key.Binding
	submit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		redo:   key.NewBinding(key.WithKeys("ctrl+r", "U"), key.WithHelp("ctrl+r", "redo")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		force:  key.NewBinding(key.WithKeys("ctrl+c")),
		next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}

// hints renders bindings as "key → action" pairs for the footer.
func hints(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" → "+h.Desc)
	}
	return strings.Join(parts, "    ")
}
