package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/todo-history/internal/task"
)

const (
	fieldDescription = iota
	fieldDueDate
	fieldTags
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Description",
	"Due date (optional)",
	"Tags (optional, comma separated)",
}

// addForm collects the three add-task fields.
type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	keys   keyMap
}

func newAddForm(keys keyMap) *addForm {
	f := &addForm{keys: keys}
	placeholders := [fieldCount]string{"Buy milk", "friday", "errand, home"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Width = 40
		f.inputs[i] = ti
	}
	return f
}

// reset clears every field and focuses the description.
func (f *addForm) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldDescription
	return f.inputs[f.focus].Focus()
}

func (f *addForm) setWidth(w int) {
	for i := range f.inputs {
		f.inputs[i].Width = max(20, w)
	}
}

func (f *addForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// update routes a key to the form. submitted is true when enter was pressed
// on the last field.
func (f *addForm) update(msg tea.KeyMsg) (cmd tea.Cmd, submitted bool) {
	switch {
	case key.Matches(msg, f.keys.next):
		return f.move(1), false
	case key.Matches(msg, f.keys.prev):
		return f.move(-1), false
	case key.Matches(msg, f.keys.submit):
		if f.focus == fieldCount-1 {
			return nil, true
		}
		return f.move(1), false
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, false
}

// build turns the field values into a Task.
func (f *addForm) build() (task.Task, error) {
	return task.New(task.Fields{
		Description: f.inputs[fieldDescription].Value(),
		DueDate:     f.inputs[fieldDueDate].Value(),
		Tags:        task.ParseTags(f.inputs[fieldTags].Value()),
	})
}

func (f *addForm) view() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	var rows []string
	for i := range f.inputs {
		style := label
		if i == f.focus {
			style = active
		}
		rows = append(rows, style.Render(fieldLabels[i]), f.inputs[i].View(), "")
	}
	return strings.TrimRight(strings.Join(rows, "\n"), "\n")
}
