// internal/menu/menu.go
//
// The numbered prompt loop. It reads one answer per line, calls the matching
// Session operation and prints the outcome. All history bookkeeping lives in
// the Session; this loop only parses input and reports results.

package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/todo-history/internal/session"
	"github.com/kingrea/todo-history/internal/task"
)

// Choices in display order. The number shown to the user is index+1.
var choices = []string{
	"Add Task",
	"Remove Task",
	"Display Tasks",
	"Undo",
	"Redo",
	"Exit",
}

// Logger receives diagnostic lines for failed operations.
type Logger interface {
	Printf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// Option customizes a Menu.
type Option func(*Menu)

// WithLogger sends failures to l in addition to the screen.
func WithLogger(l Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.logger = l
		}
	}
}

// Menu drives a Session from line-based input.
type Menu struct {
	session *session.Session
	in      *bufio.Reader
	err     error
	out     io.Writer
	logger  Logger

	title   lipgloss.Style
	heading lipgloss.Style
	dim     lipgloss.Style
}

// New builds a menu reading from in and writing to out. Styling follows the
// capabilities of out, so redirected output stays plain text.
func New(s *session.Session, in io.Reader, out io.Writer, opts ...Option) *Menu {
	r := lipgloss.NewRenderer(out)
	m := &Menu{
		session: s,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  noopLogger{},
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run loops until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		m.displayMenu()
		choice, ok := m.prompt(fmt.Sprintf("Enter your choice (1-%d): ", len(choices)))
		if !ok {
			m.println("")
			m.println("Exiting the program.")
			return m.err
		}
		switch choice {
		case "1":
			m.addTask()
		case "2":
			m.removeTask()
		case "3":
			m.displayTasks()
		case "4":
			if m.session.Undo() {
				m.println("Undo successful.")
			} else {
				m.println("Nothing to undo.")
			}
		case "5":
			if m.session.Redo() {
				m.println("Redo successful.")
			} else {
				m.println("Nothing to redo.")
			}
		case "6":
			m.println("Exiting the program.")
			return nil
		default:
			m.println(fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d.", len(choices)))
		}
	}
}

func (m *Menu) displayMenu() {
	m.println("")
	m.println(m.title.Render("MENU:"))
	for i, c := range choices {
		m.println(fmt.Sprintf("%d. %s", i+1, c))
	}
}

func (m *Menu) addTask() {
	description, ok := m.prompt("Enter task description: ")
	if !ok {
		return
	}
	b := task.NewBuilder(description)
	if due, ok := m.prompt("Enter due date (optional, press Enter to skip): "); ok && due != "" {
		b.DueDate(due)
	}
	if tags, ok := m.prompt("Enter tags (optional, comma separated, press Enter to skip): "); ok && tags != "" {
		b.Tags(task.ParseTags(tags)...)
	}
	t, err := b.Build()
	if err == nil {
		err = m.session.Add(t)
	}
	if err != nil {
		var verr *task.ValidationError
		if errors.As(err, &verr) {
			m.println(fmt.Sprintf("Task not added: %s %s.", verr.Field, verr.Reason))
		} else {
			m.println(fmt.Sprintf("Task not added: %v", err))
		}
		m.logger.Printf("menu: add rejected: %v", err)
		return
	}
	m.println("Task added successfully.")
}

func (m *Menu) removeTask() {
	m.displayTasks()
	raw, ok := m.prompt("Enter the index of the task to remove: ")
	if !ok {
		return
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		m.println("Invalid index.")
		return
	}
	if _, err := m.session.Remove(idx); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			m.println("Invalid index.")
		} else {
			m.println(fmt.Sprintf("Remove failed: %v", err))
		}
		m.logger.Printf("menu: remove %d: %v", idx, err)
		return
	}
	m.println("Task removed successfully.")
}

func (m *Menu) displayTasks() {
	m.println(m.heading.Render(fmt.Sprintf("Tasks for %s:", m.session.Owner())))
	tasks := m.session.Tasks()
	if len(tasks) == 0 {
		m.println(m.dim.Render("  (no tasks)"))
		return
	}
	for i, t := range tasks {
		m.println(fmt.Sprintf("  %d: %s", i, t))
	}
}

// prompt prints label and returns the trimmed next line, however long it is.
// ok is false once input ends; a read error other than EOF is kept for Run.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if m.err != nil {
		return "", false
	}
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			m.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (m *Menu) println(line string) {
	fmt.Fprintln(m.out, line)
}
