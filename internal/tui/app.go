// internal/tui/app.go
//
// Full-screen front end for todo. It uses bubbletea, which follows The Elm
// Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// Every action goes through the Session; the App never touches history itself.

package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/todo-history/internal/config"
	"github.com/kingrea/todo-history/internal/logbook"
	"github.com/kingrea/todo-history/internal/session"
	"github.com/kingrea/todo-history/internal/task"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMainMenu   appState = iota // Six-item main menu
	stateAddTask                    // Add form
	stateRemoveTask                 // Task picker for removal
	stateViewTasks                  // Full task listing
)

const defaultLogTail = 8

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook shows the tail of lb in the log panel and records UI errors there.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = lb
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	session *session.Session
	logbook *logbook.Logbook
	logTail int
	keys    keyMap

	// UI components
	mainMenu   list.Model
	removeMenu list.Model
	form       *addForm
	statusMsg  string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// taskItem wraps a live task and its index for the remove picker.
type taskItem struct {
	index int
	task  task.Task
}

func (i taskItem) Title() string {
	return fmt.Sprintf("%d. %s", i.index, i.task.Description())
}

func (i taskItem) Description() string { return taskDetails(i.task) }
func (i taskItem) FilterValue() string { return i.task.Description() }

const (
	menuAdd     = "Add Task"
	menuRemove  = "Remove Task"
	menuDisplay = "Display Tasks"
	menuUndo    = "Undo"
	menuRedo    = "Redo"
	menuExit    = "Exit"
)

// NewApp creates a new App for s.
func NewApp(cfg *config.Config, s *session.Session, opts ...AppOption) *App {
	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 60, 20)
	mainMenu.Title = "✓ TODO"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)
	mainMenu.SetShowHelp(false)

	removeMenu := list.New(nil, list.NewDefaultDelegate(), 60, 20)
	removeMenu.Title = "Remove which task?"
	removeMenu.SetShowStatusBar(false)
	removeMenu.SetFilteringEnabled(false)
	removeMenu.SetShowHelp(false)

	keys := newKeyMap()
	app := &App{
		state:      stateMainMenu,
		session:    s,
		logTail:    defaultLogTail,
		keys:       keys,
		mainMenu:   mainMenu,
		removeMenu: removeMenu,
		form:       newAddForm(keys),
		statusMsg:  "Choose an action",
	}
	if cfg != nil {
		app.logTail = cfg.LogTail()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	return app
}

func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{title: menuAdd, desc: "Create a task with optional due date and tags"},
		menuItem{title: menuRemove, desc: "Pick a task to delete"},
		menuItem{title: menuDisplay, desc: "Show every task"},
		menuItem{title: menuUndo, desc: "Step back to the previous list"},
		menuItem{title: menuRedo, desc: "Step forward again"},
		menuItem{title: menuExit, desc: "Quit without saving"},
	}
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(20, msg.Width/2), max(10, msg.Height-10))
		a.removeMenu.SetSize(max(20, msg.Width/2), max(10, msg.Height-10))
		a.form.setWidth(msg.Width/2 - 6)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.force) {
			return a, tea.Quit
		}
		if a.state == stateAddTask {
			return a.updateAddTask(msg)
		}
		switch {
		case key.Matches(msg, a.keys.back):
			if a.state != stateMainMenu {
				return a.returnToMainMenu()
			}
			return a, nil
		case key.Matches(msg, a.keys.quit):
			if a.state == stateMainMenu {
				return a, tea.Quit
			}
			return a.returnToMainMenu()
		case key.Matches(msg, a.keys.undo):
			return a.undo()
		case key.Matches(msg, a.keys.redo):
			return a.redo()
		case key.Matches(msg, a.keys.submit):
			switch a.state {
			case stateMainMenu:
				return a.handleMainMenuSelection()
			case stateRemoveTask:
				return a.confirmRemove()
			case stateViewTasks:
				return a.returnToMainMenu()
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateMainMenu:
		a.mainMenu, cmd = a.mainMenu.Update(msg)
	case stateRemoveTask:
		a.removeMenu, cmd = a.removeMenu.Update(msg)
	}
	return a, cmd
}

// handleMainMenuSelection processes menu item selection
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}

	switch item.title {
	case menuAdd:
		return a.beginAddTask()
	case menuRemove:
		return a.beginRemoveTask()
	case menuDisplay:
		a.state = stateViewTasks
		a.statusMsg = fmt.Sprintf("%d task(s)", a.session.Len())
		return a, nil
	case menuUndo:
		return a.undo()
	case menuRedo:
		return a.redo()
	case menuExit:
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) beginAddTask() (tea.Model, tea.Cmd) {
	a.state = stateAddTask
	a.statusMsg = "Fill in the task and press enter on the last field"
	return a, a.form.reset()
}

func (a *App) updateAddTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.back) {
		a.statusMsg = "Add cancelled"
		return a.returnToMainMenu()
	}
	cmd, submitted := a.form.update(msg)
	if !submitted {
		return a, cmd
	}
	t, err := a.form.build()
	if err == nil {
		err = a.session.Add(t)
	}
	if err != nil {
		var verr *task.ValidationError
		if errors.As(err, &verr) {
			a.statusMsg = fmt.Sprintf("Task not added: %s %s", verr.Field, verr.Reason)
		} else {
			a.statusMsg = fmt.Sprintf("Task not added: %v", err)
		}
		a.logError("Add rejected: %v", err)
		return a, nil
	}
	a.statusMsg = "Task added successfully."
	return a.returnToMainMenu()
}

func (a *App) beginRemoveTask() (tea.Model, tea.Cmd) {
	tasks := a.session.Tasks()
	if len(tasks) == 0 {
		a.statusMsg = "No tasks to remove."
		return a, nil
	}
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{index: i, task: t}
	}
	cmd := a.removeMenu.SetItems(items)
	a.removeMenu.Select(0)
	a.state = stateRemoveTask
	a.statusMsg = "Select a task to remove"
	return a, cmd
}

func (a *App) confirmRemove() (tea.Model, tea.Cmd) {
	item, ok := a.removeMenu.SelectedItem().(taskItem)
	if !ok {
		a.statusMsg = "Invalid index."
		return a.returnToMainMenu()
	}
	if _, err := a.session.Remove(item.index); err != nil {
		a.statusMsg = "Invalid index."
		a.logError("Remove failed: %v", err)
		return a.returnToMainMenu()
	}
	a.statusMsg = "Task removed successfully."
	return a.returnToMainMenu()
}

func (a *App) undo() (tea.Model, tea.Cmd) {
	if a.session.Undo() {
		a.statusMsg = "Undo successful."
	} else {
		a.statusMsg = "Nothing to undo."
	}
	a.refreshRemoveMenu()
	return a, nil
}

func (a *App) redo() (tea.Model, tea.Cmd) {
	if a.session.Redo() {
		a.statusMsg = "Redo successful."
	} else {
		a.statusMsg = "Nothing to redo."
	}
	a.refreshRemoveMenu()
	return a, nil
}

// refreshRemoveMenu keeps the picker in step with the live list when undo or
// redo happens while it is open.
func (a *App) refreshRemoveMenu() {
	if a.state != stateRemoveTask {
		return
	}
	if a.session.Len() == 0 {
		a.state = stateMainMenu
		return
	}
	items := make([]list.Item, 0, a.session.Len())
	for i, t := range a.session.Tasks() {
		items = append(items, taskItem{index: i, task: t})
	}
	a.removeMenu.SetItems(items)
	if a.removeMenu.Index() >= len(items) {
		a.removeMenu.Select(len(items) - 1)
	}
}

// returnToMainMenu transitions back to the main menu
func (a *App) returnToMainMenu() (tea.Model, tea.Cmd) {
	a.state = stateMainMenu
	return a, nil
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(32, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
	}
	if leftWidth < 20 {
		leftWidth = width
		rightWidth = 0
	}
	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
	case stateAddTask:
		content = a.form.view()
	case stateRemoveTask:
		content = a.removeMenu.View()
	case stateViewTasks:
		content = a.renderTaskTable()
	}
	return a.renderStatusBoard(content, leftWidth, rightWidth)
}

func (a *App) renderStatusBoard(mainContent string, leftWidth, rightWidth int) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render(fmt.Sprintf("✓ TODO · %s", a.session.Owner()))
	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, leftWidth)).
		Render(lipgloss.NewStyle().Width(max(20, leftWidth-4)).Render(mainContent))
	var body string
	if rightWidth > 0 {
		rightBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(max(20, rightWidth)).
			Render(a.renderTasksPanel(rightWidth - 4))
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	} else {
		body = leftBox
	}
	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg + "\n" + a.footerHints())
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) footerHints() string {
	switch a.state {
	case stateAddTask:
		return hints(a.keys.next, a.keys.prev, a.keys.back)
	case stateMainMenu:
		return hints(a.keys.submit, a.keys.undo, a.keys.redo, a.keys.quit)
	default:
		return hints(a.keys.submit, a.keys.undo, a.keys.redo, a.keys.back)
	}
}

func (a *App) renderTasksPanel(width int) string {
	tasks := a.session.Tasks()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("Tasks (%d)", len(tasks)))
	lines := []string{title}
	if len(tasks) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("No tasks yet."))
	}
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i, t.Description()))
	}
	lines = append(lines, "", a.historyLine())
	return lipgloss.NewStyle().Width(max(20, width)).Render(strings.Join(lines, "\n"))
}

func (a *App) historyLine() string {
	h := a.session.History()
	if h.Len() == 0 {
		return "History: empty"
	}
	line := fmt.Sprintf("History: %d/%d", h.Cursor()+1, h.Len())
	var marks []string
	if h.CanUndo() {
		marks = append(marks, "undo")
	}
	if h.CanRedo() {
		marks = append(marks, "redo")
	}
	if len(marks) > 0 {
		line += " · " + strings.Join(marks, ", ") + " available"
	}
	return line
}

func (a *App) renderTaskTable() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("Tasks for %s:", a.session.Owner()))
	tasks := a.session.Tasks()
	if len(tasks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "No tasks yet.")
	}
	rows := []string{title}
	for i, t := range tasks {
		rows = append(rows, fmt.Sprintf("%d. %s", i, t.Description()))
		if details := taskDetails(t); details != "" {
			rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Render("   "+details))
		}
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(a.logTail)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s (%d)", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

// taskDetails summarises the optional fields of t.
func taskDetails(t task.Task) string {
	var parts []string
	if t.HasDueDate() {
		parts = append(parts, "due "+t.DueDate())
	}
	if tags := t.Tags(); len(tags) > 0 {
		parts = append(parts, "#"+strings.Join(tags, " #"))
	}
	return strings.Join(parts, " · ")
}
