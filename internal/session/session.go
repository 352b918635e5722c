// internal/session/session.go
//
// A Session owns the live task list for one run of the program together with
// the history that tracks it. Front ends (the line menu and the TUI) only ever
// talk to a Session; they never record snapshots themselves.

package session

import (
	"github.com/google/uuid"

	"github.com/kingrea/todo-history/internal/history"
	"github.com/kingrea/todo-history/internal/task"
)

// EventKind names the operation that produced an Event.
type EventKind string

const (
	EventAdd    EventKind = "add"
	EventRemove EventKind = "remove"
	EventUndo   EventKind = "undo"
	EventRedo   EventKind = "redo"
)

// Event describes a completed session operation.
type Event struct {
	Kind EventKind
	// Task is the task that was added or removed. Zero for undo/redo.
	Task  task.Task
	Index int
	// Moved is false when undo/redo had nowhere to go.
	Moved  bool
	Size   int
	Cursor int
	Total  int
}

// Observer is notified after every session operation.
type Observer func(Event)

// Option customizes a Session.
type Option func(*Session)

// WithHistory supplies a preconfigured history manager.
func WithHistory(h *history.Manager) Option {
	return func(s *Session) {
		if h != nil {
			s.history = h
		}
	}
}

// WithObserver registers a callback for session events.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Session is the single owner of the live task list.
type Session struct {
	id        string
	owner     string
	tasks     []task.Task
	history   *history.Manager
	observers []Observer
}

// New creates an empty session for owner.
func New(owner string, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		owner:   owner,
		history: history.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the identifier generated for this run.
func (s *Session) ID() string { return s.id }

// Owner returns the name the list belongs to.
func (s *Session) Owner() string { return s.owner }

// History exposes the underlying history for status displays.
func (s *Session) History() *history.Manager { return s.history }

// Tasks returns a copy of the live list.
func (s *Session) Tasks() []task.Task { return task.CloneList(s.tasks) }

// Len returns the number of live tasks.
func (s *Session) Len() int { return len(s.tasks) }

// Add appends t to the list and records the new state. A task without a
// description (such as the zero Task) is rejected and nothing is recorded.
func (s *Session) Add(t task.Task) error {
	if t.Description() == "" {
		return &task.ValidationError{Field: "description", Reason: "is required"}
	}
	s.tasks = append(s.tasks, t.Clone())
	s.history.Record(s.tasks)
	s.emit(Event{Kind: EventAdd, Task: t.Clone(), Index: len(s.tasks) - 1, Moved: true})
	return nil
}

// Remove deletes the task at index and records the new state.
func (s *Session) Remove(index int) (task.Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return task.Task{}, &NotFoundError{Index: index}
	}
	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index:index], s.tasks[index+1:]...)
	s.history.Record(s.tasks)
	s.emit(Event{Kind: EventRemove, Task: removed.Clone(), Index: index, Moved: true})
	return removed, nil
}

// RemoveTask deletes the first task equal to t.
func (s *Session) RemoveTask(t task.Task) error {
	for i := range s.tasks {
		if s.tasks[i].Equal(t) {
			_, err := s.Remove(i)
			return err
		}
	}
	return &NotFoundError{Index: -1, Task: t.Clone()}
}

// Restore replaces the live list with copies of tasks.
func (s *Session) Restore(tasks []task.Task) {
	s.tasks = task.CloneList(tasks)
}

// Undo moves back one step in history. It reports false when there was
// nothing to undo, in which case the live list is left alone.
func (s *Session) Undo() bool {
	tasks, moved := s.history.Undo()
	if moved {
		s.Restore(tasks)
	}
	s.emit(Event{Kind: EventUndo, Index: -1, Moved: moved})
	return moved
}

// Redo moves forward one step in history. It reports false when there was
// nothing to redo.
func (s *Session) Redo() bool {
	tasks, moved := s.history.Redo()
	if moved {
		s.Restore(tasks)
	}
	s.emit(Event{Kind: EventRedo, Index: -1, Moved: moved})
	return moved
}

func (s *Session) emit(ev Event) {
	if len(s.observers) == 0 {
		return
	}
	ev.Size = len(s.tasks)
	ev.Cursor = s.history.Cursor()
	ev.Total = s.history.Len()
	for _, o := range s.observers {
		o(ev)
	}
}
