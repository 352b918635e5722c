// Package history keeps the undo/redo timeline of a task list as a single
// ordered sequence of whole-list snapshots with a cursor marking the current
// one. Recording after an undo discards every snapshot past the cursor, so the
// timeline never branches.
package history

import "github.com/kingrea/todo-history/internal/task"

// Manager owns the snapshot sequence. The zero value is not usable; call New.
type Manager struct {
	snapshots []task.Snapshot
	cursor    int
	limit     int
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLimit caps how many snapshots are retained. Zero or negative keeps all.
func WithLimit(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.limit = n
		}
	}
}

// New returns an empty history with the cursor before the first snapshot.
func New(opts ...Option) *Manager {
	m := &Manager{cursor: -1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Record captures a deep copy of tasks as the new current state. Any snapshots
// after the cursor are dropped first.
func (m *Manager) Record(tasks []task.Task) {
	m.snapshots = m.snapshots[:m.cursor+1]
	m.snapshots = append(m.snapshots, task.Capture(tasks))
	m.cursor = len(m.snapshots) - 1
	if m.limit > 0 && len(m.snapshots) > m.limit {
		drop := len(m.snapshots) - m.limit
		m.snapshots = append([]task.Snapshot(nil), m.snapshots[drop:]...)
		m.cursor -= drop
	}
}

// Undo steps the cursor back one snapshot and returns a fresh copy of that
// state. When there is nothing earlier it returns the current state and false.
func (m *Manager) Undo() ([]task.Task, bool) {
	if m.cursor <= 0 {
		current, _ := m.Current()
		return current, false
	}
	m.cursor--
	return m.snapshots[m.cursor].Tasks(), true
}

// Redo steps the cursor forward one snapshot and returns a fresh copy of that
// state. At the newest snapshot it returns the current state and false.
func (m *Manager) Redo() ([]task.Task, bool) {
	if m.cursor >= len(m.snapshots)-1 {
		current, _ := m.Current()
		return current, false
	}
	m.cursor++
	return m.snapshots[m.cursor].Tasks(), true
}

// Current returns a copy of the snapshot at the cursor, or nil and false when
// nothing has been recorded.
func (m *Manager) Current() ([]task.Task, bool) {
	if m.cursor < 0 {
		return nil, false
	}
	return m.snapshots[m.cursor].Tasks(), true
}

// Snapshot returns a copy of the stored snapshot at index i.
func (m *Manager) Snapshot(i int) (task.Snapshot, bool) {
	if i < 0 || i >= len(m.snapshots) {
		return nil, false
	}
	return m.snapshots[i].Clone(), true
}

// Cursor returns the index of the current snapshot, -1 when empty.
func (m *Manager) Cursor() int { return m.cursor }

// Len returns the number of stored snapshots.
func (m *Manager) Len() int { return len(m.snapshots) }

// Limit returns the retention cap, 0 when unlimited.
func (m *Manager) Limit() int { return m.limit }

// CanUndo reports whether Undo would move the cursor.
func (m *Manager) CanUndo() bool { return m.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (m *Manager) CanRedo() bool { return m.cursor < len(m.snapshots)-1 }
