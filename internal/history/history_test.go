package history

import (
	"testing"

	"github.com/kingrea/todo-history/internal/task"
)

func mustTask(t *testing.T, desc string, tags ...string) task.Task {
	t.Helper()
	tk, err := task.New(task.Fields{Description: desc, Tags: tags})
	if err != nil {
		t.Fatalf("task.New(%q): %v", desc, err)
	}
	return tk
}

func TestNewStartsBeforeFirstSnapshot(t *testing.T) {
	m := New()
	if m.Cursor() != -1 || m.Len() != 0 {
		t.Fatalf("cursor=%d len=%d, want -1 and 0", m.Cursor(), m.Len())
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("Current on empty history should report false")
	}
	got, moved := m.Undo()
	if moved || got != nil {
		t.Fatalf("Undo on empty history = (%v, %v), want (nil, false)", got, moved)
	}
	got, moved = m.Redo()
	if moved || got != nil {
		t.Fatalf("Redo on empty history = (%v, %v), want (nil, false)", got, moved)
	}
	if m.Cursor() != -1 {
		t.Fatalf("cursor moved on no-op: %d", m.Cursor())
	}
}

func TestRecordAdvancesCursor(t *testing.T) {
	m := New()
	a := mustTask(t, "a")
	b := mustTask(t, "b")
	m.Record([]task.Task{a})
	m.Record([]task.Task{a, b})
	if m.Cursor() != 1 || m.Len() != 2 {
		t.Fatalf("cursor=%d len=%d, want 1 and 2", m.Cursor(), m.Len())
	}
	current, ok := m.Current()
	if !ok || !task.EqualLists(current, []task.Task{a, b}) {
		t.Fatalf("Current = %v", current)
	}
}

func TestUndoFloorsAtFirstSnapshot(t *testing.T) {
	m := New()
	a := mustTask(t, "a")
	m.Record([]task.Task{a})
	got, moved := m.Undo()
	if moved {
		t.Fatalf("Undo at cursor 0 should be a no-op")
	}
	if !task.EqualLists(got, []task.Task{a}) {
		t.Fatalf("no-op Undo should return current state, got %v", got)
	}
	if m.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", m.Cursor())
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	m := New()
	t1 := mustTask(t, "t1")
	t2 := mustTask(t, "t2")
	m.Record([]task.Task{t1})
	m.Record([]task.Task{t1, t2})

	got, moved := m.Undo()
	if !moved || !task.EqualLists(got, []task.Task{t1}) {
		t.Fatalf("Undo = (%v, %v)", got, moved)
	}
	if !m.CanRedo() {
		t.Fatalf("CanRedo should be true after undo")
	}
	got, moved = m.Redo()
	if !moved || !task.EqualLists(got, []task.Task{t1, t2}) {
		t.Fatalf("Redo = (%v, %v)", got, moved)
	}
	got, moved = m.Redo()
	if moved {
		t.Fatalf("Redo at newest snapshot should be a no-op")
	}
	if !task.EqualLists(got, []task.Task{t1, t2}) {
		t.Fatalf("no-op Redo should return current state, got %v", got)
	}
}

func TestRecordAfterUndoPrunesRedo(t *testing.T) {
	m := New()
	t1 := mustTask(t, "t1")
	t2 := mustTask(t, "t2")
	t3 := mustTask(t, "t3")
	m.Record([]task.Task{t1})
	m.Record([]task.Task{t1, t2})
	m.Undo()
	m.Record([]task.Task{t1, t3})

	if m.Len() != 2 {
		t.Fatalf("len = %d, want 2 after pruning", m.Len())
	}
	if m.CanRedo() {
		t.Fatalf("redo must be unavailable after a new record")
	}
	if _, moved := m.Redo(); moved {
		t.Fatalf("Redo after pruning moved the cursor")
	}
	for i := 0; i < m.Len(); i++ {
		snap, _ := m.Snapshot(i)
		for _, d := range snap {
			if d.Description == "t2" {
				t.Fatalf("pruned state still reachable at %d", i)
			}
		}
	}
}

func TestRecordedSnapshotIsIsolated(t *testing.T) {
	m := New()
	live := []task.Task{mustTask(t, "a", "x")}
	m.Record(live)
	live = append(live, mustTask(t, "b"))
	live[0] = mustTask(t, "replaced")

	snap, ok := m.Snapshot(0)
	if !ok || len(snap) != 1 || snap[0].Description != "a" {
		t.Fatalf("stored snapshot changed: %+v", snap)
	}
	snap[0].Tags[0] = "mutated"
	again, _ := m.Snapshot(0)
	if again[0].Tags[0] != "x" {
		t.Fatalf("Snapshot() result aliases storage")
	}

	current, _ := m.Current()
	current[0] = mustTask(t, "mutated")
	current, _ = m.Current()
	if current[0].Description() != "a" {
		t.Fatalf("Current() result aliases storage")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m := New()
	list := []task.Task{}
	for i := 0; i < 5; i++ {
		list = append(list, mustTask(t, string(rune('a'+i))))
		m.Record(list)
	}
	for i := 0; i < 10; i++ {
		m.Undo()
		if c := m.Cursor(); c < -1 || c > m.Len()-1 {
			t.Fatalf("cursor %d out of bounds", c)
		}
	}
	if m.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0 after exhausting undo", m.Cursor())
	}
	for i := 0; i < 10; i++ {
		m.Redo()
	}
	if m.Cursor() != m.Len()-1 {
		t.Fatalf("cursor = %d, want %d after exhausting redo", m.Cursor(), m.Len()-1)
	}
}

func TestLimitDropsOldestSnapshots(t *testing.T) {
	m := New(WithLimit(3))
	var list []task.Task
	for i := 0; i < 5; i++ {
		list = append(list, mustTask(t, string(rune('a'+i))))
		m.Record(list)
	}
	if m.Len() != 3 || m.Cursor() != 2 {
		t.Fatalf("len=%d cursor=%d, want 3 and 2", m.Len(), m.Cursor())
	}
	oldest, _ := m.Snapshot(0)
	if len(oldest) != 3 {
		t.Fatalf("oldest retained snapshot has %d tasks, want 3", len(oldest))
	}
	m.Undo()
	m.Undo()
	if _, moved := m.Undo(); moved {
		t.Fatalf("undo past the retained window should be a no-op")
	}
	if m.Limit() != 3 {
		t.Fatalf("limit = %d", m.Limit())
	}
	if New(WithLimit(-1)).Limit() != 0 {
		t.Fatalf("negative limit should mean unlimited")
	}
}
