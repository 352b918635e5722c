package menu

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/kingrea/todo-history/internal/session"
	"github.com/kingrea/todo-history/internal/task"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func runMenu(t *testing.T, s *session.Session, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	m := New(s, strings.NewReader(input), &out, opts...)
	if err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestAddDisplayAndExit(t *testing.T) {
	s := session.New("User")
	out := runMenu(t, s, lines(
		"1", "Buy milk", "", "errand, food ",
		"1", "Call Bob", "tomorrow", "",
		"3",
		"6",
	))
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	tags := s.Tasks()[0].Tags()
	if len(tags) != 2 || tags[0] != "errand" || tags[1] != "food" {
		t.Fatalf("tags = %v", tags)
	}
	for _, want := range []string{
		"Task added successfully.",
		"Tasks for User:",
		"0: Task('Buy milk', due_date=None, tags=['errand', 'food'])",
		"1: Task('Call Bob', due_date='tomorrow', tags=[])",
		"Exiting the program.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAddRejectsEmptyDescription(t *testing.T) {
	s := session.New("User")
	logger := &recordingLogger{}
	out := runMenu(t, s, lines("1", "   ", "", "", "6"), WithLogger(logger))
	if s.Len() != 0 {
		t.Fatalf("empty description was added")
	}
	if !strings.Contains(out, "Task not added: description is required.") {
		t.Fatalf("missing validation message:\n%s", out)
	}
	if len(logger.lines) != 1 {
		t.Fatalf("logger lines = %v", logger.lines)
	}
}

func TestRemoveInvalidIndexLeavesState(t *testing.T) {
	s := session.New("User")
	out := runMenu(t, s, lines(
		"1", "a", "", "",
		"2", "7",
		"2", "zero",
		"6",
	))
	if strings.Count(out, "Invalid index.") != 2 {
		t.Fatalf("expected two invalid index messages:\n%s", out)
	}
	if s.Len() != 1 || s.History().Len() != 1 {
		t.Fatalf("state changed: len=%d history=%d", s.Len(), s.History().Len())
	}
}

func TestUndoRedoMessages(t *testing.T) {
	s := session.New("User")
	out := runMenu(t, s, lines(
		"4",
		"1", "a", "", "",
		"1", "b", "", "",
		"2", "0",
		"4", "4", "4",
		"5",
		"5", "5",
		"6",
	))
	for _, want := range []string{"Nothing to undo.", "Task removed successfully.", "Undo successful.", "Redo successful.", "Nothing to redo."} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "Undo successful.") != 2 {
		t.Fatalf("expected two successful undos:\n%s", out)
	}
	got := s.Tasks()
	b, _ := task.New(task.Fields{Description: "b"})
	if !task.EqualLists(got, []task.Task{b}) {
		t.Fatalf("final list = %v, want [b]", got)
	}
}

func TestInvalidChoiceAndEOF(t *testing.T) {
	s := session.New("User")
	out := runMenu(t, s, "9\n")
	if !strings.Contains(out, "Invalid choice. Please enter a number between 1 and 6.") {
		t.Fatalf("missing invalid choice message:\n%s", out)
	}
	if !strings.Contains(out, "Exiting the program.") {
		t.Fatalf("EOF should exit cleanly:\n%s", out)
	}
}

func TestLongLinesAreAccepted(t *testing.T) {
	s := session.New("User")
	long := strings.Repeat("x", 200*1024)
	out := runMenu(t, s, lines("1", long, "", "", "6"))
	if !strings.Contains(out, "Task added successfully.") {
		t.Fatalf("long description not added")
	}
	if s.Len() != 1 || len(s.Tasks()[0].Description()) != len(long) {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestLastLineWithoutNewline(t *testing.T) {
	s := session.New("User")
	out := runMenu(t, s, "1\nBuy milk\n\n\n3")
	if s.Len() != 1 || !strings.Contains(out, "0: Task('Buy milk', due_date=None, tags=[])") {
		t.Fatalf("unterminated final line ignored:\n%s", out)
	}
	if !strings.Contains(out, "Exiting the program.") {
		t.Fatalf("EOF should exit cleanly:\n%s", out)
	}
}

func TestDisplayEmptyList(t *testing.T) {
	out := runMenu(t, session.New("Ada"), lines("3", "6"))
	if !strings.Contains(out, "Tasks for Ada:") || !strings.Contains(out, "(no tasks)") {
		t.Fatalf("unexpected display:\n%s", out)
	}
}
