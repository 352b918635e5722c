// internal/task/task.go
//
// A Task is the single record the todo list is made of. It is a plain value:
// copying one with Clone never shares the tag slice with the original, which is
// what lets history snapshots stay untouched while the live list keeps changing.

package task

import (
	"fmt"
	"strings"
)

// Fields collects everything needed to construct a Task in one call.
type Fields struct {
	Description string
	DueDate     string
	Tags        []string
}

// Task describes one entry in the list. Fields are unexported so a Task can only
// be built through New, the Builder or FromData.
type Task struct {
	description string
	dueDate     string
	tags        []string
}

// New validates fields and returns the resulting Task.
func New(fields Fields) (Task, error) {
	description := strings.TrimSpace(fields.Description)
	if description == "" {
		return Task{}, &ValidationError{Field: "description", Reason: "is required"}
	}
	return Task{
		description: description,
		dueDate:     strings.TrimSpace(fields.DueDate),
		tags:        normalizeTags(fields.Tags),
	}, nil
}

// Description returns the task text.
func (t Task) Description() string { return t.description }

// DueDate returns the free-form due date, or "" when none was given.
func (t Task) DueDate() string { return t.dueDate }

// HasDueDate reports whether a due date was set.
func (t Task) HasDueDate() bool { return t.dueDate != "" }

// Tags returns a copy of the task's tags in insertion order.
func (t Task) Tags() []string { return cloneStrings(t.tags) }

// IsZero reports whether t was never constructed.
func (t Task) IsZero() bool {
	return t.description == "" && t.dueDate == "" && len(t.tags) == 0
}

// Clone returns an independent copy of t.
func (t Task) Clone() Task {
	return Task{
		description: t.description,
		dueDate:     t.dueDate,
		tags:        cloneStrings(t.tags),
	}
}

// Equal compares two tasks field by field. Tag order matters.
func (t Task) Equal(other Task) bool {
	if t.description != other.description || t.dueDate != other.dueDate {
		return false
	}
	if len(t.tags) != len(other.tags) {
		return false
	}
	for i := range t.tags {
		if t.tags[i] != other.tags[i] {
			return false
		}
	}
	return true
}

// String renders the task the way the list display prints it.
func (t Task) String() string {
	due := "None"
	if t.dueDate != "" {
		due = fmt.Sprintf("'%s'", t.dueDate)
	}
	quoted := make([]string, len(t.tags))
	for i, tag := range t.tags {
		quoted[i] = fmt.Sprintf("'%s'", tag)
	}
	return fmt.Sprintf("Task('%s', due_date=%s, tags=[%s])", t.description, due, strings.Join(quoted, ", "))
}

// CloneList deep-copies a task list. A nil or empty input yields an empty,
// non-nil slice so callers can compare lists without special-casing nil.
func CloneList(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// EqualLists reports whether a and b hold equal tasks in the same order.
func EqualLists(a, b []Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// ParseTags splits a comma separated tag string, trimming each entry and
// dropping blanks.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return normalizeTags(strings.Split(raw, ","))
}

func normalizeTags(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
