package session

import (
	"errors"
	"fmt"

	"github.com/kingrea/todo-history/internal/task"
)

// ErrNotFound matches any *NotFoundError via errors.Is.
var ErrNotFound = errors.New("session: task not found")

// NotFoundError reports a remove that targeted a task or index not in the list.
type NotFoundError struct {
	// Index is -1 when the lookup was by task value.
	Index int
	Task  task.Task
}

func (e *NotFoundError) Error() string {
	if e.Index < 0 && !e.Task.IsZero() {
		return fmt.Sprintf("session: task %q not found", e.Task.Description())
	}
	return fmt.Sprintf("session: no task at index %d", e.Index)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
