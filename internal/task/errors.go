package task

import (
	"errors"
	"fmt"
)

// ErrValidation matches any *ValidationError via errors.Is.
var ErrValidation = errors.New("task: validation failed")

// ValidationError reports a field that prevented a Task from being built.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("task: %s %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
