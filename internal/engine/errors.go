package engine

import "fmt"

// NotFoundError reports a reference to a quest, subtask, or bad habit
// that does not exist. Failed operations are no-ops: the state is left
// untouched.
type NotFoundError struct {
	Kind string // "quest", "subtask", "bad habit"
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(NotFoundError)
	return ok
}
