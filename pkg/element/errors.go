package element

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors.Is for every NotFoundError.
var ErrNotFound = errors.New("element: child not found")

// NotFoundError reports a named child lookup that found nothing. Rules are
// expected to test HasChild first; seeing this error means a rule was wired
// against a child it did not check for.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("element: child %q not found", e.Name)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
