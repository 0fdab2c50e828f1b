package geometry

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the sentinel wrapped by every PreconditionError.
var ErrPrecondition = errors.New("geometry precondition violated")

// PreconditionError reports a query called outside its contract, such as a
// polygon with fewer than three vertices or a silhouette query from a
// viewpoint inside the polygon.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Unwrap returns ErrPrecondition so callers can use errors.Is.
func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

func preconditionf(op, format string, args ...any) error {
	return &PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
