package touchhop

import (
	"errors"
	"fmt"
)

// Sentinel errors for routing preconditions.
var (
	// ErrMissingContext means a view was attached or bound without the
	// native context it needs (surface, handler or native view). It points
	// at a lifecycle-ordering bug in the caller and is never retried.
	ErrMissingContext = errors.New("touchhop: missing attachment context")

	// ErrNotAttached means an operation named a controller that is not
	// (or no longer) registered.
	ErrNotAttached = errors.New("touchhop: view not attached")

	// ErrAlreadyAttached means a controller was registered twice.
	ErrAlreadyAttached = errors.New("touchhop: view already attached")
)

// BindingError reports a failure inside a platform binding: a malformed
// native event, or a device that could not be opened or read.
type BindingError struct {
	Op  string // Operation that failed (e.g., "motion_event", "open_device")
	Err error  // Underlying error
}

func (e *BindingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("touchhop: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("touchhop: %s", e.Op)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// NewBindingError creates a new binding error.
func NewBindingError(op string, err error) *BindingError {
	return &BindingError{Op: op, Err: err}
}

// IsBindingError checks if an error is a binding error.
func IsBindingError(err error) bool {
	var bindErr *BindingError
	return errors.As(err, &bindErr)
}

// HandlerError is returned when a consumer Handler panicked. Processing of
// the native callback that triggered it stops at that point.
type HandlerError struct {
	View   ViewID
	Action ActionType
	Value  any
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("touchhop: handler for view %d panicked on %s: %v", e.View, e.Action, e.Value)
}
