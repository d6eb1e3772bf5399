package backend

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry reports geometry a backend cannot draw, such as a
// negative circle radius or a path with no points.
var ErrInvalidGeometry = errors.New("backend: invalid geometry")

// DrawingError wraps a failure from a backend drawing operation with the
// name of the operation that failed. The chart core treats any DrawingError
// as fatal to the current render pass and propagates it unmodified.
type DrawingError struct {
	Op  string
	Err error
}

// NewDrawingError wraps err as a DrawingError for the named operation.
func NewDrawingError(op string, err error) *DrawingError {
	return &DrawingError{Op: op, Err: err}
}

func (e *DrawingError) Error() string {
	return fmt.Sprintf("backend: %s: %v", e.Op, e.Err)
}

func (e *DrawingError) Unwrap() error { return e.Err }

// FontError wraps a failure from font loading or text measurement.
type FontError struct {
	Err error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("backend: font: %v", e.Err)
}

func (e *FontError) Unwrap() error { return e.Err }
