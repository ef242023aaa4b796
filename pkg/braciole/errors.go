package braciole

import (
	"fmt"
)

// The input core deliberately has no error taxonomy: a driver failure is
// reported by the touch source and degrades to "no contact", sub-threshold
// motion is a continuing drag, and backspace on an empty buffer is a defined
// no-op. InfrastructureError covers the framework level only.

// InfrastructureError represents a framework-level failure (SDL init,
// renderer creation, font loading). These are typically fatal; the input
// core never produces them.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g. "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("braciole: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("braciole: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}
