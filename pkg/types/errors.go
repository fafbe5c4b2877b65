// Package types defines shared error and time contracts for the task pool.
package types

import (
	"errors"
	"fmt"
)

// Predefined errors
var (
	// ErrPoolStopped indicates a submission was attempted after the pool
	// stopped accepting work
	ErrPoolStopped = errors.New("pool is stopped")

	// ErrNilFunc indicates a nil callable was submitted
	ErrNilFunc = errors.New("task function is nil")

	// ErrNotResolved indicates the future has not been resolved yet
	ErrNotResolved = errors.New("future is not resolved")
)

// PanicError wraps a panic recovered during task execution along with the
// stack trace captured at the recovery point.
type PanicError struct {
	// Value is the value the task panicked with
	Value interface{}

	// Stack is the stack trace captured when the panic was recovered
	Stack string
}

// Error implements the error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("task panic: %v\n%s", e.Value, e.Stack)
}

// NewPanicError creates a PanicError from a recovered value and stack trace
func NewPanicError(value interface{}, stack []byte) *PanicError {
	return &PanicError{
		Value: value,
		Stack: string(stack),
	}
}

// ErrorHandler is the diagnostic sink for failures that escape normal task
// execution. Handlers are invoked from worker goroutines and must not block.
type ErrorHandler func(error)
