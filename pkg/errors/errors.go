// Package errors provides structured error handling for drawerkit.
//
// The drawer core has exactly one error surface: configuration mistakes
// reported at construction time. Everything else is either clamped silently
// (drag math) or a recovered panic from a host callback.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid construction-time configuration value.
	KindConfig
	// KindPanic indicates a recovered panic from a listener or host callback.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured drawerkit error.
type Error struct {
	// Op is the operation that failed (e.g., "drawer.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config builds a configuration error for the given operation and field.
// Configuration errors are programmer errors: they surface immediately at
// setup and never at runtime.
func Config(op, field, format string, args ...any) *Error {
	return &Error{
		Op:   op,
		Kind: KindConfig,
		Err:  fmt.Errorf("%s: %s", field, fmt.Sprintf(format, args...)),
	}
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindConfig
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.notifyListeners").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by drawerkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
