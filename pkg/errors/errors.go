// Package errors provides structured error reporting for widgetkit.
//
// Widgets never return configuration problems to the host or panic on
// them. They build a [ToolkitError] and hand it to [Report], which forwards
// it to the global [ErrorHandler]. The widget then keeps running in a
// degraded state.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid construction argument or mutator argument.
	KindConfig
	// KindTheme indicates a theme file that could not be read or parsed.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by configuration reports.
var (
	// ErrTooFewOptions is reported when a radio group is built with fewer than two options.
	ErrTooFewOptions = errors.New("radio group needs at least 2 options")
	// ErrOptionOutOfRange is reported when a radio option number is outside 1..N.
	ErrOptionOutOfRange = errors.New("option number out of range")
)

// ToolkitError represents a structured error reported by a widget.
type ToolkitError struct {
	// Op is the operation that failed (e.g., "widgets.RadioGroup.Label").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the identity of the reporting widget, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ToolkitError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ToolkitError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "demo.Update").
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

// ErrorHandler receives errors reported by widgets.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *ToolkitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Config builds a configuration error for op wrapping err.
func Config(op string, err error) *ToolkitError {
	return &ToolkitError{Op: op, Kind: KindConfig, Err: err}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
