// Package errors provides structured error handling for the Weave runtime.
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
	// KindDispatch indicates an event could not be delivered.
	KindDispatch
	// KindTask indicates a widget task returned an error.
	KindTask
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates a configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindDispatch:
		return "dispatch"
	case KindTask:
		return "task"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Sentinel errors. Match them with [errors.Is].
var (
	// ErrNoSubscriber is returned when an event targets a widget with no live subscription.
	ErrNoSubscriber = errors.New("no subscriber")
	// ErrClosed is returned when the target subscription was closed.
	ErrClosed = errors.New("subscription closed")
	// ErrFull is returned when the target subscription's buffer is full.
	ErrFull = errors.New("subscription buffer full")
	// ErrMissingField is returned when a builder finalizes without a required field.
	ErrMissingField = errors.New("required field not set")
)

// WeaveError represents a structured error in the Weave runtime.
type WeaveError struct {
	// Op is the operation that failed (e.g., "core.RunContainer").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the id of the widget involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeaveError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeaveError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "taskset.Run").
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

// DispatchError reports an event that could not be delivered.
type DispatchError struct {
	// Target is the id the event was addressed to.
	Target string
	// Event is the type name of the event.
	Event string
	// Err is one of ErrNoSubscriber, ErrClosed or ErrFull.
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s to %s: %v", e.Event, e.Target, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// BuildError represents a failure to construct a widget.
type BuildError struct {
	// Widget is the type name of the widget being built.
	Widget string
	// Field is the builder field at fault, if any.
	Field string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("build %s: field %s: %v", e.Widget, e.Field, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("build %s: %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error building %s", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Weave runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WeaveError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return errors.As(err, target) }
