// Package errors provides structured error handling for dyntype controls.
//
// Controls never return errors for user-driven edits: an out-of-range edit is
// snapped back and an unrepresentable date degrades to a sentinel. Those
// events are still reported here so applications can log them. Programmer
// errors (an inverted date range, a non-positive step size) panic with a
// [*ConfigError].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

var (
	// ErrOutOfRange marks an edit that produced a date outside the picker range.
	ErrOutOfRange = stderrors.New("date outside of configured range")

	// ErrUnrepresentable marks date arithmetic that left the representable years.
	ErrUnrepresentable = stderrors.New("date is not representable")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid control configuration.
	KindConfig
	// KindRange indicates an edit that was snapped back into the date range.
	KindRange
	// KindArithmetic indicates date arithmetic that could not be represented.
	KindArithmetic
	// KindLocale indicates missing or malformed locale data.
	KindLocale
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRange:
		return "range"
	case KindArithmetic:
		return "arithmetic"
	case KindLocale:
		return "locale"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ControlError represents a structured error raised inside a control.
type ControlError struct {
	// Op is the operation that failed (e.g., "picker.DateTimePicker.SelectRow").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ControlError) Unwrap() error {
	return e.Err
}

// ConfigError is the panic value for caller configuration bugs, such as a
// minimum date that does not precede the maximum date.
type ConfigError struct {
	// Op is the setter that rejected the configuration.
	Op string
	// Message describes the violated constraint.
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "picker.notify").
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

// ErrorHandler receives errors reported by controls.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ControlError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Configf panics with a ConfigError built from the format arguments.
func Configf(op, format string, args ...any) {
	panic(&ConfigError{Op: op, Message: fmt.Sprintf(format, args...)})
}
