package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// Handler returns the handler controls currently report to.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// SetHandler routes every control report to h and returns the handler it
// replaces, so a test can restore it with t.Cleanup. Nil selects a LogHandler
// on slog.Default.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Report stamps err with the current time unless it already carries one and
// hands it to the handler.
func Report(err *ControlError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportSnap reports that a user edit produced edited, which lies outside the
// selectable range, and the control moved to bound instead.
func ReportSnap(op string, edited, bound fmt.Stringer) {
	Report(&ControlError{
		Op:   op,
		Kind: KindRange,
		Err:  fmt.Errorf("%w: %s snapped to %s", ErrOutOfRange, edited, bound),
	})
}

// ReportUnrepresentable reports date arithmetic whose result left the
// representable years. The message describes the attempted step.
func ReportUnrepresentable(op, format string, args ...any) {
	Report(&ControlError{
		Op:   op,
		Kind: KindArithmetic,
		Err:  fmt.Errorf("%w: %s", ErrUnrepresentable, fmt.Sprintf(format, args...)),
	})
}

// ReportLocale reports locale data a control could not use. The control
// carries on with its fallback.
func ReportLocale(op string, err error) {
	Report(&ControlError{Op: op, Kind: KindLocale, Err: err})
}

// ReportPanic stamps err like Report and hands it to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover guards a listener callback. Use it as
//
//	defer errors.Recover("stepper.notify")
//
// A recovered value is reported as a PanicError and the control keeps
// running. A *ConfigError is a caller bug and is panicked again.
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	if cfg, ok := r.(*ConfigError); ok {
		panic(cfg)
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line" entry
// per frame. Frames of the runtime and of this package are left out.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !internalFrame(frame.Function) {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}

func internalFrame(fn string) bool {
	return strings.HasPrefix(fn, "runtime.") || strings.Contains(fn, "/dyntype/pkg/errors.")
}
