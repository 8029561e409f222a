package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestControlErrorString(t *testing.T) {
	err := &ControlError{
		Op:   "picker.DateTimePicker.SelectRow",
		Kind: KindArithmetic,
		Err:  ErrUnrepresentable,
	}
	got := err.Error()
	want := "picker.DateTimePicker.SelectRow [arithmetic]: date is not representable"
	if got != want {
		t.Errorf("ControlError.Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, ErrUnrepresentable) {
		t.Error("expected ControlError to unwrap to ErrUnrepresentable")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindRange, "range"},
		{KindArithmetic, "arithmetic"},
		{KindLocale, "locale"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConfigErrorString(t *testing.T) {
	err := &ConfigError{Op: "stepper.SetStepSize", Message: "step size must be positive, got 0"}
	want := "stepper.SetStepSize: step size must be positive, got 0"
	if got := err.Error(); got != want {
		t.Errorf("ConfigError.Error() = %q, want %q", got, want)
	}
}

func TestConfigfPanics(t *testing.T) {
	defer func() {
		r := recover()
		cfg, ok := r.(*ConfigError)
		if !ok {
			t.Fatalf("recovered %T, want *ConfigError", r)
		}
		if cfg.Message != "minimum 3 must be below maximum 1" {
			t.Errorf("Message = %q", cfg.Message)
		}
	}()
	Configf("stepper.SetMinimum", "minimum %v must be below maximum %v", 3, 1)
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "picker.notify",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in picker.notify: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *ControlError
	handler := &testHandler{
		onError: func(err *ControlError) {
			capturedErr = err
		},
	}

	oldHandler := SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&ControlError{
		Op:   "test.op",
		Kind: KindRange,
		Err:  ErrOutOfRange,
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportPanic(&PanicError{Value: "test panic value"})

	if capturedPanic == nil {
		t.Fatal("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
	}
	if capturedPanic.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverRethrowsConfigError(t *testing.T) {
	oldHandler := SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	defer func() {
		if _, ok := recover().(*ConfigError); !ok {
			t.Error("expected ConfigError to propagate through Recover")
		}
	}()

	func() {
		defer Recover("test.recover")
		Configf("test.op", "bad")
	}()
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing.tRunner") {
		t.Errorf("stack trace should reach the test runner, got: %s", stack)
	}
	if strings.Contains(stack, "runtime.") || strings.Contains(stack, "errors.CaptureStack") {
		t.Errorf("stack trace should leave out runtime and reporting frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := SetHandler(nil)
	defer SetHandler(oldHandler)

	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should select a LogHandler, got %T", Handler())
	}
	if prev := SetHandler(&testHandler{}); prev == nil {
		t.Error("SetHandler should return the replaced handler")
	}
}

type label string

func (l label) String() string { return string(l) }

func TestDomainReports(t *testing.T) {
	tests := []struct {
		name     string
		report   func()
		op       string
		kind     ErrorKind
		sentinel error
		message  string
	}{
		{
			name:     "snap",
			report:   func() { ReportSnap("picker.DatePicker.SelectRow", label("2001-01-15"), label("2000-02-29")) },
			op:       "picker.DatePicker.SelectRow",
			kind:     KindRange,
			sentinel: ErrOutOfRange,
			message:  "date outside of configured range: 2001-01-15 snapped to 2000-02-29",
		},
		{
			name:     "unrepresentable",
			report:   func() { ReportUnrepresentable("picker.DateTimePicker.SelectRow", "%d days from %s", 9, "9999-12-31") },
			op:       "picker.DateTimePicker.SelectRow",
			kind:     KindArithmetic,
			sentinel: ErrUnrepresentable,
			message:  "date is not representable: 9 days from 9999-12-31",
		},
		{
			name:     "locale",
			report:   func() { ReportLocale("locale.Ordering", ErrOutOfRange) },
			op:       "locale.Ordering",
			kind:     KindLocale,
			sentinel: ErrOutOfRange,
			message:  "date outside of configured range",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []*ControlError
			oldHandler := SetHandler(&testHandler{onError: func(err *ControlError) { got = append(got, err) }})
			defer SetHandler(oldHandler)

			tt.report()

			if len(got) != 1 {
				t.Fatalf("handler received %d errors, want 1", len(got))
			}
			err := got[0]
			if err.Op != tt.op || err.Kind != tt.kind {
				t.Errorf("got op %q kind %s, want op %q kind %s", err.Op, err.Kind, tt.op, tt.kind)
			}
			if !stderrors.Is(err, tt.sentinel) {
				t.Errorf("error %v should wrap %v", err, tt.sentinel)
			}
			if err.Err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Err.Error(), tt.message)
			}
			if err.Timestamp.IsZero() {
				t.Error("expected Timestamp to be set")
			}
		})
	}
}

func TestRecoverKeepsCallerFrames(t *testing.T) {
	var captured *PanicError
	oldHandler := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(oldHandler)

	func() {
		defer Recover("stepper.notify")
		panic("listener failed")
	}()

	if captured == nil {
		t.Fatal("expected panic to be reported")
	}
	if strings.Contains(captured.StackTrace, "runtime.gopanic") || strings.Contains(captured.StackTrace, "errors.Recover") {
		t.Errorf("stack should start at the panicking caller, got: %s", captured.StackTrace)
	}
	if !strings.Contains(captured.StackTrace, "testing.tRunner") {
		t.Errorf("stack should include the test runner, got: %s", captured.StackTrace)
	}
}

func TestLogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := &LogHandler{Logger: logger}

	h.HandleError(&ControlError{Op: "picker.DatePicker.SelectRow", Kind: KindRange, Err: ErrOutOfRange})
	if buf.Len() != 0 {
		t.Errorf("range snap should log at debug level, got %q", buf.String())
	}

	h.HandleError(&ControlError{Op: "picker.DateTimePicker.SelectRow", Kind: KindArithmetic, Err: ErrUnrepresentable})
	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "kind=arithmetic") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestLogHandlerPanicStack(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true}

	h.HandlePanic(&PanicError{Op: "stepper.notify", Value: "boom", StackTrace: "main.main"})
	out := buf.String()
	if !strings.Contains(out, "op=stepper.notify") || !strings.Contains(out, "stack=main.main") {
		t.Errorf("unexpected log output %q", out)
	}
}

type testHandler struct {
	onError func(*ControlError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *ControlError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
