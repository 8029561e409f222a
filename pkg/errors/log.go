package errors

import (
	"context"
	stderrors "errors"
	"log/slog"
)

// LogHandler is an ErrorHandler that writes structured records through slog.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a ControlError. Range snaps are routine user corrections
// and are logged at debug level.
func (h *LogHandler) HandleError(err *ControlError) {
	if err == nil {
		return
	}
	level := slog.LevelError
	if err.Kind == KindRange || stderrors.Is(err.Err, ErrOutOfRange) {
		level = slog.LevelDebug
	}
	h.logger().LogAttrs(context.Background(), level, "dyntype error",
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("error", err.Err),
	)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().LogAttrs(context.Background(), slog.LevelError, "dyntype panic", attrs...)
}
