package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger is a thin printf-style wrapper over slog tagged with a component name
type Logger struct {
	logger *slog.Logger
}

// NewLogger returns a JSON logger writing to stdout at info level
func NewLogger(component string) Logger {
	return NewLoggerTo(os.Stdout, component, slog.LevelInfo)
}

// NewLoggerTo returns a JSON logger writing to w at the given level
func NewLoggerTo(w io.Writer, component string, level slog.Level) Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return Logger{logger: slog.New(h).With("component", component)}
}

// Discard returns a logger that drops everything
func Discard() Logger {
	return Logger{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// With returns a logger carrying extra attributes on every record
func (l Logger) With(args ...any) Logger {
	return Logger{logger: l.get().With(args...)}
}

func (l Logger) Debugf(format string, args ...any) {
	l.get().Debug("debug", "message", fmt.Sprintf(format, args...))
}

func (l Logger) Infof(format string, args ...any) {
	l.get().Info("info", "message", fmt.Sprintf(format, args...))
}

func (l Logger) Warnf(format string, args ...any) {
	l.get().Warn("warn", "message", fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	l.get().Error("error", "message", fmt.Sprintf(format, args...))
}

// zero value Logger falls back to discarding
func (l Logger) get() *slog.Logger {
	if l.logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return l.logger
}
