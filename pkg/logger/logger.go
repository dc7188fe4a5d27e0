package logger

import (
	"fmt"
	"io"
	"os"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/nx-knip/errors"
	"github.com/cloudposse/nx-knip/pkg/schema"
)

// TraceLevel sits below charm's DebugLevel.
const TraceLevel = charm.DebugLevel - 1

// OffLevel suppresses every message.
const OffLevel = charm.FatalLevel + 1

const (
	LogLevelTrace   = "Trace"
	LogLevelDebug   = "Debug"
	LogLevelInfo    = "Info"
	LogLevelWarning = "Warning"
	LogLevelOff     = "Off"
)

// Logger wraps a charm logger with a Trace level.
type Logger struct {
	*charm.Logger

	closer io.Closer
}

// NewLogger builds a logger for the given level writing to file.
// "/dev/stderr" (and the empty string) and "/dev/stdout" map to the process streams; anything else is appended to.
// Call Close once the logger is no longer used.
func NewLogger(level charm.Level, file string) (*Logger, error) {
	w, closer, err := openLogFile(file)
	if err != nil {
		return nil, err
	}
	l := NewWithWriter(w)
	l.SetLevel(level)
	l.closer = closer
	return l, nil
}

// NewLoggerFromConfig builds a logger from the `logs` section of the configuration.
func NewLoggerFromConfig(cfg *schema.Configuration) (*Logger, error) {
	level, err := ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return nil, err
	}
	return NewLogger(level, cfg.Logs.File)
}

// NewWithWriter builds an Info-level logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	l := charm.NewWithOptions(w, charm.Options{ReportTimestamp: false})
	l.SetLevel(charm.InfoLevel)
	return &Logger{Logger: l}
}

// ParseLogLevel converts a configured level name. The empty string means Info.
func ParseLogLevel(level string) (charm.Level, error) {
	switch level {
	case "", LogLevelInfo:
		return charm.InfoLevel, nil
	case LogLevelTrace:
		return TraceLevel, nil
	case LogLevelDebug:
		return charm.DebugLevel, nil
	case LogLevelWarning:
		return charm.WarnLevel, nil
	case LogLevelOff:
		return OffLevel, nil
	default:
		return 0, fmt.Errorf("%w '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", errUtils.ErrInvalidLogLevel, level)
	}
}

// Trace logs below Debug.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}

// Close releases the log file opened by NewLogger. The process streams are left open.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// openLogFile returns the writer for file and, when the file was opened here, its closer.
func openLogFile(file string) (io.Writer, io.Closer, error) {
	switch file {
	case "", "/dev/stderr":
		return os.Stderr, nil, nil
	case "/dev/stdout":
		return os.Stdout, nil, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", file, err)
	}
	return f, f, nil
}
