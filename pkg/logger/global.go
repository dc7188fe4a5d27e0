package logger

import (
	"os"
	"sync/atomic"
)

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewWithWriter(os.Stderr))
}

// Default returns the process-wide logger.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

func Trace(msg any, keyvals ...any) {
	Default().Trace(msg, keyvals...)
}

func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}

func Error(msg any, keyvals ...any) {
	Default().Error(msg, keyvals...)
}
