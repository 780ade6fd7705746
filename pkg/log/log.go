// Package log is a small wrapper around the standard library logger that
// gives every source and service a named logger with level helpers.
//
//   - Named loggers via ForSource(name); every line is prefixed "[name>]"
//   - Info is the default level; Warn, Error and Debug are also provided
//   - Debug can be enabled globally (SetGlobalDebug) or per source
//     (EnableDebugFor), which keeps noisy adapters quiet by default
//   - A central output writer (SetOutput) that re-routes existing loggers,
//     used by tests to capture output
//
// Structured or JSON logging is intentionally out of scope; the engine's
// diagnostics are operator-facing text lines.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

// Level names used in emitted lines.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelDebug = "DEBUG"
)

// Logger is a named logger with level helpers.
type Logger struct {
	name string
	std  *log.Logger
}

// writerHolder keeps atomic.Value happy with a single concrete type even
// when the underlying writer changes between *os.File and *bytes.Buffer.
type writerHolder struct {
	w io.Writer
}

var (
	globalDebug atomic.Bool
	sourceDebug sync.Map // map[string]*atomic.Bool
	loggers     sync.Map // map[string]*Logger
	output      atomic.Value
)

func init() {
	output.Store(writerHolder{w: os.Stderr})
}

// ForSource returns (and memoizes) the named logger for a source or service.
// The name should be stable, e.g. the kind string.
func ForSource(name string) *Logger {
	if name == "" {
		name = "unknown"
	}
	if l, ok := loggers.Load(name); ok {
		return l.(*Logger)
	}
	current := output.Load().(writerHolder).w
	logger := &Logger{
		name: name,
		std:  log.New(current, "", log.LstdFlags|log.Lmicroseconds),
	}
	actual, _ := loggers.LoadOrStore(name, logger)
	return actual.(*Logger)
}

// SetGlobalDebug enables or disables debug logging for every logger.
func SetGlobalDebug(enabled bool) {
	globalDebug.Store(enabled)
}

// EnableDebugFor enables debug logging for one source only.
func EnableDebugFor(name string) {
	if name == "" {
		return
	}
	val, _ := sourceDebug.LoadOrStore(name, &atomic.Bool{})
	val.(*atomic.Bool).Store(true)
}

// DebugEnabledFor reports whether debug lines for the source are emitted,
// either globally or via EnableDebugFor.
func DebugEnabledFor(name string) bool {
	if globalDebug.Load() {
		return true
	}
	if val, ok := sourceDebug.Load(name); ok {
		return val.(*atomic.Bool).Load()
	}
	return false
}

// SetOutput routes all current and future loggers to w.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	output.Store(writerHolder{w: w})
	loggers.Range(func(_, v any) bool {
		v.(*Logger).std.SetOutput(w)
		return true
	})
}

func (l *Logger) emit(level, msg string) {
	l.std.Println(level + " [" + l.name + ">] " + msg)
}

// Infof logs an informational message with fmt.Sprintf semantics.
func (l *Logger) Infof(format string, args ...any) {
	l.emit(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.emit(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs an error.
func (l *Logger) Errorf(format string, args ...any) {
	l.emit(LevelError, fmt.Sprintf(format, args...))
}

// Debugf logs only when debug is enabled globally or for this logger's name.
func (l *Logger) Debugf(format string, args ...any) {
	if !DebugEnabledFor(l.name) {
		return
	}
	l.emit(LevelDebug, fmt.Sprintf(format, args...))
}
