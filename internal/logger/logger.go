// Package logger provides process-wide logging for Sercha Assist.
// Debug and Info messages are only emitted in verbose mode; warnings and
// errors are always written. Output goes to stderr unless redirected.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	sugar             = build(os.Stderr, false)
)

func build(w io.Writer, v bool) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if v {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	sugar = build(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	sugar = build(output, verbose)
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Debug logs a message in verbose mode.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

// Section logs a section header in verbose mode.
func Section(name string) {
	current().Debugf("=== %s ===", name)
}

// Info logs an informational message in verbose mode.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Error logs an error.
func Error(format string, args ...any) {
	current().Errorf(format, args...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = current().Sync()
}

// Entry is a logger bound to key/value context, e.g. a request ID.
type Entry struct {
	fields []any
}

// With returns an Entry that attaches keysAndValues to every message.
func With(keysAndValues ...any) Entry {
	if len(keysAndValues)%2 != 0 {
		keysAndValues = append(keysAndValues, "<missing>")
	}
	return Entry{fields: keysAndValues}
}

// Debug logs a message in verbose mode.
func (e Entry) Debug(format string, args ...any) {
	current().Debugw(fmt.Sprintf(format, args...), e.fields...)
}

// Info logs an informational message in verbose mode.
func (e Entry) Info(format string, args ...any) {
	current().Infow(fmt.Sprintf(format, args...), e.fields...)
}

// Warn logs a warning.
func (e Entry) Warn(format string, args ...any) {
	current().Warnw(fmt.Sprintf(format, args...), e.fields...)
}

// Error logs an error.
func (e Entry) Error(format string, args ...any) {
	current().Errorw(fmt.Sprintf(format, args...), e.fields...)
}
