package loghive

import (
	"fmt"
	"sync/atomic"
)

// Logger is a named handle application code emits records through. Handles
// are issued by a Hive, which tracks them so later level changes reach every
// handle without the caller re-fetching it. The hive never controls a
// handle's lifetime; dropping one is enough to release it.
type Logger struct {
	name  string
	level atomic.Int32
	hive  *Hive
}

// Name returns the handle's name.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the handle's current minimum severity.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

func (l *Logger) setLevel(level Level) {
	l.level.Store(int32(level))
}

// IsEnabledFor reports whether records at the given level would be emitted.
func (l *Logger) IsEnabledFor(level Level) bool {
	return level >= l.Level()
}

// Log emits a record at the given level with optional structured context.
// Per-call fields are appended after any configured extra fields.
func (l *Logger) Log(level Level, message string, fields ...Field) {
	if !l.IsEnabledFor(level) {
		return
	}
	l.hive.emit(l.name, level, message, fields)
}

// Debug logs a debug message.
func (l *Logger) Debug(args ...interface{}) {
	l.Log(LevelDebug, fmt.Sprint(args...))
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Log(LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs an info message.
func (l *Logger) Info(args ...interface{}) {
	l.Log(LevelInfo, fmt.Sprint(args...))
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func (l *Logger) Warn(args ...interface{}) {
	l.Log(LevelWarn, fmt.Sprint(args...))
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Log(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *Logger) Error(args ...interface{}) {
	l.Log(LevelError, fmt.Sprint(args...))
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Log(LevelError, fmt.Sprintf(format, args...))
}

// Critical logs a critical message.
func (l *Logger) Critical(args ...interface{}) {
	l.Log(LevelCritical, fmt.Sprint(args...))
}

// Criticalf logs a formatted critical message.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Log(LevelCritical, fmt.Sprintf(format, args...))
}

// ErrorWithError logs an error message with the error appended as a field.
func (l *Logger) ErrorWithError(message string, err error) {
	l.Log(LevelError, message, Field{Key: "error", Value: err})
}
