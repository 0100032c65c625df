package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Logger defines the interface for structured logging
type Logger interface {
	// Info logs an informational message
	Info(msg string, fields ...Field)

	// Error logs an error message
	Error(msg string, err error, fields ...Field)

	// Debug logs a debug message
	Debug(msg string, fields ...Field)

	// WithFields returns a logger with additional persistent fields
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// defaultLogger implements the Logger interface using the standard log package
type defaultLogger struct {
	logger *log.Logger
	fields []Field
}

// NewLogger creates a new logger writing to stdout
func NewLogger() Logger {
	return NewLoggerWithOutput(os.Stdout)
}

// NewLoggerWithOutput creates a new logger instance with custom output
func NewLoggerWithOutput(w io.Writer) Logger {
	return &defaultLogger{
		logger: log.New(w, "", 0),
	}
}

// Info logs an informational message
func (l *defaultLogger) Info(msg string, fields ...Field) {
	l.log("INFO", msg, fields)
}

// Error logs an error message
func (l *defaultLogger) Error(msg string, err error, fields ...Field) {
	l.log("ERROR", msg, append([]Field{Err(err)}, fields...))
}

// Debug logs a debug message
func (l *defaultLogger) Debug(msg string, fields ...Field) {
	l.log("DEBUG", msg, fields)
}

// WithFields returns a logger with additional persistent fields
func (l *defaultLogger) WithFields(fields ...Field) Logger {
	combined := make([]Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)

	return &defaultLogger{
		logger: l.logger,
		fields: combined,
	}
}

// log formats one entry as "[timestamp] LEVEL: msg {k=v, ...}"
func (l *defaultLogger) log(level, msg string, fields []Field) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s: %s", time.Now().Format(time.RFC3339), level, msg)

	all := append(l.fields, fields...)
	if len(all) > 0 {
		sb.WriteString(" {")
		for i, field := range all {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%v", field.Key, field.Value)
		}
		sb.WriteString("}")
	}

	l.logger.Println(sb.String())
}
