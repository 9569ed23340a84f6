package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging surface the library's components depend on. It keeps
// callers decoupled from the backend: production code runs on zerolog while
// embedders with an existing *log.Logger plug in through StdLoggerAdapter.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

// Field is one structured key/value pair attached to a log event.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates a field holding an error under the conventional "error" key.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a logger writing human-readable output to stderr.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "bignum")
}

// NewLogger returns a zerolog-backed logger writing to w, tagging every event
// with the given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().
		Timestamp().
		Str("component", component).
		Logger()
	return NewZerologAdapter(zl)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *ZerologAdapter {
	return NewZerologAdapter(zerolog.Nop())
}

// Info logs at info level.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Error logs at error level with an attached error, which may be nil.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs at debug level.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level, for code expecting the
// standard library surface.
func (z *ZerologAdapter) Printf(format string, args ...interface{}) {
	z.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs space-separated arguments at info level.
func (z *ZerologAdapter) Println(args ...interface{}) {
	z.logger.Info().Msg(fmt.Sprintln(args...))
}

func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// StdLoggerAdapter adapts a standard library *log.Logger to the Logger
// interface, rendering fields as trailing key=value pairs.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps a standard library logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info logs at info level.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Println(append([]interface{}{"[INFO]", msg}, flatten(fields)...)...)
}

// Error logs at error level with an attached error, which may be nil.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	args := []interface{}{"[ERROR]", msg}
	if err != nil {
		args = append(args, "error="+err.Error())
	}
	s.logger.Println(append(args, flatten(fields)...)...)
}

// Debug logs at debug level.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Println(append([]interface{}{"[DEBUG]", msg}, flatten(fields)...)...)
}

// Printf logs a formatted message.
func (s *StdLoggerAdapter) Printf(format string, args ...interface{}) {
	s.logger.Printf(format, args...)
}

// Println logs space-separated arguments.
func (s *StdLoggerAdapter) Println(args ...interface{}) {
	s.logger.Println(args...)
}

func flatten(fields []Field) []interface{} {
	out := make([]interface{}, 0, len(fields))
	for _, f := range fields {
		out = append(out, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	return out
}
