// Package logger wraps zerolog with the small API the UI packages use.
// All methods are safe on a nil *Logger, which discards everything.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// Component is attached to every entry when set.
	Component string
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// With returns a derived logger carrying the given key/value pairs.
func (l *Logger) With(keyvals ...any) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Fields(pairs(keyvals)).Logger()}
	return &derived
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Fields(pairs(keyvals)).Msg(msg)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Info().Fields(pairs(keyvals)).Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.base.Warn().Fields(pairs(keyvals)).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Fields(pairs(keyvals)).Msg(msg)
}

// pairs turns alternating keys and values into a field map. A trailing key
// without a value is recorded under "!BADKEY".
func pairs(keyvals []any) map[string]any {
	if len(keyvals) == 0 {
		return nil
	}
	fields := make(map[string]any, len(keyvals)/2+1)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if i+1 >= len(keyvals) {
			fields["!BADKEY"] = key
			break
		}
		fields[key] = keyvals[i+1]
	}
	return fields
}
