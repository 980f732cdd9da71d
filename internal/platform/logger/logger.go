// Package logger define la fachada de logging de la aplicación.
// Por debajo usa zerolog; el resto del código solo conoce esta interfaz.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type zlogger struct {
	log zerolog.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string
}

func New(opts Options) Logger {
	var out io.Writer = os.Stdout
	if opts.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	log := zerolog.New(out).Level(opts.Level.zerolog()).With().Timestamp().Logger()
	if strings.TrimSpace(opts.App) != "" {
		log = log.With().Str("app", strings.TrimSpace(opts.App)).Logger()
	}

	return &zlogger{log: log}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=pet-registry (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

func (l *zlogger) With(fields map[string]any) Logger {
	fields = cleanFields(fields)
	if len(fields) == 0 {
		return l
	}
	return &zlogger{log: l.log.With().Fields(fields).Logger()}
}

func (l *zlogger) Debug(msg string, fields map[string]any) { l.emit(l.log.Debug(), msg, fields) }
func (l *zlogger) Info(msg string, fields map[string]any)  { l.emit(l.log.Info(), msg, fields) }
func (l *zlogger) Warn(msg string, fields map[string]any)  { l.emit(l.log.Warn(), msg, fields) }
func (l *zlogger) Error(msg string, fields map[string]any) { l.emit(l.log.Error(), msg, fields) }

func (l *zlogger) emit(ev *zerolog.Event, msg string, fields map[string]any) {
	fields = cleanFields(fields)
	if len(fields) > 0 {
		ev = ev.Fields(fields)
	}
	ev.Msg(msg)
}

// cleanFields descarta claves vacías antes de pasar el mapa a zerolog.
func cleanFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}
