// Package logging sets up the structured logger shared by the command
// line and the analytics client.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
)

var (
	defaultLogger *bolt.Logger
	mu            sync.Mutex
)

type Config struct {
	// Level is one of trace, debug, info, warn or error.
	Level string
	// Format is json or console.
	Format string
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

func ParseLevel(str string) bolt.Level {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "warn", "warning":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// New builds a logger without touching the default one.
func New(cfg Config) *bolt.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	var handler bolt.Handler
	if cfg.Format == "json" {
		handler = bolt.NewJSONHandler(out)
	} else {
		handler = bolt.NewConsoleHandler(out)
	}
	return bolt.New(handler).SetLevel(ParseLevel(cfg.Level))
}

// Init replaces the default logger.
func Init(cfg Config) *bolt.Logger {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = New(cfg)
	return defaultLogger
}

func Get() *bolt.Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(DefaultConfig())
	}
	return defaultLogger
}

type Event struct {
	event *bolt.Event
}

func Wrap(e *bolt.Event) *Event {
	return &Event{event: e}
}

func (e *Event) With(fields ...Field) *Event {
	for _, f := range fields {
		e.event = f(e.event)
	}
	return e
}

func (e *Event) Msg(msg string) {
	e.event.Msg(msg)
}

func (e *Event) Send() {
	e.event.Send()
}

func Debug() *Event {
	return Wrap(Get().Debug())
}

func Info() *Event {
	return Wrap(Get().Info())
}

func Warn() *Event {
	return Wrap(Get().Warn())
}

