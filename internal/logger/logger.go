// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFile is where logs go when LOG_FILE is unset. The terminal belongs to
// the renderer, so logs never go to stdout while the game runs.
const DefaultFile = "relicfield.log"

// Log is the global logger instance for the whole application.
// It discards output until Init is called.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Options control logger initialisation. Empty fields fall back to the
// LOG_LEVEL, LOG_FORMAT and LOG_FILE environment variables.
type Options struct {
	Level  string
	Format string // "json" or "text"
	Output io.Writer
}

// Init configures the global logger. It returns a close function for the log
// file it opened, if any.
func Init(opts Options) (func() error, error) {
	l := logrus.New()

	level := opts.Level
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	closer := func() error { return nil }
	out := opts.Output
	if out == nil {
		path := os.Getenv("LOG_FILE")
		if path == "" {
			path = DefaultFile
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		out = f
		closer = f.Close
	}
	l.SetOutput(out)

	Log = l
	return closer, nil
}
