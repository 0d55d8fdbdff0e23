package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	BackendSlog   = "slog"
	BackendLogrus = "logrus"

	FormatText = "text"
	FormatJSON = "json"
)

// Options selects the logging backend, its minimum level and output format.
// Zero values mean slog, info level, text output to stderr.
type Options struct {
	Backend string
	Level   string
	Format  string
	Writer  io.Writer
}

// New builds a Logger from opts. Unknown levels fall back to info.
func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	if strings.EqualFold(opts.Backend, BackendLogrus) {
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrusLevel(opts.Level))
		if strings.EqualFold(opts.Format, FormatJSON) {
			l.SetFormatter(&logrus.JSONFormatter{})
		} else {
			l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		}
		return NewLogrusLogger(logrus.NewEntry(l))
	}

	ho := &slog.HandlerOptions{Level: slogLevel(opts.Level)}
	var h slog.Handler
	if strings.EqualFold(opts.Format, FormatJSON) {
		h = slog.NewJSONHandler(w, ho)
	} else {
		h = slog.NewTextHandler(w, ho)
	}
	return NewSlogLogger(slog.New(h))
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func slogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logrusLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
