// Package logging builds the zerolog logger shared by the CLI, the board and
// the core components.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const permission = 0o664

// Build collects logger options. Use New, chain options, then Make.
type Build struct {
	writer  io.Writer
	path    string
	level   zerolog.Level
	console bool
}

// Log is a constructed logger plus the file it writes to, if any.
type Log struct {
	Logger  zerolog.Logger
	LogFile *os.File
}

// New starts a builder that writes to stderr at info level.
func New() *Build {
	return &Build{writer: os.Stderr, level: zerolog.InfoLevel}
}

// FromWriter sets the destination writer.
func (b *Build) FromWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

// FromPath appends log output to the file at path instead of the writer.
func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

// Level sets the minimum level.
func (b *Build) Level(l zerolog.Level) *Build {
	b.level = l
	return b
}

// Console enables the human-readable console writer.
func (b *Build) Console(on bool) *Build {
	b.console = on
	return b
}

// Make opens the log file if one was requested and returns the logger.
func (b *Build) Make() (*Log, error) {
	log := new(Log)
	w := b.writer
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.LogFile = f
		w = zerolog.SyncWriter(f)
	}
	if b.console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: b.path != ""}
	}
	log.Logger = zerolog.New(w).Level(b.level).With().Timestamp().Logger()
	return log, nil
}

// Close releases the log file.
func (l *Log) Close() error {
	if l.LogFile == nil {
		return nil
	}
	return l.LogFile.Close()
}

// ParseLevel maps a level name ("debug", "info", "warn", "error", ...) to a
// zerolog level. Blank means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
