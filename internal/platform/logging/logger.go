package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type TypeEnum string

const (
	TypeApp      TypeEnum = "app"
	TypeFlow     TypeEnum = "flow"
	TypeStorage  TypeEnum = "storage"
	TypeWisdom   TypeEnum = "wisdom"
	TypeNarrator TypeEnum = "narrator"
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Close()
}

type Options struct {
	Level string
	Dir   string
	File  string
	Mode  os.FileMode
}

type zeroLogger struct {
	log    zerolog.Logger
	closer io.Closer
}

// New opens (or creates) the log file and returns a leveled logger. The terminal
// belongs to the TUI, so nothing is written to stdout or stderr.
func New(opts Options) (Logger, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if opts.Mode == 0 {
		opts.Mode = 0o644
	}
	if opts.File == "" {
		opts.File = "gentlemind.log"
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(opts.Dir, opts.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &zeroLogger{
		log:    zerolog.New(f).Level(level).With().Timestamp().Logger(),
		closer: f,
	}, nil
}

// NewWriter logs to an arbitrary writer; used by one-shot CLI commands.
func NewWriter(w io.Writer, level string) (Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return &zeroLogger{log: zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(lvl).With().Timestamp().Logger()}, nil
}

func Nop() Logger {
	return &zeroLogger{log: zerolog.Nop()}
}

func (l *zeroLogger) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.log.Error().Str("type", string(t)).Msgf(format, args...)
}

func (l *zeroLogger) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.log.Warn().Str("type", string(t)).Msgf(format, args...)
}

func (l *zeroLogger) Infof(t TypeEnum, format string, args ...interface{}) {
	l.log.Info().Str("type", string(t)).Msgf(format, args...)
}

func (l *zeroLogger) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.log.Debug().Str("type", string(t)).Msgf(format, args...)
}

func (l *zeroLogger) Close() {
	if l.closer != nil {
		_ = l.closer.Close()
	}
}
