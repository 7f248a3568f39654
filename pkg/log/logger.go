package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zerolog.Nop()
var once sync.Once

type LoggerOption func(*LoggerConfig)

type LoggerConfig struct {
	fileName string
	console  bool
	level    zerolog.Level
	out      io.Writer
}

// WithFileLogger writes JSON logs to a rotating file.
func WithFileLogger(fileName string) LoggerOption {
	return func(l *LoggerConfig) {
		l.fileName = fileName
	}
}

// WithConsoleLogger writes human readable logs to stdout.
func WithConsoleLogger() LoggerOption {
	return func(l *LoggerConfig) {
		l.console = true
	}
}

// WithLevel sets the minimum level by name ("debug", "info", ...). Unknown
// names keep the default info level.
func WithLevel(name string) LoggerOption {
	return func(l *LoggerConfig) {
		if lvl, err := zerolog.ParseLevel(name); err == nil && lvl != zerolog.NoLevel {
			l.level = lvl
		}
	}
}

// WithWriter sends JSON logs to w instead of stdout.
func WithWriter(w io.Writer) LoggerOption {
	return func(l *LoggerConfig) {
		l.out = w
	}
}

// Init configures the process-wide logger. Only the first call has effect.
func Init(serviceName string, opts ...LoggerOption) {
	once.Do(func() {
		logger = New(serviceName, opts...)
	})
}

// New builds a logger without touching the process-wide one.
func New(serviceName string, opts ...LoggerOption) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := &LoggerConfig{level: zerolog.InfoLevel}

	for _, opt := range opts {
		opt(l)
	}

	output := make([]io.Writer, 0, 3)
	defaultOutput := io.Writer(os.Stdout)
	if l.out != nil {
		output = append(output, l.out)
	}
	if l.console {
		consoleOutput := zerolog.ConsoleWriter{
			Out:        defaultOutput,
			TimeFormat: time.RFC3339,
		}
		output = append(output, consoleOutput)
	}
	if l.fileName != "" {
		fileOutput := &lumberjack.Logger{
			Filename:   l.fileName,
			MaxSize:    5,
			MaxBackups: 10,
			MaxAge:     14,
			Compress:   true,
		}
		output = append(output, fileOutput)
	}

	if len(output) == 0 {
		output = append(output, defaultOutput)
	}

	return zerolog.New(zerolog.MultiLevelWriter(output...)).
		Level(l.level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// GetLogger returns the process-wide logger; it discards everything until Init is called.
func GetLogger() zerolog.Logger {
	return logger
}
