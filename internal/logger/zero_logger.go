package logger

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

// ZeroLogger writes JSON lines through its own zerolog.Logger. Nothing global
// is touched, so several can coexist in one process.
type ZeroLogger struct {
	mu     sync.RWMutex
	base   zerolog.Logger
	logger zerolog.Logger
}

// CallerHook tags error and fatal entries with the call site.
type CallerHook struct{}

func (h CallerHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level < zerolog.ErrorLevel {
		return
	}
	// Run <- msg <- Msg <- ZeroLogger method <- caller
	if _, file, line, ok := runtime.Caller(4); ok {
		e.Str("caller", fmt.Sprintf("%s:%d", file, line))
	}
}

// NewZeroLogger attaches defaultFields and a timestamp to every entry.
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	base := zerolog.New(writer).With().Fields(map[string]interface{}(defaultFields)).Timestamp().Logger().Hook(CallerHook{})
	return &ZeroLogger{base: base, logger: base.Level(toZerolog(level))}
}

func toZerolog(level Level) zerolog.Level {
	switch level {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	case LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) current() *zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	zl := l.logger
	return &zl
}

func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.current().Info().Fields(properties).Msg(message)
}

func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.current().Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal logs and exits the process.
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.current().Fatal().Fields(properties).Err(err).Msg(err.Error())
}

func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.current().Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.mu.Lock()
	l.logger = l.base.Level(toZerolog(level))
	l.mu.Unlock()
}
