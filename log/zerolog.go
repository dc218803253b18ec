package log

import (
	"io"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of rs/zerolog.
type ZerologLogger struct {
	logger zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// NewZerologWriterLogger creates a timestamped zerolog logger writing to out.
func NewZerologWriterLogger(out io.Writer, level LogLevel) *ZerologLogger {
	logger := zerolog.New(out).With().Timestamp().Logger().Level(zerologLevel(level))
	return &ZerologLogger{logger: logger}
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

func (l *ZerologLogger) Debug(format string, v ...any) { l.logger.Debug().Msgf(format, v...) }
func (l *ZerologLogger) Info(format string, v ...any)  { l.logger.Info().Msgf(format, v...) }
func (l *ZerologLogger) Warn(format string, v ...any)  { l.logger.Warn().Msgf(format, v...) }
func (l *ZerologLogger) Error(format string, v ...any) { l.logger.Error().Msgf(format, v...) }
