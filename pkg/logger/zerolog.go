package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ZerologLogger is a zerolog-backed Logger with leveled console output.
// It is the default backend for the daemon's foreground mode.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a console logger writing to out with the given
// minimum level ("debug", "info", "warning" or "error"). Unknown level
// strings fall back to info.
func NewZerologLogger(out io.Writer, level string) *ZerologLogger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTimeFormat}
	zl := zerolog.New(cw).Level(parseLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

// parseLevel maps a level name to a zerolog level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug logs a diagnostic message.
func (z *ZerologLogger) Debug(format string, args ...interface{}) {
	z.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (z *ZerologLogger) Info(format string, args ...interface{}) {
	z.zl.Info().Msg(fmt.Sprintf(format, args...))
}

// Warning logs a warning message.
func (z *ZerologLogger) Warning(format string, args ...interface{}) {
	z.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (z *ZerologLogger) Error(format string, args ...interface{}) {
	z.zl.Error().Msg(fmt.Sprintf(format, args...))
}

// Close is a no-op for ZerologLogger (console writers hold no resources).
func (z *ZerologLogger) Close() error {
	return nil
}

// Ensure ZerologLogger satisfies the Logger interface.
var _ Logger = (*ZerologLogger)(nil)
