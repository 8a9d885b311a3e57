package obs

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ZeroLogger routes Logf calls into a zerolog.Logger.
type ZeroLogger struct {
	L zerolog.Logger
}

// NewZeroLogger writes JSON lines to w, or human-readable lines when
// console is set, dropping entries below min.
func NewZeroLogger(w io.Writer, min Level, console bool) ZeroLogger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).Level(zerologLevel(min)).With().Timestamp().Logger()
	return ZeroLogger{L: l}
}

func (z ZeroLogger) Logf(level Level, format string, args ...interface{}) {
	z.L.WithLevel(zerologLevel(level)).Msgf(format, args...)
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
