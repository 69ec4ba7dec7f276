package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Unknown levels fall back to
// info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
