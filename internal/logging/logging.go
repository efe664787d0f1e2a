package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the application logger. Level falls back to info when the
// given name does not parse. Pretty enables the human console writer for
// interactive use; the default is structured JSON.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Adapter exposes a zerolog logger through the small interface the
// analytics engine logs to.
type Adapter struct {
	log zerolog.Logger
}

func NewAdapter(log zerolog.Logger) *Adapter {
	return &Adapter{log: log}
}

func (a *Adapter) Debug(msg string) { a.log.Debug().Msg(msg) }
func (a *Adapter) Error(msg string) { a.log.Error().Msg(msg) }
