// Package logging monta o zerolog.Logger usado pelo servidor.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options controla o formato e o nível dos logs
type Options struct {
	Level  string
	Pretty bool
	Output io.Writer
}

// New cria o logger raiz. Nível desconhecido cai para info.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "skillswap").
		Logger()
}
