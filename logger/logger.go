// Package logger provides a configurable logger shared by the bignum packages.
//
// The root logger defined by default uses github.com/rs/zerolog with a console
// writer. Library code only logs rare structural events (such as interner
// growth) at trace level, so the default level is info.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows a user to override the global logger
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the configured logger
func Logger() zerolog.Logger {
	return logger
}
