package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dvcrn/ht/internal/env"
)

var (
	once   sync.Once
	logger *zerolog.Logger
)

// Get returns the singleton logger instance, initializing it on first call.
// Logs go to stderr so the rendered response on stdout stays pipeable.
func Get() *zerolog.Logger {
	once.Do(func() {
		logger = newLogger()
	})
	return logger
}

// SetDebug lowers the global level to debug. Used by the --verbose flag;
// it overrides whatever LOG_LEVEL selected.
func SetDebug() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// SetOutput rebuilds the logger against w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	once.Do(func() {})
	zl := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).With().Timestamp().Logger()
	logger = &zl
}

// newLogger builds a console logger. A one-shot CLI only ever logs for a
// human at a terminal, so there is no JSON/production mode.
func newLogger() *zerolog.Logger {
	zerolog.SetGlobalLevel(levelFromEnv())

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    noColorFromEnv(),
	}

	zl := zerolog.New(output).With().Timestamp().Logger()
	return &zl
}

// levelFromEnv reads LOG_LEVEL, defaulting to warn so a normal run prints
// nothing but the response.
func levelFromEnv() zerolog.Level {
	levelStr, ok := env.Get("LOG_LEVEL")
	if !ok {
		return zerolog.WarnLevel
	}
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL \"%s\"; defaulting to 'warn'\n", levelStr)
		return zerolog.WarnLevel
	}
	return parsedLevel
}

// noColorFromEnv mirrors fatih/color's convention: NO_COLOR disables color
// only when non-empty, so both halves of the output agree.
func noColorFromEnv() bool {
	_, ok := env.Get("NO_COLOR")
	return ok
}
