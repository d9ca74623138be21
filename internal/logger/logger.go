package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Packages log through this; until Init runs (e.g. in tests) it discards.
var log = zerolog.Nop()

// Init configures console logging. DEBUG in the environment lowers the
// level; everything else stays at info.
func Init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return fmt.Sprintf("[%s]", i)
	}

	log = zerolog.New(output).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if _, exists := os.LookupEnv("DEBUG"); exists {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// Quiet silences logging while a TUI owns the screen.
func Quiet() {
	log = zerolog.Nop()
}

// Debug logs a debug message
func Debug(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

// Info logs an info message
func Info(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

// Warn logs a warning message
func Warn(format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}
