// pkg/logger/logger.go
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const serviceName = "wms-backend"

var (
	// Log is the global logger instance
	Log zerolog.Logger
)

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	// Default to console output with color
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}

	Log = zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Caller().
		Str("service", serviceName).
		Logger()
}

// SetLevel maps the server mode to a log level. The two gin modes get
// sensible defaults; anything else is parsed as a zerolog level name so
// SERVER_MODE=trace still works during debugging.
func SetLevel(mode string) {
	level := levelForMode(mode)
	zerolog.SetGlobalLevel(level)
	Log = Log.Level(level)
}

func levelForMode(mode string) zerolog.Level {
	switch mode {
	case "debug":
		return zerolog.DebugLevel
	case "release":
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(mode)
	if err != nil || level == zerolog.NoLevel {
		Log.Warn().Str("mode", mode).Msg("unknown server mode, defaulting to info level")
		return zerolog.InfoLevel
	}
	return level
}
