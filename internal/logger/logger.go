package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// globalLogger is the application-wide logger instance
	globalLogger zerolog.Logger
)

// Config holds logger configuration
type Config struct {
	Verbosity int       // Verbosity level: 0=warn, 1=info, 2+=debug
	Quiet     bool      // Only error level logging
	JSON      bool      // Output in JSON format
	Writer    io.Writer // Output writer (defaults to os.Stderr)
}

// Init initializes the global logger with the provided configuration
func Init(cfg Config) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	// Default (0): warnings and errors only. Each -v step lowers the level;
	// quiet wins over verbosity.
	level := zerolog.WarnLevel
	if cfg.Quiet {
		level = zerolog.ErrorLevel
	} else {
		switch cfg.Verbosity {
		case 0:
			level = zerolog.WarnLevel
		case 1:
			level = zerolog.InfoLevel
		default: // 2 or higher
			level = zerolog.DebugLevel
		}
	}

	var output io.Writer
	if cfg.JSON {
		output = cfg.Writer
	} else {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Writer,
			TimeFormat: time.RFC3339,
		}
	}

	globalLogger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Update global log
	log.Logger = globalLogger
}

// Get returns the global logger instance
func Get() *zerolog.Logger {
	return &globalLogger
}

// Debug logs a message at debug level
func Debug() *zerolog.Event {
	return globalLogger.Debug()
}

// Info logs a message at info level
func Info() *zerolog.Event {
	return globalLogger.Info()
}

// Warn logs a message at warn level
func Warn() *zerolog.Event {
	return globalLogger.Warn()
}

// Error logs a message at error level
func Error() *zerolog.Event {
	return globalLogger.Error()
}

// GetLevel returns the current log level
func GetLevel() zerolog.Level {
	return globalLogger.GetLevel()
}
