package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvProduction = "production"
)

var (
	// Until Init runs (library consumers, tests) logging is a no-op.
	log  = zerolog.Nop()
	once sync.Once
)

// Init configures the global logger. In production the output is plain JSON;
// in development it is a human-readable console writer. Debug enables
// debug-level events, which is what --verbose maps to.
func Init(environment string, debug bool) {
	once.Do(func() {
		level := zerolog.InfoLevel
		if debug {
			level = zerolog.DebugLevel
		}

		if environment == EnvProduction {
			log = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
			return
		}

		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		log = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	})
}

func Debug(msg string, keyvals ...any) {
	log.Debug().Fields(keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	log.Info().Fields(keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	log.Warn().Fields(keyvals).Msg(msg)
}

func Error(msg string, err error, keyvals ...any) {
	log.Error().Err(err).Fields(keyvals).Msg(msg)
}

func Fatal(msg string, err error) {
	log.Fatal().Err(err).Msg(msg)
}
