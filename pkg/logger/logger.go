package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger de la aplicación.
type Config struct {
	Env   string // development usa consola legible; cualquier otro valor, JSON
	Level string // trace, debug, info, warn, error
}

// Logger envoltura sobre zerolog, pensada para inyectarse en los componentes
// que registran eventos.
type Logger struct {
	z zerolog.Logger
}

// New construye el logger según el entorno: consola coloreada en development,
// JSON por stdout en el resto.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	z := zerolog.New(out).Level(levelFrom(cfg.Level)).With().Timestamp().Logger()

	// Las librerías que usan el logger global de zerolog escriben igual aquí
	log.Logger = z

	return &Logger{z: z}
}

func levelFrom(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Trace() *zerolog.Event { return l.z.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.z.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.z.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.z.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.z.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.z.Fatal() }

// With inicia un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.z.With()
}

// Zerolog expone el logger interno para quien necesite la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.z
}
