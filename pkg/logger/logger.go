// Package logger configura el logging estructurado del servicio sobre
// zerolog. Un único Logger se construye al arrancar y se inyecta a las
// capas que lo necesitan; ninguna capa escribe a stdout por su cuenta.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config ajusta formato y verbosidad de salida.
type Config struct {
	// Env selecciona el formato: "development" imprime consola legible,
	// cualquier otro valor emite JSON por línea.
	Env string
	// Level es el nivel mínimo (trace, debug, info, warn, error).
	// Valores no reconocidos caen en info.
	Level string
}

// Logger envuelve un zerolog.Logger con timestamp y nivel ya aplicados.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger del proceso y lo instala también como logger global de
// zerolog, de modo que las dependencias que escriben vía log.Logger usen la
// misma salida.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().
		Logger()

	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel acepta el nivel en cualquier capitalización; ante un valor
// desconocido responde info en vez de fallar el arranque.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un contexto para derivar un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger subyacente para las integraciones que piden la
// API de zerolog directamente.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
