package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env   string    // development -> consola legible; production -> JSON
	Level string    // trace, debug, info, warn, error (sin distinguir mayúsculas)
	Out   io.Writer // os.Stdout si es nil; el cliente de terminal usa os.Stderr
}

// Logger wrapper sobre zerolog. Los subloggers de componente y de cliente comparten la salida.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger de la consola y redirige el logger global de zerolog.
func New(cfg Config) *Logger {
	zl := zerolog.New(writerFor(cfg)).
		Level(levelOf(cfg.Level)).
		With().Timestamp().
		Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func writerFor(cfg Config) io.Writer {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return out
}

// levelOf usa info para niveles vacíos o desconocidos.
func levelOf(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Component sublogger con el campo "component".
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// Client sublogger con el scope del cliente (cookie del navegador o perfil de terminal).
func (l *Logger) Client(scope string) *Logger {
	if scope == "" {
		return l
	}
	return &Logger{zl: l.zl.With().Str("client", scope).Logger()}
}

// ForStatus evento de nivel acorde a un estado HTTP: error para 5xx, warn para 4xx, info el resto.
func (l *Logger) ForStatus(status int) *zerolog.Event {
	switch {
	case status >= 500:
		return l.zl.Error()
	case status >= 400:
		return l.zl.Warn()
	}
	return l.zl.Info()
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
