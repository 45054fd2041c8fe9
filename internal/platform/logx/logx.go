// internal/platform/logx/logx.go
package logx

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger es la interfaz compartida de logging estructurado key/value.
// El backend es zerolog con salida de consola en stderr, de modo que los
// logs nunca se mezclan con la UI ni con los reportes escritos a stdout.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

type zeroLogger struct {
	zl zerolog.Logger
}

func New() Logger {
	return NewWithLevel(parseLevel(os.Getenv("N0VAX_LOG_LEVEL")))
}

// NewWithLevel creates a logger with a specific log level
func NewWithLevel(lvl Level) Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	zl := zerolog.New(w).Level(toZerolog(lvl)).With().Timestamp().Logger()
	return &zeroLogger{zl: zl}
}

// NewSilent creates a logger that only outputs errors (silent mode for UI)
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

func (z *zeroLogger) With(kv ...any) Logger {
	ctx := z.zl.With()
	for i := 0; i+1 < len(kv); i += 2 {
		ctx = ctx.Interface(keyString(kv[i]), kv[i+1])
	}
	return &zeroLogger{zl: ctx.Logger()}
}

func (z *zeroLogger) SetLevel(lvl Level) {
	z.zl = z.zl.Level(toZerolog(lvl))
}

func (z *zeroLogger) Debug(msg string, kv ...any) { emit(z.zl.Debug(), msg, kv...) }
func (z *zeroLogger) Info(msg string, kv ...any)  { emit(z.zl.Info(), msg, kv...) }
func (z *zeroLogger) Warn(msg string, kv ...any)  { emit(z.zl.Warn(), msg, kv...) }

func (z *zeroLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	emit(z.zl.Error().Err(err), "", kv...)
}

func emit(ev *zerolog.Event, msg string, kv ...any) {
	for i := 0; i+1 < len(kv); i += 2 {
		switch v := kv[i+1].(type) {
		case string:
			ev = ev.Str(keyString(kv[i]), v)
		case int:
			ev = ev.Int(keyString(kv[i]), v)
		case int64:
			ev = ev.Int64(keyString(kv[i]), v)
		case bool:
			ev = ev.Bool(keyString(kv[i]), v)
		case time.Duration:
			ev = ev.Dur(keyString(kv[i]), v)
		case error:
			ev = ev.AnErr(keyString(kv[i]), v)
		default:
			ev = ev.Interface(keyString(kv[i]), v)
		}
	}
	if len(kv)%2 != 0 {
		ev = ev.Interface(keyString(kv[len(kv)-1]), "(missing)")
	}
	ev.Msg(msg)
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return "field"
}

func toZerolog(lvl Level) zerolog.Level {
	switch lvl {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
