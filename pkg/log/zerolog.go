package log

import (
	"time"

	"github.com/rs/zerolog"
)

// Zerolog adapts a zerolog.Logger to Logger.
type Zerolog struct {
	logger zerolog.Logger
}

// NewZerolog wraps an existing zerolog.Logger.
func NewZerolog(logger zerolog.Logger) *Zerolog {
	return &Zerolog{logger: logger}
}

func (z *Zerolog) Debug(msg string, fields ...Field) { emit(z.logger.Debug(), msg, fields) }
func (z *Zerolog) Info(msg string, fields ...Field)  { emit(z.logger.Info(), msg, fields) }
func (z *Zerolog) Warn(msg string, fields ...Field)  { emit(z.logger.Warn(), msg, fields) }
func (z *Zerolog) Error(msg string, fields ...Field) { emit(z.logger.Error(), msg, fields) }

// Zerolog returns the wrapped logger.
func (z *Zerolog) Zerolog() zerolog.Logger {
	return z.logger
}

func emit(event *zerolog.Event, msg string, fields []Field) {
	// Disabled levels return a nil event.
	if event == nil {
		return
	}
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.Err(v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	event.Msg(msg)
}
