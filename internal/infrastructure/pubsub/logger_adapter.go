package pubsub

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/tu-usuario/bazaar-warehouse/pkg/logger"
)

var _ watermill.LoggerAdapter = (*loggerAdapter)(nil)

// loggerAdapter puentea el logger zerolog de la aplicación con el
// watermill.LoggerAdapter que Watermill espera.
type loggerAdapter struct {
	log *logger.Logger
}

// NewLoggerAdapter construye el adaptador.
func NewLoggerAdapter(log *logger.Logger) watermill.LoggerAdapter {
	return &loggerAdapter{log: log}
}

func (a *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error().Err(err).Fields(map[string]interface{}(fields)).Msg(msg)
}

func (a *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info().Fields(map[string]interface{}(fields)).Msg(msg)
}

func (a *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug().Fields(map[string]interface{}(fields)).Msg(msg)
}

func (a *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Trace().Fields(map[string]interface{}(fields)).Msg(msg)
}

func (a *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	ctx := a.log.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	sub := ctx.Logger()
	return &loggerAdapter{log: logger.FromZerolog(sub)}
}
