// Package pubsub implementa el notificador de cambios de stock sobre
// Watermill. La publicación es fire-and-forget respecto al ledger: el caso de
// uso registra el fallo y sigue; nada de lo publicado participa en la
// transacción del movimiento.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	appwarehouse "github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/events"
	"github.com/tu-usuario/bazaar-warehouse/pkg/logger"
)

var _ appwarehouse.Notifier = (*Notifier)(nil)

// Notifier publica eventos StockChanged, un mensaje por ubicación afectada,
// en el topic que corresponde al tipo de la ubicación (con fallback al topic
// de tipo desconocido).
type Notifier struct {
	publisher message.Publisher
}

// NewNotifier construye el notificador sobre cualquier publisher de Watermill.
func NewNotifier(publisher message.Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

// NewGoChannel crea el Pub/Sub en proceso de Watermill, útil para el binario
// por defecto y para tests. Los suscriptores externos pueden colgarse del
// mismo GoChannel.
func NewGoChannel(log *logger.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, NewLoggerAdapter(log))
}

// StockChanged serializa el evento a JSON y lo publica en el topic del tipo
// de ubicación afectada.
func (n *Notifier) StockChanged(_ context.Context, event events.StockChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}
	topic := events.TopicForLocationType(event.LocationType)
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := n.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("publicar en %s: %w", topic, err)
	}
	return nil
}
