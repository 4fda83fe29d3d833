package pubsub_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/events"
	"github.com/tu-usuario/bazaar-warehouse/internal/infrastructure/pubsub"
	"github.com/tu-usuario/bazaar-warehouse/pkg/logger"
)

// TestTopicForLocationType verifica el mapa tipo -> topic y el fallback para
// tipos desconocidos.
func TestTopicForLocationType(t *testing.T) {
	cases := map[entity.LocationType]string{
		entity.LocationSupplier:     events.TopicSupplierChanged,
		entity.LocationStorage:      events.TopicStorageChanged,
		entity.LocationOutput:       events.TopicOutputChanged,
		entity.LocationCustomer:     events.TopicCustomerChanged,
		entity.LocationLostAndFound: events.TopicLostAndFoundChanged,
		entity.LocationType("OTRO"): events.TopicUnknownLocationChanged,
	}
	for locType, topic := range cases {
		assert.Equal(t, topic, events.TopicForLocationType(locType), "tipo %s", locType)
	}
}

// TestNotifier_PublicaEnElTopicDelTipo verifica que el evento llega al topic
// del tipo de ubicación con el payload JSON completo.
func TestNotifier_PublicaEnElTopicDelTipo(t *testing.T) {
	goChannel := pubsub.NewGoChannel(logger.Nop())
	t.Cleanup(func() { _ = goChannel.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := goChannel.Subscribe(ctx, events.TopicStorageChanged)
	require.NoError(t, err)

	notifier := pubsub.NewNotifier(goChannel)
	sent := events.StockChanged{
		EventID:      "evt-1",
		ProductID:    "prod-1",
		LocationID:   "loc-1",
		LocationType: entity.LocationStorage,
		OccurredAt:   time.Now().UTC(),
	}
	require.NoError(t, notifier.StockChanged(ctx, sent))

	select {
	case msg := <-messages:
		var got events.StockChanged
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		msg.Ack()
		assert.Equal(t, sent.EventID, got.EventID)
		assert.Equal(t, sent.ProductID, got.ProductID)
		assert.Equal(t, sent.LocationID, got.LocationID)
		assert.Equal(t, entity.LocationStorage, got.LocationType)
	case <-ctx.Done():
		t.Fatal("el evento nunca llegó al topic de STORAGE")
	}
}

// TestNotifier_FallbackTipoDesconocido verifica que un tipo fuera de los cinco
// conocidos cae en el topic de desconocidos en vez de perderse.
func TestNotifier_FallbackTipoDesconocido(t *testing.T) {
	goChannel := pubsub.NewGoChannel(logger.Nop())
	t.Cleanup(func() { _ = goChannel.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := goChannel.Subscribe(ctx, events.TopicUnknownLocationChanged)
	require.NoError(t, err)

	notifier := pubsub.NewNotifier(goChannel)
	require.NoError(t, notifier.StockChanged(ctx, events.StockChanged{
		EventID:      "evt-2",
		ProductID:    "prod-1",
		LocationID:   "loc-x",
		LocationType: entity.LocationType("GARAJE"),
	}))

	select {
	case msg := <-messages:
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("el evento de tipo desconocido no llegó al topic de fallback")
	}
}
