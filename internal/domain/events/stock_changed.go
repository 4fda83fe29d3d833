package events

import (
	"time"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// Topics publicados tras cada actualización de stock, uno por tipo de
// ubicación afectada. Los consumidores (recalculo de disponibilidad en
// marketplaces, por ejemplo) se suscriben por tipo.
const (
	TopicSupplierChanged     = "warehouse.supplier.changed"
	TopicStorageChanged      = "warehouse.storage.changed"
	TopicOutputChanged       = "warehouse.output.changed"
	TopicCustomerChanged     = "warehouse.customer.changed"
	TopicLostAndFoundChanged = "warehouse.lost_and_found.changed"
	// TopicUnknownLocationChanged recibe los eventos de ubicaciones cuyo tipo
	// no es ninguno de los cinco conocidos.
	TopicUnknownLocationChanged = "warehouse.unknown.changed"
)

// TopicForLocationType resuelve el topic para un tipo de ubicación, con
// fallback al topic de tipo desconocido.
func TopicForLocationType(t entity.LocationType) string {
	switch t {
	case entity.LocationSupplier:
		return TopicSupplierChanged
	case entity.LocationStorage:
		return TopicStorageChanged
	case entity.LocationOutput:
		return TopicOutputChanged
	case entity.LocationCustomer:
		return TopicCustomerChanged
	case entity.LocationLostAndFound:
		return TopicLostAndFoundChanged
	}
	return TopicUnknownLocationChanged
}

// StockChanged se publica después de que un movimiento actualiza la fila de
// stock de una ubicación. Es un canal lateral: su publicación nunca forma
// parte de la transacción del movimiento.
type StockChanged struct {
	EventID      string              `json:"event_id"`
	ProductID    string              `json:"product_id"`
	LocationID   string              `json:"location_id"`
	LocationType entity.LocationType `json:"location_type"`
	OccurredAt   time.Time           `json:"occurred_at"`
}
