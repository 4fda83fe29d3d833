package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// MoveRequest cuerpo para registrar un movimiento entre ubicaciones.
// Origen y destino se indican por id explícito o por tipo bien conocido
// (supplier, storage, output, customer, lost-and-found); el tipo se resuelve
// a la ubicación canónica, creándola en el primer uso.
type MoveRequest struct {
	FromLocationID   string          `json:"from_location_id,omitempty"`
	ToLocationID     string          `json:"to_location_id,omitempty"`
	FromLocationType string          `json:"from_location_type,omitempty"`
	ToLocationType   string          `json:"to_location_type,omitempty"`
	ProductID        string          `json:"product_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Currency         string          `json:"currency,omitempty"`
	Agent            string          `json:"agent,omitempty"`
	Note             string          `json:"note,omitempty"`
}

// MovementResponse movimiento registrado en el libro.
type MovementResponse struct {
	ID                string           `json:"id"`
	FromLocationID    string           `json:"from_location_id"`
	ToLocationID      string           `json:"to_location_id"`
	ProductID         string           `json:"product_id"`
	Quantity          decimal.Decimal  `json:"quantity"`
	UnitPrice         decimal.Decimal  `json:"unit_price"`
	Currency          string           `json:"currency"`
	OriginalUnitPrice *decimal.Decimal `json:"original_unit_price,omitempty"`
	OriginalCurrency  string           `json:"original_currency,omitempty"`
	Agent             string           `json:"agent,omitempty"`
	Note              string           `json:"note,omitempty"`
	Date              time.Time        `json:"date"`
	CreatedAt         time.Time        `json:"created_at"`
}

// ToMovementResponse convierte la entidad de dominio al DTO de salida.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	resp := MovementResponse{
		ID:             m.ID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		ProductID:      m.ProductID,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice.Amount,
		Currency:       m.UnitPrice.Currency,
		Agent:          m.Agent,
		Note:           m.Note,
		Date:           m.Date,
		CreatedAt:      m.CreatedAt,
	}
	if m.OriginalUnitPrice != nil {
		amount := m.OriginalUnitPrice.Amount
		resp.OriginalUnitPrice = &amount
		resp.OriginalCurrency = m.OriginalUnitPrice.Currency
	}
	return resp
}

// ToMovementResponses convierte una lista de movimientos.
func ToMovementResponses(movements []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return out
}

// StockRowResponse existencia de un producto en una ubicación.
type StockRowResponse struct {
	ProductID    string          `json:"product_id"`
	LocationID   string          `json:"location_id"`
	LocationType string          `json:"location_type,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToStockRowResponse convierte una fila de stock al DTO de salida.
func ToStockRowResponse(s *entity.Stock) StockRowResponse {
	return StockRowResponse{
		ProductID:    s.ProductID,
		LocationID:   s.LocationID,
		LocationType: string(s.LocationType),
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		UpdatedAt:    s.UpdatedAt,
	}
}

// StockSummaryResponse agregado de existencias de un producto.
type StockSummaryResponse struct {
	ProductID string             `json:"product_id"`
	Quantity  decimal.Decimal    `json:"quantity"`
	UnitCost  decimal.Decimal    `json:"unit_cost"`
	Currency  string             `json:"currency"`
	Rows      []StockRowResponse `json:"rows"`
}

// LocationResponse ubicación del almacén.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// ToLocationResponse convierte la entidad de dominio al DTO de salida.
func ToLocationResponse(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Slug:      l.Slug,
		Type:      string(l.Type),
		CreatedAt: l.CreatedAt,
	}
}
