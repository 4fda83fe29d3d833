package entity

import (
	"strings"
	"time"
)

// LocationType clasifica las zonas semánticas por las que puede transitar un producto.
type LocationType string

const (
	LocationSupplier     LocationType = "SUPPLIER"
	LocationStorage      LocationType = "STORAGE"
	LocationOutput       LocationType = "OUTPUT"
	LocationCustomer     LocationType = "CUSTOMER"
	LocationLostAndFound LocationType = "LOST_AND_FOUND"
)

// LocationTypes lista los cinco tipos conocidos, en orden estable.
var LocationTypes = []LocationType{
	LocationSupplier,
	LocationStorage,
	LocationOutput,
	LocationCustomer,
	LocationLostAndFound,
}

// Valid indica si el tipo es uno de los cinco conocidos.
func (t LocationType) Valid() bool {
	switch t {
	case LocationSupplier, LocationStorage, LocationOutput, LocationCustomer, LocationLostAndFound:
		return true
	}
	return false
}

// ParseLocationType normaliza una representación externa del tipo
// ("storage", "lost-and-found") al tipo canónico. Devuelve false si no
// corresponde a ninguno de los cinco conocidos.
func ParseLocationType(raw string) (LocationType, bool) {
	t := LocationType(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), "-", "_"))
	return t, t.Valid()
}

// Location representa una zona física o lógica de la bodega.
// Inmutable una vez creada; el slug es único. Se espera una instancia canónica
// por tipo resuelta vía el registro, aunque nada impide crear ubicaciones
// adicionales del mismo tipo (varias bodegas físicas, por ejemplo).
type Location struct {
	ID        string
	Name      string
	Slug      string
	Type      LocationType
	CreatedAt time.Time
}
