package entity

import "time"

// ProductKind discrimina entre producto simple y compuesto (bundle).
// La variante se decide una sola vez al cargar el producto; el motor de
// resolución ramifica sobre esta etiqueta, no sobre inspección de tipos.
type ProductKind string

const (
	ProductSimple ProductKind = "SIMPLE"
	ProductBundle ProductKind = "BUNDLE"
)

// Constituent referencia un producto constituyente de un bundle y cuántas
// unidades de él requiere cada bundle completo (entero >= 1).
type Constituent struct {
	ProductID string
	Quantity  int
}

// Product representa un producto del catálogo, visto desde el ledger.
// Un bundle no tiene asientos propios en el ledger: su disponibilidad y costo
// se derivan de los constituyentes en tiempo de lectura.
type Product struct {
	ID           string
	Name         string
	Code         string
	Kind         ProductKind
	Constituents []Constituent // presente solo cuando Kind == ProductBundle
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBundle indica si el producto es compuesto.
func (p *Product) IsBundle() bool {
	return p.Kind == ProductBundle
}
