package warehouse

import "github.com/shopspring/decimal"

// ConstituentStock es la vista agregada de un constituyente de un bundle:
// su cantidad total en las ubicaciones consultadas, su costo unitario y
// cuántas unidades requiere cada bundle completo.
type ConstituentStock struct {
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	PerBundle int
}

// BundleQuantity calcula cuántos bundles completos existen: para cada
// constituyente divide su cantidad entre las unidades requeridas por bundle
// (división entera hacia abajo) y toma el mínimo: el constituyente más
// escaso acota el total. La disponibilidad negativa se propaga. Sin
// constituyentes devuelve cero.
func BundleQuantity(constituents []ConstituentStock) decimal.Decimal {
	if len(constituents) == 0 {
		return decimal.Zero
	}

	var min decimal.Decimal
	for i, c := range constituents {
		per := decimal.NewFromInt(int64(c.PerBundle))
		available := c.Quantity.Div(per).Floor()
		if i == 0 || available.LessThan(min) {
			min = available
		}
	}
	return min
}

// BundleUnitCost combina los costos unitarios de los constituyentes con la
// media aritmética, sin ponderar por las unidades requeridas por bundle.
// La regla de cantidades sí pondera; la asimetría es deliberada.
func BundleUnitCost(constituents []ConstituentStock) decimal.Decimal {
	if len(constituents) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, c := range constituents {
		total = total.Add(c.UnitCost)
	}
	return total.Div(decimal.NewFromInt(int64(len(constituents))))
}
