package warehouse

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// AverageCost implementa la lógica de costo promedio ponderado en el destino
// de un movimiento entrante (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Cuando la cantidad resultante es exactamente cero el costo anterior se
// conserva sin recalcular: no hay unidades sobre las cuales promediar.
func AverageCost(currentQty, currentPrice, inQty, inPrice decimal.Decimal) decimal.Decimal {
	newQty := currentQty.Add(inQty)
	if newQty.IsZero() {
		return currentPrice
	}
	num := currentQty.Mul(currentPrice).Add(inQty.Mul(inPrice))
	return num.Div(newQty)
}

// WeightedUnitPrice calcula el costo unitario de un producto a partir de sus
// filas de stock: media ponderada por la cantidad de cada fila. Si la suma de
// pesos es cero cae a la media simple de los precios; sin filas devuelve cero.
func WeightedUnitPrice(rows []*entity.Stock) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}

	weights := decimal.Zero
	for _, row := range rows {
		weights = weights.Add(row.Quantity)
	}

	if !weights.IsZero() {
		value := decimal.Zero
		for _, row := range rows {
			value = value.Add(row.UnitPrice.Mul(row.Quantity))
		}
		return value.Div(weights)
	}

	value := decimal.Zero
	for _, row := range rows {
		value = value.Add(row.UnitPrice)
	}
	return value.Div(decimal.NewFromInt(int64(len(rows))))
}

// SumQuantity suma las cantidades de las filas de stock. Sin filas devuelve cero.
func SumQuantity(rows []*entity.Stock) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Quantity)
	}
	return total
}
