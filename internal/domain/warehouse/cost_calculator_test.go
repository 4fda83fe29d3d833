package warehouse_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/warehouse"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestAverageCost_PrimeraEntrada verifica que con stock cero el costo queda
// igual al precio de la entrada.
func TestAverageCost_PrimeraEntrada(t *testing.T) {
	got := warehouse.AverageCost(decimal.Zero, decimal.Zero, dec("10"), dec("1.0"))
	assert.True(t, got.Equal(dec("1.0")), "costo esperado 1.0, obtenido %s", got)
}

// TestAverageCost_DosEntradas verifica el promedio ponderado clásico:
// 10 @ 1.0 seguido de 10 @ 0.5 deja el costo en 0.75.
func TestAverageCost_DosEntradas(t *testing.T) {
	costo := warehouse.AverageCost(decimal.Zero, decimal.Zero, dec("10"), dec("1.0"))
	costo = warehouse.AverageCost(dec("10"), costo, dec("10"), dec("0.5"))
	assert.True(t, costo.Equal(dec("0.75")), "costo esperado 0.75, obtenido %s", costo)
}

// TestAverageCost_TresEntradas verifica la secuencia
// 10 @ 1.0, 10 @ 0.5, 20 @ 0.4, que deja el costo en 0.575.
func TestAverageCost_TresEntradas(t *testing.T) {
	costo := warehouse.AverageCost(decimal.Zero, decimal.Zero, dec("10"), dec("1.0"))
	costo = warehouse.AverageCost(dec("10"), costo, dec("10"), dec("0.5"))
	costo = warehouse.AverageCost(dec("20"), costo, dec("20"), dec("0.4"))
	assert.True(t, costo.Equal(dec("0.575")), "costo esperado 0.575, obtenido %s", costo)
}

// TestAverageCost_CantidadNetaCero verifica que cuando la entrada deja la
// cantidad exactamente en cero el costo anterior se conserva intacto.
func TestAverageCost_CantidadNetaCero(t *testing.T) {
	got := warehouse.AverageCost(dec("-5"), dec("2.0"), dec("5"), dec("9.0"))
	assert.True(t, got.Equal(dec("2.0")), "con cantidad neta cero el costo no se recalcula, obtenido %s", got)
}

// TestAverageCost_StockNegativo verifica que el promedio también opera con
// stock de partida negativo (el libro admite saldos negativos).
func TestAverageCost_StockNegativo(t *testing.T) {
	// (-10 * 1.0 + 20 * 2.5) / 10 = 4.0
	got := warehouse.AverageCost(dec("-10"), dec("1.0"), dec("20"), dec("2.5"))
	assert.True(t, got.Equal(dec("4.0")), "costo esperado 4.0, obtenido %s", got)
}

func stockRow(qty, price string) *entity.Stock {
	return &entity.Stock{Quantity: dec(qty), UnitPrice: dec(price)}
}

// TestWeightedUnitPrice_MediaPonderada verifica la media ponderada por cantidad.
func TestWeightedUnitPrice_MediaPonderada(t *testing.T) {
	rows := []*entity.Stock{stockRow("10", "1.0"), stockRow("30", "2.0")}
	// (10*1.0 + 30*2.0) / 40 = 1.75
	got := warehouse.WeightedUnitPrice(rows)
	assert.True(t, got.Equal(dec("1.75")), "costo esperado 1.75, obtenido %s", got)
}

// TestWeightedUnitPrice_PesosCero verifica que con pesos que suman cero cae a
// la media simple de los precios en vez de dividir entre cero.
func TestWeightedUnitPrice_PesosCero(t *testing.T) {
	rows := []*entity.Stock{stockRow("5", "1.0"), stockRow("-5", "3.0")}
	got := warehouse.WeightedUnitPrice(rows)
	assert.True(t, got.Equal(dec("2.0")), "media simple esperada 2.0, obtenido %s", got)
}

// TestWeightedUnitPrice_SinFilas verifica el cero sin filas.
func TestWeightedUnitPrice_SinFilas(t *testing.T) {
	assert.True(t, warehouse.WeightedUnitPrice(nil).IsZero())
}

// TestSumQuantity verifica la suma simple, incluidos saldos negativos.
func TestSumQuantity(t *testing.T) {
	rows := []*entity.Stock{stockRow("10", "1.0"), stockRow("-3", "1.0")}
	assert.True(t, warehouse.SumQuantity(rows).Equal(dec("7")))
	assert.True(t, warehouse.SumQuantity(nil).IsZero())
}
