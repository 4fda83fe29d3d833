// Package memory implementa los repositorios del ledger sobre mapas en
// memoria protegidos por un mutex. Sirve para tests y para demos sin
// PostgreSQL; las garantías de aislamiento se consiguen serializando cada
// transacción sobre el lock del store.
package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

type stockKey struct {
	productID  string
	locationID string
}

// Store agrupa el estado compartido de todos los repositorios en memoria.
// Los métodos devuelven copias: los llamadores nunca ven los punteros internos.
type Store struct {
	mu        sync.Mutex
	movements map[string]*entity.Movement
	stocks    map[stockKey]*entity.Stock
	locations map[string]*entity.Location // por id
	products  map[string]*entity.Product
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		movements: make(map[string]*entity.Movement),
		stocks:    make(map[stockKey]*entity.Stock),
		locations: make(map[string]*entity.Location),
		products:  make(map[string]*entity.Product),
	}
}

// Movements devuelve el repositorio de movimientos sobre este store.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{store: s} }

// Stocks devuelve el repositorio de stock sobre este store.
func (s *Store) Stocks() *StockRepo { return &StockRepo{store: s} }

// Locations devuelve el repositorio de ubicaciones sobre este store.
func (s *Store) Locations() *LocationRepo { return &LocationRepo{store: s} }

// Products devuelve el repositorio de productos sobre este store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{store: s} }

// lock toma el mutex del store salvo que el repositorio esté atado a una
// transacción, en cuyo caso el TxRunner ya lo sostiene. Devuelve el unlock.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// snapshot copia los mapas mutados por una transacción (movimientos y stock)
// para poder restaurarlos si la transacción falla.
func (s *Store) snapshot() (map[string]*entity.Movement, map[stockKey]*entity.Stock) {
	movements := make(map[string]*entity.Movement, len(s.movements))
	for id, m := range s.movements {
		clone := *m
		movements[id] = &clone
	}
	stocks := make(map[stockKey]*entity.Stock, len(s.stocks))
	for key, st := range s.stocks {
		clone := *st
		stocks[key] = &clone
	}
	return movements, stocks
}

func (s *Store) restore(movements map[string]*entity.Movement, stocks map[stockKey]*entity.Stock) {
	s.movements = movements
	s.stocks = stocks
}

// sortedStocks devuelve las filas de un producto en orden estable por ubicación.
func (s *Store) sortedStocks(productID string) []*entity.Stock {
	rows := make([]*entity.Stock, 0)
	for key, st := range s.stocks {
		if key.productID != productID {
			continue
		}
		clone := *st
		rows = append(rows, &clone)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].LocationID < rows[j].LocationID })
	return rows
}
