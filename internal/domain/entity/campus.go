package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campus raíz de la jerarquía física: sitio -> bloques -> pisos -> unidades.
// Los topes (MaxOffices, MaxAreaSqM, MaxFloors) son límites declarativos del operador.
type Campus struct {
	ID         string
	Name       string
	Address    string
	MaxOffices int
	MaxAreaSqM decimal.Decimal
	MaxFloors  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
