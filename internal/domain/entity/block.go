package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Block edificio dentro de un campus. Posee el conjunto de capacidades por piso.
type Block struct {
	ID                  string
	CampusID            string
	Name                string
	MaxFloors           int
	MaxAreaSqM          decimal.Decimal
	DefaultOperatingFee decimal.Decimal
	SqMPerEmployee      int // área mínima por empleado (>= 1); solo advertencia de densidad
	Floors              []FloorCapacity
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FloorCapacity capacidad declarada de un piso dentro de un bloque.
// Las etiquetas de piso no son puramente numéricas ("Zemin Asma" = entrepiso,
// "3A" = intermedio sobre el 3); el orden lo define capacity.FloorSortKey.
type FloorCapacity struct {
	Floor    string
	TotalSqM decimal.Decimal
}
