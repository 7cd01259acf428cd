package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una unidad. El espacio VACANTE es implícito: capacidad del piso
// menos la suma de unidades activas; no existe registro para él.
const (
	UnitStatusOccupied = "OCCUPIED"
	UnitStatusReserved = "RESERVED"
)

// Unit registro de asignación: el único vínculo mutable entre una empresa y
// el espacio físico. Invariante por (BlockID, Floor): la suma de AreaSqM de
// unidades OCCUPIED o RESERVED nunca supera FloorCapacity.TotalSqM.
type Unit struct {
	ID                string
	BlockID           string
	Floor             string
	AreaSqM           decimal.Decimal
	Status            string
	CompanyID         *string
	ReservationFee    *decimal.Decimal
	ReservationMonths *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Active indica si la unidad cuenta contra la capacidad del piso.
// RESERVED cuenta igual que OCCUPIED.
func (u *Unit) Active() bool {
	return u.Status == UnitStatusOccupied || u.Status == UnitStatusReserved
}
