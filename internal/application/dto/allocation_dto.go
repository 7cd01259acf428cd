package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssignRequest asignación de una empresa a un piso.
type AssignRequest struct {
	CompanyID         string           `json:"company_id" validate:"required"`
	BlockID           string           `json:"block_id" validate:"required"`
	Floor             string           `json:"floor" validate:"required"`
	AreaSqM           decimal.Decimal  `json:"area_sqm"`
	IsReserved        bool             `json:"is_reserved"`
	ReservationFee    *decimal.Decimal `json:"reservation_fee"`
	ReservationMonths *int             `json:"reservation_months"`
}

// ResizeRequest cambio de área de una unidad existente. La tarifa por m² se
// captura del contrato al momento de la petición y queda fija para el cálculo.
type ResizeRequest struct {
	AreaSqM decimal.Decimal `json:"area_sqm"`
}

// UnitResponse unidad asignada.
type UnitResponse struct {
	ID                string           `json:"id"`
	BlockID           string           `json:"block_id"`
	Floor             string           `json:"floor"`
	AreaSqM           decimal.Decimal  `json:"area_sqm"`
	Status            string           `json:"status"`
	CompanyID         *string          `json:"company_id,omitempty"`
	ReservationFee    *decimal.Decimal `json:"reservation_fee,omitempty"`
	ReservationMonths *int             `json:"reservation_months,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// AllocationResponse resultado de asignar o redimensionar. Warning lleva el
// aviso de densidad cuando el área queda por debajo del mínimo sugerido.
type AllocationResponse struct {
	Unit        UnitResponse `json:"unit"`
	MonthlyRent string       `json:"monthly_rent"`
	Warning     string       `json:"warning,omitempty"`
}

// RemovalTicketResponse primer paso del retiro de una unidad: el token debe
// confirmarse escribiendo la frase exacta antes de que expire.
type RemovalTicketResponse struct {
	Token          string    `json:"token"`
	UnitID         string    `json:"unit_id"`
	RequiredPhrase string    `json:"required_phrase"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// ConfirmRemovalRequest segundo paso del retiro: token + frase literal.
type ConfirmRemovalRequest struct {
	Token  string `json:"token" validate:"required"`
	Phrase string `json:"phrase" validate:"required"`
}
