package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCampusRequest alta de campus.
type CreateCampusRequest struct {
	Name       string          `json:"name" validate:"required"`
	Address    string          `json:"address"`
	MaxOffices int             `json:"max_offices" validate:"omitempty,min=0"`
	MaxAreaSqM decimal.Decimal `json:"max_area_sqm"`
	MaxFloors  int             `json:"max_floors" validate:"omitempty,min=0"`
}

// UpdateCampusRequest actualización parcial de campus.
type UpdateCampusRequest struct {
	Name       *string          `json:"name"`
	Address    *string          `json:"address"`
	MaxOffices *int             `json:"max_offices"`
	MaxAreaSqM *decimal.Decimal `json:"max_area_sqm"`
	MaxFloors  *int             `json:"max_floors"`
}

// UsageResponse agregados de ocupación (siempre recalculados, nunca cacheados).
type UsageResponse struct {
	TotalSqM     decimal.Decimal `json:"total_sqm"`
	UsedSqM      decimal.Decimal `json:"used_sqm"`
	RemainingSqM decimal.Decimal `json:"remaining_sqm"`
	OccupancyPct decimal.Decimal `json:"occupancy_pct"`
}

// CampusResponse campus con sus agregados de uso.
type CampusResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	MaxOffices int             `json:"max_offices"`
	MaxAreaSqM decimal.Decimal `json:"max_area_sqm"`
	MaxFloors  int             `json:"max_floors"`
	Usage      *UsageResponse  `json:"usage,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CampusListResponse listado paginado de campus.
type CampusListResponse struct {
	Items []CampusResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
