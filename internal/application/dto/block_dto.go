package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FloorCapacityDTO capacidad declarada de un piso.
type FloorCapacityDTO struct {
	Floor    string          `json:"floor" validate:"required"`
	TotalSqM decimal.Decimal `json:"total_sqm"`
}

// CreateBlockRequest alta de bloque con sus pisos.
type CreateBlockRequest struct {
	CampusID            string             `json:"campus_id" validate:"required"`
	Name                string             `json:"name" validate:"required"`
	MaxFloors           int                `json:"max_floors" validate:"omitempty,min=0"`
	MaxAreaSqM          decimal.Decimal    `json:"max_area_sqm"`
	DefaultOperatingFee decimal.Decimal    `json:"default_operating_fee"`
	SqMPerEmployee      int                `json:"sqm_per_employee" validate:"omitempty,min=1"`
	Floors              []FloorCapacityDTO `json:"floors" validate:"dive"`
}

// UpdateBlockRequest actualización parcial de bloque.
type UpdateBlockRequest struct {
	Name                *string          `json:"name"`
	MaxFloors           *int             `json:"max_floors"`
	MaxAreaSqM          *decimal.Decimal `json:"max_area_sqm"`
	DefaultOperatingFee *decimal.Decimal `json:"default_operating_fee"`
	SqMPerEmployee      *int             `json:"sqm_per_employee"`
}

// ReplaceFloorsRequest reemplazo del conjunto de pisos de un bloque.
type ReplaceFloorsRequest struct {
	Floors []FloorCapacityDTO `json:"floors" validate:"required,dive"`
}

// FloorUsageResponse uso por piso dentro de un bloque.
type FloorUsageResponse struct {
	Floor string        `json:"floor"`
	Usage UsageResponse `json:"usage"`
}

// BlockResponse bloque con pisos ordenados (descendente por etiqueta derivada)
// y agregados de uso.
type BlockResponse struct {
	ID                  string               `json:"id"`
	CampusID            string               `json:"campus_id"`
	Name                string               `json:"name"`
	MaxFloors           int                  `json:"max_floors"`
	MaxAreaSqM          decimal.Decimal      `json:"max_area_sqm"`
	DefaultOperatingFee decimal.Decimal      `json:"default_operating_fee"`
	SqMPerEmployee      int                  `json:"sqm_per_employee"`
	Floors              []FloorUsageResponse `json:"floors"`
	Usage               *UsageResponse       `json:"usage,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// BlockListResponse listado paginado de bloques.
type BlockListResponse struct {
	Items []BlockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
