package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterCompanyRequest registro de empresa. Crea también su contrato en
// estado PENDING con las condiciones de la plantilla.
type RegisterCompanyRequest struct {
	Name          string          `json:"name" validate:"required"`
	Sector        string          `json:"sector"`
	BusinessAreas []string        `json:"business_areas" validate:"omitempty,max=10"`
	ManagerName   string          `json:"manager_name"`
	ManagerPhone  string          `json:"manager_phone"`
	ManagerEmail  string          `json:"manager_email" validate:"omitempty,email"`
	EmployeeCount int             `json:"employee_count" validate:"omitempty,min=0"`
	RentPerSqM    decimal.Decimal `json:"rent_per_sqm"`
	DefaultStart  string          `json:"default_start"` // ISO 8601 (YYYY-MM-DD)
	DefaultEnd    string          `json:"default_end"`
}

// UpdateCompanyRequest actualización parcial de empresa.
type UpdateCompanyRequest struct {
	Name          *string          `json:"name"`
	Sector        *string          `json:"sector"`
	BusinessAreas *[]string        `json:"business_areas" validate:"omitempty,max=10"`
	ManagerName   *string          `json:"manager_name"`
	ManagerPhone  *string          `json:"manager_phone"`
	ManagerEmail  *string          `json:"manager_email" validate:"omitempty,email"`
	EmployeeCount *int             `json:"employee_count" validate:"omitempty,min=0"`
	RentPerSqM    *decimal.Decimal `json:"rent_per_sqm"`
}

// CompanyResponse empresa con su plantilla de contrato.
type CompanyResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Sector        string          `json:"sector"`
	BusinessAreas []string        `json:"business_areas"`
	ManagerName   string          `json:"manager_name"`
	ManagerPhone  string          `json:"manager_phone"`
	ManagerEmail  string          `json:"manager_email"`
	EmployeeCount int             `json:"employee_count"`
	RentPerSqM    decimal.Decimal `json:"rent_per_sqm"`
	DefaultStart  time.Time       `json:"default_start"`
	DefaultEnd    time.Time       `json:"default_end"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AddScoreEntryRequest alta de entrada de puntaje.
type AddScoreEntryRequest struct {
	Type        string   `json:"type" validate:"required"`
	Description string   `json:"description"`
	Points      int      `json:"points"`
	Date        string   `json:"date"` // ISO 8601; vacío = hoy
	Note        string   `json:"note"`
	Documents   []string `json:"documents"`
}

// ScoreEntryResponse entrada del historial de puntaje.
type ScoreEntryResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note"`
	Documents   []string  `json:"documents"`
	CreatedAt   time.Time `json:"created_at"`
}
