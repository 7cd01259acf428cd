package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateLeaseFeesRequest actualización de renta mensual y/o cuota de operación.
type UpdateLeaseFeesRequest struct {
	MonthlyRent  *decimal.Decimal `json:"monthly_rent"`
	OperatingFee *decimal.Decimal `json:"operating_fee"`
}

// UpdateLeaseDatesRequest fechas de vigencia del contrato (ISO 8601).
type UpdateLeaseDatesRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// AddDocumentRequest adjunta un documento al contrato (máximo 4).
type AddDocumentRequest struct {
	Document string `json:"document" validate:"required"`
}

// LeaseResponse contrato. Los montos se enmascaran en modo presentación sin
// tocar el estado numérico (campos *Masked sustituyen al valor en JSON).
type LeaseResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	UnitID          *string   `json:"unit_id,omitempty"`
	Status          string    `json:"status"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	MonthlyRent     string    `json:"monthly_rent"`
	OperatingFee    string    `json:"operating_fee"`
	UnitPricePerSqM string    `json:"unit_price_per_sqm"`
	Documents       []string  `json:"documents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ExtendedLeaseResponse modelo de lectura empresa+campus+bloque+unidad+contrato.
type ExtendedLeaseResponse struct {
	Company    CompanyResponse `json:"company"`
	Lease      LeaseResponse   `json:"lease"`
	Unit       *UnitResponse   `json:"unit,omitempty"`
	BlockID    string          `json:"block_id,omitempty"`
	BlockName  string          `json:"block_name,omitempty"`
	CampusID   string          `json:"campus_id,omitempty"`
	CampusName string          `json:"campus_name,omitempty"`
	UnitPrice  string          `json:"unit_price"`
	Warning    string          `json:"warning,omitempty"` // aviso de densidad, nunca bloqueante
}

// ExtendedLeaseListResponse listado del modelo de lectura.
type ExtendedLeaseListResponse struct {
	Items []ExtendedLeaseResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// FormatMoney da formato a un monto para respuesta, aplicando la máscara del
// modo presentación cuando corresponde.
func FormatMoney(v decimal.Decimal, masked bool) string {
	if masked {
		return MaskedValue
	}
	return v.StringFixed(2)
}
