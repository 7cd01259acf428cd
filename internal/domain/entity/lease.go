package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados explícitos del contrato. Reemplazan los centinelas implícitos
// (id "PENDING", unitId null) por un estado etiquetado:
//   - PENDING:   empresa registrada, nunca asignada a una unidad.
//   - ALLOCATED: UnitID apunta a la unidad activa.
//   - DETACHED:  tuvo unidad y fue retirada; UnitPricePerSqM conserva la
//     tarifa pactada para restaurarla en una futura reasignación.
const (
	LeaseStatusPending   = "PENDING"
	LeaseStatusAllocated = "ALLOCATED"
	LeaseStatusDetached  = "DETACHED"
)

// MaxLeaseDocuments tope de documentos adjuntos por contrato.
const MaxLeaseDocuments = 4

// Lease contrato de arriendo de una empresa. Se crea junto con la empresa
// (registro) en estado PENDING y sin unidad.
type Lease struct {
	ID              string
	CompanyID       string
	UnitID          *string
	Status          string
	StartDate       time.Time
	EndDate         time.Time
	MonthlyRent     decimal.Decimal
	OperatingFee    decimal.Decimal
	UnitPricePerSqM decimal.Decimal // tarifa preservada para PENDING/DETACHED
	Documents       []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Allocated indica si el contrato tiene una unidad activa.
func (l *Lease) Allocated() bool {
	return l.Status == LeaseStatusAllocated && l.UnitID != nil
}
