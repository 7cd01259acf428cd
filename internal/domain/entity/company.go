package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxBusinessAreas tope de etiquetas de áreas de negocio por empresa.
const MaxBusinessAreas = 10

// Company empresa inquilina (o candidata) del parque.
type Company struct {
	ID            string
	Name          string
	Sector        string
	BusinessAreas []string // máximo MaxBusinessAreas etiquetas
	ManagerName   string
	ManagerPhone  string
	ManagerEmail  string
	EmployeeCount int
	Template      ContractTemplate
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ContractTemplate condiciones por defecto del contrato de la empresa.
type ContractTemplate struct {
	RentPerSqM   decimal.Decimal
	DefaultStart time.Time
	DefaultEnd   time.Time
}

// ScoreEntry entrada del historial de puntaje de una empresa (sublista append-only
// con borrado individual; ciclo de vida independiente del contrato).
type ScoreEntry struct {
	ID          string
	CompanyID   string
	Type        string
	Description string
	Points      int
	Date        time.Time
	Note        string
	Documents   []string
	CreatedAt   time.Time
}
