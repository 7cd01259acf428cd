package repository

import "github.com/ozkanv/teknopark-api/internal/domain/entity"

// LeaseRepository define el puerto de persistencia para Lease.
type LeaseRepository interface {
	Create(lease *entity.Lease) error
	GetByID(id string) (*entity.Lease, error)
	GetByCompany(companyID string) (*entity.Lease, error)
	GetByUnit(unitID string) (*entity.Lease, error)
	Update(lease *entity.Lease) error
	// ListExtended arma el modelo de lectura empresa+campus+bloque+unidad+contrato.
	ListExtended(limit, offset int) ([]*entity.ExtendedLease, error)
}
