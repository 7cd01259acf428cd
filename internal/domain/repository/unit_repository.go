package repository

import "github.com/ozkanv/teknopark-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	ListByBlock(blockID string) ([]*entity.Unit, error)
	// ListByFloorForUpdate bloquea (SELECT ... FOR UPDATE) las unidades del
	// piso para validar capacidad sin carreras dentro de la transacción.
	ListByFloorForUpdate(blockID, floor string) ([]*entity.Unit, error)
	GetByCompany(companyID string) (*entity.Unit, error)
	Delete(id string) error
}
