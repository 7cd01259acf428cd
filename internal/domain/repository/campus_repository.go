package repository

import "github.com/ozkanv/teknopark-api/internal/domain/entity"

// CampusRepository define el puerto de persistencia para Campus (DIP).
type CampusRepository interface {
	Create(campus *entity.Campus) error
	GetByID(id string) (*entity.Campus, error)
	Update(campus *entity.Campus) error
	List(limit, offset int) ([]*entity.Campus, error)
	Delete(id string) error
}
