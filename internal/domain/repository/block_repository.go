package repository

import "github.com/ozkanv/teknopark-api/internal/domain/entity"

// BlockRepository define el puerto de persistencia para Block y sus pisos.
type BlockRepository interface {
	Create(block *entity.Block) error
	GetByID(id string) (*entity.Block, error)
	Update(block *entity.Block) error
	ListByCampus(campusID string, limit, offset int) ([]*entity.Block, error)
	List(limit, offset int) ([]*entity.Block, error)
	// ReplaceFloors reemplaza el conjunto de capacidades por piso del bloque.
	ReplaceFloors(blockID string, floors []entity.FloorCapacity) error
	Delete(id string) error
}
