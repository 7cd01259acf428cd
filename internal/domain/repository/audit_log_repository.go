package repository

import "github.com/ozkanv/teknopark-api/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia de la bitácora.
// Solo alta y lectura: las entradas jamás se editan ni se borran.
type AuditLogRepository interface {
	Create(entry *entity.AuditLogEntry) error
	GetByID(id string) (*entity.AuditLogEntry, error)
	// List devuelve las entradas en orden cronológico inverso.
	List() ([]*entity.AuditLogEntry, error)
}
