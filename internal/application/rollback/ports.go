package rollback

import (
	"context"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// Service colaborador que calcula la vista previa y ejecuta la reversión.
// El coordinador lo trata como oráculo opaco: no conoce ni reimplementa la
// regla de clasificación SAFE/WARN.
type Service interface {
	GetPreview(ctx context.Context, entry *entity.AuditLogEntry) (*entity.RollbackPreview, error)
	Rollback(ctx context.Context, entry *entity.AuditLogEntry, user, role string) error
}

// TxRunner transacción para la reversión: restaurar la unidad, el contrato y
// escribir la nueva entrada de auditoría es atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		unitRepo repository.UnitRepository,
		leaseRepo repository.LeaseRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
