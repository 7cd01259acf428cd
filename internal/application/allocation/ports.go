package allocation

import (
	"context"

	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con los repositorios
// atados a ella. La validación de capacidad y la escritura de la unidad, el
// contrato y la entrada de auditoría son atómicas: o entra todo o no entra nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		unitRepo repository.UnitRepository,
		leaseRepo repository.LeaseRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
