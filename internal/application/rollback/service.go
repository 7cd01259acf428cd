package rollback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ozkanv/teknopark-api/internal/domain"
	domaudit "github.com/ozkanv/teknopark-api/internal/domain/audit"
	"github.com/ozkanv/teknopark-api/internal/domain/capacity"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

var _ Service = (*ReversalService)(nil)

// ReversalService implementación del colaborador de reversión para DELETEs de
// unidades. Clasifica la vista previa con una verificación de referencias:
// WARN cuando restaurar el snapshot chocaría con el estado actual (capacidad
// del piso, piso eliminado, empresa ya reasignada); SAFE en caso contrario.
type ReversalService struct {
	txRunner  TxRunner
	blockRepo repository.BlockRepository
	unitRepo  repository.UnitRepository
	leaseRepo repository.LeaseRepository
	now       func() time.Time
}

// NewReversalService construye el servicio.
func NewReversalService(
	txRunner TxRunner,
	blockRepo repository.BlockRepository,
	unitRepo repository.UnitRepository,
	leaseRepo repository.LeaseRepository,
) *ReversalService {
	return &ReversalService{
		txRunner:  txRunner,
		blockRepo: blockRepo,
		unitRepo:  unitRepo,
		leaseRepo: leaseRepo,
		now:       time.Now,
	}
}

// GetPreview evalúa en seco las consecuencias de restaurar el snapshot.
func (s *ReversalService) GetPreview(ctx context.Context, entry *entity.AuditLogEntry) (*entity.RollbackPreview, error) {
	snapshot, err := domaudit.UnmarshalSnapshot(entry.Rollback)
	if err != nil {
		return nil, err
	}

	var messages []string
	block, err := s.blockRepo.GetByID(snapshot.Unit.BlockID)
	if err != nil {
		return nil, err
	}
	if block == nil {
		messages = append(messages, fmt.Sprintf("el bloque %s ya no existe", snapshot.Unit.BlockID))
	} else {
		floor, ok := capacity.FindFloor(block.Floors, snapshot.Unit.Floor)
		if !ok {
			messages = append(messages, fmt.Sprintf("el piso %s ya no está declarado en el bloque %s", snapshot.Unit.Floor, block.Name))
		} else {
			units, err := s.unitRepo.ListByBlock(snapshot.Unit.BlockID)
			if err != nil {
				return nil, err
			}
			usage := capacity.FloorUsage(units, floor)
			if snapshot.Unit.AreaSqM.GreaterThan(usage.RemainingSqM) {
				messages = append(messages, fmt.Sprintf("restaurar %s m² excede el restante actual del piso %s (%s m² disponibles)",
					snapshot.Unit.AreaSqM.String(), snapshot.Unit.Floor, usage.RemainingSqM.String()))
			}
		}
	}
	if snapshot.LeaseID != "" {
		lease, err := s.leaseRepo.GetByID(snapshot.LeaseID)
		if err != nil {
			return nil, err
		}
		if lease != nil && lease.Allocated() {
			messages = append(messages, "la empresa ya tiene otra unidad asignada; la reversión la desplazará")
		}
	}

	if len(messages) > 0 {
		return &entity.RollbackPreview{Type: entity.RollbackPreviewWarn, Messages: messages}, nil
	}
	return &entity.RollbackPreview{
		Type:     entity.RollbackPreviewSafe,
		Messages: []string{"la reversión restaurará la unidad y el contrato sin conflictos"},
	}, nil
}

// Rollback restaura la unidad y el estado del contrato desde el snapshot y
// registra la reversión como entrada NUEVA de auditoría (mismo trace que la
// original; la historia solo se anexa, jamás se edita).
func (s *ReversalService) Rollback(ctx context.Context, entry *entity.AuditLogEntry, user, role string) error {
	snapshot, err := domaudit.UnmarshalSnapshot(entry.Rollback)
	if err != nil {
		return err
	}
	block, err := s.blockRepo.GetByID(snapshot.Unit.BlockID)
	if err != nil {
		return err
	}
	if block == nil {
		return domain.ErrConflict
	}
	floor, ok := capacity.FindFloor(block.Floors, snapshot.Unit.Floor)
	if !ok {
		return domain.ErrFloorNotFound
	}

	return s.txRunner.Run(ctx, func(
		unitRepo repository.UnitRepository,
		leaseRepo repository.LeaseRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		// Revalidación autoritativa bajo lock: el preview pudo quedar viejo
		units, err := unitRepo.ListByFloorForUpdate(snapshot.Unit.BlockID, snapshot.Unit.Floor)
		if err != nil {
			return err
		}
		usage := capacity.FloorUsage(units, floor)
		if snapshot.Unit.AreaSqM.GreaterThan(usage.RemainingSqM) {
			return &domain.CapacityError{
				Floor:        snapshot.Unit.Floor,
				RequestedSqM: snapshot.Unit.AreaSqM,
				RemainingSqM: usage.RemainingSqM,
			}
		}
		now := s.now()
		restored := snapshot.Unit
		restored.UpdatedAt = now
		if err := unitRepo.Create(&restored); err != nil {
			return err
		}
		if snapshot.LeaseID != "" {
			lease, err := leaseRepo.GetByID(snapshot.LeaseID)
			if err != nil {
				return err
			}
			if lease != nil {
				lease.UnitID = &restored.ID
				lease.Status = snapshot.LeaseStatus
				lease.MonthlyRent = snapshot.MonthlyRent
				lease.OperatingFee = snapshot.OperatingFee
				lease.UnitPricePerSqM = snapshot.UnitPricePerSqM
				lease.UpdatedAt = now
				if err := leaseRepo.Update(lease); err != nil {
					return err
				}
			}
		}
		return auditRepo.Create(&entity.AuditLogEntry{
			ID:         uuid.New().String(),
			TraceID:    entry.TraceID,
			Timestamp:  now,
			User:       user,
			UserRole:   role,
			Action:     entity.ActionCreate,
			EntityType: entity.EntityTypeUnit,
			Details: fmt.Sprintf("Reversión del retiro de la unidad %s (entrada %s)",
				snapshot.Unit.ID, entry.ID),
			CreatedAt: now,
		})
	})
}
