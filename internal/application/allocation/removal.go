package allocation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain"
	domaudit "github.com/ozkanv/teknopark-api/internal/domain/audit"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// ConfirmationPhrase frase literal exigida para operaciones destructivas.
// La comparación es exacta: sensible a mayúsculas y sin recortes.
const ConfirmationPhrase = "ONAYLIYORUM"

// removalTicketTTL vigencia del token de retiro emitido por RequestRemoval.
const removalTicketTTL = 5 * time.Minute

type removalTicket struct {
	unitID    string
	expiresAt time.Time
}

// ticketStore guarda los tokens pendientes de confirmación. El API de retiro
// es de dos pasos a propósito: el guard no puede saltarse con una sola llamada.
type ticketStore struct {
	mu      sync.Mutex
	pending map[string]removalTicket
}

func newTicketStore() *ticketStore {
	return &ticketStore{pending: make(map[string]removalTicket)}
}

func (s *ticketStore) issue(unitID string, now time.Time) removalTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Tokens vencidos se purgan al emitir uno nuevo
	for tok, t := range s.pending {
		if now.After(t.expiresAt) {
			delete(s.pending, tok)
		}
	}
	t := removalTicket{unitID: unitID, expiresAt: now.Add(removalTicketTTL)}
	return t
}

func (s *ticketStore) put(token string, t removalTicket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[token] = t
}

func (s *ticketStore) take(token string) (removalTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pending[token]
	if ok {
		delete(s.pending, token)
	}
	return t, ok
}

// RequestRemoval primer paso del retiro: emite un token ligado a la unidad.
// No muta nada; el retiro real solo ocurre en ConfirmRemoval.
func (uc *AllocationUseCase) RequestRemoval(ctx context.Context, unitID string) (*dto.RemovalTicketResponse, error) {
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	ticket := uc.tickets.issue(unitID, now)
	token := uuid.New().String()
	uc.tickets.put(token, ticket)
	return &dto.RemovalTicketResponse{
		Token:          token,
		UnitID:         unitID,
		RequiredPhrase: ConfirmationPhrase,
		ExpiresAt:      ticket.expiresAt,
	}, nil
}

// ConfirmRemoval segundo paso: valida token y frase exacta, elimina la unidad,
// deja el contrato DETACHED preservando la tarifa por m² (una reasignación
// futura restaura el precio sin volver a preguntar) y escribe la entrada
// DELETE con el snapshot de rollback.
func (uc *AllocationUseCase) ConfirmRemoval(ctx context.Context, in dto.ConfirmRemovalRequest, actor Actor) error {
	ticket, ok := uc.tickets.take(in.Token)
	if !ok {
		return domain.ErrNotFound
	}
	now := uc.now()
	if now.After(ticket.expiresAt) {
		return domain.ErrConflict
	}
	if in.Phrase != ConfirmationPhrase {
		return domain.ErrInvalidConfirmation
	}

	unit, err := uc.unitRepo.GetByID(ticket.unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	lease, err := uc.leaseRepo.GetByUnit(ticket.unitID)
	if err != nil {
		return err
	}

	err = uc.txRunner.Run(ctx, func(
		unitRepo repository.UnitRepository,
		leaseRepo repository.LeaseRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		snapshot := domaudit.UnitDeletionSnapshot{Unit: *unit}
		if lease != nil {
			// Tarifa preservada: renta actual / área actual
			preserved := lease.UnitPricePerSqM
			if unit.AreaSqM.IsPositive() && lease.MonthlyRent.IsPositive() {
				preserved = lease.MonthlyRent.Div(unit.AreaSqM)
			}
			snapshot.LeaseID = lease.ID
			snapshot.LeaseStatus = lease.Status
			snapshot.MonthlyRent = lease.MonthlyRent
			snapshot.OperatingFee = lease.OperatingFee
			snapshot.UnitPricePerSqM = preserved

			lease.UnitID = nil
			lease.Status = entity.LeaseStatusDetached
			lease.UnitPricePerSqM = preserved
			lease.MonthlyRent = decimal.Zero
			lease.UpdatedAt = now
			if err := leaseRepo.Update(lease); err != nil {
				return err
			}
		}
		raw, err := domaudit.MarshalSnapshot(snapshot)
		if err != nil {
			return err
		}
		if err := unitRepo.Delete(unit.ID); err != nil {
			return err
		}
		return auditRepo.Create(&entity.AuditLogEntry{
			ID:         uuid.New().String(),
			TraceID:    uuid.New().String(),
			Timestamp:  now,
			User:       actor.User,
			UserRole:   actor.Role,
			Action:     entity.ActionDelete,
			EntityType: entity.EntityTypeUnit,
			Details: fmt.Sprintf("Retiro de unidad %s (bloque %s, piso %s, %s m²)",
				unit.ID, unit.BlockID, unit.Floor, unit.AreaSqM.String()),
			Impact:    "el contrato queda sin unidad; la tarifa por m² se preserva",
			Rollback:  raw,
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	uc.notifier.Publish(ctx, notify.EntityUnit, notify.ActionDelete)
	return nil
}
