package rollback

import (
	"context"
	"sync"
	"time"

	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain"
	domaudit "github.com/ozkanv/teknopark-api/internal/domain/audit"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// Estados del protocolo de reversión.
const (
	StateIdle                 = "IDLE"
	StatePreviewing           = "PREVIEWING"
	StateAwaitingConfirmation = "AWAITING_CONFIRMATION"
	StateCommitting           = "COMMITTING"
	StatusDone                = "DONE"
	StatusFailed              = "FAILED"
)

// Coordinator máquina de estados del protocolo de rollback:
//
//	IDLE -> PREVIEWING -> AWAITING_CONFIRMATION -> COMMITTING -> (DONE | FAILED)
//
// Ninguna reversión se aplica sin un Confirm explícito precedido de un
// Preview exitoso PARA LA MISMA entrada: el preview queda ligado al id y se
// revalida en el confirm. La ausencia de preview (fallo del colaborador) es
// un corte duro: jamás se asume SAFE.
type Coordinator struct {
	mu        sync.Mutex
	state     string
	entryID   string
	preview   *entity.RollbackPreview
	svc       Service
	auditRepo repository.AuditLogRepository
	notifier  notify.Notifier
	window    time.Duration
	now       func() time.Time
}

// NewCoordinator construye el coordinador. window es la ventana de
// elegibilidad para revertir DELETEs (7 días por defecto en config).
func NewCoordinator(svc Service, auditRepo repository.AuditLogRepository, notifier notify.Notifier, window time.Duration) *Coordinator {
	return &Coordinator{
		state:     StateIdle,
		svc:       svc,
		auditRepo: auditRepo,
		notifier:  notifier,
		window:    window,
		now:       time.Now,
	}
}

// State devuelve el estado actual (para inspección y tests).
func (c *Coordinator) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Preview solicita la vista previa de revertir la entrada. Solo válido desde
// IDLE. Entradas no elegibles responden como inexistentes: la acción no se
// ofrece, no se deshabilita.
func (c *Coordinator) Preview(ctx context.Context, entryID string) (*entity.RollbackPreview, error) {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return nil, domain.ErrConflict
	}
	c.state = StatePreviewing
	c.entryID = entryID
	c.preview = nil
	c.mu.Unlock()

	entry, err := c.auditRepo.GetByID(entryID)
	if err == nil && (entry == nil || !domaudit.Eligible(entry, c.now(), c.window)) {
		err = domain.ErrNotFound
	}
	var preview *entity.RollbackPreview
	if err == nil {
		preview, err = c.svc.GetPreview(ctx, entry)
		if err == nil && preview == nil {
			// Sin preview no hay camino a confirmar; nunca se asume SAFE
			err = domain.ErrConflict
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePreviewing || c.entryID != entryID {
		// Cancelado (o descartado) mientras la llamada estaba en vuelo:
		// se descarta el resultado sin efectos secundarios
		return nil, domain.ErrConflict
	}
	if err != nil {
		c.reset()
		return nil, err
	}
	c.state = StateAwaitingConfirmation
	c.preview = preview
	return preview, nil
}

// Confirm aplica la reversión. Solo válido desde AWAITING_CONFIRMATION y solo
// para la entrada previamente previsualizada: un preview de la entrada A jamás
// autoriza el commit de la entrada B. En fallo el estado vuelve a IDLE para
// permitir el reintento; la historia de auditoría queda intacta.
func (c *Coordinator) Confirm(ctx context.Context, entryID, user, role string) (string, error) {
	c.mu.Lock()
	if c.state != StateAwaitingConfirmation || c.entryID != entryID {
		c.mu.Unlock()
		return StatusFailed, domain.ErrConflict
	}
	c.state = StateCommitting
	c.mu.Unlock()

	entry, err := c.auditRepo.GetByID(entryID)
	if err == nil && (entry == nil || !domaudit.Eligible(entry, c.now(), c.window)) {
		err = domain.ErrNotFound
	}
	if err == nil {
		err = c.svc.Rollback(ctx, entry, user, role)
	}

	c.mu.Lock()
	c.reset()
	c.mu.Unlock()

	if err != nil {
		return StatusFailed, err
	}
	// La reversión quedó registrada como entrada nueva; las vistas re-consultan
	c.notifier.Publish(ctx, notify.EntityUnit, notify.ActionUpdate)
	c.notifier.Publish(ctx, notify.EntityLease, notify.ActionUpdate)
	return StatusDone, nil
}

// Cancel abandona el protocolo sin efectos secundarios. Válido desde
// PREVIEWING (descarta la respuesta en vuelo) y AWAITING_CONFIRMATION.
func (c *Coordinator) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePreviewing && c.state != StateAwaitingConfirmation {
		return domain.ErrConflict
	}
	c.reset()
	return nil
}

// reset vuelve a IDLE. Llamar con el mutex tomado.
func (c *Coordinator) reset() {
	c.state = StateIdle
	c.entryID = ""
	c.preview = nil
}
