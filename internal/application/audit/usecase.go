package audit

import (
	"sync"
	"time"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/domain"
	domaudit "github.com/ozkanv/teknopark-api/internal/domain/audit"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// AuditUseCase listado filtrado de la bitácora. El filtrado es sin estado y se
// re-aplica sobre la lista completa en cada consulta; el único estado del caso
// de uso es el conteo anterior, para resetear la página cuando cambia el
// resultado filtrado (evita dejar al usuario varado en una página vacía).
type AuditUseCase struct {
	repo     repository.AuditLogRepository
	pageSize int
	window   time.Duration
	now      func() time.Time

	mu        sync.Mutex
	lastCount int
	hasCount  bool
}

// NewAuditUseCase construye el caso de uso. pageSize es el tamaño fijo de
// página; window la ventana de elegibilidad de rollback.
func NewAuditUseCase(repo repository.AuditLogRepository, pageSize int, window time.Duration) *AuditUseCase {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &AuditUseCase{
		repo:     repo,
		pageSize: pageSize,
		window:   window,
		now:      time.Now,
	}
}

// Query aplica los filtros (AND) y pagina. El repositorio entrega las entradas
// en cronológico inverso y el filtro no las reordena.
func (uc *AuditUseCase) Query(in dto.AuditLogQuery) (*dto.AuditLogListResponse, error) {
	if !domaudit.ValidWindow(in.Window) {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	filtered := domaudit.Apply(entries, domaudit.Filter{
		Window:      in.Window,
		Action:      in.Action,
		Text:        in.Text,
		IncludeAuth: in.IncludeAuth,
	}, now)

	page := in.Page
	if page <= 0 {
		page = 1
	}
	uc.mu.Lock()
	if uc.hasCount && uc.lastCount != len(filtered) {
		page = 1
	}
	uc.lastCount = len(filtered)
	uc.hasCount = true
	uc.mu.Unlock()

	start := (page - 1) * uc.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + uc.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]dto.AuditLogEntryResponse, 0, end-start)
	for _, e := range filtered[start:end] {
		items = append(items, dto.AuditLogEntryResponse{
			ID:          e.ID,
			TraceID:     e.TraceID,
			Timestamp:   e.Timestamp,
			User:        e.User,
			UserRole:    e.UserRole,
			Action:      e.Action,
			EntityType:  e.EntityType,
			Details:     e.Details,
			Impact:      e.Impact,
			CanRollback: domaudit.Eligible(e, now, uc.window),
		})
	}
	return &dto.AuditLogListResponse{
		Items:    items,
		Page:     page,
		PageSize: uc.pageSize,
		Total:    len(filtered),
	}, nil
}

// GetEntry devuelve una entrada puntual (nil si no existe).
func (uc *AuditUseCase) GetEntry(id string) (*entity.AuditLogEntry, error) {
	return uc.repo.GetByID(id)
}
