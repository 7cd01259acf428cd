package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/capacity"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// Actor identidad del usuario que ejecuta la mutación (atribución en bitácora).
type Actor struct {
	User string
	Role string
}

// CampusUseCase casos de uso CRUD para campus, con agregados de ocupación
// recalculados desde cero en cada lectura.
type CampusUseCase struct {
	repo      repository.CampusRepository
	blockRepo repository.BlockRepository
	unitRepo  repository.UnitRepository
	tx        AuditedTxRunner
	notifier  notify.Notifier
}

// NewCampusUseCase construye el caso de uso.
func NewCampusUseCase(
	repo repository.CampusRepository,
	blockRepo repository.BlockRepository,
	unitRepo repository.UnitRepository,
	tx AuditedTxRunner,
	notifier notify.Notifier,
) *CampusUseCase {
	return &CampusUseCase{repo: repo, blockRepo: blockRepo, unitRepo: unitRepo, tx: tx, notifier: notifier}
}

// Create crea un campus.
func (uc *CampusUseCase) Create(ctx context.Context, in dto.CreateCampusRequest, actor Actor) (*dto.CampusResponse, error) {
	now := time.Now()
	campus := &entity.Campus{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Address:    in.Address,
		MaxOffices: in.MaxOffices,
		MaxAreaSqM: in.MaxAreaSqM,
		MaxFloors:  in.MaxFloors,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Campus.Create(campus); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionCreate, entity.EntityTypeCampus,
			fmt.Sprintf("Alta de campus %s", campus.Name), now)
	})
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityCampus, notify.ActionCreate)
	return toCampusResponse(campus, nil), nil
}

// GetByID obtiene un campus con su ocupación agregada.
func (uc *CampusUseCase) GetByID(id string) (*dto.CampusResponse, error) {
	campus, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, nil
	}
	usage, err := uc.campusUsage(id)
	if err != nil {
		return nil, err
	}
	return toCampusResponse(campus, usage), nil
}

// Update actualización parcial de un campus.
func (uc *CampusUseCase) Update(ctx context.Context, id string, in dto.UpdateCampusRequest, actor Actor) (*dto.CampusResponse, error) {
	campus, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, nil
	}
	if in.Name != nil {
		campus.Name = *in.Name
	}
	if in.Address != nil {
		campus.Address = *in.Address
	}
	if in.MaxOffices != nil {
		campus.MaxOffices = *in.MaxOffices
	}
	if in.MaxAreaSqM != nil {
		campus.MaxAreaSqM = *in.MaxAreaSqM
	}
	if in.MaxFloors != nil {
		campus.MaxFloors = *in.MaxFloors
	}
	campus.UpdatedAt = time.Now()
	err = uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Campus.Update(campus); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionUpdate, entity.EntityTypeCampus,
			fmt.Sprintf("Actualización de campus %s", campus.Name), campus.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityCampus, notify.ActionUpdate)
	return toCampusResponse(campus, nil), nil
}

// List lista campus con paginación y ocupación agregada.
func (uc *CampusUseCase) List(limit, offset int) (*dto.CampusListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CampusResponse, 0, len(list))
	for _, c := range list {
		usage, err := uc.campusUsage(c.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toCampusResponse(c, usage))
	}
	return &dto.CampusListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un campus sin bloques. Con bloques existentes devuelve
// ErrConflict: primero hay que retirar la jerarquía dependiente.
func (uc *CampusUseCase) Delete(ctx context.Context, id string, actor Actor) error {
	campus, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if campus == nil {
		return domain.ErrNotFound
	}
	blocks, err := uc.blockRepo.ListByCampus(id, 1, 0)
	if err != nil {
		return err
	}
	if len(blocks) > 0 {
		return domain.ErrConflict
	}
	err = uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Campus.Delete(id); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionDelete, entity.EntityTypeCampus,
			fmt.Sprintf("Eliminación de campus %s", campus.Name), time.Now())
	})
	if err != nil {
		return err
	}
	uc.notifier.Publish(ctx, notify.EntityCampus, notify.ActionDelete)
	return nil
}

// campusUsage recalcula la ocupación agregada del campus desde los registros
// crudos de sus bloques.
func (uc *CampusUseCase) campusUsage(campusID string) (*capacity.Usage, error) {
	blocks, err := uc.blockRepo.ListByCampus(campusID, 1000, 0)
	if err != nil {
		return nil, err
	}
	usages := make([]capacity.Usage, 0, len(blocks))
	for _, b := range blocks {
		units, err := uc.unitRepo.ListByBlock(b.ID)
		if err != nil {
			return nil, err
		}
		usages = append(usages, capacity.BlockUsage(units, b.Floors))
	}
	u := capacity.CampusUsage(usages)
	return &u, nil
}

// writeAudit escribe la entrada de bitácora con el repo atado a la transacción
// en curso: si la bitácora falla, la mutación entera se revierte.
func writeAudit(auditRepo repository.AuditLogRepository, actor Actor, action, entityType, details string, ts time.Time) error {
	return auditRepo.Create(&entity.AuditLogEntry{
		ID:         uuid.New().String(),
		TraceID:    uuid.New().String(),
		Timestamp:  ts,
		User:       actor.User,
		UserRole:   actor.Role,
		Action:     action,
		EntityType: entityType,
		Details:    details,
		CreatedAt:  ts,
	})
}

func toCampusResponse(c *entity.Campus, usage *capacity.Usage) *dto.CampusResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CampusResponse{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		MaxOffices: c.MaxOffices,
		MaxAreaSqM: c.MaxAreaSqM,
		MaxFloors:  c.MaxFloors,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if usage != nil {
		resp.Usage = toUsageResponse(*usage)
	}
	return resp
}

func toUsageResponse(u capacity.Usage) *dto.UsageResponse {
	return &dto.UsageResponse{
		TotalSqM:     u.TotalSqM,
		UsedSqM:      u.UsedSqM,
		RemainingSqM: u.RemainingSqM,
		OccupancyPct: u.OccupancyPct.Round(2),
	}
}
