package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/capacity"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// BlockUseCase casos de uso CRUD para bloques y el reemplazo del conjunto de
// pisos. Los pisos se devuelven siempre ordenados de forma descendente por la
// clave derivada de la etiqueta (último piso arriba, sótanos abajo).
type BlockUseCase struct {
	repo       repository.BlockRepository
	campusRepo repository.CampusRepository
	unitRepo   repository.UnitRepository
	tx         AuditedTxRunner
	notifier   notify.Notifier
}

// NewBlockUseCase construye el caso de uso.
func NewBlockUseCase(
	repo repository.BlockRepository,
	campusRepo repository.CampusRepository,
	unitRepo repository.UnitRepository,
	tx AuditedTxRunner,
	notifier notify.Notifier,
) *BlockUseCase {
	return &BlockUseCase{repo: repo, campusRepo: campusRepo, unitRepo: unitRepo, tx: tx, notifier: notifier}
}

// Create crea un bloque con sus pisos declarados.
func (uc *BlockUseCase) Create(ctx context.Context, in dto.CreateBlockRequest, actor Actor) (*dto.BlockResponse, error) {
	campus, err := uc.campusRepo.GetByID(in.CampusID)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, domain.ErrNotFound
	}
	floors := make([]entity.FloorCapacity, 0, len(in.Floors))
	for _, f := range in.Floors {
		if f.TotalSqM.IsNegative() {
			return nil, domain.ErrInvalidArea
		}
		floors = append(floors, entity.FloorCapacity{Floor: f.Floor, TotalSqM: f.TotalSqM})
	}
	sqmPerEmployee := in.SqMPerEmployee
	if sqmPerEmployee <= 0 {
		sqmPerEmployee = 1
	}
	now := time.Now()
	block := &entity.Block{
		ID:                  uuid.New().String(),
		CampusID:            in.CampusID,
		Name:                in.Name,
		MaxFloors:           in.MaxFloors,
		MaxAreaSqM:          in.MaxAreaSqM,
		DefaultOperatingFee: in.DefaultOperatingFee,
		SqMPerEmployee:      sqmPerEmployee,
		Floors:              floors,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	txErr := uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Block.Create(block); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionCreate, entity.EntityTypeBlock,
			fmt.Sprintf("Alta de bloque %s", block.Name), now)
	})
	if txErr != nil {
		return nil, txErr
	}
	uc.notifier.Publish(ctx, notify.EntityBlock, notify.ActionCreate)
	return uc.toResponse(block)
}

// GetByID obtiene un bloque con el uso por piso y el agregado del bloque.
func (uc *BlockUseCase) GetByID(id string) (*dto.BlockResponse, error) {
	block, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, nil
	}
	return uc.toResponse(block)
}

// Update actualización parcial de un bloque (los pisos van por ReplaceFloors).
func (uc *BlockUseCase) Update(ctx context.Context, id string, in dto.UpdateBlockRequest, actor Actor) (*dto.BlockResponse, error) {
	block, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, nil
	}
	if in.Name != nil {
		block.Name = *in.Name
	}
	if in.MaxFloors != nil {
		block.MaxFloors = *in.MaxFloors
	}
	if in.MaxAreaSqM != nil {
		block.MaxAreaSqM = *in.MaxAreaSqM
	}
	if in.DefaultOperatingFee != nil {
		block.DefaultOperatingFee = *in.DefaultOperatingFee
	}
	if in.SqMPerEmployee != nil {
		if *in.SqMPerEmployee <= 0 {
			return nil, domain.ErrInvalidInput
		}
		block.SqMPerEmployee = *in.SqMPerEmployee
	}
	block.UpdatedAt = time.Now()
	err = uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Block.Update(block); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionUpdate, entity.EntityTypeBlock,
			fmt.Sprintf("Actualización de bloque %s", block.Name), block.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityBlock, notify.ActionUpdate)
	return uc.toResponse(block)
}

// ReplaceFloors reemplaza el conjunto de pisos del bloque. Encoger un piso por
// debajo de su área ya usada (o retirar un piso con unidades activas) viola la
// invariante de capacidad y se rechaza con el restante en el mensaje.
func (uc *BlockUseCase) ReplaceFloors(ctx context.Context, id string, in dto.ReplaceFloorsRequest, actor Actor) (*dto.BlockResponse, error) {
	block, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, nil
	}
	units, err := uc.unitRepo.ListByBlock(id)
	if err != nil {
		return nil, err
	}

	floors := make([]entity.FloorCapacity, 0, len(in.Floors))
	declared := make(map[string]decimal.Decimal, len(in.Floors))
	for _, f := range in.Floors {
		if f.TotalSqM.IsNegative() {
			return nil, domain.ErrInvalidArea
		}
		floors = append(floors, entity.FloorCapacity{Floor: f.Floor, TotalSqM: f.TotalSqM})
		declared[f.Floor] = f.TotalSqM
	}

	// Área usada por piso sobre los registros actuales
	usedByFloor := make(map[string]decimal.Decimal)
	for _, u := range units {
		if u.Active() {
			usedByFloor[u.Floor] = usedByFloor[u.Floor].Add(u.AreaSqM)
		}
	}
	for floor, used := range usedByFloor {
		total, ok := declared[floor]
		if !ok {
			total = decimal.Zero
		}
		if used.GreaterThan(total) {
			return nil, &domain.CapacityError{
				Floor:        floor,
				RequestedSqM: used,
				RemainingSqM: total,
			}
		}
	}

	block.Floors = floors
	block.UpdatedAt = time.Now()
	err = uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Block.ReplaceFloors(id, floors); err != nil {
			return err
		}
		if err := r.Block.Update(block); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionUpdate, entity.EntityTypeBlock,
			fmt.Sprintf("Reemplazo de pisos del bloque %s", block.Name), block.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityBlock, notify.ActionUpdate)
	return uc.toResponse(block)
}

// ListByCampus lista los bloques de un campus con sus agregados.
func (uc *BlockUseCase) ListByCampus(campusID string, limit, offset int) (*dto.BlockListResponse, error) {
	list, err := uc.repo.ListByCampus(campusID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list, limit, offset)
}

// List lista todos los bloques con sus agregados.
func (uc *BlockUseCase) List(limit, offset int) (*dto.BlockListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list, limit, offset)
}

// Delete elimina un bloque sin unidades activas.
func (uc *BlockUseCase) Delete(ctx context.Context, id string, actor Actor) error {
	block, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if block == nil {
		return domain.ErrNotFound
	}
	units, err := uc.unitRepo.ListByBlock(id)
	if err != nil {
		return err
	}
	for _, u := range units {
		if u.Active() {
			return domain.ErrConflict
		}
	}
	err = uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Block.Delete(id); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionDelete, entity.EntityTypeBlock,
			fmt.Sprintf("Eliminación de bloque %s", block.Name), time.Now())
	})
	if err != nil {
		return err
	}
	uc.notifier.Publish(ctx, notify.EntityBlock, notify.ActionDelete)
	return nil
}

func (uc *BlockUseCase) toListResponse(list []*entity.Block, limit, offset int) (*dto.BlockListResponse, error) {
	items := make([]dto.BlockResponse, 0, len(list))
	for _, b := range list {
		resp, err := uc.toResponse(b)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.BlockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *BlockUseCase) toResponse(b *entity.Block) (*dto.BlockResponse, error) {
	units, err := uc.unitRepo.ListByBlock(b.ID)
	if err != nil {
		return nil, err
	}
	ordered := make([]entity.FloorCapacity, len(b.Floors))
	copy(ordered, b.Floors)
	capacity.SortFloors(ordered)
	floors := make([]dto.FloorUsageResponse, 0, len(ordered))
	for _, f := range ordered {
		fu := capacity.FloorUsage(units, f)
		floors = append(floors, dto.FloorUsageResponse{
			Floor: f.Floor,
			Usage: *toUsageResponse(fu),
		})
	}
	usage := capacity.BlockUsage(units, b.Floors)
	return &dto.BlockResponse{
		ID:                  b.ID,
		CampusID:            b.CampusID,
		Name:                b.Name,
		MaxFloors:           b.MaxFloors,
		MaxAreaSqM:          b.MaxAreaSqM,
		DefaultOperatingFee: b.DefaultOperatingFee,
		SqMPerEmployee:      b.SqMPerEmployee,
		Floors:              floors,
		Usage:               toUsageResponse(usage),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}, nil
}
