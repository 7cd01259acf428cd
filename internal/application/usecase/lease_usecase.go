package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/capacity"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/leasing"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// LeaseUseCase casos de uso del contrato: montos, fechas de vigencia,
// documentos adjuntos y el modelo de lectura extendido.
type LeaseUseCase struct {
	repo        repository.LeaseRepository
	companyRepo repository.CompanyRepository
	unitRepo    repository.UnitRepository
	tx          AuditedTxRunner
	notifier    notify.Notifier
	now         func() time.Time
}

// NewLeaseUseCase construye el caso de uso.
func NewLeaseUseCase(
	repo repository.LeaseRepository,
	companyRepo repository.CompanyRepository,
	unitRepo repository.UnitRepository,
	tx AuditedTxRunner,
	notifier notify.Notifier,
) *LeaseUseCase {
	return &LeaseUseCase{
		repo:        repo,
		companyRepo: companyRepo,
		unitRepo:    unitRepo,
		tx:          tx,
		notifier:    notifier,
		now:         time.Now,
	}
}

// GetByCompany obtiene el contrato de una empresa.
func (uc *LeaseUseCase) GetByCompany(companyID string, masked bool) (*dto.LeaseResponse, error) {
	lease, err := uc.repo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, nil
	}
	return toLeaseResponse(lease, masked), nil
}

// UpdateFees actualiza renta mensual y/o cuota de operación. Montos negativos
// se rechazan.
func (uc *LeaseUseCase) UpdateFees(ctx context.Context, id string, in dto.UpdateLeaseFeesRequest, actor Actor) (*dto.LeaseResponse, error) {
	lease, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, nil
	}
	if in.MonthlyRent != nil {
		if in.MonthlyRent.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lease.MonthlyRent = *in.MonthlyRent
	}
	if in.OperatingFee != nil {
		if in.OperatingFee.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lease.OperatingFee = *in.OperatingFee
	}
	lease.UpdatedAt = uc.now()
	err = uc.updateAudited(ctx, lease, actor, entity.ActionUpdate,
		fmt.Sprintf("Actualización de montos del contrato %s", lease.ID))
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityLease, notify.ActionUpdate)
	return toLeaseResponse(lease, false), nil
}

// UpdateDates actualiza la vigencia del contrato. El fin debe ser posterior al
// inicio y no puede estar en el pasado.
func (uc *LeaseUseCase) UpdateDates(ctx context.Context, id string, in dto.UpdateLeaseDatesRequest, actor Actor) (*dto.LeaseResponse, error) {
	lease, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, nil
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	if !end.After(start) || end.Before(now.Truncate(24*time.Hour)) {
		return nil, domain.ErrInvalidDateRange
	}
	lease.StartDate = start
	lease.EndDate = end
	lease.UpdatedAt = now
	err = uc.updateAudited(ctx, lease, actor, entity.ActionUpdate,
		fmt.Sprintf("Actualización de vigencia del contrato %s", lease.ID))
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityLease, notify.ActionUpdate)
	return toLeaseResponse(lease, false), nil
}

// AddDocument adjunta un documento al contrato (tope MaxLeaseDocuments).
func (uc *LeaseUseCase) AddDocument(ctx context.Context, id string, in dto.AddDocumentRequest, actor Actor) (*dto.LeaseResponse, error) {
	lease, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, nil
	}
	if len(lease.Documents) >= entity.MaxLeaseDocuments {
		return nil, domain.ErrConflict
	}
	lease.Documents = append(lease.Documents, in.Document)
	lease.UpdatedAt = uc.now()
	err = uc.updateAudited(ctx, lease, actor, entity.ActionUpdate,
		fmt.Sprintf("Documento adjuntado al contrato %s", lease.ID))
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityDocument, notify.ActionCreate)
	return toLeaseResponse(lease, false), nil
}

// RemoveDocument quita un documento por índice.
func (uc *LeaseUseCase) RemoveDocument(ctx context.Context, id string, index int, actor Actor) (*dto.LeaseResponse, error) {
	lease, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, nil
	}
	if index < 0 || index >= len(lease.Documents) {
		return nil, domain.ErrInvalidInput
	}
	lease.Documents = append(lease.Documents[:index], lease.Documents[index+1:]...)
	lease.UpdatedAt = uc.now()
	err = uc.updateAudited(ctx, lease, actor, entity.ActionDelete,
		fmt.Sprintf("Documento removido del contrato %s", lease.ID))
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityDocument, notify.ActionDelete)
	return toLeaseResponse(lease, false), nil
}

// ListExtended arma el listado empresa+campus+bloque+unidad+contrato con la
// tarifa derivada y el aviso de densidad por fila.
func (uc *LeaseUseCase) ListExtended(limit, offset int, masked bool) (*dto.ExtendedLeaseListResponse, error) {
	rows, err := uc.repo.ListExtended(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExtendedLeaseResponse, 0, len(rows))
	for _, row := range rows {
		item := dto.ExtendedLeaseResponse{
			Company: *toCompanyResponse(&row.Company),
			Lease:   *toLeaseResponse(&row.Lease, masked),
			UnitPrice: dto.FormatMoney(
				leasing.UnitPrice(&row.Lease, row.Unit, row.Company.Template.RentPerSqM), masked),
		}
		if row.Unit != nil {
			item.Unit = toUnitResponse(row.Unit)
		}
		if row.Block != nil {
			item.BlockID = row.Block.ID
			item.BlockName = row.Block.Name
			if row.Unit != nil {
				min := capacity.MinRequiredArea(row.Company.EmployeeCount, row.Block.SqMPerEmployee)
				if min.IsPositive() && row.Unit.AreaSqM.LessThan(min) {
					item.Warning = fmt.Sprintf("el área asignada (%s m²) está por debajo del mínimo sugerido de %s m² para %d empleados",
						row.Unit.AreaSqM.String(), min.String(), row.Company.EmployeeCount)
				}
			}
		}
		if row.Campus != nil {
			item.CampusID = row.Campus.ID
			item.CampusName = row.Campus.Name
		}
		items = append(items, item)
	}
	return &dto.ExtendedLeaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// updateAudited persiste el contrato y su entrada de bitácora en la misma
// transacción.
func (uc *LeaseUseCase) updateAudited(ctx context.Context, lease *entity.Lease, actor Actor, action, details string) error {
	return uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Lease.Update(lease); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, action, entity.EntityTypeLease, details, lease.UpdatedAt)
	})
}

func toLeaseResponse(l *entity.Lease, masked bool) *dto.LeaseResponse {
	return &dto.LeaseResponse{
		ID:              l.ID,
		CompanyID:       l.CompanyID,
		UnitID:          l.UnitID,
		Status:          l.Status,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		MonthlyRent:     dto.FormatMoney(l.MonthlyRent, masked),
		OperatingFee:    dto.FormatMoney(l.OperatingFee, masked),
		UnitPricePerSqM: dto.FormatMoney(l.UnitPricePerSqM, masked),
		Documents:       l.Documents,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:                u.ID,
		BlockID:           u.BlockID,
		Floor:             u.Floor,
		AreaSqM:           u.AreaSqM,
		Status:            u.Status,
		CompanyID:         u.CompanyID,
		ReservationFee:    u.ReservationFee,
		ReservationMonths: u.ReservationMonths,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
