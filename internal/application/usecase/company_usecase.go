package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// CompanyUseCase casos de uso de empresas: registro (empresa + contrato
// PENDING en una transacción), actualización, borrado y el historial de
// puntaje.
type CompanyUseCase struct {
	repo      repository.CompanyRepository
	leaseRepo repository.LeaseRepository
	unitRepo  repository.UnitRepository
	tx        TxRunner
	notifier  notify.Notifier
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(
	repo repository.CompanyRepository,
	leaseRepo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
	tx TxRunner,
	notifier notify.Notifier,
) *CompanyUseCase {
	return &CompanyUseCase{
		repo:      repo,
		leaseRepo: leaseRepo,
		unitRepo:  unitRepo,
		tx:        tx,
		notifier:  notifier,
	}
}

// Register registra una empresa y crea su contrato en estado PENDING con las
// condiciones de la plantilla. Ambas escrituras son atómicas.
func (uc *CompanyUseCase) Register(ctx context.Context, in dto.RegisterCompanyRequest, actor Actor) (*dto.CompanyResponse, error) {
	if len(in.BusinessAreas) > entity.MaxBusinessAreas {
		return nil, domain.ErrInvalidInput
	}
	start, end, err := parseDateRange(in.DefaultStart, in.DefaultEnd)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Sector:        in.Sector,
		BusinessAreas: in.BusinessAreas,
		ManagerName:   in.ManagerName,
		ManagerPhone:  in.ManagerPhone,
		ManagerEmail:  in.ManagerEmail,
		EmployeeCount: in.EmployeeCount,
		Template: entity.ContractTemplate{
			RentPerSqM:   in.RentPerSqM,
			DefaultStart: start,
			DefaultEnd:   end,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Sin unidad todavía: renta, cuota y tarifa preservada quedan en cero
	lease := &entity.Lease{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Status:    entity.LeaseStatusPending,
		StartDate: start,
		EndDate:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.tx.RunRegistration(ctx, func(
		companyRepo repository.CompanyRepository,
		leaseRepo repository.LeaseRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		if err := leaseRepo.Create(lease); err != nil {
			return err
		}
		return auditRepo.Create(&entity.AuditLogEntry{
			ID:         uuid.New().String(),
			TraceID:    uuid.New().String(),
			Timestamp:  now,
			User:       actor.User,
			UserRole:   actor.Role,
			Action:     entity.ActionCreate,
			EntityType: entity.EntityTypeCompany,
			Details:    fmt.Sprintf("Registro de la empresa %s (contrato %s en PENDING)", company.Name, lease.ID),
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityCompany, notify.ActionCreate)
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// Update actualización parcial de una empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest, actor Actor) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Sector != nil {
		company.Sector = *in.Sector
	}
	if in.BusinessAreas != nil {
		if len(*in.BusinessAreas) > entity.MaxBusinessAreas {
			return nil, domain.ErrInvalidInput
		}
		company.BusinessAreas = *in.BusinessAreas
	}
	if in.ManagerName != nil {
		company.ManagerName = *in.ManagerName
	}
	if in.ManagerPhone != nil {
		company.ManagerPhone = *in.ManagerPhone
	}
	if in.ManagerEmail != nil {
		company.ManagerEmail = *in.ManagerEmail
	}
	if in.EmployeeCount != nil {
		if *in.EmployeeCount < 0 {
			return nil, domain.ErrInvalidInput
		}
		company.EmployeeCount = *in.EmployeeCount
	}
	if in.RentPerSqM != nil {
		company.Template.RentPerSqM = *in.RentPerSqM
	}
	company.UpdatedAt = time.Now()
	err = uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Company.Update(company); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionUpdate, entity.EntityTypeCompany,
			fmt.Sprintf("Actualización de la empresa %s", company.Name), company.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityCompany, notify.ActionUpdate)
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una empresa. Con unidad activa se rechaza: el retiro de la
// unidad es un protocolo aparte, con confirmación y snapshot.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string, actor Actor) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	unit, err := uc.unitRepo.GetByCompany(id)
	if err != nil {
		return err
	}
	if unit != nil && unit.Active() {
		return domain.ErrCompanyAllocated
	}
	err = uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Company.Delete(id); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionDelete, entity.EntityTypeCompany,
			fmt.Sprintf("Eliminación de la empresa %s", company.Name), time.Now())
	})
	if err != nil {
		return err
	}
	uc.notifier.Publish(ctx, notify.EntityCompany, notify.ActionDelete)
	return nil
}

// AddScoreEntry agrega una entrada al historial de puntaje de la empresa.
func (uc *CompanyUseCase) AddScoreEntry(ctx context.Context, companyID string, in dto.AddScoreEntryRequest, actor Actor) (*dto.ScoreEntryResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	date := now
	if in.Date != "" {
		date, err = time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	entry := &entity.ScoreEntry{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Type:        in.Type,
		Description: in.Description,
		Points:      in.Points,
		Date:        date,
		Note:        in.Note,
		Documents:   in.Documents,
		CreatedAt:   now,
	}
	err = uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Company.AddScoreEntry(entry); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionCreate, entity.EntityTypeCompany,
			fmt.Sprintf("Entrada de puntaje para la empresa %s (%+d)", company.Name, entry.Points), now)
	})
	if err != nil {
		return nil, err
	}
	uc.notifier.Publish(ctx, notify.EntityScore, notify.ActionCreate)
	return toScoreEntryResponse(entry), nil
}

// ListScoreEntries lista el historial de puntaje de la empresa.
func (uc *CompanyUseCase) ListScoreEntries(companyID string) ([]dto.ScoreEntryResponse, error) {
	entries, err := uc.repo.ListScoreEntries(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScoreEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, *toScoreEntryResponse(e))
	}
	return items, nil
}

// DeleteScoreEntry borra una entrada puntual del historial (el resto queda
// intacto; el historial no se trunca en cascada).
func (uc *CompanyUseCase) DeleteScoreEntry(ctx context.Context, companyID, entryID string, actor Actor) error {
	err := uc.tx.RunAudited(ctx, func(r TxRepos) error {
		if err := r.Company.DeleteScoreEntry(entryID); err != nil {
			return err
		}
		return writeAudit(r.Audit, actor, entity.ActionDelete, entity.EntityTypeCompany,
			fmt.Sprintf("Borrado de entrada de puntaje %s", entryID), time.Now())
	})
	if err != nil {
		return err
	}
	uc.notifier.Publish(ctx, notify.EntityScore, notify.ActionDelete)
	return nil
}

// parseDateRange valida inicio < fin. Fechas vacías usan un año desde hoy.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now()
	start := now
	end := now.AddDate(1, 0, 0)
	var err error
	if startStr != "" {
		start, err = time.Parse(dateLayout, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if endStr != "" {
		end, err = time.Parse(dateLayout, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return start, end, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Sector:        c.Sector,
		BusinessAreas: c.BusinessAreas,
		ManagerName:   c.ManagerName,
		ManagerPhone:  c.ManagerPhone,
		ManagerEmail:  c.ManagerEmail,
		EmployeeCount: c.EmployeeCount,
		RentPerSqM:    c.Template.RentPerSqM,
		DefaultStart:  c.Template.DefaultStart,
		DefaultEnd:    c.Template.DefaultEnd,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toScoreEntryResponse(e *entity.ScoreEntry) *dto.ScoreEntryResponse {
	return &dto.ScoreEntryResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		Type:        e.Type,
		Description: e.Description,
		Points:      e.Points,
		Date:        e.Date,
		Note:        e.Note,
		Documents:   e.Documents,
		CreatedAt:   e.CreatedAt,
	}
}
