package allocation

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
	"github.com/ozkanv/teknopark-api/internal/domain/leasing"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// Actor identidad de quien ejecuta la mutación, para atribución en la bitácora.
type Actor struct {
	User string
	Role string
}

// AllocationUseCase valida y ejecuta asignar/redimensionar/retirar una unidad
// contra las restricciones de capacidad del piso. Toda petición que cambia
// estado se verifica contra la capacidad ANTES de persistir, con las filas del
// piso bloqueadas dentro de la transacción.
type AllocationUseCase struct {
	txRunner    TxRunner
	blockRepo   repository.BlockRepository
	companyRepo repository.CompanyRepository
	unitRepo    repository.UnitRepository
	leaseRepo   repository.LeaseRepository
	notifier    notify.Notifier
	tickets     *ticketStore
	now         func() time.Time
}

// NewAllocationUseCase construye el caso de uso.
func NewAllocationUseCase(
	txRunner TxRunner,
	blockRepo repository.BlockRepository,
	companyRepo repository.CompanyRepository,
	unitRepo repository.UnitRepository,
	leaseRepo repository.LeaseRepository,
	notifier notify.Notifier,
) *AllocationUseCase {
	return &AllocationUseCase{
		txRunner:    txRunner,
		blockRepo:   blockRepo,
		companyRepo: companyRepo,
		unitRepo:    unitRepo,
		leaseRepo:   leaseRepo,
		notifier:    notifier,
		tickets:     newTicketStore(),
		now:         time.Now,
	}
}

// Assign asigna una empresa a un piso. Precondiciones: área > 0, el piso existe
// en el bloque, la empresa no tiene unidad activa y el área cabe en el restante
// del piso (calculado excluyendo la unidad por crear). La violación de densidad
// (área mínima por empleados) se devuelve como advertencia, nunca rechaza.
func (uc *AllocationUseCase) Assign(ctx context.Context, in dto.AssignRequest, actor Actor) (*dto.AllocationResponse, error) {
	if !in.AreaSqM.IsPositive() {
		return nil, domain.ErrInvalidArea
	}
	block, err := uc.blockRepo.GetByID(in.BlockID)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, domain.ErrNotFound
	}
	floor, ok := capacity.FindFloor(block.Floors, in.Floor)
	if !ok {
		return nil, domain.ErrFloorNotFound
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	lease, err := uc.leaseRepo.GetByCompany(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, domain.ErrNotFound
	}
	if lease.Allocated() {
		return nil, domain.ErrCompanyAllocated
	}

	now := uc.now()
	warning := uc.densityWarning(company, block, in.AreaSqM)

	status := entity.UnitStatusOccupied
	if in.IsReserved {
		status = entity.UnitStatusReserved
	}
	unit := &entity.Unit{
		ID:                uuid.New().String(),
		BlockID:           in.BlockID,
		Floor:             in.Floor,
		AreaSqM:           in.AreaSqM,
		Status:            status,
		CompanyID:         &in.CompanyID,
		ReservationFee:    in.ReservationFee,
		ReservationMonths: in.ReservationMonths,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// Tarifa: la preservada del contrato si existe; si no, la de la plantilla
	// (en ese caso la preservada se limpia, la plantilla vuelve a mandar).
	price := lease.UnitPricePerSqM
	if !price.IsPositive() {
		price = company.Template.RentPerSqM
		lease.UnitPricePerSqM = decimal.Zero
	}
	rent := leasing.RentForArea(in.AreaSqM, price)

	err = uc.txRunner.Run(ctx, func(
		unitRepo repository.UnitRepository,
		leaseRepo repository.LeaseRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		// Bloquea las unidades del piso (SELECT FOR UPDATE) y valida el restante
		units, err := unitRepo.ListByFloorForUpdate(in.BlockID, in.Floor)
		if err != nil {
			return err
		}
		usage := capacity.FloorUsage(units, floor)
		if in.AreaSqM.GreaterThan(usage.RemainingSqM) {
			return &domain.CapacityError{
				Floor:        in.Floor,
				RequestedSqM: in.AreaSqM,
				RemainingSqM: usage.RemainingSqM,
			}
		}
		if err := unitRepo.Create(unit); err != nil {
			return err
		}
		lease.UnitID = &unit.ID
		lease.Status = entity.LeaseStatusAllocated
		lease.MonthlyRent = rent
		if lease.OperatingFee.IsZero() {
			lease.OperatingFee = block.DefaultOperatingFee
		}
		lease.UpdatedAt = now
		if err := leaseRepo.Update(lease); err != nil {
			return err
		}
		return auditRepo.Create(&entity.AuditLogEntry{
			ID:         uuid.New().String(),
			TraceID:    uuid.New().String(),
			Timestamp:  now,
			User:       actor.User,
			UserRole:   actor.Role,
			Action:     entity.ActionCreate,
			EntityType: entity.EntityTypeUnit,
			Details: fmt.Sprintf("Asignación: empresa %s a bloque %s, piso %s, %s m²",
				company.Name, block.Name, in.Floor, in.AreaSqM.String()),
			Impact:    warning,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Publish(ctx, notify.EntityUnit, notify.ActionUpdate)
	return &dto.AllocationResponse{
		Unit:        toUnitResponse(unit),
		MonthlyRent: rent.StringFixed(2),
		Warning:     warning,
	}, nil
}

// Resize cambia el área de una unidad. El restante se calcula excluyendo la
// propia unidad; la renta nueva es área * tarifa fija capturada al inicio de
// la sesión de edición (renta actual / área actual), no rederivada del área
// nueva, para que el redondeo no corra la tarifa pactada.
func (uc *AllocationUseCase) Resize(ctx context.Context, unitID string, in dto.ResizeRequest, actor Actor) (*dto.AllocationResponse, error) {
	if !in.AreaSqM.IsPositive() {
		return nil, domain.ErrInvalidArea
	}
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	block, err := uc.blockRepo.GetByID(unit.BlockID)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, domain.ErrNotFound
	}
	floor, ok := capacity.FindFloor(block.Floors, unit.Floor)
	if !ok {
		return nil, domain.ErrFloorNotFound
	}
	lease, err := uc.leaseRepo.GetByUnit(unitID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, domain.ErrNotFound
	}

	// Tarifa fija de la sesión: se captura antes de tocar el área
	fixedPrice := decimal.Zero
	if unit.AreaSqM.IsPositive() {
		fixedPrice = lease.MonthlyRent.Div(unit.AreaSqM)
	}

	now := uc.now()
	rent := leasing.RentForArea(in.AreaSqM, fixedPrice)

	var warning string
	if unit.CompanyID != nil {
		if company, err := uc.companyRepo.GetByID(*unit.CompanyID); err == nil && company != nil {
			warning = uc.densityWarning(company, block, in.AreaSqM)
		}
	}

	err = uc.txRunner.Run(ctx, func(
		unitRepo repository.UnitRepository,
		leaseRepo repository.LeaseRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		units, err := unitRepo.ListByFloorForUpdate(unit.BlockID, unit.Floor)
		if err != nil {
			return err
		}
		usage := capacity.FloorUsageExcluding(units, floor, unit.ID)
		if in.AreaSqM.GreaterThan(usage.RemainingSqM) {
			return &domain.CapacityError{
				Floor:        unit.Floor,
				RequestedSqM: in.AreaSqM,
				RemainingSqM: usage.RemainingSqM,
			}
		}
		oldArea := unit.AreaSqM
		unit.AreaSqM = in.AreaSqM
		unit.UpdatedAt = now
		if err := unitRepo.Update(unit); err != nil {
			return err
		}
		lease.MonthlyRent = rent
		lease.UpdatedAt = now
		if err := leaseRepo.Update(lease); err != nil {
			return err
		}
		return auditRepo.Create(&entity.AuditLogEntry{
			ID:         uuid.New().String(),
			TraceID:    uuid.New().String(),
			Timestamp:  now,
			User:       actor.User,
			UserRole:   actor.Role,
			Action:     entity.ActionUpdate,
			EntityType: entity.EntityTypeUnit,
			Details: fmt.Sprintf("Redimensión de unidad %s: %s m² -> %s m²",
				unit.ID, oldArea.String(), in.AreaSqM.String()),
			Impact:    warning,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Publish(ctx, notify.EntityUnit, notify.ActionUpdate)
	return &dto.AllocationResponse{
		Unit:        toUnitResponse(unit),
		MonthlyRent: rent.StringFixed(2),
		Warning:     warning,
	}, nil
}

// densityWarning arma el aviso cuando el área queda bajo el mínimo sugerido
// por empleados. Solo advertencia: la sobredensidad jamás rechaza la operación.
func (uc *AllocationUseCase) densityWarning(company *entity.Company, block *entity.Block, area decimal.Decimal) string {
	min := capacity.MinRequiredArea(company.EmployeeCount, block.SqMPerEmployee)
	if min.IsPositive() && min.GreaterThan(area) {
		return fmt.Sprintf("área por debajo del mínimo sugerido: %s empleados requieren %s m² (asignados %s m²)",
			fmt.Sprint(company.EmployeeCount), min.String(), area.String())
	}
	return ""
}

func toUnitResponse(u *entity.Unit) dto.UnitResponse {
	return dto.UnitResponse{
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
