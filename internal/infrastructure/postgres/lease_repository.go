package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

var _ repository.LeaseRepository = (*LeaseRepo)(nil)

// LeaseRepo implementación del puerto LeaseRepository sobre PostgreSQL
// (usable con pool o tx).
type LeaseRepo struct {
	q Querier
}

// NewLeaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeaseRepository(q Querier) *LeaseRepo {
	return &LeaseRepo{q: q}
}

const leaseColumns = `id, company_id, unit_id, status, start_date, end_date,
		monthly_rent, operating_fee, unit_price_per_sqm, documents, created_at, updated_at`

// Create persiste un contrato nuevo.
func (r *LeaseRepo) Create(lease *entity.Lease) error {
	query := `
		INSERT INTO leases (` + leaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		lease.ID, lease.CompanyID, lease.UnitID, lease.Status,
		lease.StartDate, lease.EndDate, lease.MonthlyRent, lease.OperatingFee,
		lease.UnitPricePerSqM, lease.Documents, lease.CreatedAt, lease.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lease: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *LeaseRepo) GetByID(id string) (*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get lease")
}

// GetByCompany obtiene el contrato de una empresa (uno por empresa).
func (r *LeaseRepo) GetByCompany(companyID string) (*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE company_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID), "get lease by company")
}

// GetByUnit obtiene el contrato atado a una unidad.
func (r *LeaseRepo) GetByUnit(unitID string) (*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE unit_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, unitID), "get lease by unit")
}

// Update actualiza un contrato existente.
func (r *LeaseRepo) Update(lease *entity.Lease) error {
	query := `
		UPDATE leases SET unit_id = $2, status = $3, start_date = $4, end_date = $5,
			monthly_rent = $6, operating_fee = $7, unit_price_per_sqm = $8, documents = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lease.ID, lease.UnitID, lease.Status, lease.StartDate, lease.EndDate,
		lease.MonthlyRent, lease.OperatingFee, lease.UnitPricePerSqM,
		lease.Documents, lease.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lease: %w", err)
	}
	return nil
}

// ListExtended arma el modelo de lectura empresa+campus+bloque+unidad+contrato
// en una sola consulta. Los bloques vienen sin pisos: el listado solo necesita
// la cabecera (nombre, densidad).
func (r *LeaseRepo) ListExtended(limit, offset int) ([]*entity.ExtendedLease, error) {
	query := `
		SELECT
			c.id, c.name, c.sector, c.business_areas, c.manager_name, c.manager_phone, c.manager_email,
			c.employee_count, c.rent_per_sqm, c.default_start, c.default_end, c.created_at, c.updated_at,
			l.id, l.company_id, l.unit_id, l.status, l.start_date, l.end_date,
			l.monthly_rent, l.operating_fee, l.unit_price_per_sqm, l.documents, l.created_at, l.updated_at,
			u.id, u.block_id, u.floor, u.area_sqm, u.status, u.reservation_fee, u.reservation_months,
			b.id, b.name, b.sqm_per_employee,
			ca.id, ca.name
		FROM leases l
		JOIN companies c ON c.id = l.company_id
		LEFT JOIN units u ON u.id = l.unit_id
		LEFT JOIN blocks b ON b.id = u.block_id
		LEFT JOIN campuses ca ON ca.id = b.campus_id
		ORDER BY c.name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list extended leases: %w", err)
	}
	defer rows.Close()

	var list []*entity.ExtendedLease
	for rows.Next() {
		var row entity.ExtendedLease
		var (
			unitID, unitBlockID, unitFloor, unitStatus *string
			unitArea                                   *decimal.Decimal
			reservationFee                             *decimal.Decimal
			reservationMonths                          *int
			blockID, blockName                         *string
			blockSqMPerEmployee                        *int
			campusID, campusName                       *string
		)
		err := rows.Scan(
			&row.Company.ID, &row.Company.Name, &row.Company.Sector, &row.Company.BusinessAreas,
			&row.Company.ManagerName, &row.Company.ManagerPhone, &row.Company.ManagerEmail,
			&row.Company.EmployeeCount, &row.Company.Template.RentPerSqM,
			&row.Company.Template.DefaultStart, &row.Company.Template.DefaultEnd,
			&row.Company.CreatedAt, &row.Company.UpdatedAt,
			&row.Lease.ID, &row.Lease.CompanyID, &row.Lease.UnitID, &row.Lease.Status,
			&row.Lease.StartDate, &row.Lease.EndDate, &row.Lease.MonthlyRent,
			&row.Lease.OperatingFee, &row.Lease.UnitPricePerSqM, &row.Lease.Documents,
			&row.Lease.CreatedAt, &row.Lease.UpdatedAt,
			&unitID, &unitBlockID, &unitFloor, &unitArea, &unitStatus, &reservationFee, &reservationMonths,
			&blockID, &blockName, &blockSqMPerEmployee,
			&campusID, &campusName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan extended lease: %w", err)
		}
		if unitID != nil {
			row.Unit = &entity.Unit{
				ID:                *unitID,
				BlockID:           *unitBlockID,
				Floor:             *unitFloor,
				AreaSqM:           *unitArea,
				Status:            *unitStatus,
				CompanyID:         &row.Company.ID,
				ReservationFee:    reservationFee,
				ReservationMonths: reservationMonths,
			}
		}
		if blockID != nil {
			row.Block = &entity.Block{ID: *blockID, Name: *blockName}
			if blockSqMPerEmployee != nil {
				row.Block.SqMPerEmployee = *blockSqMPerEmployee
			}
		}
		if campusID != nil {
			row.Campus = &entity.Campus{ID: *campusID, Name: *campusName}
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

func (r *LeaseRepo) scanOne(row pgx.Row, op string) (*entity.Lease, error) {
	var l entity.Lease
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.UnitID, &l.Status, &l.StartDate, &l.EndDate,
		&l.MonthlyRent, &l.OperatingFee, &l.UnitPricePerSqM, &l.Documents,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &l, nil
}
