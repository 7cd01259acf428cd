package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL
// (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, block_id, floor, area_sqm, status, company_id, reservation_fee, reservation_months, created_at, updated_at`

// Create persiste una unidad nueva.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.BlockID, unit.Floor, unit.AreaSqM, unit.Status,
		unit.CompanyID, unit.ReservationFee, unit.ReservationMonths,
		unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get unit")
}

// Update actualiza una unidad existente.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `
		UPDATE units SET floor = $2, area_sqm = $3, status = $4, company_id = $5,
			reservation_fee = $6, reservation_months = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Floor, unit.AreaSqM, unit.Status, unit.CompanyID,
		unit.ReservationFee, unit.ReservationMonths, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// ListByBlock lista todas las unidades de un bloque.
func (r *UnitRepo) ListByBlock(blockID string) ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE block_id = $1 ORDER BY created_at`
	return r.scanMany(query, blockID)
}

// ListByFloorForUpdate bloquea las unidades del piso con SELECT ... FOR UPDATE.
// Solo tiene sentido dentro de una transacción: el lock serializa las
// validaciones de capacidad concurrentes sobre el mismo piso.
func (r *UnitRepo) ListByFloorForUpdate(blockID, floor string) ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE block_id = $1 AND floor = $2 FOR UPDATE`
	return r.scanMany(query, blockID, floor)
}

// GetByCompany obtiene la unidad activa de una empresa (nil si no tiene).
func (r *UnitRepo) GetByCompany(companyID string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE company_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID), "get unit by company")
}

// Delete elimina una unidad por ID.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) scanOne(row pgx.Row, op string) (*entity.Unit, error) {
	var u entity.Unit
	err := row.Scan(
		&u.ID, &u.BlockID, &u.Floor, &u.AreaSqM, &u.Status, &u.CompanyID,
		&u.ReservationFee, &u.ReservationMonths, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (r *UnitRepo) scanMany(query string, args ...any) ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.BlockID, &u.Floor, &u.AreaSqM, &u.Status, &u.CompanyID,
			&u.ReservationFee, &u.ReservationMonths, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
