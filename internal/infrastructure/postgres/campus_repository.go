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

var _ repository.CampusRepository = (*CampusRepo)(nil)

// CampusRepo implementación del puerto CampusRepository sobre PostgreSQL.
type CampusRepo struct {
	q Querier
}

// NewCampusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCampusRepository(q Querier) *CampusRepo {
	return &CampusRepo{q: q}
}

// Create persiste un campus nuevo.
func (r *CampusRepo) Create(campus *entity.Campus) error {
	query := `
		INSERT INTO campuses (id, name, address, max_offices, max_area_sqm, max_floors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		campus.ID, campus.Name, campus.Address, campus.MaxOffices,
		campus.MaxAreaSqM, campus.MaxFloors, campus.CreatedAt, campus.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campus: %w", err)
	}
	return nil
}

// GetByID obtiene un campus por ID.
func (r *CampusRepo) GetByID(id string) (*entity.Campus, error) {
	query := `
		SELECT id, name, address, max_offices, max_area_sqm, max_floors, created_at, updated_at
		FROM campuses WHERE id = $1`
	var c entity.Campus
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.MaxOffices, &c.MaxAreaSqM, &c.MaxFloors,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campus: %w", err)
	}
	return &c, nil
}

// Update actualiza un campus existente.
func (r *CampusRepo) Update(campus *entity.Campus) error {
	query := `
		UPDATE campuses SET name = $2, address = $3, max_offices = $4, max_area_sqm = $5, max_floors = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		campus.ID, campus.Name, campus.Address, campus.MaxOffices,
		campus.MaxAreaSqM, campus.MaxFloors, campus.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update campus: %w", err)
	}
	return nil
}

// List lista campus con paginación.
func (r *CampusRepo) List(limit, offset int) ([]*entity.Campus, error) {
	query := `
		SELECT id, name, address, max_offices, max_area_sqm, max_floors, created_at, updated_at
		FROM campuses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list campuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Campus
	for rows.Next() {
		var c entity.Campus
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.MaxOffices, &c.MaxAreaSqM, &c.MaxFloors, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan campus: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un campus por ID.
func (r *CampusRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM campuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campus: %w", err)
	}
	return nil
}
