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

var _ repository.BlockRepository = (*BlockRepo)(nil)

// BlockRepo implementación del puerto BlockRepository sobre PostgreSQL.
// Los pisos viven en block_floors; se cargan siempre junto con el bloque.
type BlockRepo struct {
	q Querier
}

// NewBlockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBlockRepository(q Querier) *BlockRepo {
	return &BlockRepo{q: q}
}

// Create persiste un bloque con sus pisos.
func (r *BlockRepo) Create(block *entity.Block) error {
	ctx := context.Background()
	query := `
		INSERT INTO blocks (id, campus_id, name, max_floors, max_area_sqm, default_operating_fee, sqm_per_employee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		block.ID, block.CampusID, block.Name, block.MaxFloors, block.MaxAreaSqM,
		block.DefaultOperatingFee, block.SqMPerEmployee, block.CreatedAt, block.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert block: %w", err)
	}
	return r.insertFloors(ctx, block.ID, block.Floors)
}

// GetByID obtiene un bloque con sus pisos.
func (r *BlockRepo) GetByID(id string) (*entity.Block, error) {
	ctx := context.Background()
	query := `
		SELECT id, campus_id, name, max_floors, max_area_sqm, default_operating_fee, sqm_per_employee, created_at, updated_at
		FROM blocks WHERE id = $1`
	var b entity.Block
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.CampusID, &b.Name, &b.MaxFloors, &b.MaxAreaSqM,
		&b.DefaultOperatingFee, &b.SqMPerEmployee, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get block: %w", err)
	}
	floors, err := r.loadFloors(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Floors = floors
	return &b, nil
}

// Update actualiza los campos escalares del bloque (los pisos van por ReplaceFloors).
func (r *BlockRepo) Update(block *entity.Block) error {
	query := `
		UPDATE blocks SET name = $2, max_floors = $3, max_area_sqm = $4, default_operating_fee = $5, sqm_per_employee = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		block.ID, block.Name, block.MaxFloors, block.MaxAreaSqM,
		block.DefaultOperatingFee, block.SqMPerEmployee, block.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update block: %w", err)
	}
	return nil
}

// ListByCampus lista los bloques de un campus con sus pisos.
func (r *BlockRepo) ListByCampus(campusID string, limit, offset int) ([]*entity.Block, error) {
	query := `
		SELECT id, campus_id, name, max_floors, max_area_sqm, default_operating_fee, sqm_per_employee, created_at, updated_at
		FROM blocks WHERE campus_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, campusID, limit, offset)
}

// List lista todos los bloques con sus pisos.
func (r *BlockRepo) List(limit, offset int) ([]*entity.Block, error) {
	query := `
		SELECT id, campus_id, name, max_floors, max_area_sqm, default_operating_fee, sqm_per_employee, created_at, updated_at
		FROM blocks ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ReplaceFloors reemplaza el conjunto de capacidades por piso del bloque.
func (r *BlockRepo) ReplaceFloors(blockID string, floors []entity.FloorCapacity) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM block_floors WHERE block_id = $1`, blockID); err != nil {
		return fmt.Errorf("delete block floors: %w", err)
	}
	return r.insertFloors(ctx, blockID, floors)
}

// Delete elimina un bloque y sus pisos.
func (r *BlockRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM block_floors WHERE block_id = $1`, id); err != nil {
		return fmt.Errorf("delete block floors: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM blocks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

func (r *BlockRepo) list(query string, args ...any) ([]*entity.Block, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Block
	for rows.Next() {
		var b entity.Block
		if err := rows.Scan(&b.ID, &b.CampusID, &b.Name, &b.MaxFloors, &b.MaxAreaSqM,
			&b.DefaultOperatingFee, &b.SqMPerEmployee, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		list = append(list, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, b := range list {
		floors, err := r.loadFloors(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		b.Floors = floors
	}
	return list, nil
}

func (r *BlockRepo) loadFloors(ctx context.Context, blockID string) ([]entity.FloorCapacity, error) {
	rows, err := r.q.Query(ctx,
		`SELECT floor, total_sqm FROM block_floors WHERE block_id = $1`, blockID)
	if err != nil {
		return nil, fmt.Errorf("list block floors: %w", err)
	}
	defer rows.Close()
	var floors []entity.FloorCapacity
	for rows.Next() {
		var f entity.FloorCapacity
		if err := rows.Scan(&f.Floor, &f.TotalSqM); err != nil {
			return nil, fmt.Errorf("scan block floor: %w", err)
		}
		floors = append(floors, f)
	}
	return floors, rows.Err()
}

func (r *BlockRepo) insertFloors(ctx context.Context, blockID string, floors []entity.FloorCapacity) error {
	for _, f := range floors {
		_, err := r.q.Exec(ctx,
			`INSERT INTO block_floors (block_id, floor, total_sqm) VALUES ($1, $2, $3)`,
			blockID, f.Floor, f.TotalSqM)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert block floor: %w", err)
		}
	}
	return nil
}
