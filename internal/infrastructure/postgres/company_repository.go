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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx). business_areas y documents van como text[].
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, sector, business_areas, manager_name, manager_phone, manager_email,
		employee_count, rent_per_sqm, default_start, default_end, created_at, updated_at`

// Create persiste una empresa nueva.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Sector, company.BusinessAreas,
		company.ManagerName, company.ManagerPhone, company.ManagerEmail,
		company.EmployeeCount, company.Template.RentPerSqM,
		company.Template.DefaultStart, company.Template.DefaultEnd,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Sector, &c.BusinessAreas, &c.ManagerName, &c.ManagerPhone,
		&c.ManagerEmail, &c.EmployeeCount, &c.Template.RentPerSqM,
		&c.Template.DefaultStart, &c.Template.DefaultEnd, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, sector = $3, business_areas = $4, manager_name = $5,
			manager_phone = $6, manager_email = $7, employee_count = $8, rent_per_sqm = $9,
			default_start = $10, default_end = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Sector, company.BusinessAreas,
		company.ManagerName, company.ManagerPhone, company.ManagerEmail,
		company.EmployeeCount, company.Template.RentPerSqM,
		company.Template.DefaultStart, company.Template.DefaultEnd, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Sector, &c.BusinessAreas, &c.ManagerName,
			&c.ManagerPhone, &c.ManagerEmail, &c.EmployeeCount, &c.Template.RentPerSqM,
			&c.Template.DefaultStart, &c.Template.DefaultEnd, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa y su historial de puntaje.
func (r *CompanyRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM score_entries WHERE company_id = $1`, id); err != nil {
		return fmt.Errorf("delete score entries: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// AddScoreEntry agrega una entrada al historial de puntaje.
func (r *CompanyRepo) AddScoreEntry(entry *entity.ScoreEntry) error {
	query := `
		INSERT INTO score_entries (id, company_id, type, description, points, date, note, documents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CompanyID, entry.Type, entry.Description, entry.Points,
		entry.Date, entry.Note, entry.Documents, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert score entry: %w", err)
	}
	return nil
}

// ListScoreEntries lista el historial de puntaje de una empresa (más reciente primero).
func (r *CompanyRepo) ListScoreEntries(companyID string) ([]*entity.ScoreEntry, error) {
	query := `
		SELECT id, company_id, type, description, points, date, note, documents, created_at
		FROM score_entries WHERE company_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list score entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ScoreEntry
	for rows.Next() {
		var e entity.ScoreEntry
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Type, &e.Description, &e.Points,
			&e.Date, &e.Note, &e.Documents, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// DeleteScoreEntry borra una entrada puntual del historial.
func (r *CompanyRepo) DeleteScoreEntry(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM score_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete score entry: %w", err)
	}
	return nil
}
