package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: la bitácora es append-only
// también a nivel de adaptador.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

const auditColumns = `id, trace_id, ts, username, user_role, action, entity_type, details, impact, rollback_snapshot, created_at`

// Create persiste una entrada de la bitácora.
func (r *AuditLogRepo) Create(entry *entity.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.TraceID, entry.Timestamp, entry.User, entry.UserRole,
		entry.Action, entry.EntityType, entry.Details, entry.Impact,
		entry.Rollback, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *AuditLogRepo) GetByID(id string) (*entity.AuditLogEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_log WHERE id = $1`
	var e entity.AuditLogEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.TraceID, &e.Timestamp, &e.User, &e.UserRole, &e.Action,
		&e.EntityType, &e.Details, &e.Impact, &e.Rollback, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit entry: %w", err)
	}
	return &e, nil
}

// List devuelve todas las entradas en orden cronológico inverso.
func (r *AuditLogRepo) List() ([]*entity.AuditLogEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_log ORDER BY ts DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLogEntry
	for rows.Next() {
		var e entity.AuditLogEntry
		if err := rows.Scan(&e.ID, &e.TraceID, &e.Timestamp, &e.User, &e.UserRole,
			&e.Action, &e.EntityType, &e.Details, &e.Impact, &e.Rollback, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
