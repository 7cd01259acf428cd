package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozkanv/teknopark-api/internal/application/allocation"
	"github.com/ozkanv/teknopark-api/internal/application/rollback"
	"github.com/ozkanv/teknopark-api/internal/application/usecase"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

var _ allocation.TxRunner = (*TxRunner)(nil)
var _ rollback.TxRunner = (*TxRunner)(nil)
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	unitRepo repository.UnitRepository,
	leaseRepo repository.LeaseRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	unitRepo := NewUnitRepository(tx)
	leaseRepo := NewLeaseRepository(tx)
	auditRepo := NewAuditLogRepository(tx)

	if err := fn(unitRepo, leaseRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAudited inicia una transacción con los repos CRUD y la bitácora atados a
// ella: la mutación y su entrada de auditoría se confirman juntas o ninguna.
func (r *TxRunner) RunAudited(ctx context.Context, fn func(tr usecase.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(usecase.TxRepos{
		Campus:  NewCampusRepository(tx),
		Block:   NewBlockRepository(tx),
		Company: NewCompanyRepository(tx),
		Lease:   NewLeaseRepository(tx),
		Audit:   NewAuditLogRepository(tx),
	})
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistration inicia una transacción con repos de empresa y contrato
// (para el registro empresa + contrato PENDING).
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	leaseRepo repository.LeaseRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	leaseRepo := NewLeaseRepository(tx)
	auditRepo := NewAuditLogRepository(tx)

	if err := fn(companyRepo, leaseRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
