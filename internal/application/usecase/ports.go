package usecase

import (
	"context"

	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// RegistrationTxRunner transacción del registro de empresa: la empresa y su
// contrato PENDING nacen juntos o no nace ninguno.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		leaseRepo repository.LeaseRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}

// TxRepos repositorios atados a la transacción en curso.
type TxRepos struct {
	Campus  repository.CampusRepository
	Block   repository.BlockRepository
	Company repository.CompanyRepository
	Lease   repository.LeaseRepository
	Audit   repository.AuditLogRepository
}

// AuditedTxRunner ejecuta una mutación CRUD junto con su entrada de bitácora
// en la misma transacción: la mutación no se confirma si no queda rastro.
type AuditedTxRunner interface {
	RunAudited(ctx context.Context, fn func(r TxRepos) error) error
}

// TxRunner transacciones del caso de uso de empresas (registro + CRUD).
type TxRunner interface {
	RegistrationTxRunner
	AuditedTxRunner
}
