package usecase

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/domain"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
)

type companyEnv struct {
	uc          *CompanyUseCase
	companyRepo *companyRepoFake
	leaseRepo   *leaseRepoFake
	unitRepo    *unitRepoFake
	auditRepo   *auditRepoFake
	tx          *txRunnerFake
}

func newCompanyEnv() *companyEnv {
	companyRepo := newCompanyRepoFake()
	leaseRepo := newLeaseRepoFake()
	unitRepo := newUnitRepoFake()
	auditRepo := &auditRepoFake{}
	tx := &txRunnerFake{companyRepo: companyRepo, leaseRepo: leaseRepo, auditRepo: auditRepo}
	return &companyEnv{
		uc:          NewCompanyUseCase(companyRepo, leaseRepo, unitRepo, tx, notify.Noop{}),
		companyRepo: companyRepo,
		leaseRepo:   leaseRepo,
		unitRepo:    unitRepo,
		auditRepo:   auditRepo,
		tx:          tx,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaEmpresaYContratoPendiente(t *testing.T) {
	env := newCompanyEnv()

	out, err := env.uc.Register(context.Background(), dto.RegisterCompanyRequest{
		Name:          "Acme",
		Sector:        "software",
		EmployeeCount: 40,
		RentPerSqM:    d("50"),
		DefaultStart:  "2026-04-01",
		DefaultEnd:    "2027-04-01",
	}, Actor{User: "operador1"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.RentPerSqM.Equal(d("50")))

	lease, err := env.leaseRepo.GetByCompany(out.ID)
	require.NoError(t, err)
	require.NotNil(t, lease, "el registro debe crear el contrato junto con la empresa")
	assert.Equal(t, entity.LeaseStatusPending, lease.Status)
	assert.Nil(t, lease.UnitID)
	assert.True(t, lease.MonthlyRent.IsZero(), "sin unidad no hay renta todavía")
	assert.True(t, lease.UnitPricePerSqM.IsZero())

	require.Len(t, env.auditRepo.entries, 1)
	assert.Equal(t, entity.EntityTypeCompany, env.auditRepo.entries[0].EntityType)
}

func TestRegister_FechasVaciasUsanUnAnio(t *testing.T) {
	env := newCompanyEnv()

	out, err := env.uc.Register(context.Background(), dto.RegisterCompanyRequest{Name: "Acme"}, Actor{})
	require.NoError(t, err)
	assert.Equal(t, out.DefaultStart.AddDate(1, 0, 0), out.DefaultEnd,
		"sin fechas la vigencia por defecto es un año desde hoy")
}

func TestRegister_FechasInvertidas(t *testing.T) {
	env := newCompanyEnv()

	_, err := env.uc.Register(context.Background(), dto.RegisterCompanyRequest{
		Name:         "Acme",
		DefaultStart: "2027-04-01",
		DefaultEnd:   "2026-04-01",
	}, Actor{})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Empty(t, env.companyRepo.companies, "el rechazo no debe crear nada")
}

func TestRegister_TopeDeAreasDeNegocio(t *testing.T) {
	env := newCompanyEnv()

	areas := make([]string, entity.MaxBusinessAreas+1)
	for i := range areas {
		areas[i] = "area-" + strconv.Itoa(i)
	}
	_, err := env.uc.Register(context.Background(), dto.RegisterCompanyRequest{
		Name:          "Acme",
		BusinessAreas: areas,
	}, Actor{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si la transacción falla, ni la empresa ni el contrato quedan persistidos.
func TestRegister_TransaccionFallidaNoDejaRastro(t *testing.T) {
	env := newCompanyEnv()
	env.tx.failCreate = true

	_, err := env.uc.Register(context.Background(), dto.RegisterCompanyRequest{Name: "Acme"}, Actor{})
	require.Error(t, err)
	assert.Empty(t, env.companyRepo.companies)
	assert.Empty(t, env.leaseRepo.leases)
	assert.Empty(t, env.auditRepo.entries)
}

// La actualización y su entrada de bitácora se confirman juntas.
func TestCompanyUpdate_FalloDeBitacoraNoConfirma(t *testing.T) {
	env := newCompanyEnv()
	require.NoError(t, env.companyRepo.Create(&entity.Company{ID: "c1", Name: "Acme"}))
	env.tx.auditFails = true

	name := "Acme Renombrada"
	_, err := env.uc.Update(context.Background(), "c1", dto.UpdateCompanyRequest{Name: &name}, Actor{User: "operador1"})
	require.Error(t, err, "sin rastro en la bitácora la actualización no puede confirmarse")
	assert.Empty(t, env.auditRepo.entries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EmpresaConUnidadActivaRechazada(t *testing.T) {
	env := newCompanyEnv()
	require.NoError(t, env.companyRepo.Create(&entity.Company{ID: "c1", Name: "Acme"}))
	companyID := "c1"
	require.NoError(t, env.unitRepo.Create(&entity.Unit{
		ID:        "u1",
		BlockID:   "blk-1",
		Floor:     "1",
		AreaSqM:   d("100"),
		Status:    entity.UnitStatusOccupied,
		CompanyID: &companyID,
	}))

	err := env.uc.Delete(context.Background(), "c1", Actor{})
	assert.ErrorIs(t, err, domain.ErrCompanyAllocated,
		"primero debe retirarse la unidad con su propio protocolo")

	stored, repoErr := env.companyRepo.GetByID("c1")
	require.NoError(t, repoErr)
	assert.NotNil(t, stored)
}

func TestDelete_EmpresaSinUnidad(t *testing.T) {
	env := newCompanyEnv()
	require.NoError(t, env.companyRepo.Create(&entity.Company{ID: "c1", Name: "Acme"}))

	require.NoError(t, env.uc.Delete(context.Background(), "c1", Actor{User: "operador1"}))

	stored, err := env.companyRepo.GetByID("c1")
	require.NoError(t, err)
	assert.Nil(t, stored)
	require.Len(t, env.auditRepo.entries, 1)
	assert.Equal(t, entity.ActionDelete, env.auditRepo.entries[0].Action)
}

func TestDelete_EmpresaInexistente(t *testing.T) {
	env := newCompanyEnv()
	err := env.uc.Delete(context.Background(), "no-existe", Actor{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
