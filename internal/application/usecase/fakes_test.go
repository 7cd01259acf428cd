package usecase

import (
	"context"
	"errors"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// Fakes en memoria mínimos para los casos de uso CRUD.

type leaseRepoFake struct {
	leases map[string]*entity.Lease
}

func newLeaseRepoFake() *leaseRepoFake {
	return &leaseRepoFake{leases: make(map[string]*entity.Lease)}
}

func (r *leaseRepoFake) Create(l *entity.Lease) error {
	cp := *l
	r.leases[l.ID] = &cp
	return nil
}

func (r *leaseRepoFake) GetByID(id string) (*entity.Lease, error) {
	l, ok := r.leases[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *leaseRepoFake) GetByCompany(companyID string) (*entity.Lease, error) {
	for _, l := range r.leases {
		if l.CompanyID == companyID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *leaseRepoFake) GetByUnit(unitID string) (*entity.Lease, error) {
	for _, l := range r.leases {
		if l.UnitID != nil && *l.UnitID == unitID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *leaseRepoFake) Update(l *entity.Lease) error {
	cp := *l
	r.leases[l.ID] = &cp
	return nil
}

func (r *leaseRepoFake) ListExtended(limit, offset int) ([]*entity.ExtendedLease, error) {
	return nil, nil
}

type companyRepoFake struct {
	companies map[string]*entity.Company
}

func newCompanyRepoFake() *companyRepoFake {
	return &companyRepoFake{companies: make(map[string]*entity.Company)}
}

func (r *companyRepoFake) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *companyRepoFake) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *companyRepoFake) Update(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *companyRepoFake) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *companyRepoFake) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

func (r *companyRepoFake) AddScoreEntry(*entity.ScoreEntry) error { return nil }

func (r *companyRepoFake) ListScoreEntries(string) ([]*entity.ScoreEntry, error) {
	return nil, nil
}

func (r *companyRepoFake) DeleteScoreEntry(string) error { return nil }

type unitRepoFake struct {
	units map[string]*entity.Unit
}

func newUnitRepoFake() *unitRepoFake {
	return &unitRepoFake{units: make(map[string]*entity.Unit)}
}

func (r *unitRepoFake) Create(u *entity.Unit) error {
	r.units[u.ID] = u
	return nil
}

func (r *unitRepoFake) GetByID(id string) (*entity.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *unitRepoFake) Update(u *entity.Unit) error {
	r.units[u.ID] = u
	return nil
}

func (r *unitRepoFake) ListByBlock(blockID string) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.units {
		if u.BlockID == blockID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *unitRepoFake) ListByFloorForUpdate(blockID, floor string) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.units {
		if u.BlockID == blockID && u.Floor == floor {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *unitRepoFake) GetByCompany(companyID string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.CompanyID != nil && *u.CompanyID == companyID && u.Active() {
			return u, nil
		}
	}
	return nil, nil
}

func (r *unitRepoFake) Delete(id string) error {
	delete(r.units, id)
	return nil
}

type blockRepoFake struct {
	blocks map[string]*entity.Block
}

func newBlockRepoFake() *blockRepoFake {
	return &blockRepoFake{blocks: make(map[string]*entity.Block)}
}

func (r *blockRepoFake) Create(b *entity.Block) error {
	r.blocks[b.ID] = b
	return nil
}

func (r *blockRepoFake) GetByID(id string) (*entity.Block, error) {
	b, ok := r.blocks[id]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (r *blockRepoFake) Update(b *entity.Block) error {
	r.blocks[b.ID] = b
	return nil
}

func (r *blockRepoFake) ListByCampus(campusID string, limit, offset int) ([]*entity.Block, error) {
	var out []*entity.Block
	for _, b := range r.blocks {
		if b.CampusID == campusID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *blockRepoFake) List(limit, offset int) ([]*entity.Block, error) {
	var out []*entity.Block
	for _, b := range r.blocks {
		out = append(out, b)
	}
	return out, nil
}

func (r *blockRepoFake) ReplaceFloors(blockID string, floors []entity.FloorCapacity) error {
	if b, ok := r.blocks[blockID]; ok {
		b.Floors = floors
	}
	return nil
}

func (r *blockRepoFake) Delete(id string) error {
	delete(r.blocks, id)
	return nil
}

type campusRepoFake struct {
	campuses map[string]*entity.Campus
}

func newCampusRepoFake() *campusRepoFake {
	return &campusRepoFake{campuses: make(map[string]*entity.Campus)}
}

func (r *campusRepoFake) Create(c *entity.Campus) error {
	r.campuses[c.ID] = c
	return nil
}

func (r *campusRepoFake) GetByID(id string) (*entity.Campus, error) {
	c, ok := r.campuses[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *campusRepoFake) Update(c *entity.Campus) error {
	r.campuses[c.ID] = c
	return nil
}

func (r *campusRepoFake) List(limit, offset int) ([]*entity.Campus, error) {
	var out []*entity.Campus
	for _, c := range r.campuses {
		out = append(out, c)
	}
	return out, nil
}

func (r *campusRepoFake) Delete(id string) error {
	delete(r.campuses, id)
	return nil
}

type auditRepoFake struct {
	entries []*entity.AuditLogEntry
}

func (r *auditRepoFake) Create(e *entity.AuditLogEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *auditRepoFake) GetByID(id string) (*entity.AuditLogEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *auditRepoFake) List() ([]*entity.AuditLogEntry, error) {
	out := make([]*entity.AuditLogEntry, len(r.entries))
	for i, e := range r.entries {
		out[len(r.entries)-1-i] = e
	}
	return out, nil
}

// failingAuditRepo bitácora que siempre falla al escribir.
type failingAuditRepo struct{}

func (failingAuditRepo) Create(*entity.AuditLogEntry) error {
	return errors.New("bitácora no disponible")
}

func (failingAuditRepo) GetByID(string) (*entity.AuditLogEntry, error) { return nil, nil }

func (failingAuditRepo) List() ([]*entity.AuditLogEntry, error) { return nil, nil }

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// txRunnerFake emula las transacciones sobre los fakes en memoria. Con
// auditFails la escritura de bitácora dentro de la tx falla y el runner
// restaura el estado previo de los mapas, como haría el rollback real.
type txRunnerFake struct {
	campusRepo  *campusRepoFake
	blockRepo   *blockRepoFake
	companyRepo *companyRepoFake
	leaseRepo   *leaseRepoFake
	auditRepo   *auditRepoFake
	failCreate  bool // RunRegistration falla sin ejecutar el callback
	auditFails  bool
}

func (tx *txRunnerFake) audit() repository.AuditLogRepository {
	if tx.auditFails {
		return failingAuditRepo{}
	}
	return tx.auditRepo
}

func (tx *txRunnerFake) RunRegistration(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	leaseRepo repository.LeaseRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	if tx.failCreate {
		return errors.New("tx: fallo simulado")
	}
	return fn(tx.companyRepo, tx.leaseRepo, tx.audit())
}

func (tx *txRunnerFake) RunAudited(_ context.Context, fn func(r TxRepos) error) error {
	var (
		campuses  map[string]*entity.Campus
		blocks    map[string]*entity.Block
		companies map[string]*entity.Company
		leases    map[string]*entity.Lease
	)
	if tx.campusRepo != nil {
		campuses = cloneMap(tx.campusRepo.campuses)
	}
	if tx.blockRepo != nil {
		blocks = cloneMap(tx.blockRepo.blocks)
	}
	if tx.companyRepo != nil {
		companies = cloneMap(tx.companyRepo.companies)
	}
	if tx.leaseRepo != nil {
		leases = cloneMap(tx.leaseRepo.leases)
	}

	err := fn(TxRepos{
		Campus:  tx.campusRepo,
		Block:   tx.blockRepo,
		Company: tx.companyRepo,
		Lease:   tx.leaseRepo,
		Audit:   tx.audit(),
	})
	if err != nil {
		if tx.campusRepo != nil {
			tx.campusRepo.campuses = campuses
		}
		if tx.blockRepo != nil {
			tx.blockRepo.blocks = blocks
		}
		if tx.companyRepo != nil {
			tx.companyRepo.companies = companies
		}
		if tx.leaseRepo != nil {
			tx.leaseRepo.leases = leases
		}
	}
	return err
}
