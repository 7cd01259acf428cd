package allocation

import (
	"context"

	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// Fakes en memoria para ejercitar el caso de uso sin base de datos. El
// TxRunner entrega los mismos repositorios: la atomicidad real la prueba la
// capa de infraestructura, aquí interesa la lógica de asignación.

type memUnitRepo struct {
	units map[string]*entity.Unit
}

func newMemUnitRepo() *memUnitRepo {
	return &memUnitRepo{units: make(map[string]*entity.Unit)}
}

func (r *memUnitRepo) Create(u *entity.Unit) error {
	cp := *u
	r.units[u.ID] = &cp
	return nil
}

func (r *memUnitRepo) GetByID(id string) (*entity.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUnitRepo) Update(u *entity.Unit) error {
	cp := *u
	r.units[u.ID] = &cp
	return nil
}

func (r *memUnitRepo) ListByBlock(blockID string) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.units {
		if u.BlockID == blockID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUnitRepo) ListByFloorForUpdate(blockID, floor string) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.units {
		if u.BlockID == blockID && u.Floor == floor {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUnitRepo) GetByCompany(companyID string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.CompanyID != nil && *u.CompanyID == companyID && u.Active() {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUnitRepo) Delete(id string) error {
	delete(r.units, id)
	return nil
}

type memBlockRepo struct {
	blocks map[string]*entity.Block
}

func newMemBlockRepo() *memBlockRepo {
	return &memBlockRepo{blocks: make(map[string]*entity.Block)}
}

func (r *memBlockRepo) Create(b *entity.Block) error {
	r.blocks[b.ID] = b
	return nil
}

func (r *memBlockRepo) GetByID(id string) (*entity.Block, error) {
	b, ok := r.blocks[id]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (r *memBlockRepo) Update(b *entity.Block) error {
	r.blocks[b.ID] = b
	return nil
}

func (r *memBlockRepo) ListByCampus(campusID string, limit, offset int) ([]*entity.Block, error) {
	var out []*entity.Block
	for _, b := range r.blocks {
		if b.CampusID == campusID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBlockRepo) List(limit, offset int) ([]*entity.Block, error) {
	var out []*entity.Block
	for _, b := range r.blocks {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBlockRepo) ReplaceFloors(blockID string, floors []entity.FloorCapacity) error {
	if b, ok := r.blocks[blockID]; ok {
		b.Floors = floors
	}
	return nil
}

func (r *memBlockRepo) Delete(id string) error {
	delete(r.blocks, id)
	return nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

func (r *memCompanyRepo) AddScoreEntry(*entity.ScoreEntry) error { return nil }

func (r *memCompanyRepo) ListScoreEntries(string) ([]*entity.ScoreEntry, error) {
	return nil, nil
}

func (r *memCompanyRepo) DeleteScoreEntry(string) error { return nil }

type memLeaseRepo struct {
	leases map[string]*entity.Lease
}

func newMemLeaseRepo() *memLeaseRepo {
	return &memLeaseRepo{leases: make(map[string]*entity.Lease)}
}

func (r *memLeaseRepo) Create(l *entity.Lease) error {
	cp := *l
	r.leases[l.ID] = &cp
	return nil
}

func (r *memLeaseRepo) GetByID(id string) (*entity.Lease, error) {
	l, ok := r.leases[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLeaseRepo) GetByCompany(companyID string) (*entity.Lease, error) {
	for _, l := range r.leases {
		if l.CompanyID == companyID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLeaseRepo) GetByUnit(unitID string) (*entity.Lease, error) {
	for _, l := range r.leases {
		if l.UnitID != nil && *l.UnitID == unitID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLeaseRepo) Update(l *entity.Lease) error {
	cp := *l
	r.leases[l.ID] = &cp
	return nil
}

func (r *memLeaseRepo) ListExtended(limit, offset int) ([]*entity.ExtendedLease, error) {
	return nil, nil
}

type memAuditRepo struct {
	entries []*entity.AuditLogEntry
}

func (r *memAuditRepo) Create(e *entity.AuditLogEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *memAuditRepo) GetByID(id string) (*entity.AuditLogEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memAuditRepo) List() ([]*entity.AuditLogEntry, error) {
	out := make([]*entity.AuditLogEntry, len(r.entries))
	for i, e := range r.entries {
		out[len(r.entries)-1-i] = e
	}
	return out, nil
}

func (r *memAuditRepo) last() *entity.AuditLogEntry {
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[len(r.entries)-1]
}

type memTxRunner struct {
	unitRepo  *memUnitRepo
	leaseRepo *memLeaseRepo
	auditRepo *memAuditRepo
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	unitRepo repository.UnitRepository,
	leaseRepo repository.LeaseRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	return fn(tx.unitRepo, tx.leaseRepo, tx.auditRepo)
}
