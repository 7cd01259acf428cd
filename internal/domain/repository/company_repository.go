package repository

import "github.com/ozkanv/teknopark-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company y su
// historial de puntaje.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	Delete(id string) error

	AddScoreEntry(entry *entity.ScoreEntry) error
	ListScoreEntries(companyID string) ([]*entity.ScoreEntry, error)
	DeleteScoreEntry(id string) error
}
