package usecase

import (
	"time"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/domain/capacity"
	"github.com/ozkanv/teknopark-api/internal/domain/entity"
	"github.com/ozkanv/teknopark-api/internal/domain/repository"
)

// ReportExporter serializa el reporte de ocupación a un formato descargable.
type ReportExporter interface {
	OccupancyReport(report *dto.OccupancyReport) ([]byte, error)
}

// ReportUseCase arma el reporte de ocupación del parque: una fila por unidad
// activa (con el uso de su piso) y una fila por piso vacío, más el agregado
// total. Todo recalculado desde los registros crudos al momento de generar.
type ReportUseCase struct {
	campusRepo  repository.CampusRepository
	blockRepo   repository.BlockRepository
	unitRepo    repository.UnitRepository
	companyRepo repository.CompanyRepository
	exporter    ReportExporter
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	campusRepo repository.CampusRepository,
	blockRepo repository.BlockRepository,
	unitRepo repository.UnitRepository,
	companyRepo repository.CompanyRepository,
	exporter ReportExporter,
) *ReportUseCase {
	return &ReportUseCase{
		campusRepo:  campusRepo,
		blockRepo:   blockRepo,
		unitRepo:    unitRepo,
		companyRepo: companyRepo,
		exporter:    exporter,
		now:         time.Now,
	}
}

// Occupancy genera el reporte de ocupación del parque completo.
func (uc *ReportUseCase) Occupancy() (*dto.OccupancyReport, error) {
	campuses, err := uc.campusRepo.List(1000, 0)
	if err != nil {
		return nil, err
	}

	report := &dto.OccupancyReport{
		GeneratedAt: uc.now().Format(time.RFC3339),
	}
	blockUsages := make([]capacity.Usage, 0)
	companyNames := make(map[string]string)

	for _, campus := range campuses {
		blocks, err := uc.blockRepo.ListByCampus(campus.ID, 1000, 0)
		if err != nil {
			return nil, err
		}
		for _, block := range blocks {
			units, err := uc.unitRepo.ListByBlock(block.ID)
			if err != nil {
				return nil, err
			}
			blockUsages = append(blockUsages, capacity.BlockUsage(units, block.Floors))

			ordered := make([]entity.FloorCapacity, len(block.Floors))
			copy(ordered, block.Floors)
			capacity.SortFloors(ordered)

			for _, floor := range ordered {
				fu := capacity.FloorUsage(units, floor)
				floorUsage := *toUsageResponse(fu)
				wrote := false
				for _, u := range units {
					if u.Floor != floor.Floor || !u.Active() {
						continue
					}
					name := ""
					if u.CompanyID != nil {
						var err error
						name, err = uc.companyName(*u.CompanyID, companyNames)
						if err != nil {
							return nil, err
						}
					}
					report.Rows = append(report.Rows, dto.OccupancyReportRow{
						CampusName:  campus.Name,
						BlockName:   block.Name,
						Floor:       floor.Floor,
						Usage:       floorUsage,
						CompanyName: name,
						UnitAreaSqM: u.AreaSqM.StringFixed(2),
						UnitStatus:  u.Status,
					})
					wrote = true
				}
				if !wrote {
					report.Rows = append(report.Rows, dto.OccupancyReportRow{
						CampusName: campus.Name,
						BlockName:  block.Name,
						Floor:      floor.Floor,
						Usage:      floorUsage,
					})
				}
			}
		}
	}
	report.ParkTotal = *toUsageResponse(capacity.CampusUsage(blockUsages))
	return report, nil
}

// OccupancyExport genera el reporte y lo exporta (hoja de cálculo).
func (uc *ReportUseCase) OccupancyExport() ([]byte, error) {
	report, err := uc.Occupancy()
	if err != nil {
		return nil, err
	}
	return uc.exporter.OccupancyReport(report)
}

func (uc *ReportUseCase) companyName(id string, cache map[string]string) (string, error) {
	if name, ok := cache[id]; ok {
		return name, nil
	}
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	name := ""
	if company != nil {
		name = company.Name
	}
	cache[id] = name
	return name, nil
}
