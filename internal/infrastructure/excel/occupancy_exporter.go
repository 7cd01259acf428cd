package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/usecase"
)

var _ usecase.ReportExporter = (*Exporter)(nil)

const sheet = "Ocupación"

// Exporter serializa reportes a XLSX con excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// OccupancyReport genera la hoja de ocupación: una fila por unidad (o por piso
// vacío) y el total del parque al final.
func (e *Exporter) OccupancyReport(report *dto.OccupancyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("eliminar hoja por defecto: %w", err)
	}

	headers := []string{"Campus", "Bloque", "Piso", "Total m²", "Usado m²", "Restante m²", "Ocupación %", "Empresa", "Área unidad m²", "Estado"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	rowIdx := 2
	for _, row := range report.Rows {
		values := []any{
			row.CampusName, row.BlockName, row.Floor,
			row.Usage.TotalSqM.InexactFloat64(),
			row.Usage.UsedSqM.InexactFloat64(),
			row.Usage.RemainingSqM.InexactFloat64(),
			row.Usage.OccupancyPct.InexactFloat64(),
			row.CompanyName, row.UnitAreaSqM, row.UnitStatus,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		rowIdx++
	}

	// Fila de total del parque
	totals := []any{
		"TOTAL", "", report.GeneratedAt,
		report.ParkTotal.TotalSqM.InexactFloat64(),
		report.ParkTotal.UsedSqM.InexactFloat64(),
		report.ParkTotal.RemainingSqM.InexactFloat64(),
		report.ParkTotal.OccupancyPct.InexactFloat64(),
		"", "", "",
	}
	for i, v := range totals {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
