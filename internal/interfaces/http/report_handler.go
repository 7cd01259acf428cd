package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ozkanv/teknopark-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de ocupación.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Occupancy godoc
// @Summary      Reporte de ocupación del parque (JSON)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OccupancyReport
// @Router       /api/reports/occupancy [get]
func (h *ReportHandler) Occupancy(c *fiber.Ctx) error {
	out, err := h.uc.Occupancy()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// OccupancyExport godoc
// @Summary      Reporte de ocupación del parque (XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/occupancy/export [get]
func (h *ReportHandler) OccupancyExport(c *fiber.Ctx) error {
	data, err := h.uc.OccupancyExport()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ocupacion.xlsx"`)
	return c.Send(data)
}
