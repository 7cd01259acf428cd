package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/usecase"
)

// LeaseHandler maneja las peticiones HTTP para Lease (protegido).
// El query param masked=true activa el modo presentación: los montos salen
// enmascarados sin alterar el estado numérico.
type LeaseHandler struct {
	uc *usecase.LeaseUseCase
}

// NewLeaseHandler construye el handler.
func NewLeaseHandler(uc *usecase.LeaseUseCase) *LeaseHandler {
	return &LeaseHandler{uc: uc}
}

// GetByCompany godoc
// @Summary      Obtener el contrato de una empresa
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        masked     query  bool    false  "Modo presentación (montos enmascarados)"
// @Success      200  {object}  dto.LeaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/lease [get]
func (h *LeaseHandler) GetByCompany(c *fiber.Ctx) error {
	out, err := h.uc.GetByCompany(c.Params("companyId"), c.QueryBool("masked"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// UpdateFees godoc
// @Summary      Actualizar renta mensual y/o cuota de operación
// @Tags         leases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateLeaseFeesRequest  true  "Montos"
// @Success      200   {object}  dto.LeaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leases/{id}/fees [put]
func (h *LeaseHandler) UpdateFees(c *fiber.Ctx) error {
	var in dto.UpdateLeaseFeesRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateFees(c.Context(), c.Params("id"), in, actor(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// UpdateDates godoc
// @Summary      Actualizar vigencia del contrato
// @Description  El fin debe ser posterior al inicio y no puede estar en el pasado.
// @Tags         leases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateLeaseDatesRequest  true  "Fechas (YYYY-MM-DD)"
// @Success      200   {object}  dto.LeaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leases/{id}/dates [put]
func (h *LeaseHandler) UpdateDates(c *fiber.Ctx) error {
	var in dto.UpdateLeaseDatesRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateDates(c.Context(), c.Params("id"), in, actor(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// AddDocument godoc
// @Summary      Adjuntar documento al contrato (máximo 4)
// @Tags         leases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.AddDocumentRequest  true  "Documento"
// @Success      200   {object}  dto.LeaseResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/leases/{id}/documents [post]
func (h *LeaseHandler) AddDocument(c *fiber.Ctx) error {
	var in dto.AddDocumentRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.AddDocument(c.Context(), c.Params("id"), in, actor(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// RemoveDocument godoc
// @Summary      Quitar documento del contrato por índice
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del contrato"
// @Param        index  path  int     true  "Índice del documento"
// @Success      200    {object}  dto.LeaseResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/leases/{id}/documents/{index} [delete]
func (h *LeaseHandler) RemoveDocument(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	out, err := h.uc.RemoveDocument(c.Context(), c.Params("id"), index, actor(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// ListExtended godoc
// @Summary      Listado extendido empresa+campus+bloque+unidad+contrato
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int   false  "Límite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Param        masked  query  bool  false  "Modo presentación (montos enmascarados)"
// @Success      200     {object}  dto.ExtendedLeaseListResponse
// @Router       /api/leases/extended [get]
func (h *LeaseHandler) ListExtended(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListExtended(limit, offset, c.QueryBool("masked"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
