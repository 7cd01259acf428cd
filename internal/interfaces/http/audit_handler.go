package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appaudit "github.com/ozkanv/teknopark-api/internal/application/audit"
	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/rollback"
	"github.com/ozkanv/teknopark-api/internal/domain"
)

// AuditHandler maneja el listado de la bitácora y el protocolo de rollback.
type AuditHandler struct {
	uc          *appaudit.AuditUseCase
	coordinator *rollback.Coordinator
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *appaudit.AuditUseCase, coordinator *rollback.Coordinator) *AuditHandler {
	return &AuditHandler{uc: uc, coordinator: coordinator}
}

// List godoc
// @Summary      Listar la bitácora con filtros combinables (AND)
// @Description  AUTH queda fuera salvo include_auth=true. La página vuelve a 1 cuando cambia el total filtrado.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        window        query  string  false  "1H, 6H, 12H, 24H, 3D, 7D, ALL"  default(ALL)
// @Param        action        query  string  false  "CREATE, UPDATE, DELETE, ALL"    default(ALL)
// @Param        text          query  string  false  "Substring (sin mayúsculas/minúsculas)"
// @Param        include_auth  query  bool    false  "Incluir entradas AUTH"
// @Param        page          query  int     false  "Página (1-based)"  default(1)
// @Success      200  {object}  dto.AuditLogListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var in dto.AuditLogQuery
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	out, err := h.uc.Query(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PreviewRollback godoc
// @Summary      Vista previa de revertir un DELETE (paso 1 del protocolo)
// @Description  Solo entradas DELETE con snapshot dentro de la ventana. Las no elegibles responden 404.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.RollbackPreviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Otro rollback en curso"
// @Router       /api/audit/{id}/rollback/preview [post]
func (h *AuditHandler) PreviewRollback(c *fiber.Ctx) error {
	entryID := c.Params("id")
	preview, err := h.coordinator.Preview(c.Context(), entryID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.RollbackPreviewResponse{
		EntryID:  entryID,
		Type:     preview.Type,
		Messages: preview.Messages,
	})
}

// ConfirmRollback godoc
// @Summary      Confirmar la reversión previsualizada (paso 2 del protocolo)
// @Description  Solo válido para la misma entrada previsualizada. El resultado queda como entrada nueva de la bitácora.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.RollbackResultResponse
// @Failure      409  {object}  dto.ErrorResponse  "Sin preview previo o entrada distinta"
// @Router       /api/audit/{id}/rollback/confirm [post]
func (h *AuditHandler) ConfirmRollback(c *fiber.Ctx) error {
	entryID := c.Params("id")
	status, err := h.coordinator.Confirm(c.Context(), entryID, GetUserName(c), GetUserRole(c))
	out := dto.RollbackResultResponse{EntryID: entryID, Status: status}
	if err != nil {
		// Los abusos del protocolo (sin preview, entrada distinta, no elegible)
		// van como error de transporte; un commit que falló es desenlace FAILED
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return writeError(c, err)
		}
		out.Message = err.Error()
		return c.JSON(out)
	}
	return c.JSON(out)
}

// CancelRollback godoc
// @Summary      Cancelar el protocolo de rollback en curso
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "No hay protocolo en curso"
// @Router       /api/audit/rollback/cancel [post]
func (h *AuditHandler) CancelRollback(c *fiber.Ctx) error {
	if err := h.coordinator.Cancel(); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
