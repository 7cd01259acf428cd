package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ozkanv/teknopark-api/internal/application/allocation"
	"github.com/ozkanv/teknopark-api/internal/application/dto"
)

// AllocationHandler maneja asignar, redimensionar y el retiro en dos pasos.
type AllocationHandler struct {
	uc *allocation.AllocationUseCase
}

// NewAllocationHandler construye el handler.
func NewAllocationHandler(uc *allocation.AllocationUseCase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

func allocActor(c *fiber.Ctx) allocation.Actor {
	return allocation.Actor{User: GetUserName(c), Role: GetUserRole(c)}
}

// Assign godoc
// @Summary      Asignar una empresa a un piso
// @Description  Valida la capacidad del piso bajo lock; la sobredensidad solo advierte.
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignRequest  true  "Datos de la asignación"
// @Success      201   {object}  dto.AllocationResponse
// @Failure      409   {object}  dto.ErrorResponse  "Capacidad excedida o empresa ya asignada"
// @Router       /api/units [post]
func (h *AllocationHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Assign(c.Context(), in, allocActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Resize godoc
// @Summary      Redimensionar una unidad
// @Description  La renta nueva es área * tarifa fija (renta actual / área actual).
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.ResizeRequest  true  "Área nueva"
// @Success      200   {object}  dto.AllocationResponse
// @Failure      409   {object}  dto.ErrorResponse  "Capacidad excedida"
// @Router       /api/units/{id}/resize [put]
func (h *AllocationHandler) Resize(c *fiber.Ctx) error {
	var in dto.ResizeRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Resize(c.Context(), c.Params("id"), in, allocActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RequestRemoval godoc
// @Summary      Solicitar el retiro de una unidad (paso 1 de 2)
// @Description  Emite un token; el retiro real exige confirmar con la frase exacta.
// @Tags         allocation
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.RemovalTicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/units/{id}/removal [post]
func (h *AllocationHandler) RequestRemoval(c *fiber.Ctx) error {
	out, err := h.uc.RequestRemoval(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ConfirmRemoval godoc
// @Summary      Confirmar el retiro de una unidad (paso 2 de 2)
// @Description  Exige el token vigente y la frase literal; deja el contrato DETACHED con la tarifa preservada.
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmRemovalRequest  true  "Token + frase"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse  "Frase incorrecta"
// @Failure      409   {object}  dto.ErrorResponse  "Token vencido"
// @Router       /api/units/removal/confirm [post]
func (h *AllocationHandler) ConfirmRemoval(c *fiber.Ctx) error {
	var in dto.ConfirmRemovalRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	if err := h.uc.ConfirmRemoval(c.Context(), in, allocActor(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
