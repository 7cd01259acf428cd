package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/usecase"
)

// BlockHandler maneja las peticiones HTTP para Block (protegido).
type BlockHandler struct {
	uc *usecase.BlockUseCase
}

// NewBlockHandler construye el handler.
func NewBlockHandler(uc *usecase.BlockUseCase) *BlockHandler {
	return &BlockHandler{uc: uc}
}

// Create godoc
// @Summary      Crear bloque con sus pisos
// @Tags         blocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBlockRequest  true  "Datos del bloque"
// @Success      201   {object}  dto.BlockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/blocks [post]
func (h *BlockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBlockRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in, actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bloque por ID (pisos ordenados + uso por piso)
// @Tags         blocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del bloque"
// @Success      200  {object}  dto.BlockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blocks/{id} [get]
func (h *BlockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bloque no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bloque
// @Tags         blocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del bloque"
// @Param        body  body  dto.UpdateBlockRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BlockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/blocks/{id} [put]
func (h *BlockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBlockRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, actor(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bloque no encontrado"})
	}
	return c.JSON(out)
}

// ReplaceFloors godoc
// @Summary      Reemplazar el conjunto de pisos del bloque
// @Description  Encoger un piso por debajo de su área usada se rechaza con 409.
// @Tags         blocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del bloque"
// @Param        body  body  dto.ReplaceFloorsRequest  true  "Pisos nuevos"
// @Success      200   {object}  dto.BlockResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/blocks/{id}/floors [put]
func (h *BlockHandler) ReplaceFloors(c *fiber.Ctx) error {
	var in dto.ReplaceFloorsRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.ReplaceFloors(c.Context(), c.Params("id"), in, actor(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bloque no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bloques (opcionalmente por campus)
// @Tags         blocks
// @Security     Bearer
// @Produce      json
// @Param        campus_id  query  string  false  "Filtrar por campus"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.BlockListResponse
// @Router       /api/blocks [get]
func (h *BlockHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	campusID := c.Query("campus_id")
	var (
		out *dto.BlockListResponse
		err error
	)
	if campusID != "" {
		out, err = h.uc.ListByCampus(campusID, limit, offset)
	} else {
		out, err = h.uc.List(limit, offset)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bloque (solo sin unidades activas)
// @Tags         blocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del bloque"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/blocks/{id} [delete]
func (h *BlockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), actor(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
