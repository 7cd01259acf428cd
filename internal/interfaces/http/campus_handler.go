package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ozkanv/teknopark-api/internal/application/dto"
	"github.com/ozkanv/teknopark-api/internal/application/usecase"
)

// CampusHandler maneja las peticiones HTTP para Campus (protegido).
type CampusHandler struct {
	uc *usecase.CampusUseCase
}

// NewCampusHandler construye el handler.
func NewCampusHandler(uc *usecase.CampusUseCase) *CampusHandler {
	return &CampusHandler{uc: uc}
}

// Create godoc
// @Summary      Crear campus
// @Tags         campuses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampusRequest  true  "Datos del campus"
// @Success      201   {object}  dto.CampusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/campuses [post]
func (h *CampusHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampusRequest
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
// @Summary      Obtener campus por ID (con ocupación agregada)
// @Tags         campuses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del campus"
// @Success      200  {object}  dto.CampusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campuses/{id} [get]
func (h *CampusHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campus no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar campus
// @Tags         campuses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del campus"
// @Param        body  body  dto.UpdateCampusRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CampusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/campuses/{id} [put]
func (h *CampusHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCampusRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, actor(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campus no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar campus
// @Tags         campuses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CampusListResponse
// @Router       /api/campuses [get]
func (h *CampusHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar campus (solo sin bloques)
// @Tags         campuses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del campus"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/campuses/{id} [delete]
func (h *CampusHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), actor(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// actor arma la identidad del actor desde los locals del middleware de auth.
func actor(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{User: GetUserName(c), Role: GetUserRole(c)}
}

// pageParams lee limit/offset con defaults y topes.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
