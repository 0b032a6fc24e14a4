package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/application/usecase"
)

// RouteHandler maneja las peticiones HTTP para rutas de reparto (protegido).
type RouteHandler struct {
	uc *usecase.RouteUseCase
}

// NewRouteHandler construye el handler.
func NewRouteHandler(uc *usecase.RouteUseCase) *RouteHandler {
	return &RouteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ruta (el ID se deriva del nombre)
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRouteRequest  true  "Nombre y descripción"
// @Success      201   {object}  dto.RouteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/routes [post]
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRouteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar rutas
// @Tags         routes
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo rutas activas"
// @Success      200  {array}  dto.RouteResponse
// @Router       /api/routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ruta por ID
// @Tags         routes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ruta"
// @Success      200  {object}  dto.RouteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/routes/{id} [get]
func (h *RouteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ruta (el ID no cambia; incluye activar/desactivar)
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ruta"
// @Param        body  body  dto.UpdateRouteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RouteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/routes/{id} [put]
func (h *RouteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRouteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
