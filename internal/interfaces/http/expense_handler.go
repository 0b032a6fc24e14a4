package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/application/usecase"
)

// ExpenseHandler maneja las peticiones HTTP para gastos (protegido).
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Categoría, monto y detalles"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos (filtros por categoría, producto o ruta)
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        category    query  string  false  "Filtrar por categoría"
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Param        route_id    query  string  false  "Filtrar por ruta"
// @Param        limit       query  int     false  "Máximo de gastos (0 = todos)"
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var productID *int64
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id debe ser numérico"})
		}
		productID = &id
	}
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	out, err := h.uc.List(c.Query("category"), productID, c.Query("route_id"), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Catálogo fijo de categorías de gasto
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ExpenseCategoryResponse
// @Router       /api/expenses/categories [get]
func (h *ExpenseHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// GetByID godoc
// @Summary      Obtener gasto por ID
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del gasto"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "ID del gasto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "gasto eliminado"})
}
