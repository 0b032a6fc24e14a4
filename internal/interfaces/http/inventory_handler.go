package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilcandy/pos-api/internal/application/inventory"
)

// InventoryHandler maneja el historial global de movimientos de stock.
type InventoryHandler struct {
	movements *inventory.MovementQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *inventory.MovementQueryUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements}
}

// Movements godoc
// @Summary      Movimientos de stock recientes
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de movimientos (0 = todos)"  default(50)
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 0 {
		limit = 0
	}
	out, err := h.movements.List(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
