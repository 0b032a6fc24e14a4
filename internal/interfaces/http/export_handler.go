package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilcandy/pos-api/internal/application/usecase"
)

// ExportHandler maneja el respaldo completo de datos (solo admin).
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Respaldo completo en JSON (todas las colecciones y contadores)
// @Tags         export
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExportResponse
// @Router       /api/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="respaldo-pos.json"`)
	return c.JSON(out)
}
