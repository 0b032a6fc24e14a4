package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/application/pos"
	"github.com/camilcandy/pos-api/internal/infrastructure/pdf"
)

// POSHandler maneja el ciclo de vida de las ventas: cobrar el carrito,
// consultar, liquidar créditos y emitir recibos (texto, WhatsApp y PDF).
type POSHandler struct {
	completeSale *pos.CompleteSaleUseCase
	markPaid     *pos.MarkPaidUseCase
	queries      *pos.SaleQueryUseCase
	receiptPDF   *pdf.ReceiptGenerator
}

// NewPOSHandler construye el handler.
func NewPOSHandler(
	completeSale *pos.CompleteSaleUseCase,
	markPaid *pos.MarkPaidUseCase,
	queries *pos.SaleQueryUseCase,
	receiptPDF *pdf.ReceiptGenerator,
) *POSHandler {
	return &POSHandler{
		completeSale: completeSale,
		markPaid:     markPaid,
		queries:      queries,
		receiptPDF:   receiptPDF,
	}
}

// CompleteSale godoc
// @Summary      Cobrar el carrito (crea la venta de forma atómica)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompleteSaleRequest  true  "Carrito, método de pago y ruta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *POSHandler) CompleteSale(c *fiber.Ctx) error {
	var in dto.CompleteSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.completeSale.CompleteSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleResponse(sale))
}

// List godoc
// @Summary      Listar ventas (más reciente primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *POSHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *POSHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.queries.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkPaid godoc
// @Summary      Liquidar una venta a crédito pendiente
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pay [put]
func (h *POSHandler) MarkPaid(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	sale, err := h.markPaid.MarkPaid(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSaleResponse(sale))
}

// Receipt godoc
// @Summary      Recibo en texto plano y enlace de WhatsApp
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *POSHandler) Receipt(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.queries.Receipt(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReceiptPDF godoc
// @Summary      Recibo en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt.pdf [get]
func (h *POSHandler) ReceiptPDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	sale, settings, err := h.queries.ReceiptData(id)
	if err != nil {
		return respondError(c, err)
	}
	bytes, err := h.receiptPDF.Generate(sale, settings)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-%d.pdf"`, sale.ID))
	return c.Send(bytes)
}
