package http

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de solo lectura (protegido). Los reportes
// tabulares aceptan ?format=csv para descargar el archivo.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// dateRange parsea start/end (YYYY-MM-DD); sin parámetros usa los últimos 30 días.
func dateRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	now := time.Now()
	start := now.AddDate(0, 0, -30)
	end := now
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return start, end, false
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return start, end, false
		}
		end = parsed
	}
	return start, end, true
}

func invalidRange(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end deben tener formato YYYY-MM-DD"})
}

// sendCSV serializa las filas y responde como descarga.
func sendCSV(c *fiber.Ctx, filename string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// SalesSummary godoc
// @Summary      Resumen de ventas por periodo (rango inclusivo)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "YYYY-MM-DD (default: hace 30 días)"
// @Param        end    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200  {object}  dto.SalesSummaryResponse
// @Router       /api/reports/sales-summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	start, end, ok := dateRange(c)
	if !ok {
		return invalidRange(c)
	}
	out, err := h.uc.SalesSummary(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos del periodo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start   query  string  false  "YYYY-MM-DD"
// @Param        end     query  string  false  "YYYY-MM-DD"
// @Param        limit   query  int     false  "Tamaño del ranking"  default(10)
// @Param        format  query  string  false  "csv para descargar"
// @Success      200  {array}  dto.TopProductResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	start, end, ok := dateRange(c)
	if !ok {
		return invalidRange(c)
	}
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	out, err := h.uc.TopProducts(start, end, limit)
	if err != nil {
		return respondError(c, err)
	}
	if c.Query("format") == "csv" {
		rows := [][]string{{"product_id", "name", "quantity", "total"}}
		for _, p := range out {
			rows = append(rows, []string{
				strconv.FormatInt(p.ProductID, 10), p.Name,
				strconv.Itoa(p.Quantity), p.Total.StringFixed(2),
			})
		}
		return sendCSV(c, "top-products.csv", rows)
	}
	return c.JSON(out)
}

// Expenses godoc
// @Summary      Gastos del periodo por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "YYYY-MM-DD"
// @Param        end    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ExpenseSummaryResponse
// @Router       /api/reports/expenses [get]
func (h *ReportHandler) Expenses(c *fiber.Ctx) error {
	start, end, ok := dateRange(c)
	if !ok {
		return invalidRange(c)
	}
	out, err := h.uc.ExpenseSummary(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PendingSales godoc
// @Summary      Créditos pendientes de cobro (vencidos primero)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PendingSalesResponse
// @Router       /api/reports/pending-sales [get]
func (h *ReportHandler) PendingSales(c *fiber.Ctx) error {
	out, err := h.uc.PendingSales()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Expirations godoc
// @Summary      Alertas de caducidad por nivel
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpirationReportResponse
// @Router       /api/reports/expirations [get]
func (h *ReportHandler) Expirations(c *fiber.Ctx) error {
	out, err := h.uc.ExpirationReport()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Inventario valorizado a costo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "csv para descargar"
// @Success      200  {object}  dto.InventoryReportResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.InventoryReport()
	if err != nil {
		return respondError(c, err)
	}
	if c.Query("format") == "csv" {
		rows := [][]string{{"product_id", "name", "type", "stock", "min_stock", "cost", "price", "stock_value", "low_stock"}}
		for _, item := range out.Items {
			rows = append(rows, []string{
				strconv.FormatInt(item.ProductID, 10), item.Name, item.Type,
				strconv.Itoa(item.Stock), strconv.Itoa(item.MinStock),
				item.Cost.StringFixed(2), item.Price.StringFixed(2),
				item.StockValue.StringFixed(2), strconv.FormatBool(item.LowStock),
			})
		}
		return sendCSV(c, "inventario.csv", rows)
	}
	return c.JSON(out)
}
