package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResponse resumen de ventas de un periodo.
type SalesSummaryResponse struct {
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
	ItemsSold   int             `json:"items_sold"`
	AverageSale decimal.Decimal `json:"average_sale"`
	HighestSale decimal.Decimal `json:"highest_sale"`
}

// TopProductResponse un producto del ranking de más vendidos.
type TopProductResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// ExpenseSummaryResponse totales de gastos por categoría.
type ExpenseSummaryResponse struct {
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	GrandTotal decimal.Decimal            `json:"grand_total"`
	Count      int                        `json:"count"`
}

// PendingSalesResponse resumen y listado de ventas a crédito pendientes.
type PendingSalesResponse struct {
	Count        int             `json:"count"`
	OverdueCount int             `json:"overdue_count"`
	TotalPending decimal.Decimal `json:"total_pending"`
	Sales        []SaleResponse  `json:"sales"`
}

// ExpirationItemResponse un producto con su nivel de alerta de caducidad.
type ExpirationItemResponse struct {
	ProductID      int64      `json:"product_id"`
	Name           string     `json:"name"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	DaysLeft       int        `json:"days_left"`
	AlertLevel     string     `json:"alert_level"`
}

// ExpirationReportResponse conteos por nivel y productos próximos a caducar.
type ExpirationReportResponse struct {
	Expired        int                      `json:"expired"`
	Urgent         int                      `json:"urgent"`
	Critical       int                      `json:"critical"`
	Warning        int                      `json:"warning"`
	OK             int                      `json:"ok"`
	NoDate         int                      `json:"no_date"`
	NeedsAttention int                      `json:"needs_attention"`
	Items          []ExpirationItemResponse `json:"items"`
}

// InventoryReportItem una fila del reporte de inventario valorizado.
type InventoryReportItem struct {
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"`
	Cost       decimal.Decimal `json:"cost"`
	Price      decimal.Decimal `json:"price"`
	StockValue decimal.Decimal `json:"stock_value"` // Cost × Stock
	LowStock   bool            `json:"low_stock"`
}

// InventoryReportResponse inventario valorizado a costo.
type InventoryReportResponse struct {
	Items         []InventoryReportItem `json:"items"`
	TotalValue    decimal.Decimal       `json:"total_value"`
	LowStockCount int                   `json:"low_stock_count"`
}
