package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain/reporting"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura: carga las colecciones y delega las
// agregaciones al paquete reporting.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	expenseRepo repository.ExpenseRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	expenseRepo repository.ExpenseRepository,
) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, productRepo: productRepo, expenseRepo: expenseRepo}
}

// SalesSummary resume las ventas del rango [start, end] inclusivo.
func (uc *ReportUseCase) SalesSummary(start, end time.Time) (*dto.SalesSummaryResponse, error) {
	sales, err := uc.saleRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	summary := reporting.SummarizeSales(sales)
	return &dto.SalesSummaryResponse{
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Count:       summary.Count,
		Total:       summary.Total,
		ItemsSold:   summary.ItemsSold,
		AverageSale: summary.AverageSale,
		HighestSale: summary.HighestSale,
	}, nil
}

// TopProducts devuelve los n productos más vendidos del rango.
func (uc *ReportUseCase) TopProducts(start, end time.Time, n int) ([]dto.TopProductResponse, error) {
	sales, err := uc.saleRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	ranking := reporting.TopProducts(sales, n)
	out := make([]dto.TopProductResponse, 0, len(ranking))
	for _, r := range ranking {
		out = append(out, dto.TopProductResponse{
			ProductID: r.ProductID,
			Name:      r.Name,
			Quantity:  r.Quantity,
			Total:     r.Total,
		})
	}
	return out, nil
}

// ExpenseSummary totales de gastos por categoría en el rango.
func (uc *ReportUseCase) ExpenseSummary(start, end time.Time) (*dto.ExpenseSummaryResponse, error) {
	expenses, err := uc.expenseRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	totals := reporting.SumExpenses(expenses)
	return &dto.ExpenseSummaryResponse{
		ByCategory: totals.ByCategory,
		GrandTotal: totals.GrandTotal,
		Count:      totals.Count,
	}, nil
}

// PendingSales resumen y listado de ventas a crédito pendientes.
func (uc *ReportUseCase) PendingSales() (*dto.PendingSalesResponse, error) {
	pending, err := uc.saleRepo.ListPending()
	if err != nil {
		return nil, err
	}
	summary := reporting.SummarizePending(pending, time.Now())
	out := &dto.PendingSalesResponse{
		Count:        summary.Count,
		OverdueCount: summary.OverdueCount,
		TotalPending: summary.TotalPending,
		Sales:        make([]dto.SaleResponse, 0, len(pending)),
	}
	for _, s := range pending {
		out.Sales = append(out.Sales, dto.ToSaleResponse(s))
	}
	return out, nil
}

// ExpirationReport conteos por nivel de alerta y productos que requieren
// atención, ordenados del más próximo a caducar.
func (uc *ReportUseCase) ExpirationReport() (*dto.ExpirationReportResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	summary := reporting.SummarizeExpirations(products, now)
	out := &dto.ExpirationReportResponse{
		Expired:        summary.Expired,
		Urgent:         summary.Urgent,
		Critical:       summary.Critical,
		Warning:        summary.Warning,
		OK:             summary.OK,
		NoDate:         summary.NoDate,
		NeedsAttention: summary.NeedsAttention,
	}
	for _, p := range products {
		level := reporting.AlertLevel(p.ExpirationDate, now)
		if level == reporting.AlertNone || level == reporting.AlertOK {
			continue
		}
		days := 0
		if p.ExpirationDate != nil {
			days = reporting.DaysUntilExpiration(*p.ExpirationDate, now)
		}
		out.Items = append(out.Items, dto.ExpirationItemResponse{
			ProductID:      p.ID,
			Name:           p.Name,
			ExpirationDate: p.ExpirationDate,
			DaysLeft:       days,
			AlertLevel:     level,
		})
	}
	sort.SliceStable(out.Items, func(i, j int) bool {
		return out.Items[i].DaysLeft < out.Items[j].DaysLeft
	})
	return out, nil
}

// InventoryReport inventario valorizado a costo con marca de stock bajo.
func (uc *ReportUseCase) InventoryReport() (*dto.InventoryReportResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryReportResponse{
		Items:      make([]dto.InventoryReportItem, 0, len(products)),
		TotalValue: decimal.Zero,
	}
	for _, p := range products {
		value := p.Cost.Mul(decimal.NewFromInt(int64(p.Stock)))
		item := dto.InventoryReportItem{
			ProductID:  p.ID,
			Name:       p.Name,
			Type:       p.Type,
			Stock:      p.Stock,
			MinStock:   p.MinStock,
			Cost:       p.Cost,
			Price:      p.Price,
			StockValue: value,
			LowStock:   p.IsLowStock(),
		}
		if item.LowStock {
			out.LowStockCount++
		}
		out.TotalValue = out.TotalValue.Add(value)
		out.Items = append(out.Items, item)
	}
	return out, nil
}
