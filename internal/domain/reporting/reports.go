// Package reporting contiene las agregaciones puras del lado de lectura:
// funciones sin estado sobre colecciones ya cargadas (ventas, gastos,
// productos). Entrada vacía produce salida vacía/cero; no hay modos de fallo.
package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// FilterSalesByDateRange devuelve las ventas cuya fecha cae en [start, end]
// inclusivo. El final del rango se extiende al último instante del día.
func FilterSalesByDateRange(sales []*entity.Sale, start, end time.Time) []*entity.Sale {
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	var out []*entity.Sale
	for _, s := range sales {
		if !s.Date.Before(start) && !s.Date.After(endOfDay) {
			out = append(out, s)
		}
	}
	return out
}

// SalesSummary resume un conjunto de ventas.
type SalesSummary struct {
	Count       int
	Total       decimal.Decimal
	ItemsSold   int
	AverageSale decimal.Decimal
	HighestSale decimal.Decimal
}

// SummarizeSales calcula totales, promedio y venta más alta.
func SummarizeSales(sales []*entity.Sale) SalesSummary {
	summary := SalesSummary{
		Total:       decimal.Zero,
		AverageSale: decimal.Zero,
		HighestSale: decimal.Zero,
	}
	for _, s := range sales {
		summary.Count++
		summary.Total = summary.Total.Add(s.Total)
		for _, d := range s.Details {
			summary.ItemsSold += d.Quantity
		}
		if s.Total.GreaterThan(summary.HighestSale) {
			summary.HighestSale = s.Total
		}
	}
	if summary.Count > 0 {
		summary.AverageSale = summary.Total.Div(decimal.NewFromInt(int64(summary.Count))).Round(2)
	}
	return summary
}

// ProductRanking acumulado de ventas de un producto.
type ProductRanking struct {
	ProductID int64
	Name      string
	Type      string
	Quantity  int
	Total     decimal.Decimal
}

// TopProducts agrupa las líneas de venta por producto y devuelve los n más
// vendidos por cantidad. El desempate entre cantidades iguales es el orden de
// primera aparición en las ventas (sort estable sobre orden de encuentro).
func TopProducts(sales []*entity.Sale, n int) []ProductRanking {
	byProduct := make(map[int64]*ProductRanking)
	var order []int64
	for _, s := range sales {
		for _, d := range s.Details {
			r, ok := byProduct[d.ProductID]
			if !ok {
				r = &ProductRanking{ProductID: d.ProductID, Name: d.Name, Total: decimal.Zero}
				byProduct[d.ProductID] = r
				order = append(order, d.ProductID)
			}
			r.Quantity += d.Quantity
			r.Total = r.Total.Add(d.Subtotal)
		}
	}

	ranking := make([]ProductRanking, 0, len(order))
	for _, id := range order {
		ranking = append(ranking, *byProduct[id])
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})
	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// ExpenseTotals totales de gastos por categoría y total general.
// Las categorías desconocidas no aparecen en ByCategory pero sí suman al
// GrandTotal.
type ExpenseTotals struct {
	ByCategory map[string]decimal.Decimal
	GrandTotal decimal.Decimal
	Count      int
}

// SumExpenses acumula gastos sobre el conjunto fijo de categorías.
func SumExpenses(expenses []*entity.Expense) ExpenseTotals {
	totals := ExpenseTotals{
		ByCategory: make(map[string]decimal.Decimal, len(entity.ExpenseCategories)),
		GrandTotal: decimal.Zero,
	}
	for _, c := range entity.ExpenseCategories {
		totals.ByCategory[c.ID] = decimal.Zero
	}
	for _, e := range expenses {
		totals.Count++
		totals.GrandTotal = totals.GrandTotal.Add(e.Amount)
		if current, ok := totals.ByCategory[e.Category]; ok {
			totals.ByCategory[e.Category] = current.Add(e.Amount)
		}
	}
	return totals
}

// FilterExpensesByDateRange devuelve los gastos con fecha en [start, end]
// inclusivo (end extendido al final del día).
func FilterExpensesByDateRange(expenses []*entity.Expense, start, end time.Time) []*entity.Expense {
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	var out []*entity.Expense
	for _, e := range expenses {
		if !e.Date.Before(start) && !e.Date.After(endOfDay) {
			out = append(out, e)
		}
	}
	return out
}

// Umbrales de caducidad en días.
const (
	ExpirationDaysWarning  = 15
	ExpirationDaysCritical = 7
	ExpirationDaysUrgent   = 3
)

// Niveles de alerta de caducidad.
const (
	AlertNone     = "none"
	AlertOK       = "ok"
	AlertWarning  = "warning"
	AlertCritical = "critical"
	AlertUrgent   = "urgent"
	AlertExpired  = "expired"
)

// DaysUntilExpiration calcula los días (por fecha, no por hora) que faltan
// para que caduque. Negativo si ya caducó.
func DaysUntilExpiration(expirationDate, now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = expirationDate.Date()
	exp := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(exp.Sub(today).Hours() / 24)
}

// AlertLevel clasifica un producto según su fecha de caducidad:
// expired < 0 ≤ urgent ≤ 3 < critical ≤ 7 < warning ≤ 15 < ok.
func AlertLevel(expirationDate *time.Time, now time.Time) string {
	if expirationDate == nil {
		return AlertNone
	}
	days := DaysUntilExpiration(*expirationDate, now)
	switch {
	case days < 0:
		return AlertExpired
	case days <= ExpirationDaysUrgent:
		return AlertUrgent
	case days <= ExpirationDaysCritical:
		return AlertCritical
	case days <= ExpirationDaysWarning:
		return AlertWarning
	default:
		return AlertOK
	}
}

// ExpirationSummary conteo de productos por nivel de alerta.
type ExpirationSummary struct {
	Expired        int
	Urgent         int
	Critical       int
	Warning        int
	OK             int
	NoDate         int
	NeedsAttention int
}

// SummarizeExpirations cuenta productos por nivel de alerta de caducidad.
func SummarizeExpirations(products []*entity.Product, now time.Time) ExpirationSummary {
	var summary ExpirationSummary
	for _, p := range products {
		switch AlertLevel(p.ExpirationDate, now) {
		case AlertExpired:
			summary.Expired++
		case AlertUrgent:
			summary.Urgent++
		case AlertCritical:
			summary.Critical++
		case AlertWarning:
			summary.Warning++
		case AlertOK:
			summary.OK++
		case AlertNone:
			summary.NoDate++
		}
	}
	summary.NeedsAttention = summary.Expired + summary.Urgent + summary.Critical + summary.Warning
	return summary
}

// ExpiringProducts devuelve los productos que caducan dentro de daysAhead días
// (sin incluir los ya caducados), ordenados del más próximo al más lejano.
func ExpiringProducts(products []*entity.Product, now time.Time, daysAhead int) []*entity.Product {
	var out []*entity.Product
	for _, p := range products {
		if p.ExpirationDate == nil {
			continue
		}
		days := DaysUntilExpiration(*p.ExpirationDate, now)
		if days >= 0 && days <= daysAhead {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpirationDate.Before(*out[j].ExpirationDate)
	})
	return out
}

// PendingSummary resumen de ventas a crédito pendientes.
type PendingSummary struct {
	Count        int
	OverdueCount int
	TotalPending decimal.Decimal
}

// SummarizePending resume ventas pendientes y cuenta las vencidas a la fecha.
func SummarizePending(pending []*entity.Sale, today time.Time) PendingSummary {
	summary := PendingSummary{TotalPending: decimal.Zero}
	for _, s := range pending {
		summary.Count++
		summary.TotalPending = summary.TotalPending.Add(s.Total)
		if s.IsOverdue(today) {
			summary.OverdueCount++
		}
	}
	return summary
}
