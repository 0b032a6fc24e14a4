package reporting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/reporting"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func saleOn(day string, total string, details ...entity.SaleDetail) *entity.Sale {
	date, _ := time.Parse("2006-01-02", day)
	return &entity.Sale{Date: date, Total: d(total), Details: details}
}

func detail(productID int64, name string, qty int, subtotal string) entity.SaleDetail {
	return entity.SaleDetail{ProductID: productID, Name: name, Quantity: qty, Subtotal: d(subtotal)}
}

// El rango de fechas es inclusivo en ambos extremos: una venta en el día final
// entra aunque su hora sea posterior al inicio del día.
func TestFilterSalesByDateRange_Inclusivo(t *testing.T) {
	dentro1 := saleOn("2025-03-01", "10")
	dentro2 := &entity.Sale{Date: time.Date(2025, 3, 15, 22, 30, 0, 0, time.UTC), Total: d("20")}
	fuera := saleOn("2025-03-16", "30")

	start, _ := time.Parse("2006-01-02", "2025-03-01")
	end, _ := time.Parse("2006-01-02", "2025-03-15")

	got := reporting.FilterSalesByDateRange([]*entity.Sale{dentro1, dentro2, fuera}, start, end)
	require.Len(t, got, 2)
	assert.Equal(t, dentro1, got[0])
	assert.Equal(t, dentro2, got[1])
}

func TestSummarizeSales_Vacio(t *testing.T) {
	got := reporting.SummarizeSales(nil)
	assert.Equal(t, 0, got.Count)
	assert.True(t, got.Total.IsZero())
	assert.True(t, got.AverageSale.IsZero())
	assert.True(t, got.HighestSale.IsZero())
}

func TestSummarizeSales_Totales(t *testing.T) {
	sales := []*entity.Sale{
		saleOn("2025-03-01", "100.00", detail(1, "Gomitas", 2, "100.00")),
		saleOn("2025-03-02", "50.00", detail(2, "Papas", 3, "50.00")),
	}
	got := reporting.SummarizeSales(sales)
	assert.Equal(t, 2, got.Count)
	assert.True(t, got.Total.Equal(d("150.00")), "total: %s", got.Total)
	assert.Equal(t, 5, got.ItemsSold)
	assert.True(t, got.AverageSale.Equal(d("75.00")))
	assert.True(t, got.HighestSale.Equal(d("100.00")))
}

// Desempate entre cantidades iguales: orden de primera aparición en las ventas.
func TestTopProducts_DesempatePorOrdenDeEncuentro(t *testing.T) {
	sales := []*entity.Sale{
		saleOn("2025-03-01", "0",
			detail(7, "Cacahuates", 5, "75.00"),
			detail(3, "Gomitas", 5, "60.00"),
		),
		saleOn("2025-03-02", "0",
			detail(9, "Papas", 8, "144.00"),
		),
	}

	got := reporting.TopProducts(sales, 5)
	require.Len(t, got, 3)
	assert.Equal(t, int64(9), got[0].ProductID)
	// 7 y 3 empatan con 5 unidades; 7 apareció primero.
	assert.Equal(t, int64(7), got[1].ProductID)
	assert.Equal(t, int64(3), got[2].ProductID)
}

func TestTopProducts_AgrupaYRecorta(t *testing.T) {
	sales := []*entity.Sale{
		saleOn("2025-03-01", "0", detail(1, "Gomitas", 2, "24.00")),
		saleOn("2025-03-02", "0", detail(1, "Gomitas", 3, "36.00"), detail(2, "Papas", 1, "18.00")),
	}

	got := reporting.TopProducts(sales, 1)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ProductID)
	assert.Equal(t, 5, got[0].Quantity)
	assert.True(t, got[0].Total.Equal(d("60.00")))
}

// Las categorías desconocidas quedan fuera de los totales por categoría pero
// sí cuentan en el total general.
func TestSumExpenses_CategoriaDesconocida(t *testing.T) {
	expenses := []*entity.Expense{
		{Category: entity.ExpenseGasolina, Amount: d("200.00")},
		{Category: entity.ExpenseGasolina, Amount: d("150.00")},
		{Category: "categoria_vieja", Amount: d("99.00")},
	}

	got := reporting.SumExpenses(expenses)
	assert.True(t, got.ByCategory[entity.ExpenseGasolina].Equal(d("350.00")))
	_, ok := got.ByCategory["categoria_vieja"]
	assert.False(t, ok)
	assert.True(t, got.GrandTotal.Equal(d("449.00")))
	assert.Equal(t, 3, got.Count)

	// El mapa siempre trae las 6 categorías fijas, aunque estén en cero.
	assert.Len(t, got.ByCategory, len(entity.ExpenseCategories))
	assert.True(t, got.ByCategory[entity.ExpenseSueldos].IsZero())
}

func TestFilterExpensesByDateRange_Inclusivo(t *testing.T) {
	e1 := &entity.Expense{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: d("10")}
	e2 := &entity.Expense{Date: time.Date(2025, 3, 31, 18, 0, 0, 0, time.UTC), Amount: d("20")}
	e3 := &entity.Expense{Date: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), Amount: d("30")}

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	got := reporting.FilterExpensesByDateRange([]*entity.Expense{e1, e2, e3}, start, end)
	require.Len(t, got, 2)
}

func TestAlertLevel_Umbrales(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		dt := now.AddDate(0, 0, offset)
		return &dt
	}

	cases := []struct {
		name string
		exp  *time.Time
		want string
	}{
		{"sin fecha", nil, reporting.AlertNone},
		{"ayer", day(-1), reporting.AlertExpired},
		{"hoy", day(0), reporting.AlertUrgent},
		{"en 3 dias", day(3), reporting.AlertUrgent},
		{"en 4 dias", day(4), reporting.AlertCritical},
		{"en 7 dias", day(7), reporting.AlertCritical},
		{"en 8 dias", day(8), reporting.AlertWarning},
		{"en 15 dias", day(15), reporting.AlertWarning},
		{"en 16 dias", day(16), reporting.AlertOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reporting.AlertLevel(tc.exp, now))
		})
	}
}

func TestSummarizeExpirations(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		dt := now.AddDate(0, 0, offset)
		return &dt
	}
	products := []*entity.Product{
		{Name: "caducado", ExpirationDate: day(-2)},
		{Name: "urgente", ExpirationDate: day(1)},
		{Name: "critico", ExpirationDate: day(5)},
		{Name: "advertencia", ExpirationDate: day(10)},
		{Name: "ok", ExpirationDate: day(60)},
		{Name: "sin fecha"},
	}

	got := reporting.SummarizeExpirations(products, now)
	assert.Equal(t, 1, got.Expired)
	assert.Equal(t, 1, got.Urgent)
	assert.Equal(t, 1, got.Critical)
	assert.Equal(t, 1, got.Warning)
	assert.Equal(t, 1, got.OK)
	assert.Equal(t, 1, got.NoDate)
	assert.Equal(t, 4, got.NeedsAttention)
}

func TestExpiringProducts_OrdenadosPorFecha(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		dt := now.AddDate(0, 0, offset)
		return &dt
	}
	products := []*entity.Product{
		{Name: "lejano", ExpirationDate: day(14)},
		{Name: "proximo", ExpirationDate: day(2)},
		{Name: "caducado", ExpirationDate: day(-1)},
		{Name: "fuera de rango", ExpirationDate: day(40)},
	}

	got := reporting.ExpiringProducts(products, now, reporting.ExpirationDaysWarning)
	require.Len(t, got, 2)
	assert.Equal(t, "proximo", got[0].Name)
	assert.Equal(t, "lejano", got[1].Name)
}

func TestSummarizePending(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	due := func(day string) *time.Time {
		dt, _ := time.Parse("2006-01-02", day)
		return &dt
	}
	pending := []*entity.Sale{
		{Status: entity.SaleStatusPending, Total: d("100"), CreditDueDate: due("2025-03-01")},
		{Status: entity.SaleStatusPending, Total: d("80"), CreditDueDate: due("2025-03-20")},
		{Status: entity.SaleStatusPending, Total: d("50")},
	}

	got := reporting.SummarizePending(pending, today)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 1, got.OverdueCount)
	assert.True(t, got.TotalPending.Equal(d("230")))
}
