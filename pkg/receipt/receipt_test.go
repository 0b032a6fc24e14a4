package receipt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/pkg/receipt"
)

func sampleSale() *entity.Sale {
	return &entity.Sale{
		ID:            42,
		Date:          time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		CustomerName:  "Cliente General",
		PaymentMethod: entity.PaymentEfectivo,
		PaymentLabel:  "Efectivo",
		Subtotal:      decimal.RequireFromString("60.00"),
		TaxRate:       decimal.NewFromInt(16),
		TaxAmount:     decimal.RequireFromString("9.60"),
		Total:         decimal.RequireFromString("69.60"),
		Details: []entity.SaleDetail{
			{ProductID: 1, Name: "Gomitas", Quantity: 3, Price: decimal.RequireFromString("20.00"), Subtotal: decimal.RequireFromString("60.00")},
		},
		Status: entity.SaleStatusCompleted,
	}
}

func TestText_ContenidoDelRecibo(t *testing.T) {
	settings := entity.DefaultSettings()
	got := receipt.Text(sampleSale(), &settings)

	assert.Contains(t, got, "🍬 *Cami Candy*")
	assert.Contains(t, got, "📋 *Recibo #42*")
	assert.Contains(t, got, "👤 Cliente: Cliente General")
	assert.Contains(t, got, "💳 Pago: Efectivo")
	assert.Contains(t, got, "  3x Gomitas")
	assert.Contains(t, got, "Subtotal: $60.00")
	assert.Contains(t, got, "Impuesto (16%): $9.60")
	assert.Contains(t, got, "*TOTAL: $69.60*")
	assert.Contains(t, got, "¡Gracias por su compra! Vuelva pronto.")
}

func TestText_ValoresPorDefecto(t *testing.T) {
	got := receipt.Text(sampleSale(), &entity.Settings{})

	assert.Contains(t, got, "*Candy Cami*")
	assert.Contains(t, got, "¡Gracias por su compra!")
}

func TestWhatsAppURL(t *testing.T) {
	settings := entity.DefaultSettings()
	got := receipt.WhatsAppURL(sampleSale(), &settings)

	assert.True(t, strings.HasPrefix(got, "https://wa.me/?text="))
	// El texto va codificado: no debe quedar ningún salto de línea crudo.
	assert.NotContains(t, got, "\n")
	assert.Contains(t, got, "Recibo")
}
