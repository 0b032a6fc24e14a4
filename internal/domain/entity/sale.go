package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en el punto de venta.
const (
	PaymentEfectivo      = "efectivo"
	PaymentTransferencia = "transferencia"
	PaymentDeposito      = "deposito"
	PaymentCredito       = "credito"
)

// Estados de una venta. Solo las ventas a crédito nacen en pending;
// la transición pending → completed es de un solo sentido (markAsPaid).
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
)

// PaymentLabels etiquetas legibles por método de pago (para recibos y reportes).
var PaymentLabels = map[string]string{
	PaymentEfectivo:      "Efectivo",
	PaymentTransferencia: "Transferencia",
	PaymentDeposito:      "Depósito",
	PaymentCredito:       "A Crédito",
}

// PaymentLabelCreditoPagado reemplaza la etiqueta al saldar una venta a crédito.
const PaymentLabelCreditoPagado = "A Crédito (Pagado)"

// ValidPaymentMethod indica si el método es uno de los aceptados.
func ValidPaymentMethod(method string) bool {
	_, ok := PaymentLabels[method]
	return ok
}

// SaleDetail es una línea de venta con nombre y precio congelados al momento
// de la transacción (los cambios posteriores del producto no la afectan).
// Los tags json definen la forma de los detalles almacenados en la columna
// JSONB de ventas.
type SaleDetail struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"` // Price × Quantity, sin impuesto prorrateado
}

// Sale es una venta completada por el motor de transacciones. Inmutable tras
// su creación, salvo Status/PaidAt/PaymentLabel al liquidar un crédito.
type Sale struct {
	ID            int64
	Date          time.Time
	CustomerName  string
	PaymentMethod string
	PaymentLabel  string
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // porcentaje (16 = 16%)
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	Details       []SaleDetail
	Status        string
	CreditDueDate *time.Time // solo ventas a crédito
	PaidAt        *time.Time
	CreatedAt     time.Time
}

// IsOverdue indica si una venta a crédito pendiente ya venció respecto a today
// (comparación por día, no por hora).
func (s *Sale) IsOverdue(today time.Time) bool {
	if s.Status != SaleStatusPending || s.CreditDueDate == nil {
		return false
	}
	y, m, d := today.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return s.CreditDueDate.Before(startOfDay)
}
