package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// CartItemRequest una línea del carrito a vender.
type CartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// CompleteSaleRequest entrada del motor de ventas.
// CreditDueDate es obligatoria cuando el método de pago es "credito".
type CompleteSaleRequest struct {
	Items         []CartItemRequest `json:"items" validate:"required,min=1"`
	CustomerName  string            `json:"customer_name"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
	RouteID       string            `json:"route_id"`
	CreditDueDate *time.Time        `json:"credit_due_date"`
}

// SaleDetailResponse una línea de venta con precio congelado.
type SaleDetailResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            int64                `json:"id"`
	Date          time.Time            `json:"date"`
	CustomerName  string               `json:"customer_name"`
	PaymentMethod string               `json:"payment_method"`
	PaymentLabel  string               `json:"payment_label"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	TaxRate       decimal.Decimal      `json:"tax_rate"`
	TaxAmount     decimal.Decimal      `json:"tax_amount"`
	Total         decimal.Decimal      `json:"total"`
	Details       []SaleDetailResponse `json:"details"`
	Status        string               `json:"status"`
	CreditDueDate *time.Time           `json:"credit_due_date,omitempty"`
	PaidAt        *time.Time           `json:"paid_at,omitempty"`
}

// ToSaleResponse convierte la entidad al DTO de salida.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	details := make([]SaleDetailResponse, 0, len(s.Details))
	for _, d := range s.Details {
		details = append(details, SaleDetailResponse{
			ProductID: d.ProductID,
			Name:      d.Name,
			Quantity:  d.Quantity,
			Price:     d.Price,
			Subtotal:  d.Subtotal,
		})
	}
	return SaleResponse{
		ID:            s.ID,
		Date:          s.Date,
		CustomerName:  s.CustomerName,
		PaymentMethod: s.PaymentMethod,
		PaymentLabel:  s.PaymentLabel,
		Subtotal:      s.Subtotal,
		TaxRate:       s.TaxRate,
		TaxAmount:     s.TaxAmount,
		Total:         s.Total,
		Details:       details,
		Status:        s.Status,
		CreditDueDate: s.CreditDueDate,
		PaidAt:        s.PaidAt,
	}
}

// ReceiptResponse recibo en texto y URL para compartir por WhatsApp.
type ReceiptResponse struct {
	SaleID      int64  `json:"sale_id"`
	Text        string `json:"text"`
	WhatsAppURL string `json:"whatsapp_url"`
}
