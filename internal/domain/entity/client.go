package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client es un punto de venta atendido en una ruta (CRM básico).
// CreditAmount es el saldo deudor a nivel cliente; es independiente del
// estado pending/completed de las ventas a crédito y no se reconcilia
// automáticamente con él.
type Client struct {
	ID               string // uuid
	BusinessName     string
	OwnerName        string
	Phone            string
	Address          string
	RouteID          string
	Reference        string
	Notes            string
	TotalPurchases   decimal.Decimal
	PurchaseCount    int
	LastPurchaseDate *time.Time
	HasCredit        bool
	CreditAmount     decimal.Decimal // nunca negativo
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
