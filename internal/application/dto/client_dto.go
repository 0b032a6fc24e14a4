package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// CreateClientRequest entrada para registrar un cliente.
type CreateClientRequest struct {
	BusinessName string `json:"business_name" validate:"required,min=1,max=200"`
	OwnerName    string `json:"owner_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	RouteID      string `json:"route_id"`
	Reference    string `json:"reference"`
	Notes        string `json:"notes"`
}

// UpdateClientRequest entrada para actualizar un cliente. Los acumulados de
// compras y el crédito no se editan directo: tienen sus propias operaciones.
type UpdateClientRequest struct {
	BusinessName *string `json:"business_name" validate:"omitempty,min=1,max=200"`
	OwnerName    *string `json:"owner_name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	RouteID      *string `json:"route_id"`
	Reference    *string `json:"reference"`
	Notes        *string `json:"notes"`
}

// CreditRequest monto a cargar o abonar al crédito del cliente.
type CreditRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// RegisterPurchaseRequest registra una compra en los acumulados del cliente.
type RegisterPurchaseRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID               string          `json:"id"`
	BusinessName     string          `json:"business_name"`
	OwnerName        string          `json:"owner_name"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	RouteID          string          `json:"route_id"`
	Reference        string          `json:"reference"`
	Notes            string          `json:"notes"`
	TotalPurchases   decimal.Decimal `json:"total_purchases"`
	PurchaseCount    int             `json:"purchase_count"`
	LastPurchaseDate *time.Time      `json:"last_purchase_date,omitempty"`
	HasCredit        bool            `json:"has_credit"`
	CreditAmount     decimal.Decimal `json:"credit_amount"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToClientResponse convierte la entidad al DTO de salida.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:               c.ID,
		BusinessName:     c.BusinessName,
		OwnerName:        c.OwnerName,
		Phone:            c.Phone,
		Address:          c.Address,
		RouteID:          c.RouteID,
		Reference:        c.Reference,
		Notes:            c.Notes,
		TotalPurchases:   c.TotalPurchases,
		PurchaseCount:    c.PurchaseCount,
		LastPurchaseDate: c.LastPurchaseDate,
		HasCredit:        c.HasCredit,
		CreditAmount:     c.CreditAmount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
