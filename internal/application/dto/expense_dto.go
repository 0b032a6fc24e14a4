package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	Category    string          `json:"category" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date"`
	ProductID   *int64          `json:"product_id"`
	RouteID     string          `json:"route_id"`
}

// UpdateExpenseRequest entrada para actualizar un gasto.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
	ProductID   *int64           `json:"product_id"`
	RouteID     *string          `json:"route_id"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	ProductID   *int64          `json:"product_id,omitempty"`
	RouteID     string          `json:"route_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToExpenseResponse convierte la entidad al DTO de salida.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		ProductID:   e.ProductID,
		RouteID:     e.RouteID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ExpenseCategoryResponse una categoría del conjunto fijo.
type ExpenseCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
