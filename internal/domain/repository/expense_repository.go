package repository

import (
	"time"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia de gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(limit int) ([]*entity.Expense, error)
	ListByCategory(category string) ([]*entity.Expense, error)
	// ListByDateRange devuelve gastos con fecha en [start, end] inclusivo.
	ListByDateRange(start, end time.Time) ([]*entity.Expense, error)
	ListByProduct(productID int64) ([]*entity.Expense, error)
	ListByRoute(routeID string) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
