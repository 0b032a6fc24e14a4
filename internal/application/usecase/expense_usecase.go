package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso de gastos operativos sobre el conjunto fijo de
// categorías.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Sin fecha explícita se usa el momento actual.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        date,
		ProductID:   in.ProductID,
		RouteID:     in.RouteID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	resp := dto.ToExpenseResponse(expense)
	return &resp, nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToExpenseResponse(expense)
	return &resp, nil
}

// List devuelve gastos aplicando a lo más un filtro (categoría, producto o ruta).
func (uc *ExpenseUseCase) List(category string, productID *int64, routeID string, limit int) ([]dto.ExpenseResponse, error) {
	var (
		expenses []*entity.Expense
		err      error
	)
	switch {
	case category != "":
		if !entity.ValidExpenseCategory(category) {
			return nil, domain.ErrInvalidInput
		}
		expenses, err = uc.repo.ListByCategory(category)
	case productID != nil:
		expenses, err = uc.repo.ListByProduct(*productID)
	case routeID != "":
		expenses, err = uc.repo.ListByRoute(routeID)
	default:
		expenses, err = uc.repo.List(limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, dto.ToExpenseResponse(e))
	}
	return out, nil
}

// Categories devuelve el conjunto fijo de categorías en orden de presentación.
func (uc *ExpenseUseCase) Categories() []dto.ExpenseCategoryResponse {
	out := make([]dto.ExpenseCategoryResponse, 0, len(entity.ExpenseCategories))
	for _, c := range entity.ExpenseCategories {
		out = append(out, dto.ExpenseCategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

// Update actualiza un gasto.
func (uc *ExpenseUseCase) Update(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Category != nil {
		if !entity.ValidExpenseCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		expense.Category = *in.Category
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Description != nil {
		expense.Description = *in.Description
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	if in.ProductID != nil {
		expense.ProductID = in.ProductID
	}
	if in.RouteID != nil {
		expense.RouteID = *in.RouteID
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	resp := dto.ToExpenseResponse(expense)
	return &resp, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
