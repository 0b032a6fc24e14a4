package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, category, amount, description, date, product_id, route_id, created_at, updated_at`

// Create persiste un gasto nuevo.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, category, amount, description, date, product_id, route_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Category, expense.Amount, expense.Description, expense.Date,
		expense.ProductID, expense.RouteID, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	e, err := scanExpense(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// List devuelve los gastos más recientes primero; limit <= 0 los trae todos.
func (r *ExpenseRepo) List(limit int) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY date DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.list(query, args...)
}

// ListByCategory devuelve los gastos de una categoría.
func (r *ExpenseRepo) ListByCategory(category string) ([]*entity.Expense, error) {
	return r.list(
		`SELECT `+expenseColumns+` FROM expenses WHERE category = $1 ORDER BY date DESC`,
		category,
	)
}

// ListByDateRange devuelve gastos con fecha en [start, end] inclusivo
// (end extendido al final del día).
func (r *ExpenseRepo) ListByDateRange(start, end time.Time) ([]*entity.Expense, error) {
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	return r.list(
		`SELECT `+expenseColumns+` FROM expenses WHERE date >= $1 AND date <= $2 ORDER BY date`,
		start, endOfDay,
	)
}

// ListByProduct devuelve los gastos asociados a un producto.
func (r *ExpenseRepo) ListByProduct(productID int64) ([]*entity.Expense, error) {
	return r.list(
		`SELECT `+expenseColumns+` FROM expenses WHERE product_id = $1 ORDER BY date DESC`,
		productID,
	)
}

// ListByRoute devuelve los gastos asociados a una ruta.
func (r *ExpenseRepo) ListByRoute(routeID string) ([]*entity.Expense, error) {
	return r.list(
		`SELECT `+expenseColumns+` FROM expenses WHERE route_id = $1 ORDER BY date DESC`,
		routeID,
	)
}

// Update guarda un gasto existente.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses SET category = $2, amount = $3, description = $4, date = $5,
			product_id = $6, route_id = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Category, expense.Amount, expense.Description, expense.Date,
		expense.ProductID, expense.RouteID, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepo) list(query string, args ...any) ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	if err := row.Scan(&e.ID, &e.Category, &e.Amount, &e.Description, &e.Date,
		&e.ProductID, &e.RouteID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
