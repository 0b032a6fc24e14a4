package postgres

import (
	"context"
	"fmt"

	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL. La tabla es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de persistencia para movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, product_id, product_name, type, quantity, previous_stock, new_stock, notes, date`

// Create persiste un movimiento con el ID ya asignado desde el contador.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, product_name, type, quantity, previous_stock, new_stock, notes, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.ProductName, movement.Type,
		movement.Quantity, movement.PreviousStock, movement.NewStock,
		movement.Notes, movement.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos más recientes primero; limit <= 0 los trae todos.
func (r *StockMovementRepo) List(limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.list(query, args...)
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(productID int64) ([]*entity.StockMovement, error) {
	return r.list(
		`SELECT `+movementColumns+` FROM stock_movements WHERE product_id = $1 ORDER BY id DESC`,
		productID,
	)
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.Notes, &m.Date); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
