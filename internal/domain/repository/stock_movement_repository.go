package repository

import "github.com/camilcandy/pos-api/internal/domain/entity"

// StockMovementRepository define el puerto del historial de movimientos
// (append-only: no hay update ni delete).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(limit int) ([]*entity.StockMovement, error)
	ListByProduct(productID int64) ([]*entity.StockMovement, error)
}
