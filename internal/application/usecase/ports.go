package usecase

import (
	"context"

	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD para las
// operaciones que asignan IDs desde el contador.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		counterRepo repository.CounterRepository,
	) error) error
}
