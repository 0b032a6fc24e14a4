package inventory

import (
	"context"

	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para los ajustes de
// inventario: stock, movimiento y contador se confirman juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		counterRepo repository.CounterRepository,
	) error) error
}
