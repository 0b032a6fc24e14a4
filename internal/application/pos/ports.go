package pos

import (
	"context"

	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de ventas:
// venta, descuentos de stock, movimientos y contador se confirman juntos o
// ninguno.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		counterRepo repository.CounterRepository,
	) error) error
}
