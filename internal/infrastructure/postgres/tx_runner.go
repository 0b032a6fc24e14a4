package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/camilcandy/pos-api/internal/application/inventory"
	"github.com/camilcandy/pos-api/internal/application/pos"
	"github.com/camilcandy/pos-api/internal/application/usecase"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ usecase.TxRunner = (*TxRunner)(nil)
var _ pos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Cubre ajustes de inventario y altas numeradas.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	counterRepo repository.CounterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	productRepo := NewProductRepository(tx)
	counterRepo := NewCounterRepository(tx)

	if err := fn(movRepo, productRepo, counterRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos del motor de ventas.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	counterRepo repository.CounterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	productRepo := NewProductRepository(tx)
	counterRepo := NewCounterRepository(tx)

	if err := fn(saleRepo, movRepo, productRepo, counterRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
