package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/application/inventory"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}
func (f *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return f.GetByID(id) }
func (f *fakeProductRepo) List() ([]*entity.Product, error)              { return nil, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error                { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateStock(id int64, newStock int) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = newStock
	return nil
}
func (f *fakeProductRepo) SetRoutePrice(id int64, routeID string, price *decimal.Decimal) error {
	return nil
}
func (f *fakeProductRepo) Delete(id int64) error { delete(f.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) List(limit int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}
func (f *fakeMovementRepo) ListByProduct(productID int64) ([]*entity.StockMovement, error) {
	return f.movements, nil
}

type fakeCounterRepo struct {
	counter entity.Counter
}

func (f *fakeCounterRepo) Get() (*entity.Counter, error) {
	c := f.counter
	return &c, nil
}
func (f *fakeCounterRepo) GetForUpdate() (*entity.Counter, error) { return f.Get() }
func (f *fakeCounterRepo) Update(c *entity.Counter) error         { f.counter = *c; return nil }

type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
	counterRepo *fakeCounterRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.StockMovementRepository,
	repository.ProductRepository,
	repository.CounterRepository,
) error) error {
	return fn(f.movRepo, f.productRepo, f.counterRepo)
}

type fixture struct {
	uc       *inventory.AdjustStockUseCase
	products *fakeProductRepo
	movs     *fakeMovementRepo
	counters *fakeCounterRepo
}

func newFixture() *fixture {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Gomitas", Stock: 10},
	}}
	movs := &fakeMovementRepo{}
	counters := &fakeCounterRepo{counter: entity.Counter{NextMovementID: 5}}
	tx := &fakeTxRunner{movRepo: movs, productRepo: products, counterRepo: counters}
	return &fixture{
		uc:       inventory.NewAdjustStockUseCase(tx),
		products: products,
		movs:     movs,
		counters: counters,
	}
}

func TestAdjustStock_Entrada(t *testing.T) {
	fx := newFixture()

	mov, err := fx.uc.AdjustStock(context.Background(), 1, dto.AdjustStockRequest{
		Type: entity.MovementEntrada, Quantity: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, 17, fx.products.products[1].Stock)
	assert.Equal(t, int64(5), mov.ID)
	assert.Equal(t, 7, mov.Quantity)
	assert.Equal(t, 10, mov.PreviousStock)
	assert.Equal(t, 17, mov.NewStock)
	assert.Equal(t, "Ajuste de inventario (entrada)", mov.Notes)
	assert.Equal(t, int64(6), fx.counters.counter.NextMovementID)
}

func TestAdjustStock_SalidaInsuficiente(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.AdjustStock(context.Background(), 1, dto.AdjustStockRequest{
		Type: entity.MovementSalida, Quantity: 11,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, fx.products.products[1].Stock)
	assert.Empty(t, fx.movs.movements)
}

// Un ajuste absoluto registra el delta, no el valor final.
func TestAdjustStock_AjusteRegistraDelta(t *testing.T) {
	fx := newFixture()

	mov, err := fx.uc.AdjustStock(context.Background(), 1, dto.AdjustStockRequest{
		Type: entity.MovementAjuste, Quantity: 4, Notes: "Conteo físico",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, fx.products.products[1].Stock)
	assert.Equal(t, 6, mov.Quantity) // |4 - 10|
	assert.Equal(t, "Conteo físico", mov.Notes)
}

func TestAdjustStock_AjusteACeroPermitido(t *testing.T) {
	fx := newFixture()

	mov, err := fx.uc.AdjustStock(context.Background(), 1, dto.AdjustStockRequest{
		Type: entity.MovementAjuste, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, fx.products.products[1].Stock)
	assert.Equal(t, 10, mov.Quantity)
}

func TestAdjustStock_EntradaYSalidaRestauranStock(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.AdjustStock(context.Background(), 1, dto.AdjustStockRequest{Type: entity.MovementEntrada, Quantity: 5})
	require.NoError(t, err)
	_, err = fx.uc.AdjustStock(context.Background(), 1, dto.AdjustStockRequest{Type: entity.MovementSalida, Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, 10, fx.products.products[1].Stock)
	require.Len(t, fx.movs.movements, 2)
	assert.Equal(t, int64(5), fx.movs.movements[0].ID)
	assert.Equal(t, int64(6), fx.movs.movements[1].ID)
}

func TestAdjustStock_TipoInvalido(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.AdjustStock(context.Background(), 1, dto.AdjustStockRequest{Type: "venta", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.uc.AdjustStock(context.Background(), 1, dto.AdjustStockRequest{Type: entity.MovementEntrada, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
