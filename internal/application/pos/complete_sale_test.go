package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/application/pos"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// Fakes en memoria para ejercitar el motor de ventas sin base de datos.

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
func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateStock(id int64, newStock int) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = newStock
	return nil
}
func (f *fakeProductRepo) SetRoutePrice(id int64, routeID string, price *decimal.Decimal) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.RoutePrices == nil {
		p.RoutePrices = map[string]decimal.Decimal{}
	}
	if price == nil {
		delete(p.RoutePrices, routeID)
	} else {
		p.RoutePrices[routeID] = *price
	}
	return nil
}
func (f *fakeProductRepo) Delete(id int64) error { delete(f.products, id); return nil }

type fakeSaleRepo struct {
	sales map[int64]*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error { f.sales[s.ID] = s; return nil }
func (f *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
func (f *fakeSaleRepo) List() ([]*entity.Sale, error) { return nil, nil }
func (f *fakeSaleRepo) ListByDateRange(start, end time.Time) ([]*entity.Sale, error) {
	return nil, nil
}
func (f *fakeSaleRepo) ListPending() ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.Status == entity.SaleStatusPending {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSaleRepo) MarkAsPaid(id int64, paidAt time.Time) error {
	s, ok := f.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = entity.SaleStatusCompleted
	s.PaidAt = &paidAt
	s.PaymentLabel = entity.PaymentLabelCreditoPagado
	return nil
}

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
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCounterRepo struct {
	counter entity.Counter
}

func (f *fakeCounterRepo) Get() (*entity.Counter, error) {
	c := f.counter
	return &c, nil
}
func (f *fakeCounterRepo) GetForUpdate() (*entity.Counter, error) { return f.Get() }
func (f *fakeCounterRepo) Update(c *entity.Counter) error {
	f.counter = *c
	return nil
}

type fakeSettingsRepo struct {
	settings entity.Settings
}

func (f *fakeSettingsRepo) Get() (*entity.Settings, error) {
	s := f.settings
	return &s, nil
}
func (f *fakeSettingsRepo) Save(s *entity.Settings) error {
	f.settings = *s
	return nil
}

// fakeTxRunner ejecuta el callback directo sobre los fakes (sin transacción real).
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
	counterRepo *fakeCounterRepo
}

func (f *fakeTxRunner) RunSale(ctx context.Context, fn func(
	repository.SaleRepository,
	repository.StockMovementRepository,
	repository.ProductRepository,
	repository.CounterRepository,
) error) error {
	return fn(f.saleRepo, f.movRepo, f.productRepo, f.counterRepo)
}

type posFixture struct {
	uc       *pos.CompleteSaleUseCase
	products *fakeProductRepo
	sales    *fakeSaleRepo
	movs     *fakeMovementRepo
	counters *fakeCounterRepo
}

func newPOSFixture() *posFixture {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Gomitas", Type: entity.ProductTypeEmbolsado, Price: decimal.RequireFromString("20.00"), Stock: 10, MinStock: 2},
		2: {ID: 2, Name: "Chicharrones", Type: entity.ProductTypeConcentrado, Price: decimal.RequireFromString("35.00"), Stock: 2,
			RoutePrices: map[string]decimal.Decimal{"comitan": decimal.RequireFromString("30.00")}},
	}}
	sales := &fakeSaleRepo{sales: map[int64]*entity.Sale{}}
	movs := &fakeMovementRepo{}
	counters := &fakeCounterRepo{counter: entity.Counter{NextProductID: 3, NextSaleID: 1, NextMovementID: 1}}
	settings := &fakeSettingsRepo{settings: entity.DefaultSettings()}
	tx := &fakeTxRunner{saleRepo: sales, movRepo: movs, productRepo: products, counterRepo: counters}
	return &posFixture{
		uc:       pos.NewCompleteSaleUseCase(tx, products, settings),
		products: products,
		sales:    sales,
		movs:     movs,
		counters: counters,
	}
}

func TestCompleteSale_VentaEnEfectivo(t *testing.T) {
	fx := newPOSFixture()

	sale, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: 1, Quantity: 3}},
		CustomerName:  "Tienda La Esquina",
		PaymentMethod: entity.PaymentEfectivo,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), sale.ID)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.Equal(t, "Efectivo", sale.PaymentLabel)
	assert.True(t, sale.Subtotal.Equal(decimal.RequireFromString("60.00")), "subtotal: %s", sale.Subtotal)
	assert.True(t, sale.TaxAmount.Equal(decimal.RequireFromString("9.60")), "impuesto: %s", sale.TaxAmount)
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("69.60")), "total: %s", sale.Total)

	// Stock descontado y movimiento de auditoría registrado.
	assert.Equal(t, 7, fx.products.products[1].Stock)
	require.Len(t, fx.movs.movements, 1)
	mov := fx.movs.movements[0]
	assert.Equal(t, int64(1), mov.ID)
	assert.Equal(t, entity.MovementVenta, mov.Type)
	assert.Equal(t, 10, mov.PreviousStock)
	assert.Equal(t, 7, mov.NewStock)
	assert.Equal(t, "Venta #1", mov.Notes)

	// Contadores avanzados.
	assert.Equal(t, int64(2), fx.counters.counter.NextSaleID)
	assert.Equal(t, int64(2), fx.counters.counter.NextMovementID)
}

func TestCompleteSale_PrecioDeRuta(t *testing.T) {
	fx := newPOSFixture()

	sale, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: 2, Quantity: 1}},
		CustomerName:  "Abarrotes Don Chuy",
		PaymentMethod: entity.PaymentTransferencia,
		RouteID:       "comitan",
	})
	require.NoError(t, err)

	require.Len(t, sale.Details, 1)
	assert.True(t, sale.Details[0].Price.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, sale.Subtotal.Equal(decimal.RequireFromString("30.00")))
}

func TestCompleteSale_StockInsuficiente(t *testing.T) {
	fx := newPOSFixture()

	_, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: 2, Quantity: 5}},
		CustomerName:  "Tienda La Esquina",
		PaymentMethod: entity.PaymentEfectivo,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(2), stockErr.ProductID)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)

	// Nada se mutó: ni stock, ni ventas, ni movimientos, ni contadores.
	assert.Equal(t, 2, fx.products.products[2].Stock)
	assert.Empty(t, fx.sales.sales)
	assert.Empty(t, fx.movs.movements)
	assert.Equal(t, int64(1), fx.counters.counter.NextSaleID)
}

func TestCompleteSale_CarritoVacio(t *testing.T) {
	fx := newPOSFixture()

	_, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		CustomerName:  "Tienda La Esquina",
		PaymentMethod: entity.PaymentEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCompleteSale_MetodoDePagoInvalido(t *testing.T) {
	fx := newPOSFixture()

	_, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: 1, Quantity: 1}},
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompleteSale_CreditoRequiereVencimiento(t *testing.T) {
	fx := newPOSFixture()

	_, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: 1, Quantity: 1}},
		PaymentMethod: entity.PaymentCredito,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompleteSale_CreditoNacePendiente(t *testing.T) {
	fx := newPOSFixture()
	due := time.Now().AddDate(0, 0, 15)

	sale, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: 1, Quantity: 2}},
		CustomerName:  "Abarrotes Don Chuy",
		PaymentMethod: entity.PaymentCredito,
		CreditDueDate: &due,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPending, sale.Status)
	assert.Equal(t, "A Crédito", sale.PaymentLabel)
	require.NotNil(t, sale.CreditDueDate)
}

func TestCompleteSale_MovimientosConsecutivosEnOrdenDeCarrito(t *testing.T) {
	fx := newPOSFixture()

	sale, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items: []dto.CartItemRequest{
			{ProductID: 2, Quantity: 1},
			{ProductID: 1, Quantity: 4},
		},
		CustomerName:  "Tienda La Esquina",
		PaymentMethod: entity.PaymentDeposito,
	})
	require.NoError(t, err)

	require.Len(t, fx.movs.movements, 2)
	assert.Equal(t, int64(1), fx.movs.movements[0].ID)
	assert.Equal(t, int64(2), fx.movs.movements[0].ProductID)
	assert.Equal(t, int64(2), fx.movs.movements[1].ID)
	assert.Equal(t, int64(1), fx.movs.movements[1].ProductID)
	assert.Equal(t, int64(3), fx.counters.counter.NextMovementID)
	assert.Len(t, sale.Details, 2)
}

func TestCompleteSale_LineasDuplicadasSeCombinan(t *testing.T) {
	fx := newPOSFixture()

	// Dos líneas del mismo producto: deben cobrarse y descontarse como una sola.
	sale, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items: []dto.CartItemRequest{
			{ProductID: 1, Quantity: 3},
			{ProductID: 1, Quantity: 4},
		},
		CustomerName:  "Tienda La Esquina",
		PaymentMethod: entity.PaymentEfectivo,
	})
	require.NoError(t, err)

	require.Len(t, sale.Details, 1)
	assert.Equal(t, 7, sale.Details[0].Quantity)
	assert.True(t, sale.Subtotal.Equal(decimal.RequireFromString("140.00")), "subtotal: %s", sale.Subtotal)

	// Stock descontado exactamente una vez por el total combinado.
	assert.Equal(t, 3, fx.products.products[1].Stock)
	require.Len(t, fx.movs.movements, 1)
	mov := fx.movs.movements[0]
	assert.Equal(t, 7, mov.Quantity)
	assert.Equal(t, 10, mov.PreviousStock)
	assert.Equal(t, 3, mov.NewStock)
}

func TestCompleteSale_LineasDuplicadasNoSobrevenden(t *testing.T) {
	fx := newPOSFixture()

	// Cada línea cabe en el stock (6 ≤ 10) pero la suma no (12 > 10): la venta
	// completa debe rechazarse sin mutar nada.
	_, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items: []dto.CartItemRequest{
			{ProductID: 1, Quantity: 6},
			{ProductID: 1, Quantity: 6},
		},
		CustomerName:  "Tienda La Esquina",
		PaymentMethod: entity.PaymentEfectivo,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(1), stockErr.ProductID)
	assert.Equal(t, 12, stockErr.Requested)
	assert.Equal(t, 10, stockErr.Available)

	assert.Equal(t, 10, fx.products.products[1].Stock)
	assert.Empty(t, fx.sales.sales)
	assert.Empty(t, fx.movs.movements)
	assert.Equal(t, int64(1), fx.counters.counter.NextSaleID)
}

func TestMarkPaid_LiquidaCredito(t *testing.T) {
	fx := newPOSFixture()
	due := time.Now().AddDate(0, 0, 7)
	sale, err := fx.uc.CompleteSale(context.Background(), dto.CompleteSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: 1, Quantity: 1}},
		CustomerName:  "Abarrotes Don Chuy",
		PaymentMethod: entity.PaymentCredito,
		CreditDueDate: &due,
	})
	require.NoError(t, err)

	markPaid := pos.NewMarkPaidUseCase(fx.sales)
	paid, err := markPaid.MarkPaid(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, paid.Status)
	assert.Equal(t, entity.PaymentLabelCreditoPagado, paid.PaymentLabel)
	require.NotNil(t, paid.PaidAt)

	// Montos y detalles intactos.
	assert.True(t, paid.Total.Equal(sale.Total))
	assert.Len(t, paid.Details, 1)

	// Segunda liquidación rechazada.
	_, err = markPaid.MarkPaid(context.Background(), sale.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
