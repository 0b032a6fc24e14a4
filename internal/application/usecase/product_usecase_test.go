package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilcandy/pos-api/internal/application/usecase"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
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
	return nil
}
func (f *fakeProductRepo) Delete(id int64) error { delete(f.products, id); return nil }

func newProductFixture() (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Gomitas", Type: entity.ProductTypeEmbolsado, Stock: 30, MinStock: 15},
		2: {ID: 2, Name: "Papas Sabritas", Type: entity.ProductTypeEmbolsado, Stock: 10, MinStock: 15},
		3: {ID: 3, Name: "Concentrado Mango", Type: entity.ProductTypeConcentrado, Stock: 8, MinStock: 8},
	}}
	return usecase.NewProductUseCase(nil, repo), repo
}

func TestProductList_Completo(t *testing.T) {
	uc, _ := newProductFixture()

	out, err := uc.List(false)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

// Con low_stock solo deben aparecer los productos en o bajo su stock mínimo.
func TestProductList_SoloStockBajo(t *testing.T) {
	uc, _ := newProductFixture()

	out, err := uc.List(true)
	require.NoError(t, err)
	require.Len(t, out, 2)

	ids := map[int64]bool{}
	for _, p := range out {
		ids[p.ID] = true
		assert.True(t, p.LowStock, "producto %d debe venir marcado como stock bajo", p.ID)
	}
	assert.True(t, ids[2], "stock 10 < mínimo 15")
	assert.True(t, ids[3], "stock 8 == mínimo 8 cuenta como bajo")
}
