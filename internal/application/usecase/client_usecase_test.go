package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/application/usecase"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
)

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}
func (f *fakeClientRepo) List() ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}
func (f *fakeClientRepo) ListByRoute(routeID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		if c.RouteID == routeID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeClientRepo) Search(query string) ([]*entity.Client, error) {
	q := strings.ToLower(query)
	var out []*entity.Client
	for _, c := range f.clients {
		if strings.Contains(strings.ToLower(c.BusinessName), q) ||
			strings.Contains(strings.ToLower(c.OwnerName), q) ||
			strings.Contains(c.Phone, q) {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeClientRepo) ListWithCredit() ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		if c.HasCredit {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeClientRepo) Update(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) Delete(id string) error        { delete(f.clients, id); return nil }

func newClientWithCredit(t *testing.T, uc *usecase.ClientUseCase, amount string) string {
	t.Helper()
	created, err := uc.Create(dto.CreateClientRequest{BusinessName: "Abarrotes Don Chuy", RouteID: "comitan"})
	require.NoError(t, err)
	_, err = uc.AddCredit(created.ID, dto.CreditRequest{Amount: decimal.RequireFromString(amount)})
	require.NoError(t, err)
	return created.ID
}

func TestClientAddCredit(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	id := newClientWithCredit(t, uc, "150.00")
	got, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.True(t, got.HasCredit)
	assert.True(t, got.CreditAmount.Equal(decimal.RequireFromString("150.00")))
}

// Un abono mayor a la deuda deja el saldo en cero, nunca negativo.
func TestClientReduceCredit_AbonoMayorQueDeuda(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	id := newClientWithCredit(t, uc, "100.00")
	got, err := uc.ReduceCredit(id, dto.CreditRequest{Amount: decimal.RequireFromString("250.00")})
	require.NoError(t, err)
	assert.True(t, got.CreditAmount.IsZero())
	assert.False(t, got.HasCredit)
}

func TestClientReduceCredit_AbonoParcial(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	id := newClientWithCredit(t, uc, "100.00")
	got, err := uc.ReduceCredit(id, dto.CreditRequest{Amount: decimal.RequireFromString("40.00")})
	require.NoError(t, err)
	assert.True(t, got.CreditAmount.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, got.HasCredit)
}

func TestClientCredit_MontoInvalido(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)
	id := newClientWithCredit(t, uc, "100.00")

	_, err := uc.AddCredit(id, dto.CreditRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.ReduceCredit(id, dto.CreditRequest{Amount: decimal.RequireFromString("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientRegisterPurchase(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)
	created, err := uc.Create(dto.CreateClientRequest{BusinessName: "Tienda La Esquina"})
	require.NoError(t, err)

	_, err = uc.RegisterPurchase(created.ID, dto.RegisterPurchaseRequest{Amount: decimal.RequireFromString("69.60")})
	require.NoError(t, err)
	got, err := uc.RegisterPurchase(created.ID, dto.RegisterPurchaseRequest{Amount: decimal.RequireFromString("30.40")})
	require.NoError(t, err)

	assert.Equal(t, 2, got.PurchaseCount)
	assert.True(t, got.TotalPurchases.Equal(decimal.RequireFromString("100.00")))
	require.NotNil(t, got.LastPurchaseDate)
}
