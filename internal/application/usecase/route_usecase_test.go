package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/application/usecase"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
)

type fakeRouteRepo struct {
	routes map[string]*entity.Route
}

func newFakeRouteRepo() *fakeRouteRepo {
	return &fakeRouteRepo{routes: map[string]*entity.Route{}}
}

func (f *fakeRouteRepo) Create(r *entity.Route) error { f.routes[r.ID] = r; return nil }
func (f *fakeRouteRepo) GetByID(id string) (*entity.Route, error) {
	r, ok := f.routes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}
func (f *fakeRouteRepo) List(onlyActive bool) ([]*entity.Route, error) {
	var out []*entity.Route
	for _, r := range f.routes {
		if onlyActive && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
func (f *fakeRouteRepo) Update(r *entity.Route) error { f.routes[r.ID] = r; return nil }

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Comitán", "comitan"},
		{"Salto de Agua", "salto_de_agua"},
		{"La Trinitaria", "la_trinitaria"},
		{"  Tzimol  ", "tzimol"},
		{"Ruta Sur-Este", "ruta_sur_este"},
		{"Ñuñoa", "nunoa"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, usecase.Slugify(tc.in), "entrada: %q", tc.in)
	}
}

func TestRouteCreate_DerivaSlug(t *testing.T) {
	uc := usecase.NewRouteUseCase(newFakeRouteRepo())

	got, err := uc.Create(dto.CreateRouteRequest{Name: "Salto de Agua", Description: "Zona norte"})
	require.NoError(t, err)
	assert.Equal(t, "salto_de_agua", got.ID)
	assert.True(t, got.IsActive)
}

func TestRouteCreate_Duplicada(t *testing.T) {
	uc := usecase.NewRouteUseCase(newFakeRouteRepo())

	_, err := uc.Create(dto.CreateRouteRequest{Name: "Comitán"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateRouteRequest{Name: "comitan"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Desactivar no borra: la ruta sigue existiendo y el slug no cambia aunque
// cambie el nombre.
func TestRouteUpdate_DesactivaSinBorrar(t *testing.T) {
	repo := newFakeRouteRepo()
	uc := usecase.NewRouteUseCase(repo)

	created, err := uc.Create(dto.CreateRouteRequest{Name: "Palenque"})
	require.NoError(t, err)

	inactive := false
	newName := "Palenque Centro"
	got, err := uc.Update(created.ID, dto.UpdateRouteRequest{Name: &newName, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "palenque", got.ID)
	assert.Equal(t, "Palenque Centro", got.Name)
	assert.False(t, got.IsActive)

	active, err := uc.List(true)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := uc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
