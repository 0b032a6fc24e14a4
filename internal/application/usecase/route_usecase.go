package usecase

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// RouteUseCase casos de uso de rutas de venta. Las rutas no se eliminan:
// se desactivan para conservar las referencias de clientes y gastos.
type RouteUseCase struct {
	repo repository.RouteRepository
}

// NewRouteUseCase construye el caso de uso.
func NewRouteUseCase(repo repository.RouteRepository) *RouteUseCase {
	return &RouteUseCase{repo: repo}
}

// Slugify deriva el ID de ruta desde el nombre: minúsculas, sin acentos y con
// espacios como guiones bajos ("Salto de Agua" -> "salto_de_agua").
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	plain = strings.ToLower(strings.TrimSpace(plain))
	var b strings.Builder
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Create crea una ruta activa con ID derivado del nombre.
func (uc *RouteUseCase) Create(in dto.CreateRouteRequest) (*dto.RouteResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	slug := Slugify(in.Name)
	if slug == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByID(slug); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	route := &entity.Route{
		ID:          slug,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(route); err != nil {
		return nil, err
	}
	resp := dto.ToRouteResponse(route)
	return &resp, nil
}

// GetByID obtiene una ruta por su slug.
func (uc *RouteUseCase) GetByID(id string) (*dto.RouteResponse, error) {
	route, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToRouteResponse(route)
	return &resp, nil
}

// List devuelve las rutas; con onlyActive filtra las desactivadas.
func (uc *RouteUseCase) List(onlyActive bool) ([]dto.RouteResponse, error) {
	routes, err := uc.repo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, dto.ToRouteResponse(r))
	}
	return out, nil
}

// Update actualiza nombre, descripción o estado activo. El slug no cambia
// aunque cambie el nombre: es la identidad de la ruta.
func (uc *RouteUseCase) Update(id string, in dto.UpdateRouteRequest) (*dto.RouteResponse, error) {
	route, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		route.Name = *in.Name
	}
	if in.Description != nil {
		route.Description = *in.Description
	}
	if in.IsActive != nil {
		route.IsActive = *in.IsActive
	}
	route.UpdatedAt = time.Now()
	if err := uc.repo.Update(route); err != nil {
		return nil, err
	}
	resp := dto.ToRouteResponse(route)
	return &resp, nil
}
