package repository

import "github.com/camilcandy/pos-api/internal/domain/entity"

// RouteRepository define el puerto de persistencia de rutas.
type RouteRepository interface {
	Create(route *entity.Route) error
	GetByID(id string) (*entity.Route, error)
	List(onlyActive bool) ([]*entity.Route, error)
	Update(route *entity.Route) error
}
