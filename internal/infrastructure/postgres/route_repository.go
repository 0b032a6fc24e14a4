package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

var _ repository.RouteRepository = (*RouteRepo)(nil)

// RouteRepo implementación del puerto RouteRepository sobre PostgreSQL.
type RouteRepo struct {
	q Querier
}

// NewRouteRepository construye el adaptador de persistencia para rutas. Pasar pool o tx (Querier).
func NewRouteRepository(q Querier) *RouteRepo {
	return &RouteRepo{q: q}
}

// Create persiste una ruta con su slug como ID.
func (r *RouteRepo) Create(route *entity.Route) error {
	query := `
		INSERT INTO routes (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		route.ID, route.Name, route.Description, route.IsActive, route.CreatedAt, route.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert route: %w", err)
	}
	return nil
}

// GetByID obtiene una ruta por su slug. Devuelve (nil, nil) si no existe.
func (r *RouteRepo) GetByID(id string) (*entity.Route, error) {
	query := `SELECT id, name, description, is_active, created_at, updated_at FROM routes WHERE id = $1`
	var route entity.Route
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&route.ID, &route.Name, &route.Description, &route.IsActive, &route.CreatedAt, &route.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route: %w", err)
	}
	return &route, nil
}

// List devuelve las rutas ordenadas por nombre; con onlyActive filtra las desactivadas.
func (r *RouteRepo) List(onlyActive bool) ([]*entity.Route, error) {
	query := `SELECT id, name, description, is_active, created_at, updated_at FROM routes`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Route
	for rows.Next() {
		var route entity.Route
		if err := rows.Scan(&route.ID, &route.Name, &route.Description, &route.IsActive,
			&route.CreatedAt, &route.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		list = append(list, &route)
	}
	return list, rows.Err()
}

// Update actualiza nombre, descripción y estado activo. El slug no cambia.
func (r *RouteRepo) Update(route *entity.Route) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE routes SET name = $2, description = $3, is_active = $4, updated_at = $5 WHERE id = $1`,
		route.ID, route.Name, route.Description, route.IsActive, route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update route: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
