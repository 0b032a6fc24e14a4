package dto

import (
	"time"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// CreateRouteRequest entrada para crear una ruta. El ID se deriva del nombre.
type CreateRouteRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateRouteRequest entrada para actualizar una ruta (incluye activar/desactivar).
type UpdateRouteRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// RouteResponse salida de una ruta.
type RouteResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToRouteResponse convierte la entidad al DTO de salida.
func ToRouteResponse(r *entity.Route) RouteResponse {
	return RouteResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
