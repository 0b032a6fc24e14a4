package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name           string                     `json:"name" validate:"required,min=1,max=200"`
	Type           string                     `json:"type" validate:"required"`
	Price          decimal.Decimal            `json:"price"`
	Cost           decimal.Decimal            `json:"cost"`
	Stock          int                        `json:"stock" validate:"min=0"`
	MinStock       int                        `json:"min_stock" validate:"min=0"`
	RoutePrices    map[string]decimal.Decimal `json:"route_prices"`
	ExpirationDate *time.Time                 `json:"expiration_date"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no se
// toca por aquí: solo lo mutan ventas y ajustes de inventario.
type UpdateProductRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Type           *string          `json:"type"`
	Price          *decimal.Decimal `json:"price"`
	Cost           *decimal.Decimal `json:"cost"`
	MinStock       *int             `json:"min_stock"`
	ExpirationDate *time.Time       `json:"expiration_date"`
}

// SetRoutePriceRequest asigna (o limpia, con null) el precio de una ruta.
type SetRoutePriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64                      `json:"id"`
	Name           string                     `json:"name"`
	Type           string                     `json:"type"`
	Price          decimal.Decimal            `json:"price"`
	Cost           decimal.Decimal            `json:"cost"`
	Stock          int                        `json:"stock"`
	MinStock       int                        `json:"min_stock"`
	RoutePrices    map[string]decimal.Decimal `json:"route_prices,omitempty"`
	ExpirationDate *time.Time                 `json:"expiration_date,omitempty"`
	LowStock       bool                       `json:"low_stock"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Type:           p.Type,
		Price:          p.Price,
		Cost:           p.Cost,
		Stock:          p.Stock,
		MinStock:       p.MinStock,
		RoutePrices:    p.RoutePrices,
		ExpirationDate: p.ExpirationDate,
		LowStock:       p.IsLowStock(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
