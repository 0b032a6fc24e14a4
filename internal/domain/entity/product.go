package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto del catálogo.
const (
	ProductTypeConcentrado = "concentrado"
	ProductTypeEmbolsado   = "embolsado"
)

// Product representa un producto del catálogo de dulces/botanas.
// Stock es entero y nunca negativo; solo lo mutan el motor de ventas y los
// ajustes de inventario. RoutePrices permite un precio distinto por ruta.
type Product struct {
	ID             int64
	Name           string
	Type           string // concentrado | embolsado
	Price          decimal.Decimal
	Cost           decimal.Decimal
	Stock          int
	MinStock       int
	RoutePrices    map[string]decimal.Decimal
	ExpirationDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PriceForRoute devuelve el precio del producto para una ruta: si existe un
// precio específico lo usa, si no retorna el precio base.
func (p *Product) PriceForRoute(routeID string) decimal.Decimal {
	if routeID != "" {
		if price, ok := p.RoutePrices[routeID]; ok {
			return price
		}
	}
	return p.Price
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
func (p *Product) IsLowStock() bool { return p.Stock <= p.MinStock }
