package repository

import (
	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE);
	// usar solo dentro de una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo el stock (usado por el motor de ventas y ajustes).
	UpdateStock(id int64, newStock int) error
	// SetRoutePrice fija o elimina (price nil) el precio específico de una ruta.
	SetRoutePrice(id int64, routeID string, price *decimal.Decimal) error
	Delete(id int64) error
}
