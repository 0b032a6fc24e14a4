package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Los precios por ruta viven en una columna JSONB.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, type, price, cost, stock, min_stock, route_prices, expiration_date, created_at, updated_at`

// Create persiste un producto con el ID ya asignado desde el contador.
func (r *ProductRepo) Create(product *entity.Product) error {
	routePrices, err := marshalRoutePrices(product.RoutePrices)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, name, type, price, cost, stock, min_stock, route_prices, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Type, product.Price, product.Cost,
		product.Stock, product.MinStock, routePrices, product.ExpirationDate,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.get(id, true)
}

func (r *ProductRepo) get(id int64, forUpdate bool) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve el catálogo completo ordenado por ID.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los datos del producto sin tocar el stock.
func (r *ProductRepo) Update(product *entity.Product) error {
	routePrices, err := marshalRoutePrices(product.RoutePrices)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET name = $2, type = $3, price = $4, cost = $5, min_stock = $6,
			route_prices = $7, expiration_date = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Type, product.Price, product.Cost,
		product.MinStock, routePrices, product.ExpirationDate, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock actualiza solo el stock (motor de ventas y ajustes).
func (r *ProductRepo) UpdateStock(id int64, newStock int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		id, newStock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetRoutePrice fija o elimina (price nil) el precio específico de una ruta
// dentro del JSONB de precios.
func (r *ProductRepo) SetRoutePrice(id int64, routeID string, price *decimal.Decimal) error {
	var (
		query string
		args  []any
	)
	if price == nil {
		query = `UPDATE products SET route_prices = route_prices - $2, updated_at = now() WHERE id = $1`
		args = []any{id, routeID}
	} else {
		query = `UPDATE products SET route_prices = jsonb_set(route_prices, ARRAY[$2], to_jsonb($3::numeric), true), updated_at = now() WHERE id = $1`
		args = []any{id, routeID, *price}
	}
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("set route price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalRoutePrices(prices map[string]decimal.Decimal) ([]byte, error) {
	if prices == nil {
		prices = map[string]decimal.Decimal{}
	}
	raw, err := json.Marshal(prices)
	if err != nil {
		return nil, fmt.Errorf("marshal route prices: %w", err)
	}
	return raw, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p   entity.Product
		raw []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Price, &p.Cost, &p.Stock, &p.MinStock,
		&raw, &p.ExpirationDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p.RoutePrices); err != nil {
			return nil, fmt.Errorf("unmarshal route prices: %w", err)
		}
	}
	return &p, nil
}
