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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, business_name, owner_name, phone, address, route_id, reference, notes, total_purchases, purchase_count, last_purchase_date, has_credit, credit_amount, created_at, updated_at`

// Create persiste un cliente nuevo.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, business_name, owner_name, phone, address, route_id, reference, notes, total_purchases, purchase_count, last_purchase_date, has_credit, credit_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.BusinessName, client.OwnerName, client.Phone, client.Address,
		client.RouteID, client.Reference, client.Notes, client.TotalPurchases,
		client.PurchaseCount, client.LastPurchaseDate, client.HasCredit,
		client.CreditAmount, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes ordenados por nombre del local.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	return r.list(`SELECT ` + clientColumns + ` FROM clients ORDER BY business_name`)
}

// ListByRoute devuelve los clientes de una ruta.
func (r *ClientRepo) ListByRoute(routeID string) ([]*entity.Client, error) {
	return r.list(
		`SELECT `+clientColumns+` FROM clients WHERE route_id = $1 ORDER BY business_name`,
		routeID,
	)
}

// Search busca por nombre del local, dueño o teléfono (case-insensitive).
func (r *ClientRepo) Search(query string) ([]*entity.Client, error) {
	pattern := "%" + query + "%"
	return r.list(
		`SELECT `+clientColumns+` FROM clients
		 WHERE business_name ILIKE $1 OR owner_name ILIKE $1 OR phone ILIKE $1
		 ORDER BY business_name`,
		pattern,
	)
}

// ListWithCredit devuelve los clientes con saldo deudor, mayor deuda primero.
func (r *ClientRepo) ListWithCredit() ([]*entity.Client, error) {
	return r.list(`SELECT ` + clientColumns + ` FROM clients WHERE has_credit ORDER BY credit_amount DESC`)
}

// Update guarda los datos del cliente, acumulados y crédito incluidos.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET business_name = $2, owner_name = $3, phone = $4, address = $5,
			route_id = $6, reference = $7, notes = $8, total_purchases = $9,
			purchase_count = $10, last_purchase_date = $11, has_credit = $12,
			credit_amount = $13, updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		client.ID, client.BusinessName, client.OwnerName, client.Phone, client.Address,
		client.RouteID, client.Reference, client.Notes, client.TotalPurchases,
		client.PurchaseCount, client.LastPurchaseDate, client.HasCredit,
		client.CreditAmount, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) list(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.BusinessName, &c.OwnerName, &c.Phone, &c.Address,
		&c.RouteID, &c.Reference, &c.Notes, &c.TotalPurchases, &c.PurchaseCount,
		&c.LastPurchaseDate, &c.HasCredit, &c.CreditAmount, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
