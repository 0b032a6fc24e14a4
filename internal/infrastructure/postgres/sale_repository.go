package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Los detalles de la venta se guardan como JSONB: son un snapshot inmutable,
// no filas relacionales.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, date, customer_name, payment_method, payment_label, subtotal, tax_rate, tax_amount, total, details, status, credit_due_date, paid_at, created_at`

// Create persiste una venta con el ID ya asignado desde el contador.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	details, err := json.Marshal(sale.Details)
	if err != nil {
		return fmt.Errorf("marshal sale details: %w", err)
	}
	query := `
		INSERT INTO sales (id, date, customer_name, payment_method, payment_label, subtotal, tax_rate, tax_amount, total, details, status, credit_due_date, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.CustomerName, sale.PaymentMethod, sale.PaymentLabel,
		sale.Subtotal, sale.TaxRate, sale.TaxAmount, sale.Total, details,
		sale.Status, sale.CreditDueDate, sale.PaidAt, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List devuelve todas las ventas, más recientes primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	return r.list(`SELECT ` + saleColumns + ` FROM sales ORDER BY id DESC`)
}

// ListByDateRange devuelve ventas con fecha en [start, end] inclusivo
// (end extendido al final del día).
func (r *SaleRepo) ListByDateRange(start, end time.Time) ([]*entity.Sale, error) {
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	return r.list(
		`SELECT `+saleColumns+` FROM sales WHERE date >= $1 AND date <= $2 ORDER BY date`,
		start, endOfDay,
	)
}

// ListPending devuelve las ventas a crédito sin liquidar, vencimiento más
// próximo primero.
func (r *SaleRepo) ListPending() ([]*entity.Sale, error) {
	return r.list(`SELECT ` + saleColumns + ` FROM sales WHERE status = 'pending' ORDER BY credit_due_date NULLS LAST, id`)
}

// MarkAsPaid liquida una venta a crédito: status completed, paidAt y etiqueta
// de pago "A Crédito (Pagado)". Montos y detalles quedan intactos.
func (r *SaleRepo) MarkAsPaid(id int64, paidAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2, paid_at = $3, payment_label = $4 WHERE id = $1`,
		id, entity.SaleStatusCompleted, paidAt, entity.PaymentLabelCreditoPagado,
	)
	if err != nil {
		return fmt.Errorf("mark sale as paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		s   entity.Sale
		raw []byte
	)
	if err := row.Scan(&s.ID, &s.Date, &s.CustomerName, &s.PaymentMethod, &s.PaymentLabel,
		&s.Subtotal, &s.TaxRate, &s.TaxAmount, &s.Total, &raw,
		&s.Status, &s.CreditDueDate, &s.PaidAt, &s.CreatedAt); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.Details); err != nil {
			return nil, fmt.Errorf("unmarshal sale details: %w", err)
		}
	}
	return &s, nil
}
