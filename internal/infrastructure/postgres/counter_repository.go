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

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo implementación del puerto CounterRepository sobre PostgreSQL.
// La tabla counters tiene una sola fila (id = 1), sembrada al arrancar.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador de persistencia para contadores. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Get lee los contadores sin bloqueo.
func (r *CounterRepo) Get() (*entity.Counter, error) {
	return r.get(false)
}

// GetForUpdate lee los contadores bloqueando la fila (SELECT FOR UPDATE).
// Serializa las asignaciones de ID: usar solo dentro de una transacción.
func (r *CounterRepo) GetForUpdate() (*entity.Counter, error) {
	return r.get(true)
}

func (r *CounterRepo) get(forUpdate bool) (*entity.Counter, error) {
	query := `SELECT next_product_id, next_sale_id, next_movement_id FROM counters WHERE id = 1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var c entity.Counter
	err := r.q.QueryRow(context.Background(), query).Scan(&c.NextProductID, &c.NextSaleID, &c.NextMovementID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get counters: %w", err)
	}
	return &c, nil
}

// Update guarda los contadores.
func (r *CounterRepo) Update(counter *entity.Counter) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE counters SET next_product_id = $1, next_sale_id = $2, next_movement_id = $3 WHERE id = 1`,
		counter.NextProductID, counter.NextSaleID, counter.NextMovementID,
	)
	if err != nil {
		return fmt.Errorf("update counters: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
