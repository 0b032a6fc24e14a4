package repository

import "github.com/camilcandy/pos-api/internal/domain/entity"

// CounterRepository define el puerto del documento único de contadores.
// GetForUpdate + Update se usan siempre dentro de la misma transacción que
// persiste la entidad numerada, para que los IDs sean consecutivos sin huecos.
type CounterRepository interface {
	Get() (*entity.Counter, error)
	// GetForUpdate bloquea la fila de contadores (SELECT FOR UPDATE).
	GetForUpdate() (*entity.Counter, error)
	Update(counter *entity.Counter) error
}
