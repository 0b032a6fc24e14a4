package repository

import (
	"time"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia de ventas.
// Las ventas se crean solo vía el motor de transacciones; MarkAsPaid es la
// única mutación posterior permitida.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	ListByDateRange(start, end time.Time) ([]*entity.Sale, error)
	ListPending() ([]*entity.Sale, error)
	// MarkAsPaid cambia status a completed, registra paidAt y reemplaza la
	// etiqueta de pago por "A Crédito (Pagado)"; no toca montos ni detalles.
	MarkAsPaid(id int64, paidAt time.Time) error
}
