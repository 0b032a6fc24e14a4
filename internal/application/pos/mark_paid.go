package pos

import (
	"context"
	"time"

	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// MarkPaidUseCase liquida una venta a crédito: pending → completed.
// La transición es de un solo sentido y no toca montos ni detalles.
type MarkPaidUseCase struct {
	saleRepo repository.SaleRepository
}

// NewMarkPaidUseCase construye el caso de uso.
func NewMarkPaidUseCase(saleRepo repository.SaleRepository) *MarkPaidUseCase {
	return &MarkPaidUseCase{saleRepo: saleRepo}
}

// MarkPaid marca la venta como pagada y devuelve la venta actualizada.
// Falla con ErrConflict si la venta no está pendiente.
func (uc *MarkPaidUseCase) MarkPaid(ctx context.Context, saleID int64) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale.Status != entity.SaleStatusPending {
		return nil, domain.ErrConflict
	}
	paidAt := time.Now()
	if err := uc.saleRepo.MarkAsPaid(saleID, paidAt); err != nil {
		return nil, err
	}
	sale.Status = entity.SaleStatusCompleted
	sale.PaidAt = &paidAt
	sale.PaymentLabel = entity.PaymentLabelCreditoPagado
	return sale, nil
}
