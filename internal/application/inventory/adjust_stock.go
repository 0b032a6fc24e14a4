package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// AdjustStockUseCase aplica ajustes manuales de inventario de forma
// transaccional (entrada, salida, ajuste) con bloqueo de fila y movimiento de
// auditoría numerado desde el contador.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustStock ajusta el stock de un producto y devuelve el movimiento creado.
// entrada suma Quantity, salida resta Quantity (sin dejar el stock negativo) y
// ajuste fija el stock final en Quantity; el movimiento registra siempre el
// delta absoluto.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, productID int64, in dto.AdjustStockRequest) (*entity.StockMovement, error) {
	if !entity.ValidAdjustmentType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || (in.Type != entity.MovementAjuste && in.Quantity == 0) {
		return nil, domain.ErrInvalidInput
	}

	var movement *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		counterRepo repository.CounterRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}

		previous := product.Stock
		var newStock int
		switch in.Type {
		case entity.MovementEntrada:
			newStock = previous + in.Quantity
		case entity.MovementSalida:
			if in.Quantity > previous {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   in.Quantity,
					Available:   previous,
				}
			}
			newStock = previous - in.Quantity
		case entity.MovementAjuste:
			newStock = in.Quantity
		}

		if err := productRepo.UpdateStock(productID, newStock); err != nil {
			return err
		}

		counter, err := counterRepo.GetForUpdate()
		if err != nil {
			return err
		}

		notes := in.Notes
		if notes == "" {
			notes = fmt.Sprintf("Ajuste de inventario (%s)", in.Type)
		}
		delta := newStock - previous
		if delta < 0 {
			delta = -delta
		}
		movement = &entity.StockMovement{
			ID:            counter.NextMovementID,
			ProductID:     product.ID,
			ProductName:   product.Name,
			Type:          in.Type,
			Quantity:      delta,
			PreviousStock: previous,
			NewStock:      newStock,
			Notes:         notes,
			Date:          time.Now(),
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}

		counter.NextMovementID++
		return counterRepo.Update(counter)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}
