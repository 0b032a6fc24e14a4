package inventory

import (
	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// MovementQueryUseCase lecturas del historial de movimientos de stock.
type MovementQueryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movementRepo repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo}
}

// List devuelve los movimientos más recientes; limit <= 0 devuelve todos.
func (uc *MovementQueryUseCase) List(limit int) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.List(limit)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (uc *MovementQueryUseCase) ListByProduct(productID int64) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

func toMovementResponses(movements []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToStockMovementResponse(m))
	}
	return out
}
