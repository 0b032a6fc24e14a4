package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// CompleteSaleUseCase convierte un carrito en una venta de forma transaccional:
// bloquea las filas de productos (SELECT FOR UPDATE), verifica stock, asigna
// IDs consecutivos desde el contador y escribe venta + stock + movimientos +
// contador con Commit/Rollback.
type CompleteSaleUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
}

// NewCompleteSaleUseCase construye el caso de uso.
func NewCompleteSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
) *CompleteSaleUseCase {
	return &CompleteSaleUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
	}
}

// CompleteSale procesa el carrito y devuelve la venta creada.
// Ventas a crédito nacen con status pending y requieren fecha de vencimiento;
// el resto nacen completed. El precio por línea respeta el precio de ruta si
// se indicó RouteID.
func (uc *CompleteSaleUseCase) CompleteSale(ctx context.Context, in dto.CompleteSaleRequest) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod == entity.PaymentCredito && in.CreditDueDate == nil {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Líneas repetidas del mismo producto se combinan en una sola (sumando
	// cantidades), igual que el carrito de la caja al re-agregar un producto.
	// Así el stock se valida y descuenta una sola vez por producto.
	items := mergeCartItems(in.Items)

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	// Pre-verificación sin bloqueo: rechaza temprano carritos imposibles.
	// La verificación definitiva ocurre dentro de la transacción.
	for _, item := range items {
		p, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if p.Stock < item.Quantity {
			return nil, &domain.InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Requested:   item.Quantity,
				Available:   p.Stock,
			}
		}
	}

	now := time.Now()
	var sale *entity.Sale

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		counterRepo repository.CounterRepository,
	) error {
		// Bloquea cada producto y re-verifica stock ya con la fila tomada.
		type lockedItem struct {
			product  *entity.Product
			quantity int
			price    decimal.Decimal
		}
		locked := make([]lockedItem, 0, len(items))
		for _, item := range items {
			p, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if p.Stock < item.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Requested:   item.Quantity,
					Available:   p.Stock,
				}
			}
			locked = append(locked, lockedItem{
				product:  p,
				quantity: item.Quantity,
				price:    p.PriceForRoute(in.RouteID),
			})
		}

		counter, err := counterRepo.GetForUpdate()
		if err != nil {
			return err
		}
		saleID := counter.NextSaleID

		// Detalles con nombre y precio congelados al momento de la venta.
		subtotal := decimal.Zero
		details := make([]entity.SaleDetail, 0, len(locked))
		for _, li := range locked {
			lineSubtotal := li.price.Mul(decimal.NewFromInt(int64(li.quantity)))
			details = append(details, entity.SaleDetail{
				ProductID: li.product.ID,
				Name:      li.product.Name,
				Quantity:  li.quantity,
				Price:     li.price,
				Subtotal:  lineSubtotal,
			})
			subtotal = subtotal.Add(lineSubtotal)
		}
		taxAmount := subtotal.Mul(settings.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
		total := subtotal.Add(taxAmount)

		status := entity.SaleStatusCompleted
		if in.PaymentMethod == entity.PaymentCredito {
			status = entity.SaleStatusPending
		}

		sale = &entity.Sale{
			ID:            saleID,
			Date:          now,
			CustomerName:  in.CustomerName,
			PaymentMethod: in.PaymentMethod,
			PaymentLabel:  entity.PaymentLabels[in.PaymentMethod],
			Subtotal:      subtotal,
			TaxRate:       settings.TaxRate,
			TaxAmount:     taxAmount,
			Total:         total,
			Details:       details,
			Status:        status,
			CreditDueDate: in.CreditDueDate,
			CreatedAt:     now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// Descuento de stock + movimiento de auditoría por línea, en orden de
		// carrito, con IDs de movimiento consecutivos.
		movementID := counter.NextMovementID
		for _, li := range locked {
			newStock := li.product.Stock - li.quantity
			if err := productRepo.UpdateStock(li.product.ID, newStock); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:            movementID,
				ProductID:     li.product.ID,
				ProductName:   li.product.Name,
				Type:          entity.MovementVenta,
				Quantity:      li.quantity,
				PreviousStock: li.product.Stock,
				NewStock:      newStock,
				Notes:         fmt.Sprintf("Venta #%d", saleID),
				Date:          now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			movementID++
		}

		counter.NextSaleID = saleID + 1
		counter.NextMovementID = movementID
		return counterRepo.Update(counter)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// mergeCartItems combina líneas repetidas del mismo producto conservando el
// orden de primera aparición en el carrito.
func mergeCartItems(items []dto.CartItemRequest) []dto.CartItemRequest {
	merged := make([]dto.CartItemRequest, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		if at, ok := index[item.ProductID]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
