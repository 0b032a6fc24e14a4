package usecase

import (
	"context"
	"time"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se edita por
// aquí: lo mutan el motor de ventas y los ajustes de inventario.
type ProductUseCase struct {
	txRunner TxRunner
	repo     repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo}
}

// Create crea un producto con ID consecutivo asignado desde el contador,
// dentro de la misma transacción que persiste el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.ProductTypeConcentrado && in.Type != entity.ProductTypeEmbolsado {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var product *entity.Product
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		counterRepo repository.CounterRepository,
	) error {
		counter, err := counterRepo.GetForUpdate()
		if err != nil {
			return err
		}
		product = &entity.Product{
			ID:             counter.NextProductID,
			Name:           in.Name,
			Type:           in.Type,
			Price:          in.Price,
			Cost:           in.Cost,
			Stock:          in.Stock,
			MinStock:       in.MinStock,
			RoutePrices:    in.RoutePrices,
			ExpirationDate: in.ExpirationDate,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		counter.NextProductID++
		return counterRepo.Update(counter)
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// List devuelve el catálogo; con lowStockOnly solo los productos en o por
// debajo de su stock mínimo.
func (uc *ProductUseCase) List(lowStockOnly bool) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if lowStockOnly && !p.IsLowStock() {
			continue
		}
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// Update actualiza los datos del producto. No permite modificar Stock.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Type != nil {
		if *in.Type != entity.ProductTypeConcentrado && *in.Type != entity.ProductTypeEmbolsado {
			return nil, domain.ErrInvalidInput
		}
		product.Type = *in.Type
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.ExpirationDate != nil {
		product.ExpirationDate = in.ExpirationDate
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// SetRoutePrice fija (o elimina, con precio nulo) el precio de una ruta.
func (uc *ProductUseCase) SetRoutePrice(id int64, routeID string, in dto.SetRoutePriceRequest) (*dto.ProductResponse, error) {
	if routeID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.SetRoutePrice(id, routeID, in.Price); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina un producto del catálogo. Los movimientos y ventas
// históricos conservan su snapshot de nombre.
func (uc *ProductUseCase) Delete(id int64) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
