package usecase

import (
	"time"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// ExportSource etiqueta que identifica el origen del respaldo.
const ExportSource = "camilcandy-pos"

// ExportUseCase arma el respaldo completo de datos en JSON: todas las
// colecciones más el estado de los contadores.
type ExportUseCase struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	movementRepo repository.StockMovementRepository
	clientRepo   repository.ClientRepository
	routeRepo    repository.RouteRepository
	expenseRepo  repository.ExpenseRepository
	settingsRepo repository.SettingsRepository
	counterRepo  repository.CounterRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	movementRepo repository.StockMovementRepository,
	clientRepo repository.ClientRepository,
	routeRepo repository.RouteRepository,
	expenseRepo repository.ExpenseRepository,
	settingsRepo repository.SettingsRepository,
	counterRepo repository.CounterRepository,
) *ExportUseCase {
	return &ExportUseCase{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		movementRepo: movementRepo,
		clientRepo:   clientRepo,
		routeRepo:    routeRepo,
		expenseRepo:  expenseRepo,
		settingsRepo: settingsRepo,
		counterRepo:  counterRepo,
	}
}

// Export recolecta todas las colecciones y devuelve el respaldo con fecha de
// exportación en ISO-8601.
func (uc *ExportUseCase) Export() (*dto.ExportResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List(0)
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	routes, err := uc.routeRepo.List(false)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List(0)
	if err != nil {
		return nil, err
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	counter, err := uc.counterRepo.Get()
	if err != nil {
		return nil, err
	}

	out := &dto.ExportResponse{
		ExportDate: time.Now().Format(time.RFC3339),
		Source:     ExportSource,
		Settings:   dto.ToSettingsResponse(settings),
		Counters: dto.CountersResponse{
			NextProductID:  counter.NextProductID,
			NextSaleID:     counter.NextSaleID,
			NextMovementID: counter.NextMovementID,
		},
	}
	out.Products = make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out.Products = append(out.Products, dto.ToProductResponse(p))
	}
	out.Sales = make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out.Sales = append(out.Sales, dto.ToSaleResponse(s))
	}
	out.Movements = make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out.Movements = append(out.Movements, dto.ToStockMovementResponse(m))
	}
	out.Clients = make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out.Clients = append(out.Clients, dto.ToClientResponse(c))
	}
	out.Routes = make([]dto.RouteResponse, 0, len(routes))
	for _, r := range routes {
		out.Routes = append(out.Routes, dto.ToRouteResponse(r))
	}
	out.Expenses = make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out.Expenses = append(out.Expenses, dto.ToExpenseResponse(e))
	}
	return out, nil
}
