package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilcandy/pos-api/internal/application/auth"
	"github.com/camilcandy/pos-api/internal/application/inventory"
	"github.com/camilcandy/pos-api/internal/application/pos"
	"github.com/camilcandy/pos-api/internal/application/usecase"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	AdjustStock  *inventory.AdjustStockUseCase
	Movements    *inventory.MovementQueryUseCase
	CompleteSale *pos.CompleteSaleUseCase
	MarkPaid     *pos.MarkPaidUseCase
	SaleQueries  *pos.SaleQueryUseCase
	ReceiptPDF   *pdf.ReceiptGenerator
	ClientUC     *usecase.ClientUseCase
	RouteUC      *usecase.RouteUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	SettingsUC   *usecase.SettingsUseCase
	ReportUC     *usecase.ReportUseCase
	ExportUC     *usecase.ExportUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login es público; el alta de usuarios es solo admin (el primer
	// admin se crea en la siembra con ADMIN_EMAIL/ADMIN_PASSWORD).
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; eliminar es solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.AdjustStock, deps.Movements)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Put("/:id/route-price/:routeId", productHandler.SetRoutePrice)
	products.Post("/:id/adjust-stock", productHandler.AdjustStock)
	products.Get("/:id/movements", productHandler.Movements)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Movements)
	invGroup.Get("/movements", inventoryHandler.Movements)

	// Sales (protegido)
	sales := protected.Group("/sales")
	posHandler := NewPOSHandler(deps.CompleteSale, deps.MarkPaid, deps.SaleQueries, deps.ReceiptPDF)
	sales.Post("/", posHandler.CompleteSale)
	sales.Get("/", posHandler.List)
	sales.Get("/:id", posHandler.GetByID)
	sales.Put("/:id/pay", posHandler.MarkPaid)
	sales.Get("/:id/receipt", posHandler.Receipt)
	sales.Get("/:id/receipt.pdf", posHandler.ReceiptPDF)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/with-credit", clientHandler.ListWithCredit)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", adminOnly, clientHandler.Delete)
	clients.Post("/:id/purchases", clientHandler.RegisterPurchase)
	clients.Post("/:id/credit", clientHandler.AddCredit)
	clients.Post("/:id/credit/payments", clientHandler.ReduceCredit)

	// Routes (protegido)
	routes := protected.Group("/routes")
	routeHandler := NewRouteHandler(deps.RouteUC)
	routes.Post("/", routeHandler.Create)
	routes.Get("/", routeHandler.List)
	routes.Get("/:id", routeHandler.GetByID)
	routes.Put("/:id", routeHandler.Update)

	// Expenses (protegido; eliminar es solo admin)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/categories", expenseHandler.Categories)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", adminOnly, expenseHandler.Delete)

	// Settings (protegido; guardar es solo admin)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", adminOnly, settingsHandler.Update)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales-summary", reportHandler.SalesSummary)
	reports.Get("/top-products", reportHandler.TopProducts)
	reports.Get("/expenses", reportHandler.Expenses)
	reports.Get("/pending-sales", reportHandler.PendingSales)
	reports.Get("/expirations", reportHandler.Expirations)
	reports.Get("/inventory", reportHandler.Inventory)

	// Export (solo admin)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export", adminOnly, exportHandler.Export)
}
