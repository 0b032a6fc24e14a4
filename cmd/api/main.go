package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/camilcandy/pos-api/internal/application/auth"
	"github.com/camilcandy/pos-api/internal/application/inventory"
	"github.com/camilcandy/pos-api/internal/application/pos"
	"github.com/camilcandy/pos-api/internal/application/usecase"
	infrapdf "github.com/camilcandy/pos-api/internal/infrastructure/pdf"
	"github.com/camilcandy/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/camilcandy/pos-api/internal/interfaces/http"
	"github.com/camilcandy/pos-api/pkg/config"
	"github.com/camilcandy/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.App.SeedOnStart {
		if err := postgres.Seed(ctx, pool, cfg.Admin, log); err != nil {
			log.Fatal().Err(err).Msg("siembra de datos iniciales")
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	counterRepo := postgres.NewCounterRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	routeRepo := postgres.NewRouteRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	completeSaleUC := pos.NewCompleteSaleUseCase(txRunner, productRepo, settingsRepo)
	markPaidUC := pos.NewMarkPaidUseCase(saleRepo)
	saleQueriesUC := pos.NewSaleQueryUseCase(saleRepo, settingsRepo)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner)
	movementsUC := inventory.NewMovementQueryUseCase(movementRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	routeUC := usecase.NewRouteUseCase(routeRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	reportUC := usecase.NewReportUseCase(saleRepo, productRepo, expenseRepo)
	exportUC := usecase.NewExportUseCase(
		productRepo, saleRepo, movementRepo, clientRepo,
		routeRepo, expenseRepo, settingsRepo, counterRepo,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	receiptPDF := infrapdf.NewReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Candy Cami POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		AdjustStock:  adjustStockUC,
		Movements:    movementsUC,
		CompleteSale: completeSaleUC,
		MarkPaid:     markPaidUC,
		SaleQueries:  saleQueriesUC,
		ReceiptPDF:   receiptPDF,
		ClientUC:     clientUC,
		RouteUC:      routeUC,
		ExpenseUC:    expenseUC,
		SettingsUC:   settingsUC,
		ReportUC:     reportUC,
		ExportUC:     exportUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
