package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/pkg/config"
	"github.com/camilcandy/pos-api/pkg/logger"
)

// sampleProducts catálogo inicial cuando la base está vacía.
var sampleProducts = []entity.Product{
	{ID: 1, Name: "Concentrado Michelada Clásica", Type: entity.ProductTypeConcentrado, Price: decimal.RequireFromString("25.00"), Cost: decimal.RequireFromString("12.50"), Stock: 15, MinStock: 10},
	{ID: 2, Name: "Concentrado Michelada Tamarindo", Type: entity.ProductTypeConcentrado, Price: decimal.RequireFromString("28.00"), Cost: decimal.RequireFromString("14.00"), Stock: 8, MinStock: 10},
	{ID: 3, Name: "Concentrado Michelada Mango", Type: entity.ProductTypeConcentrado, Price: decimal.RequireFromString("28.00"), Cost: decimal.RequireFromString("14.00"), Stock: 12, MinStock: 10},
	{ID: 4, Name: "Cacahuates Japoneses", Type: entity.ProductTypeEmbolsado, Price: decimal.RequireFromString("15.00"), Cost: decimal.RequireFromString("8.00"), Stock: 25, MinStock: 15},
	{ID: 5, Name: "Gomitas de Sandía", Type: entity.ProductTypeEmbolsado, Price: decimal.RequireFromString("12.00"), Cost: decimal.RequireFromString("6.00"), Stock: 30, MinStock: 15},
	{ID: 6, Name: "Papas Sabritas", Type: entity.ProductTypeEmbolsado, Price: decimal.RequireFromString("18.00"), Cost: decimal.RequireFromString("9.00"), Stock: 10, MinStock: 15},
}

// Seed inicializa datos cuando la base está vacía: catálogo de ejemplo,
// contadores, configuración por defecto, las rutas de reparto y el admin
// inicial (el alta de usuarios vía API requiere un token de admin, así que
// el primero solo puede nacer aquí). Idempotente: si ya hay productos solo
// garantiza la fila de contadores, las rutas y el admin.
func Seed(ctx context.Context, pool *pgxpool.Pool, admin config.AdminConfig, log *logger.Logger) error {
	var productCount int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&productCount); err != nil {
		return err
	}

	now := time.Now()
	if productCount == 0 {
		log.Info().Msg("base vacía: inicializando datos de ejemplo")
		productRepo := NewProductRepository(pool)
		for i := range sampleProducts {
			p := sampleProducts[i]
			p.CreatedAt = now
			p.UpdatedAt = now
			if err := productRepo.Create(&p); err != nil {
				return err
			}
		}

		settings := entity.DefaultSettings()
		if err := NewSettingsRepository(pool).Save(&settings); err != nil {
			return err
		}
	}

	// Fila única de contadores; el siguiente ID de producto respeta el catálogo sembrado.
	_, err := pool.Exec(ctx, `
		INSERT INTO counters (id, next_product_id, next_sale_id, next_movement_id)
		VALUES (1, $1, 1, 1)
		ON CONFLICT (id) DO NOTHING`,
		int64(len(sampleProducts)+1),
	)
	if err != nil {
		return err
	}

	routeRepo := NewRouteRepository(pool)
	for _, route := range entity.DefaultRoutes {
		r := route
		r.CreatedAt = now
		r.UpdatedAt = now
		if err := routeRepo.Create(&r); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}

	return seedAdmin(ctx, pool, admin, now, log)
}

// seedAdmin crea el admin inicial si la tabla de usuarios está vacía y hay
// credenciales configuradas (ADMIN_EMAIL / ADMIN_PASSWORD).
func seedAdmin(ctx context.Context, pool *pgxpool.Pool, admin config.AdminConfig, now time.Time, log *logger.Logger) error {
	var userCount int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&userCount); err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}
	if admin.Email == "" || admin.Password == "" {
		log.Warn().Msg("sin usuarios y sin ADMIN_EMAIL/ADMIN_PASSWORD: nadie podrá registrar cuentas")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Msg("creando admin inicial")
	return NewUserRepository(pool).Create(&entity.User{
		ID:           uuid.NewString(),
		Email:        admin.Email,
		PasswordHash: string(hash),
		Name:         admin.Name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
