package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// Una sola fila (id = 1); Get devuelve los defaults si aún no se ha guardado.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de persistencia para la configuración. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get lee la configuración vigente. Sin fila guardada devuelve DefaultSettings.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT business_name, business_address, business_phone, tax_rate, currency_symbol,
			receipt_footer, theme_color, language, dark_mode
		FROM settings WHERE id = 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.BusinessName, &s.BusinessAddress, &s.BusinessPhone, &s.TaxRate, &s.CurrencySymbol,
		&s.ReceiptFooter, &s.ThemeColor, &s.Language, &s.DarkMode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := entity.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save guarda la configuración (upsert sobre la fila única).
func (r *SettingsRepo) Save(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, business_name, business_address, business_phone, tax_rate,
			currency_symbol, receipt_footer, theme_color, language, dark_mode)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			business_address = EXCLUDED.business_address,
			business_phone = EXCLUDED.business_phone,
			tax_rate = EXCLUDED.tax_rate,
			currency_symbol = EXCLUDED.currency_symbol,
			receipt_footer = EXCLUDED.receipt_footer,
			theme_color = EXCLUDED.theme_color,
			language = EXCLUDED.language,
			dark_mode = EXCLUDED.dark_mode`
	_, err := r.q.Exec(context.Background(), query,
		settings.BusinessName, settings.BusinessAddress, settings.BusinessPhone,
		settings.TaxRate, settings.CurrencySymbol, settings.ReceiptFooter,
		settings.ThemeColor, settings.Language, settings.DarkMode,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
