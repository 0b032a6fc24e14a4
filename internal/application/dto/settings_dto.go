package dto

import (
	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// UpdateSettingsRequest entrada para guardar la configuración del negocio.
// Los campos nulos conservan el valor actual.
type UpdateSettingsRequest struct {
	BusinessName    *string          `json:"business_name"`
	BusinessAddress *string          `json:"business_address"`
	BusinessPhone   *string          `json:"business_phone"`
	TaxRate         *decimal.Decimal `json:"tax_rate"`
	CurrencySymbol  *string          `json:"currency_symbol"`
	ReceiptFooter   *string          `json:"receipt_footer"`
	ThemeColor      *string          `json:"theme_color"`
	Language        *string          `json:"language"`
	DarkMode        *bool            `json:"dark_mode"`
}

// SettingsResponse salida de la configuración del negocio.
type SettingsResponse struct {
	BusinessName    string          `json:"business_name"`
	BusinessAddress string          `json:"business_address"`
	BusinessPhone   string          `json:"business_phone"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	CurrencySymbol  string          `json:"currency_symbol"`
	ReceiptFooter   string          `json:"receipt_footer"`
	ThemeColor      string          `json:"theme_color"`
	Language        string          `json:"language"`
	DarkMode        bool            `json:"dark_mode"`
}

// ToSettingsResponse convierte la entidad al DTO de salida.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	return SettingsResponse{
		BusinessName:    s.BusinessName,
		BusinessAddress: s.BusinessAddress,
		BusinessPhone:   s.BusinessPhone,
		TaxRate:         s.TaxRate,
		CurrencySymbol:  s.CurrencySymbol,
		ReceiptFooter:   s.ReceiptFooter,
		ThemeColor:      s.ThemeColor,
		Language:        s.Language,
		DarkMode:        s.DarkMode,
	}
}
