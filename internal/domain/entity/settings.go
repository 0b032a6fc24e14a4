package entity

import "github.com/shopspring/decimal"

// Settings es el registro único de configuración del negocio.
type Settings struct {
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	TaxRate         decimal.Decimal // porcentaje (16 = 16%)
	CurrencySymbol  string
	ReceiptFooter   string
	ThemeColor      string
	Language        string
	DarkMode        bool
}

// DefaultSettings valores por defecto cuando aún no hay configuración guardada.
func DefaultSettings() Settings {
	return Settings{
		BusinessName:   "Cami Candy",
		TaxRate:        decimal.NewFromInt(16),
		CurrencySymbol: "$",
		ReceiptFooter:  "¡Gracias por su compra! Vuelva pronto.",
		ThemeColor:     "default",
		Language:       "es",
	}
}
