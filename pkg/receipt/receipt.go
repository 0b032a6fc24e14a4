// Package receipt genera el texto de recibo compartible de una venta
// (formato pensado para WhatsApp, con negritas *asterisco*).
package receipt

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

const separatorWidth = 30

// Text genera el recibo en texto plano de una venta con los datos del negocio.
func Text(sale *entity.Sale, settings *entity.Settings) string {
	name := settings.BusinessName
	if name == "" {
		name = "Candy Cami"
	}
	footer := settings.ReceiptFooter
	if footer == "" {
		footer = "¡Gracias por su compra!"
	}
	sym := settings.CurrencySymbol
	sep := strings.Repeat("─", separatorWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "🍬 *%s*\n", name)
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "📋 *Recibo #%d*\n", sale.ID)
	fmt.Fprintf(&b, "📅 %s\n", sale.Date.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "👤 Cliente: %s\n", sale.CustomerName)
	fmt.Fprintf(&b, "💳 Pago: %s\n", sale.PaymentLabel)
	fmt.Fprintf(&b, "%s\n", sep)
	b.WriteString("*PRODUCTOS:*\n")

	for _, item := range sale.Details {
		fmt.Fprintf(&b, "  %dx %s\n", item.Quantity, item.Name)
		fmt.Fprintf(&b, "     %s%s\n", sym, item.Subtotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "Subtotal: %s%s\n", sym, sale.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Impuesto (%s%%): %s%s\n", sale.TaxRate.String(), sym, sale.TaxAmount.StringFixed(2))
	fmt.Fprintf(&b, "*TOTAL: %s%s*\n", sym, sale.Total.StringFixed(2))
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "%s\n", footer)

	return b.String()
}

// WhatsAppURL devuelve la URL wa.me para compartir el recibo de la venta.
func WhatsAppURL(sale *entity.Sale, settings *entity.Settings) string {
	return "https://wa.me/?text=" + url.QueryEscape(Text(sale, settings))
}
