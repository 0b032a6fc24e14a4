// Package pdf implementa la generación del recibo de venta en PDF con
// Maroto v2: encabezado del negocio, datos de la venta, tabla de líneas,
// totales y pie configurable.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 194, Green: 54, Blue: 116}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera el recibo PDF de una venta.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Generate genera el PDF del recibo y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(sale *entity.Sale, settings *entity.Settings) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo #%d", sale.ID), true).
		WithAuthor(settings.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(saleInfoRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(sale, settings.CurrencySymbol) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale, settings.CurrencySymbol))

	if settings.ReceiptFooter != "" {
		m.AddRows(line.NewRow(2))
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(settings.ReceiptFooter, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y número de recibo (der).
func headerRow(sale *entity.Sale, settings *entity.Settings) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(settings.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(settings.BusinessAddress, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("#%d", sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+sale.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// saleInfoRow: cliente y método de pago.
func saleInfoRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Cliente: "+sale.CustomerName, props.Text{Size: 9, Top: 1}),
			text.New("Pago: "+sale.PaymentLabel, props.Text{Size: 9, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("Precio", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func tableDetailRows(sale *entity.Sale, sym string) []core.Row {
	result := make([]core.Row, 0, len(sale.Details))
	for _, d := range sale.Details {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", d.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				d.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				sym+d.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				sym+d.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(sale *entity.Sale, sym string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(24).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("Impuesto (%s%%):", sale.TaxRate.String())),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2,
			}),
		),
		col.New(4).Add(
			value(sym+sale.Subtotal.StringFixed(2)),
			value(sym+sale.TaxAmount.StringFixed(2)),
			text.New(sym+sale.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1,
			}),
		),
	)
}
