// Package pdf genera el reporte PDF de la sesión de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Venta N° + Fecha de creación │ Sesión               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTES: Índice | Nombre | Documento | Productos | Total   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÍTEMS: Código | Producto | Valor unit. | Cant. | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Productos de clientes / TOTAL DE LA VENTA          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/venta-consola/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MoneyFormatter formatea montos para el reporte (ver pkg/money).
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

// MarotoPDFGenerator implementa sales.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	money      MoneyFormatter
	dateLayout string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(money MoneyFormatter, dateLayout string) *MarotoPDFGenerator {
	if dateLayout == "" {
		dateLayout = "2006-01-02"
	}
	return &MarotoPDFGenerator{money: money, dateLayout: dateLayout}
}

// GenerateSaleSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSaleSummaryPDF(
	ctx context.Context,
	summary dto.SaleSummaryResponse,
	customers []dto.CustomerResponse,
	items []dto.LineItemResponse,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Venta %d", summary.Number), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow(fmt.Sprintf("CLIENTES (%d)", summary.CustomerCount)))
	m.AddRows(tableHeaderRow(
		headerCol{"Índice", 1, align.Center},
		headerCol{"Nombre", 4, align.Left},
		headerCol{"Documento", 3, align.Left},
		headerCol{"Productos", 1, align.Center},
		headerCol{"Total productos", 3, align.Right},
	))
	m.AddRows(g.customerRows(customers)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow(fmt.Sprintf("ÍTEMS DE VENTA (%d)", summary.LineItemCount)))
	m.AddRows(tableHeaderRow(
		headerCol{"Código", 1, align.Center},
		headerCol{"Producto", 5, align.Left},
		headerCol{"Valor unit.", 2, align.Right},
		headerCol{"Cant.", 1, align.Center},
		headerCol{"Total", 3, align.Right},
	))
	m.AddRows(g.itemRows(items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.totalsRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: N° de venta + fecha (izq) y sesión (der).
func (g *MarotoPDFGenerator) headerRow(summary dto.SaleSummaryResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(fmt.Sprintf("VENTA N° %d", summary.Number), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Creada: "+summary.CreatedAt.Format(g.dateLayout+" 15:04"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESUMEN DE SESIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(summary.SessionID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

type headerCol struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cols ...headerCol) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, h := range cols {
		out = append(out, col.New(h.size).Add(text.New(h.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: h.align,
			Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

// customerRows: una fila por cliente; si no hay, una fila informativa.
func (g *MarotoPDFGenerator) customerRows(customers []dto.CustomerResponse) []core.Row {
	if len(customers) == 0 {
		return []core.Row{emptyRow("Ningún cliente registrado.")}
	}
	result := make([]core.Row, 0, len(customers))
	for _, c := range customers {
		result = append(result, row.New(7).Add(
			cell(strconv.Itoa(c.Index), 1, align.Center),
			cell(c.Name, 4, align.Left),
			cell(nonEmpty(c.DocumentID, "—"), 3, align.Left),
			cell(strconv.Itoa(len(c.Products)), 1, align.Center),
			cell(g.money.Format(c.TotalProductValue), 3, align.Right),
		))
	}
	return result
}

// itemRows: una fila por ítem de venta.
func (g *MarotoPDFGenerator) itemRows(items []dto.LineItemResponse) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Sin ítems de venta registrados.")}
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			cell(strconv.Itoa(it.Product.Code), 1, align.Center),
			cell(it.Product.Name, 5, align.Left),
			cell(g.money.Format(it.UnitValue), 2, align.Right),
			cell(strconv.Itoa(it.Quantity), 1, align.Center),
			cell(g.money.Format(it.Total), 3, align.Right),
		))
	}
	return result
}

// totalsRow: ambos totales, independientes entre sí.
func (g *MarotoPDFGenerator) totalsRow(summary dto.SaleSummaryResponse) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: top,
			Color: colorPrimary,
		})
	}
	return row.New(16).Add(
		col.New(4),
		col.New(4).Add(
			label("Productos de clientes:", 1),
			label("TOTAL DE LA VENTA:", 8),
		),
		col.New(4).Add(
			value(g.money.Format(summary.TotalCustomerProductValue), 1),
			value(g.money.Format(summary.Total), 8),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func emptyRow(msg string) core.Row {
	return row.New(7).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 8, Top: 1, Color: colorGray,
	})))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
