// Package pdf genera la guía de despacho imprimible de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Guía de Despacho  │  N° Pedido + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITANTE: nombre + estado del pedido + observaciones    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Registro | Bobina | Colada | P. Compra | Ubic | Peso │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cantidad de bobinas / peso total                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoGuiaGenerator implementa usecase.GuiaPDFGenerator usando Maroto v2.
type MarotoGuiaGenerator struct{}

// NewMarotoGuiaGenerator construye el generador.
func NewMarotoGuiaGenerator() *MarotoGuiaGenerator { return &MarotoGuiaGenerator{} }

// GenerateGuiaPDF genera la guía del pedido y devuelve sus bytes.
func (g *MarotoGuiaGenerator) GenerateGuiaPDF(pedido *entity.PedidoCab, lineas []*entity.PedidoDetalle) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Guía de Despacho N° %d", pedido.IDPedido), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(solicitanteRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(lineas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar guía: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y N° de pedido + fecha (der).
func headerRow(pedido *entity.PedidoCab) core.Row {
	fecha := pedido.FechaPedido.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("GUÍA DE DESPACHO DE BOBINAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario de bobinas de acero", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO N°", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(strconv.Itoa(pedido.IDPedido), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// solicitanteRow: solicitante, estado del pedido y observaciones.
func solicitanteRow(pedido *entity.PedidoCab) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SOLICITANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(derefOr(pedido.Solicitante, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Estado: %s   |   Observaciones: %s",
				derefOr(pedido.EstadoPedido, "—"),
				derefOr(pedido.Observaciones, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de bobinas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Registro", 1, align.Center),
		h("Bobina", 4, align.Left),
		h("Colada", 2, align.Left),
		h("P. Compra", 2, align.Left),
		h("Ubicación", 2, align.Left),
		h("Peso (kg)", 1, align.Right),
	)
}

// tableDetailRows: una fila por bobina del pedido.
func tableDetailRows(lineas []*entity.PedidoDetalle) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, d := range lineas {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(d.RegistroID),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				derefOr(d.BobinaDesc, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				derefOr(d.Colada, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				derefOr(d.PedidoCompra, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				derefOr(d.Ubicacion, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				formatPeso(d.Peso),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: cantidad de bobinas y peso total.
func totalsRow(lineas []*entity.PedidoDetalle) core.Row {
	var pesoTotal float64
	for _, d := range lineas {
		if d.Peso != nil {
			pesoTotal += *d.Peso
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Bobinas:"),
			label("Peso total (kg):"),
		),
		col.New(3).Add(
			value(strconv.Itoa(len(lineas))),
			value(fmt.Sprintf("%.2f", pesoTotal)),
		),
	)
}

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func formatPeso(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f", *p)
}
