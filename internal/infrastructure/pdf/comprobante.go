// Package pdf genera el comprobante de un pedido usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda Online  │  N° Pedido + Fecha + Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL PEDIDO                                            │
//	│  QR con el id del pedido + leyenda                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 253}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generador ─────────────────────────────────────────────────────────────────

// GeneradorComprobante produce el comprobante PDF de un pedido.
type GeneradorComprobante struct{}

// NewGeneradorComprobante construye el generador.
func NewGeneradorComprobante() *GeneradorComprobante { return &GeneradorComprobante{} }

// Generar genera el PDF y devuelve sus bytes. productos aporta los nombres y
// precios observados; una línea sin producto conocido se imprime por id.
func (g *GeneradorComprobante) Generar(pedido entity.Pedido, productos map[string]entity.Producto) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabeceraRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tablaCabeceraRow())
	for _, r := range tablaLineasRows(pedido, productos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(pedido))

	m.AddRows(line.NewRow(3))
	m.AddRows(pieRow(pedido))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// cabeceraRow: nombre de la tienda (izq) y pedido + fecha + estado (der).
func cabeceraRow(pedido entity.Pedido) core.Row {
	fecha := pedido.Fecha.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Tienda Online", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de pedido", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO "+pedido.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Estado: "+string(pedido.Estado), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 13,
			}),
		),
	)
}

// tablaCabeceraRow: cabecera de la tabla de líneas.
func tablaCabeceraRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tablaLineasRows: una fila por línea del pedido.
func tablaLineasRows(pedido entity.Pedido, productos map[string]entity.Producto) []core.Row {
	result := make([]core.Row, 0, len(pedido.Productos))
	for _, it := range pedido.Productos {
		nombre := it.ProductoID
		if p, ok := productos[it.ProductoID]; ok {
			nombre = p.Nombre
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.PrecioUnitario.StringFixed(2)+" €",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				it.Subtotal().StringFixed(2)+" €",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total del pedido alineado a la derecha.
func totalRow(pedido entity.Pedido) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})),
		col.New(3).Add(text.New(pedido.Total.StringFixed(2)+" €", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})),
	)
}

// pieRow: QR con el id del pedido + leyenda.
func pieRow(pedido entity.Pedido) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(pedido.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR para consultar\nel estado de tu pedido.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Gracias por tu compra", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 20,
				Left: 3, Color: colorPrimary,
			}),
		),
	)
}
