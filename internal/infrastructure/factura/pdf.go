package factura

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/pkg/config"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorBlanco   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// PDFRenderer genera la factura en PDF con Maroto v2. Mismo contenido que el
// HTML, en formato A4 para archivar o enviar por correo.
type PDFRenderer struct {
	negocio config.NegocioConfig
}

func NewPDFRenderer(negocio config.NegocioConfig) *PDFRenderer {
	return &PDFRenderer{negocio: negocio}
}

// Render genera el PDF y devuelve sus bytes.
func (r *PDFRenderer) Render(datos *ventas.DatosFactura) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de venta", true).
		WithAuthor(r.negocio.Nombre, true).
		Build()

	m := maroto.New(cfg)
	v := datos.Venta

	m.AddRows(r.encabezado(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(r.datosCliente(datos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	if len(v.Productos) > 0 {
		m.AddRows(seccion("PRODUCTOS"))
		m.AddRows(cabeceraTabla())
		for _, fila := range filasLineas(v.Productos, datos.NombresProducto, "Producto") {
			m.AddRows(fila)
		}
	}
	if len(v.Servicios) > 0 {
		m.AddRows(seccion("SERVICIOS"))
		m.AddRows(cabeceraTabla())
		for _, fila := range filasLineas(v.Servicios, datos.NombresServicio, "Servicio") {
			m.AddRows(fila)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(r.totales(v))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("factura: generar pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// encabezado: nombre del negocio + NIT (izq) y número + fecha (der).
func (r *PDFRenderer) encabezado(v *entity.Venta) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.negocio.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("NIT: "+r.negocio.NIT, props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimario, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", v.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+v.FechaVenta.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGris,
			}),
		),
	)
}

// datosCliente: bloque del cliente con fallback a "No disponible".
func (r *PDFRenderer) datosCliente(datos *ventas.DatosFactura) core.Row {
	nombre, telefono := NoDisponible, NoDisponible
	if c := datos.Cliente; c != nil {
		nombre = c.Nombre + " " + c.Apellido
		if c.Telefono != "" {
			telefono = c.Telefono
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1,
			}),
			text.New(nombre, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Cédula: %s   |   Tel: %s   |   Vendedor: %s",
				datos.Venta.CedulaCliente, telefono, datos.Venta.Vendedor,
			), props.Text{Size: 8, Top: 12, Color: colorGris}),
		),
	)
}

func seccion(titulo string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 2,
		}),
	))
}

func cabeceraTabla() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorBlanco, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimario}).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Costo", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func filasLineas(lineas []entity.LineaVenta, nombres map[int]string, etiqueta string) []core.Row {
	filas := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		nombre, ok := nombres[l.ID]
		if !ok {
			nombre = fmt.Sprintf("%s #%d", etiqueta, l.ID)
		}
		total := l.Costo.Mul(decimal.NewFromInt(int64(l.Cantidad)))
		filas = append(filas, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				FormatearMoneda(l.Costo),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				FormatearMoneda(total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return filas
}

func (r *PDFRenderer) totales(v *entity.Venta) core.Row {
	etiqueta := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	valor := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	granEtiqueta := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 2,
		})
	}
	granValor := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			etiqueta("Subtotal:"),
			etiqueta("IVA ("+v.IVA.StringFixed(0)+"%):"),
			granEtiqueta("TOTAL A PAGAR:"),
		),
		col.New(3).Add(
			valor(FormatearMoneda(v.Subtotal())),
			valor(FormatearMoneda(v.MontoIVA())),
			granValor(FormatearMoneda(v.TotalPagar)),
		),
		col.New(3),
	)
}
