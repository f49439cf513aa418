// Package factura renderiza la factura de una venta en HTML imprimible y en
// PDF. El HTML es un documento autocontenido pensado para abrirse directo en
// el navegador y mandarse a imprimir.
package factura

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/pkg/config"
)

// NoDisponible es el texto que sustituye los datos del cliente cuando la
// cédula de la venta ya no resuelve a un cliente.
const NoDisponible = "No disponible"

var impresoraES = message.NewPrinter(language.Spanish)

// lineaVista línea ya resuelta para la plantilla.
type lineaVista struct {
	Nombre   string
	Cantidad int
	Costo    string
	Total    string
}

type facturaVista struct {
	Negocio config.NegocioConfig

	NumeroFactura string
	Fecha         string
	MetodoPago    string
	Vendedor      string

	ClienteNombre    string
	ClienteCedula    string
	ClienteTelefono  string
	ClienteDireccion string

	Productos []lineaVista
	Servicios []lineaVista

	Subtotal string
	IVATasa  string
	IVAMonto string
	Total    string
}

// HTMLRenderer pinta la factura con html/template.
type HTMLRenderer struct {
	negocio config.NegocioConfig
	tpl     *template.Template
}

// NewHTMLRenderer construye el renderer; los datos del encabezado salen de la
// configuración del negocio.
func NewHTMLRenderer(negocio config.NegocioConfig) *HTMLRenderer {
	return &HTMLRenderer{
		negocio: negocio,
		tpl:     template.Must(template.New("factura").Parse(plantillaFactura)),
	}
}

// Render genera el documento HTML de la factura.
func (r *HTMLRenderer) Render(datos *ventas.DatosFactura) ([]byte, error) {
	vista := r.armarVista(datos)
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, vista); err != nil {
		return nil, fmt.Errorf("factura: renderizar html: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) armarVista(datos *ventas.DatosFactura) facturaVista {
	v := datos.Venta
	vista := facturaVista{
		Negocio:       r.negocio,
		NumeroFactura: fmt.Sprintf("%06d", v.ID),
		Fecha:         v.FechaVenta.Format("02/01/2006 15:04"),
		MetodoPago:    v.MetodoPago,
		Vendedor:      v.Vendedor,

		ClienteNombre:    NoDisponible,
		ClienteCedula:    v.CedulaCliente,
		ClienteTelefono:  NoDisponible,
		ClienteDireccion: NoDisponible,

		Subtotal: FormatearMoneda(v.Subtotal()),
		IVATasa:  v.IVA.StringFixed(0) + "%",
		IVAMonto: FormatearMoneda(v.MontoIVA()),
		Total:    FormatearMoneda(v.TotalPagar),
	}
	if vista.ClienteCedula == "" {
		vista.ClienteCedula = NoDisponible
	}
	if c := datos.Cliente; c != nil {
		vista.ClienteNombre = c.Nombre + " " + c.Apellido
		if c.Telefono != "" {
			vista.ClienteTelefono = c.Telefono
		}
		if c.Direccion != "" {
			vista.ClienteDireccion = c.Direccion
		}
	}
	vista.Productos = aLineasVista(v.Productos, datos.NombresProducto, "Producto")
	vista.Servicios = aLineasVista(v.Servicios, datos.NombresServicio, "Servicio")
	return vista
}

func aLineasVista(lineas []entity.LineaVenta, nombres map[int]string, etiqueta string) []lineaVista {
	out := make([]lineaVista, 0, len(lineas))
	for _, l := range lineas {
		nombre, ok := nombres[l.ID]
		if !ok {
			nombre = fmt.Sprintf("%s #%d", etiqueta, l.ID)
		}
		out = append(out, lineaVista{
			Nombre:   nombre,
			Cantidad: l.Cantidad,
			Costo:    FormatearMoneda(l.Costo),
			Total:    FormatearMoneda(l.Costo.Mul(decimal.NewFromInt(int64(l.Cantidad)))),
		})
	}
	return out
}

// FormatearMoneda formatea un monto con separadores en español: 1234567.5 →
// "$ 1.234.567,50".
func FormatearMoneda(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return impresoraES.Sprintf("$ %.2f", f)
}

const plantillaFactura = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Factura {{.NumeroFactura}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 13px; color: #222; margin: 24px; }
  .encabezado { text-align: center; border-bottom: 2px solid #00467f; padding-bottom: 10px; }
  .encabezado h1 { margin: 0; color: #00467f; font-size: 22px; }
  .encabezado p { margin: 2px 0; color: #555; }
  .meta, .cliente { margin-top: 14px; }
  .meta td, .cliente td { padding: 2px 10px 2px 0; }
  h2 { font-size: 14px; color: #00467f; border-bottom: 1px solid #ccc; padding-bottom: 3px; margin: 18px 0 6px; }
  table.lineas { width: 100%; border-collapse: collapse; }
  table.lineas th { background: #00467f; color: #fff; padding: 5px 8px; text-align: left; font-size: 12px; }
  table.lineas td { border-bottom: 1px solid #ddd; padding: 5px 8px; }
  td.num, th.num { text-align: right; }
  .vacio { color: #888; font-style: italic; padding: 8px 0; }
  .totales { margin-top: 16px; width: 100%; }
  .totales td { padding: 3px 8px; text-align: right; }
  .totales .gran td { font-weight: bold; color: #00467f; font-size: 15px; border-top: 2px solid #00467f; }
  .controles { margin-top: 26px; text-align: center; }
  .controles button { padding: 8px 22px; margin: 0 6px; font-size: 13px; cursor: pointer; }
  @media print { .controles { display: none; } }
</style>
</head>
<body>
  <div class="encabezado">
    <h1>{{.Negocio.Nombre}}</h1>
    <p>NIT: {{.Negocio.NIT}}</p>
    <p>{{.Negocio.Direccion}} | Tel: {{.Negocio.Telefono}} | {{.Negocio.Email}}</p>
  </div>

  <table class="meta">
    <tr><td><strong>Factura N°:</strong> {{.NumeroFactura}}</td><td><strong>Fecha:</strong> {{.Fecha}}</td></tr>
    <tr><td><strong>Método de pago:</strong> {{.MetodoPago}}</td><td><strong>Vendedor:</strong> {{.Vendedor}}</td></tr>
  </table>

  <h2>Datos del cliente</h2>
  <table class="cliente">
    <tr><td><strong>Nombre:</strong> {{.ClienteNombre}}</td><td><strong>Cédula:</strong> {{.ClienteCedula}}</td></tr>
    <tr><td><strong>Teléfono:</strong> {{.ClienteTelefono}}</td><td><strong>Dirección:</strong> {{.ClienteDireccion}}</td></tr>
  </table>

  <h2>Productos</h2>
  {{if .Productos}}
  <table class="lineas">
    <tr><th>Producto</th><th class="num">Cantidad</th><th class="num">Costo</th><th class="num">Total</th></tr>
    {{range .Productos}}
    <tr><td>{{.Nombre}}</td><td class="num">{{.Cantidad}}</td><td class="num">{{.Costo}}</td><td class="num">{{.Total}}</td></tr>
    {{end}}
  </table>
  {{else}}
  <p class="vacio">No hay productos en esta venta</p>
  {{end}}

  <h2>Servicios</h2>
  {{if .Servicios}}
  <table class="lineas">
    <tr><th>Servicio</th><th class="num">Cantidad</th><th class="num">Costo</th><th class="num">Total</th></tr>
    {{range .Servicios}}
    <tr><td>{{.Nombre}}</td><td class="num">{{.Cantidad}}</td><td class="num">{{.Costo}}</td><td class="num">{{.Total}}</td></tr>
    {{end}}
  </table>
  {{else}}
  <p class="vacio">No hay servicios en esta venta</p>
  {{end}}

  <table class="totales">
    <tr><td>Subtotal:</td><td>{{.Subtotal}}</td></tr>
    <tr><td>IVA ({{.IVATasa}}):</td><td>{{.IVAMonto}}</td></tr>
    <tr class="gran"><td>TOTAL A PAGAR:</td><td>{{.Total}}</td></tr>
  </table>

  <div class="controles">
    <button onclick="window.print()">Imprimir</button>
    <button onclick="window.close()">Cerrar</button>
  </div>
</body>
</html>
`
