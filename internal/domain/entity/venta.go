package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// LineaVenta es una línea embebida de la venta: referencia a un producto o
// servicio con la cantidad y el costo pactados al momento de vender.
type LineaVenta struct {
	ID       int             `json:"id"`
	Cantidad int             `json:"cantidad"`
	Costo    decimal.Decimal `json:"costo"`
}

// Venta representa una venta. Las líneas de productos y servicios se guardan
// serializadas dentro de la fila (columnas JSONB), no como filas hijas: son
// inmutables tras la creación salvo que se reescriba la columna completa.
type Venta struct {
	ID            int
	CedulaCliente string // referencia denormalizada, sin FK
	Productos     []LineaVenta
	Servicios     []LineaVenta
	IVA           decimal.Decimal // porcentaje, p. ej. 16
	TotalPagar    decimal.Decimal
	MetodoPago    string // efectivo, tarjeta, transferencia
	Vendedor      string // nombre a mostrar, denormalizado al crear
	Estado        string // activo, inactivo
	FechaVenta    time.Time
}

// CodificarLineas serializa las líneas para la columna JSONB. Nunca emite null:
// una venta sin líneas guarda una lista vacía.
func CodificarLineas(lineas []LineaVenta) []byte {
	if lineas == nil {
		lineas = []LineaVenta{}
	}
	b, err := json.Marshal(lineas)
	if err != nil {
		return []byte("[]")
	}
	return b
}

// DecodificarLineas acepta tanto la representación estructurada (arreglo JSON)
// como texto serializado (string JSON que a su vez contiene el arreglo), que es
// como quedaron guardadas las filas antiguas. Un payload malformado produce una
// lista vacía, nunca un error.
func DecodificarLineas(raw []byte) []LineaVenta {
	if len(raw) == 0 {
		return []LineaVenta{}
	}
	var lineas []LineaVenta
	if err := json.Unmarshal(raw, &lineas); err == nil {
		if lineas == nil {
			return []LineaVenta{}
		}
		return lineas
	}
	// Doble codificación: la columna contiene un string JSON con el arreglo dentro.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &lineas); err == nil && lineas != nil {
			return lineas
		}
	}
	return []LineaVenta{}
}

// Subtotal suma costo×cantidad de todas las líneas de la venta.
func (v *Venta) Subtotal() decimal.Decimal {
	sub := decimal.Zero
	for _, l := range v.Productos {
		sub = sub.Add(l.Costo.Mul(decimal.NewFromInt(int64(l.Cantidad))))
	}
	for _, l := range v.Servicios {
		sub = sub.Add(l.Costo.Mul(decimal.NewFromInt(int64(l.Cantidad))))
	}
	return sub
}

// MontoIVA devuelve subtotal × iva/100 redondeado a 2 decimales.
func (v *Venta) MontoIVA() decimal.Decimal {
	return v.Subtotal().Mul(v.IVA).Div(decimal.NewFromInt(100)).Round(2)
}
