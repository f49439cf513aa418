package ventas

import "fmt"

// ErrVenta error de validación del flujo de venta, con el mensaje que se
// devuelve al cliente HTTP. Envuelve el error de dominio correspondiente para
// que errors.Is siga funcionando.
type ErrVenta struct {
	Mensaje string
	causa   error
}

func (e *ErrVenta) Error() string { return e.Mensaje }

func (e *ErrVenta) Unwrap() error { return e.causa }

func nuevoErrVenta(causa error, formato string, args ...any) *ErrVenta {
	return &ErrVenta{Mensaje: fmt.Sprintf(formato, args...), causa: causa}
}
