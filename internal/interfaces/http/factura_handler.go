package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/infrastructure/factura"
)

// FacturaHandler sirve la factura de una venta en HTML y PDF. Las rutas son
// públicas a propósito: la factura se abre directo en el navegador desde un
// enlace para imprimirla.
type FacturaHandler struct {
	uc   *ventas.FacturaUseCase
	html *factura.HTMLRenderer
	pdf  *factura.PDFRenderer
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *ventas.FacturaUseCase, html *factura.HTMLRenderer, pdf *factura.PDFRenderer) *FacturaHandler {
	return &FacturaHandler{uc: uc, html: html, pdf: pdf}
}

// HTML godoc
// @Summary      Factura de una venta en HTML imprimible
// @Tags         ventas
// @Produce      html
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {string}  string  "Documento HTML"
// @Failure      404  {string}  string  "Venta no encontrada"
// @Router       /api/ventas/{id}/factura [get]
func (h *FacturaHandler) HTML(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondHTMLError(c, fiber.StatusBadRequest, "ID de venta inválido")
	}
	datos, err := h.uc.Datos(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return respondHTMLError(c, fiber.StatusNotFound, "Venta no encontrada")
		}
		// Endpoint de depuración: el detalle sí se devuelve en el cuerpo.
		return respondHTMLError(c, fiber.StatusInternalServerError, "Error al generar la factura: "+err.Error())
	}
	doc, err := h.html.Render(datos)
	if err != nil {
		return respondHTMLError(c, fiber.StatusInternalServerError, "Error al generar la factura: "+err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(doc)
}

// PDF godoc
// @Summary      Factura de una venta en PDF
// @Tags         ventas
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {string}  binary  "Documento PDF"
// @Failure      404  {string}  string  "Venta no encontrada"
// @Router       /api/ventas/{id}/factura/pdf [get]
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondHTMLError(c, fiber.StatusBadRequest, "ID de venta inválido")
	}
	datos, err := h.uc.Datos(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return respondHTMLError(c, fiber.StatusNotFound, "Venta no encontrada")
		}
		return respondHTMLError(c, fiber.StatusInternalServerError, "Error al generar la factura: "+err.Error())
	}
	doc, err := h.pdf.Render(datos)
	if err != nil {
		log.Error().Err(err).Int("venta_id", id).Msg("generar factura pdf")
		return respondHTMLError(c, fiber.StatusInternalServerError, "Error al generar la factura: "+err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura.pdf"`)
	return c.Send(doc)
}

// respondHTMLError cuerpo de error mínimo en HTML, no JSON.
func respondHTMLError(c *fiber.Ctx, status int, mensaje string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(
		"<!DOCTYPE html><html lang=\"es\"><head><meta charset=\"utf-8\"><title>Factura</title></head><body><h1>" +
			mensaje + "</h1></body></html>")
}
