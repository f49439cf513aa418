package repository

import (
	"context"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// CambioRepository puerto de la bitácora de auditoría. Solo escritura: ningún
// endpoint documentado lee los cambios de vuelta.
type CambioRepository interface {
	Crear(ctx context.Context, c *entity.Cambio) error
}
