package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

var _ repository.CambioRepository = (*CambioRepo)(nil)

// CambioRepo bitácora de auditoría sobre PostgreSQL. Solo escritura.
type CambioRepo struct {
	q Querier
}

// NewCambioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCambioRepository(q Querier) *CambioRepo {
	return &CambioRepo{q: q}
}

// Crear inserta una entrada de la bitácora.
func (r *CambioRepo) Crear(ctx context.Context, c *entity.Cambio) error {
	query := `
		INSERT INTO cambios (id, usuario, descripcion, accion, entidad, entidad_id, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Usuario, c.Descripcion, c.Accion, c.Entidad, c.EntidadID, c.Fecha)
	if err != nil {
		return fmt.Errorf("insert cambio: %w", err)
	}
	return nil
}
