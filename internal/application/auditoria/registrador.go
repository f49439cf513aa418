// Package auditoria registra en la bitácora quién cambió qué entidad y cómo.
// Las escrituras son best-effort: un fallo al auditar se loguea pero nunca
// hace fallar la operación de negocio que ya se completó.
package auditoria

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
	"github.com/jcastellano/gestion-api/pkg/logger"
)

// Registrador escribe entradas de auditoría tras cada mutación exitosa.
type Registrador struct {
	repo repository.CambioRepository
	log  *logger.Logger
}

// NewRegistrador construye el registrador.
func NewRegistrador(repo repository.CambioRepository, log *logger.Logger) *Registrador {
	return &Registrador{repo: repo, log: log}
}

// Registrar escribe una entrada. actor es el nombre de usuario autenticado.
func (r *Registrador) Registrar(ctx context.Context, actor, accion, entidad, entidadID, descripcion string) {
	cambio := &entity.Cambio{
		ID:          uuid.New().String(),
		Usuario:     actor,
		Descripcion: descripcion,
		Accion:      accion,
		Entidad:     entidad,
		EntidadID:   entidadID,
		Fecha:       time.Now(),
	}
	if err := r.repo.Crear(ctx, cambio); err != nil {
		r.log.Error().Err(err).
			Str("entidad", entidad).
			Str("entidad_id", entidadID).
			Str("accion", accion).
			Msg("no se pudo registrar el cambio en la bitácora")
	}
}
