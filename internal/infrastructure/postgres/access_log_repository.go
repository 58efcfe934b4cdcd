package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/repository"
)

var _ repository.AccessLogRepository = (*AccessLogRepo)(nil)

// AccessLogRepo adaptador append-only sobre la tabla log_acceso.
// No expone lecturas ni updates: las entradas son inmutables para este sistema.
type AccessLogRepo struct {
	pool *pgxpool.Pool
}

// NewAccessLogRepository construye el adaptador del log de acceso.
func NewAccessLogRepository(pool *pgxpool.Pool) *AccessLogRepo {
	return &AccessLogRepo{pool: pool}
}

// Append inserta una entrada. usuario_id queda NULL cuando el intento fue con
// un username desconocido.
func (r *AccessLogRepo) Append(ctx context.Context, entry *entity.AccessLogEntry) error {
	query := `
		INSERT INTO log_acceso (id, usuario_id, exito, ip_origen, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.CredentialID, entry.Success, entry.OriginIP, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert access log: %w", err)
	}
	return nil
}
