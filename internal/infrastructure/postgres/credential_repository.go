package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo implementación del puerto CredentialRepository sobre PostgreSQL.
type CredentialRepo struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository construye el adaptador de lectura de credenciales.
func NewCredentialRepository(pool *pgxpool.Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

// GetByUsername obtiene la credencial con su rol. Devuelve (nil, nil) si el
// username no existe. Trae también las cuentas desactivadas: la política de
// activo la decide el caso de uso, que debe auditar el intento.
func (r *CredentialRepo) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, u.rol_id, r.nombre,
		       COALESCE(u.rut_trabajador, ''), u.activo, u.created_at
		FROM usuario u
		JOIN rol r ON u.rol_id = r.id
		WHERE u.username = $1`
	var c entity.Credential
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&c.ID, &c.Username, &c.PasswordHash, &c.RoleID, &c.RoleName,
		&c.WorkerRUT, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential by username: %w", err)
	}
	return &c, nil
}
