package repository

import (
	"context"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
)

// CredentialRepository puerto de solo lectura sobre las cuentas de acceso.
// GetByUsername devuelve (nil, nil) si el username no existe. No filtra por
// activo: la política de cuenta desactivada la aplica el caso de uso, que
// necesita la credencial para auditar el intento contra el sujeto.
type CredentialRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.Credential, error)
}
