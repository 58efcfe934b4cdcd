package repository

import (
	"context"

	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
)

// AccessLogRepository puerto append-only del log de acceso. Un fallo del
// Append no puede ignorarse: la auditoría es parte del contrato de
// autenticación, no telemetría best-effort.
type AccessLogRepository interface {
	Append(ctx context.Context, entry *entity.AccessLogEntry) error
}
