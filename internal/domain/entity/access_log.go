package entity

import "time"

// AccessLogEntry es un registro inmutable de un intento de login
// (tabla log_acceso). Se inserta exactamente uno por intento, exitoso o no,
// y nunca se modifica ni se borra desde este sistema.
type AccessLogEntry struct {
	ID           string
	CredentialID *string // nil cuando el username no existe en el sistema
	Success      bool
	OriginIP     string
	CreatedAt    time.Time
}
