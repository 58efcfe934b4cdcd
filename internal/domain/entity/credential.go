package entity

import "time"

// Roles válidos del sistema. El conjunto es cerrado: lo administra el script
// SQL inicial y no cambia en runtime.
const (
	RoleAdmin      = "admin"
	RoleJefeRRHH   = "jefe_rrhh"
	RoleRRHH       = "rrhh"
	RoleTrabajador = "trabajador"
)

// Credential representa una cuenta de acceso (tabla usuario JOIN rol).
// WorkerRUT asocia la cuenta a la ficha de un trabajador; las cuentas de
// gestión (rrhh, admin) no tienen asociación.
type Credential struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca el texto plano
	RoleID       int
	RoleName     string // admin, jefe_rrhh, rrhh, trabajador
	WorkerRUT    string // vacío si la cuenta no está ligada a un trabajador
	Active       bool
	CreatedAt    time.Time
}
