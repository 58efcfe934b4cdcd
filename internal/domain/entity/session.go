package entity

// Session es el descriptor efímero que se crea tras un login exitoso.
// Vive en el token que porta la capa de presentación; nunca se persiste.
type Session struct {
	UserID    string
	Username  string
	Role      string
	WorkerRUT string // rut del trabajador asociado; vacío para cuentas de gestión
}
