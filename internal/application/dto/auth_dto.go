package dto

// LoginRequest credenciales enviadas por la capa de presentación.
// OriginIP lo completa el handler a partir de la conexión, no el cliente.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	OriginIP string `json:"-"`
}

// SessionResponse descriptor de la sesión autenticada más su token firmado.
type SessionResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	WorkerRUT string `json:"worker_rut,omitempty"`
}
