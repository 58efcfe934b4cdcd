package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidCredentials cubre usuario inexistente, contraseña incorrecta
	// y cuenta desactivada. El caller nunca distingue la causa.
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")

	// ErrStoreUnavailable indica que la base de datos no respondió o que un
	// write obligatorio (log de acceso) no pudo completarse.
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")

	ErrUnauthorized   = errors.New("operación no autorizada para el rol")
	ErrNoLinkedRecord = errors.New("el usuario no está asociado a ningún trabajador")
	ErrNotFound       = errors.New("recurso no encontrado")
)
