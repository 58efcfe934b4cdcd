package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Diego-69/taller-aplicaciones/internal/application/auth"
	appdir "github.com/Diego-69/taller-aplicaciones/internal/application/directory"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DirectoryUC *appdir.DirectoryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)

	// Directorio: solo roles de gestión. El caso de uso vuelve a verificar la
	// capacidad; el middleware corta antes para responder 403 sin tocar la DB.
	trabajadores := protected.Group("/trabajadores")
	trabajadores.Get("/me", directoryHandler.OwnRecord)
	trabajadores.Get("/me/ficha.pdf", directoryHandler.OwnFichaPDF)
	trabajadores.Get("/",
		RequireRole(entity.RoleAdmin, entity.RoleJefeRRHH, entity.RoleRRHH),
		directoryHandler.List,
	)

	// Catálogos para poblar los controles de filtro
	protected.Get("/areas", directoryHandler.ListAreas)
	protected.Get("/departamentos", directoryHandler.ListDepartamentos)
}
