package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Diego-69/taller-aplicaciones/internal/application/auth"
	appdir "github.com/Diego-69/taller-aplicaciones/internal/application/directory"
	infrapdf "github.com/Diego-69/taller-aplicaciones/internal/infrastructure/pdf"
	"github.com/Diego-69/taller-aplicaciones/internal/infrastructure/postgres"
	httpRouter "github.com/Diego-69/taller-aplicaciones/internal/interfaces/http"
	"github.com/Diego-69/taller-aplicaciones/pkg/config"
	"github.com/Diego-69/taller-aplicaciones/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// El log de acceso es obligatorio: si la DB no está disponible al arranque
	// la aplicación no debe levantar, porque ningún login podría auditarse.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).
			Str("host", cfg.DB.Host).
			Str("db", cfg.DB.DBName).
			Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	credRepo := postgres.NewCredentialRepository(pool)
	accessLogRepo := postgres.NewAccessLogRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)

	authUC := auth.NewAuthUseCase(credRepo, accessLogRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	fichaGenerator := infrapdf.NewMarotoFichaGenerator()
	directoryUC := appdir.NewDirectoryUseCase(workerRepo, fichaGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SIGERH API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DirectoryUC: directoryUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
