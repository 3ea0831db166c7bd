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

	_ "github.com/jhoicas/inventario-console/docs"
	"github.com/jhoicas/inventario-console/internal/application/auth"
	"github.com/jhoicas/inventario-console/internal/application/movement"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/inventario-console/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-console/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-console/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventario-console/internal/interfaces/http"
	"github.com/jhoicas/inventario-console/pkg/config"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.URL).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando consola")

	ctx := context.Background()

	// Almacenamiento de sesiones según SESSION_STORE
	var sessions repository.SessionStorage
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones de sesión")
		}
		sessions = postgres.NewSessionStorage(pool)
	case config.SessionStoreFile:
		sessions = storage.NewFile(cfg.Session.File)
		log.Info().Str("file", cfg.Session.File).Msg("sesiones en archivo")
	default:
		sessions = storage.NewMemory()
	}

	client := backend.NewClient(cfg.Backend.URL, backend.Options{
		Timeout: cfg.Backend.Timeout,
		RPS:     cfg.Backend.RPS,
		Burst:   cfg.Backend.Burst,
	})

	authUC := auth.NewAuthUseCase(client)
	warehouseUC := usecase.NewWarehouseUseCase(client)
	productUC := usecase.NewProductUseCase(client)
	stockUC := usecase.NewStockUseCase(client, infrapdf.NewMarotoStockReport())
	shipmentUC := usecase.NewShipmentUseCase(client)
	userUC := usecase.NewUserUseCase(client)
	drafts := movement.NewRegistry(client)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Consola de almacenes",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Storage:     sessions,
		Drafts:      drafts,
		AuthUC:      authUC,
		WarehouseUC: warehouseUC,
		ProductUC:   productUC,
		StockUC:     stockUC,
		ShipmentUC:  shipmentUC,
		UserUC:      userUC,
		Logger:      log,
		Cookie: httpRouter.ScopeOptions{
			CookieName: cfg.Session.Cookie,
			Secure:     cfg.Session.CookieSecure,
		},
		AuthRatePerMinute: cfg.Session.AuthRatePerMinute,
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

	log.Info().Msg("consola detenida")
}
