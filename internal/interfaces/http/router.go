package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/auth"
	"github.com/jhoicas/inventario-console/internal/application/movement"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Storage           repository.SessionStorage
	Drafts            *movement.Registry
	AuthUC            *auth.AuthUseCase
	WarehouseUC       *usecase.WarehouseUseCase
	ProductUC         *usecase.ProductUseCase
	StockUC           *usecase.StockUseCase
	ShipmentUC        *usecase.ShipmentUseCase
	UserUC            *usecase.UserUseCase
	Logger            *logger.Logger
	Cookie            ScopeOptions
	AuthRatePerMinute int
}

// Router registra las rutas de la API de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	api := app.Group("/api", RequestLogger(log.Component("http")), ClientScope(deps.Storage, deps.Cookie))

	// Navegación (público: decide según la sesión)
	api.Get("/navigation", Navigation)

	// Auth (público, con límite por IP en login y registro)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Drafts, log.Component("auth"))
	limiter := NewIPRateLimiter(deps.AuthRatePerMinute).Handler()
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter, authHandler.Login)
	authGroup.Post("/register", limiter, authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Rutas protegidas (requieren sesión)
	protected := api.Group("/", RequireAuthenticated())

	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/report.pdf", stockHandler.Report)
	stock.Get("/:id", stockHandler.GetByID)

	// Movimientos: el borrador se registra antes de /:id
	shipments := protected.Group("/shipments")
	draftHandler := NewDraftHandler(deps.Drafts, deps.ShipmentUC, log.Component("movement"))
	shipments.Post("/draft", draftHandler.Open)
	shipments.Get("/draft", draftHandler.Get)
	shipments.Put("/draft", draftHandler.Update)
	shipments.Delete("/draft", draftHandler.Discard)
	shipments.Post("/draft/lines", draftHandler.AddLine)
	shipments.Delete("/draft/lines/:index", draftHandler.RemoveLine)
	shipments.Post("/draft/submit", draftHandler.Submit)

	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)

	// Administración (solo ADMIN)
	users := api.Group("/users", RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Patch("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)
}
