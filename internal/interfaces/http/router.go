package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-fabrica/internal/application/auth"
	"github.com/tu-usuario/inventario-fabrica/internal/application/inventory"
	"github.com/tu-usuario/inventario-fabrica/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	Movements *inventory.MovementUseCase
	Reconcile *inventory.ReconcileUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:code", productHandler.GetDetail)

	// Movimientos y resincronización
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Movements, deps.Reconcile)
	inv.Post("/entrada", inventoryHandler.RegistrarEntrada)
	inv.Post("/salida", inventoryHandler.RegistrarSalida)
	inv.Post("/traslado", inventoryHandler.MoverEntreAlmacenes)
	inv.Post("/reconcile", inventoryHandler.Reconcile)
}
