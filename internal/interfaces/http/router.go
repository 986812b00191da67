package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetstock/vetstock-api/internal/application/auth"
	"github.com/vetstock/vetstock-api/internal/application/inventory"
	"github.com/vetstock/vetstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reconcile  *inventory.ReconcileUseCase
	StockQuery *inventory.StockQueryUseCase
	ProductUC  *usecase.ProductUseCase
	PracticeUC *usecase.PracticeUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/verify", authHandler.Verify)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Reconcile, deps.StockQuery)
	invGroup.Post("/add", inventoryHandler.Add)
	invGroup.Post("/remove", inventoryHandler.Remove)
	invGroup.Get("/product", inventoryHandler.GetProduct)
	invGroup.Get("/", inventoryHandler.List)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/add", productHandler.Create)
	products.Get("/:productNumber", productHandler.Get)
	products.Put("/:productNumber", productHandler.Update)
	products.Delete("/:productNumber", productHandler.Delete)

	// Practices (protegido, solo lectura)
	practiceHandler := NewPracticeHandler(deps.PracticeUC)
	protected.Get("/practices", practiceHandler.List)
	protected.Get("/practice", practiceHandler.Get)
}
