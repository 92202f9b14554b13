package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/babetech/borastock/internal/application/analytics"
	"github.com/babetech/borastock/internal/application/auth"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router enregistre les routes de l'API. Les lectures et écritures sont
// gardées par permission, selon le rôle porté par le token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermission(entity.PermReadProducts), productHandler.List)
	products.Post("/", RequirePermission(entity.PermWriteProducts), productHandler.Create)
	products.Get("/:id", RequirePermission(entity.PermReadProducts), productHandler.GetByID)
	products.Put("/:id", RequirePermission(entity.PermWriteProducts), productHandler.Update)
	products.Put("/:id/stock", RequirePermission(entity.PermWriteStock), productHandler.UpdateStock)
	products.Delete("/:id", RequirePermission(entity.PermWriteProducts), productHandler.Delete)

	// Stock (vues dérivées des produits)
	stock := protected.Group("/stock", RequirePermission(entity.PermReadStock))
	stock.Get("/summary", productHandler.StockSummary)
	stock.Get("/low", productHandler.LowStock)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", RequirePermission(entity.PermReadProducts), categoryHandler.List)
	categories.Post("/", RequirePermission(entity.PermWriteProducts), categoryHandler.Create)
	categories.Get("/:id", RequirePermission(entity.PermReadProducts), categoryHandler.GetByID)
	categories.Delete("/:id", RequirePermission(entity.PermWriteProducts), categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", RequirePermission(entity.PermReadSuppliers), supplierHandler.List)
	suppliers.Post("/", RequirePermission(entity.PermWriteSuppliers), supplierHandler.Create)
	suppliers.Get("/summary", RequirePermission(entity.PermReadSuppliers), supplierHandler.Summary)
	suppliers.Get("/:id", RequirePermission(entity.PermReadSuppliers), supplierHandler.GetByID)
	suppliers.Put("/:id", RequirePermission(entity.PermWriteSuppliers), supplierHandler.Update)
	suppliers.Post("/:id/activate", RequirePermission(entity.PermWriteSuppliers), supplierHandler.Activate)
	suppliers.Post("/:id/deactivate", RequirePermission(entity.PermWriteSuppliers), supplierHandler.Deactivate)
	suppliers.Delete("/:id", RequirePermission(entity.PermWriteSuppliers), supplierHandler.Delete)

	// Movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", RequirePermission(entity.PermReadMovements), movementHandler.List)
	movements.Get("/summary", RequirePermission(entity.PermReadMovements), movementHandler.Summary)
	movements.Post("/entries", RequirePermission(entity.PermWriteMovements), movementHandler.RecordEntry)
	movements.Post("/exits", RequirePermission(entity.PermWriteMovements), movementHandler.RecordExit)
	movements.Get("/:id", RequirePermission(entity.PermReadMovements), movementHandler.GetByID)

	// Dashboard
	dashboard := protected.Group("/dashboard", RequirePermission(entity.PermReadAnalytics))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Summary)
	dashboard.Get("/report", dashboardHandler.StockReport)
}
