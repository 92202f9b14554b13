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

	"github.com/babetech/borastock/internal/application/analytics"
	"github.com/babetech/borastock/internal/application/auth"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/repository"
	"github.com/babetech/borastock/internal/infrastructure/memory"
	infrapdf "github.com/babetech/borastock/internal/infrastructure/pdf"
	"github.com/babetech/borastock/internal/infrastructure/postgres"
	httpRouter "github.com/babetech/borastock/internal/interfaces/http"
	"github.com/babetech/borastock/pkg/config"
	"github.com/babetech/borastock/pkg/logger"
)

// repos regroupe les ports de persistance choisis au démarrage.
type repos struct {
	product  repository.ProductRepository
	category repository.CategoryRepository
	supplier repository.SupplierRepository
	movement repository.StockMovementRepository
	user     repository.UserRepository
	txRunner inventory.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Type).
		Msg("démarrage de l'application")

	ctx := context.Background()

	var r repos
	switch cfg.DB.Type {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("connexion à PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			product:  postgres.NewProductRepository(pool),
			category: postgres.NewCategoryRepository(pool),
			supplier: postgres.NewSupplierRepository(pool),
			movement: postgres.NewStockMovementRepository(pool),
			user:     postgres.NewUserRepository(pool),
			txRunner: postgres.NewTxRunner(pool),
		}
	default:
		productRepo := memory.NewProductRepository()
		movementRepo := memory.NewStockMovementRepository()
		r = repos{
			product:  productRepo,
			category: memory.NewCategoryRepository(),
			supplier: memory.NewSupplierRepository(),
			movement: movementRepo,
			user:     memory.NewUserRepository(),
			txRunner: memory.NewTxRunner(movementRepo, productRepo),
		}
	}

	productUC := usecase.NewProductUseCase(r.product, r.category, r.supplier)
	categoryUC := usecase.NewCategoryUseCase(r.category)
	supplierUC := usecase.NewSupplierUseCase(r.supplier)
	movementUC := inventory.NewMovementUseCase(r.txRunner, r.movement, r.product)
	dashboardUC := analytics.NewDashboardUseCase(productUC, supplierUC, movementUC, infrapdf.NewStockReportGenerator())
	authUC := auth.NewAuthUseCase(r.user, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BoraStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		MovementUC:  movementUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("arrêt en cours")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur HTTP")
	}
}
