package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/babetech/borastock/internal/application/analytics"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
	"github.com/babetech/borastock/internal/infrastructure/memory"
	"github.com/babetech/borastock/internal/interfaces/cli"
	"github.com/babetech/borastock/pkg/config"
	"github.com/babetech/borastock/pkg/logger"
)

func main() {
	fmt.Println("🚀 Démarrage de BoraStock...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("❌ Erreur lors du démarrage:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "warn", // le CLI écrit sur stdout, les logs restent discrets
	})

	// Le CLI tourne en mémoire : l'état vit le temps du processus.
	productRepo := memory.NewProductRepository()
	categoryRepo := memory.NewCategoryRepository()
	supplierRepo := memory.NewSupplierRepository()
	movementRepo := memory.NewStockMovementRepository()
	userRepo := memory.NewUserRepository()
	txRunner := memory.NewTxRunner(movementRepo, productRepo)

	currentUser, defaultSupplier, err := seed(categoryRepo, supplierRepo, userRepo)
	if err != nil {
		fmt.Println("❌ Erreur lors du démarrage:", err)
		os.Exit(1)
	}

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, productRepo)
	dashboardUC := analytics.NewDashboardUseCase(productUC, supplierUC, movementUC, nil)

	c := cli.New(os.Stdin, os.Stdout, cli.Deps{
		ProductUC:       productUC,
		CategoryUC:      categoryUC,
		SupplierUC:      supplierUC,
		MovementUC:      movementUC,
		DashboardUC:     dashboardUC,
		CurrentUser:     currentUser,
		DefaultSupplier: defaultSupplier,
		Log:             log,
	})
	c.Start()
}

// seed prépare la catégorie "Général" et le fournisseur par défaut utilisés
// par product create, plus l'administrateur local attribué aux mouvements.
func seed(
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	userRepo repository.UserRepository,
) (entity.UserID, entity.SupplierID, error) {
	now := time.Now()

	category, err := entity.NewCategory(entity.NewCategoryID(), "Général", "Catégorie par défaut")
	if err != nil {
		return "", "", err
	}
	if err := categoryRepo.Save(&category); err != nil {
		return "", "", err
	}

	contact, err := entity.NewContactInfo("contact@borastock.local", "", "")
	if err != nil {
		return "", "", err
	}
	supplier, err := entity.NewSupplier(entity.NewSupplierID(), "Fournisseur par défaut", contact, nil, now)
	if err != nil {
		return "", "", err
	}
	if err := supplierRepo.Save(supplier); err != nil {
		return "", "", err
	}

	admin, err := entity.NewUser(entity.NewUserID(), "admin@borastock.local", "Administrateur", entity.RoleAdmin, now)
	if err != nil {
		return "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("borastock"), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	admin.PasswordHash = string(hash)
	if err := userRepo.Save(admin); err != nil {
		return "", "", err
	}
	return admin.ID, supplier.ID, nil
}
