package repository

import "github.com/babetech/borastock/internal/domain/entity"

// ProductRepository définit le port de persistance pour Product (DIP).
// Save est un upsert idempotent par ID ; les lectures sont pures.
type ProductRepository interface {
	FindByID(id entity.ProductID) (*entity.Product, error)
	// FindByIDForUpdate lit le produit en le verrouillant pour la durée de la
	// transaction courante (SELECT FOR UPDATE côté SQL). Hors transaction,
	// équivalent à FindByID.
	FindByIDForUpdate(id entity.ProductID) (*entity.Product, error)
	FindAll() ([]*entity.Product, error)
	FindByCategory(categoryID entity.CategoryID) ([]*entity.Product, error)
	FindBySupplier(supplierID entity.SupplierID) ([]*entity.Product, error)
	FindByStatus(status entity.StockStatus) ([]*entity.Product, error)
	FindLowStock() ([]*entity.Product, error)
	Search(query string) ([]*entity.Product, error)

	Save(product *entity.Product) error
	Delete(id entity.ProductID) (bool, error)
	Exists(id entity.ProductID) (bool, error)

	Count() (int64, error)
	CountByStatus(status entity.StockStatus) (int64, error)
}

// CategoryRepository définit le port de persistance pour Category (DIP).
type CategoryRepository interface {
	FindByID(id entity.CategoryID) (*entity.Category, error)
	FindAll() ([]*entity.Category, error)
	FindByName(name string) (*entity.Category, error)

	Save(category *entity.Category) error
	Delete(id entity.CategoryID) (bool, error)
	Exists(id entity.CategoryID) (bool, error)
}
