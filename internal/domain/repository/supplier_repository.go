package repository

import "github.com/babetech/borastock/internal/domain/entity"

// SupplierRepository définit le port de persistance pour Supplier (DIP).
type SupplierRepository interface {
	FindByID(id entity.SupplierID) (*entity.Supplier, error)
	FindAll() ([]*entity.Supplier, error)
	FindActive() ([]*entity.Supplier, error)
	FindByName(name string) ([]*entity.Supplier, error)
	Search(query string) ([]*entity.Supplier, error)

	Save(supplier *entity.Supplier) error
	Delete(id entity.SupplierID) (bool, error)
	Exists(id entity.SupplierID) (bool, error)

	Count() (int64, error)
	CountActive() (int64, error)
}
