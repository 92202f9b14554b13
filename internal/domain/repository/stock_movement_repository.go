package repository

import (
	"time"

	"github.com/babetech/borastock/internal/domain/entity"
)

// StockMovementRepository définit le port de persistance pour les mouvements (DIP).
// FindRecent trie par horodatage décroissant.
type StockMovementRepository interface {
	FindByID(id entity.MovementID) (*entity.StockMovement, error)
	FindAll() ([]*entity.StockMovement, error)
	FindByProduct(productID entity.ProductID) ([]*entity.StockMovement, error)
	FindByType(movType entity.MovementType) ([]*entity.StockMovement, error)
	FindByDateRange(start, end time.Time) ([]*entity.StockMovement, error)
	FindByUser(userID entity.UserID) ([]*entity.StockMovement, error)
	FindRecent(limit int) ([]*entity.StockMovement, error)

	Save(movement *entity.StockMovement) error
	Delete(id entity.MovementID) (bool, error)

	Count() (int64, error)
	CountByType(movType entity.MovementType) (int64, error)
	CountByDateRange(start, end time.Time) (int64, error)
}
