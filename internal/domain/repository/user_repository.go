package repository

import "github.com/babetech/borastock/internal/domain/entity"

// UserRepository définit le port de persistance pour User (DIP).
type UserRepository interface {
	FindByID(id entity.UserID) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindAll() ([]*entity.User, error)
	FindByRole(role entity.UserRole) ([]*entity.User, error)
	FindActive() ([]*entity.User, error)

	Save(user *entity.User) error
	Delete(id entity.UserID) (bool, error)
	Exists(id entity.UserID) (bool, error)
	ExistsByEmail(email string) (bool, error)

	Count() (int64, error)
	CountByRole(role entity.UserRole) (int64, error)
}
