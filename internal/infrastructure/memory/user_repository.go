package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// UserRepository implémentation en mémoire du port UserRepository.
// L'email est une clé logique unique, comparée en minuscules.
type UserRepository struct {
	mu    sync.RWMutex
	users map[entity.UserID]entity.User
}

// NewUserRepository crée un repository vide.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[entity.UserID]entity.User)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByID(id entity.UserID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key := strings.ToLower(email)
	for _, u := range r.users {
		if strings.ToLower(u.Email) == key {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindAll() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.User) bool { return true }), nil
}

func (r *UserRepository) FindByRole(role entity.UserRole) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(u entity.User) bool { return u.Role == role }), nil
}

func (r *UserRepository) FindActive() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(u entity.User) bool { return u.Active }), nil
}

func (r *UserRepository) Save(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) Delete(id entity.UserID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *UserRepository) Exists(id entity.UserID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	u, err := r.FindByEmail(email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (r *UserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

func (r *UserRepository) CountByRole(role entity.UserRole) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *UserRepository) collect(keep func(entity.User) bool) []*entity.User {
	items := make([]*entity.User, 0)
	for _, u := range r.users {
		if keep(u) {
			copy := u
			items = append(items, &copy)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}
