package memory

import (
	"sort"
	"sync"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// CategoryRepository implémentation en mémoire du port CategoryRepository.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[entity.CategoryID]entity.Category
}

// NewCategoryRepository crée un repository vide.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[entity.CategoryID]entity.Category)}
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) FindByID(id entity.CategoryID) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// FindAll liste les catégories triées par nom.
func (r *CategoryRepository) FindAll() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		copy := c
		items = append(items, &copy)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// FindByName retourne la première catégorie portant ce nom (comparaison
// insensible à la casse et aux accents), ou nil.
func (r *CategoryRepository) FindByName(name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if fold(c.Name) == fold(name) {
			copy := c
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) Save(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) Delete(id entity.CategoryID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

func (r *CategoryRepository) Exists(id entity.CategoryID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.categories[id]
	return ok, nil
}
