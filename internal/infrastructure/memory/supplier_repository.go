package memory

import (
	"sort"
	"sync"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// SupplierRepository implémentation en mémoire du port SupplierRepository.
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[entity.SupplierID]entity.Supplier
}

// NewSupplierRepository crée un repository vide.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: make(map[entity.SupplierID]entity.Supplier)}
}

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

func (r *SupplierRepository) FindByID(id entity.SupplierID) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.suppliers[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *SupplierRepository) FindAll() ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.Supplier) bool { return true }), nil
}

func (r *SupplierRepository) FindActive() ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(s entity.Supplier) bool { return s.Active }), nil
}

// FindByName liste les fournisseurs dont le nom contient la chaîne donnée,
// sans tenir compte de la casse ni des accents.
func (r *SupplierRepository) FindByName(name string) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(s entity.Supplier) bool { return foldContains(s.Name, name) }), nil
}

// Search recherche sur le nom et l'email de contact, insensible à la casse et
// aux accents.
func (r *SupplierRepository) Search(query string) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(s entity.Supplier) bool {
		return foldContains(s.Name, query) || foldContains(s.ContactInfo.Email, query)
	}), nil
}

func (r *SupplierRepository) Save(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *SupplierRepository) Delete(id entity.SupplierID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[id]; !ok {
		return false, nil
	}
	delete(r.suppliers, id)
	return true, nil
}

func (r *SupplierRepository) Exists(id entity.SupplierID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.suppliers[id]
	return ok, nil
}

func (r *SupplierRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.suppliers)), nil
}

func (r *SupplierRepository) CountActive() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, s := range r.suppliers {
		if s.Active {
			n++
		}
	}
	return n, nil
}

func (r *SupplierRepository) collect(keep func(entity.Supplier) bool) []*entity.Supplier {
	items := make([]*entity.Supplier, 0)
	for _, s := range r.suppliers {
		if keep(s) {
			copy := s
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
