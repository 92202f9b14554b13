package memory

import (
	"sort"
	"sync"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// ProductRepository implémentation en mémoire du port ProductRepository.
// Thread-safe ; les entités sont copiées en entrée et en sortie pour que les
// appelants ne partagent jamais d'état mutable avec le store.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[entity.ProductID]entity.Product
}

// NewProductRepository crée un repository vide.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[entity.ProductID]entity.Product)}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// FindByID retourne le produit ou nil s'il n'existe pas.
func (r *ProductRepository) FindByID(id entity.ProductID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// FindByIDForUpdate équivaut à FindByID : l'exclusion mutuelle est assurée par
// le TxRunner en mémoire, pas par un verrou de ligne.
func (r *ProductRepository) FindByIDForUpdate(id entity.ProductID) (*entity.Product, error) {
	return r.FindByID(id)
}

// FindAll liste tous les produits, triés par date de création.
func (r *ProductRepository) FindAll() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.Product) bool { return true }), nil
}

// FindByCategory liste les produits d'une catégorie.
func (r *ProductRepository) FindByCategory(categoryID entity.CategoryID) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p entity.Product) bool { return p.Category.ID == categoryID }), nil
}

// FindBySupplier liste les produits d'un fournisseur.
func (r *ProductRepository) FindBySupplier(supplierID entity.SupplierID) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p entity.Product) bool { return p.SupplierID == supplierID }), nil
}

// FindByStatus liste les produits dans un état de stock donné.
func (r *ProductRepository) FindByStatus(status entity.StockStatus) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p entity.Product) bool { return p.Stock.Status() == status }), nil
}

// FindLowStock liste les produits en stock faible. Les ruptures n'en font pas
// partie : elles ont leur propre statut.
func (r *ProductRepository) FindLowStock() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p entity.Product) bool { return p.Stock.IsLow() }), nil
}

// Search recherche sur le nom, la description et le nom de la catégorie,
// insensible à la casse et aux accents.
func (r *ProductRepository) Search(query string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p entity.Product) bool {
		return foldContains(p.Name, query) ||
			foldContains(p.Description, query) ||
			foldContains(p.Category.Name, query)
	}), nil
}

// Save insère ou remplace le produit (upsert par ID).
func (r *ProductRepository) Save(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = *product
	return nil
}

// Delete supprime le produit, retourne vrai s'il existait.
func (r *ProductRepository) Delete(id entity.ProductID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

// Exists vrai si le produit est présent.
func (r *ProductRepository) Exists(id entity.ProductID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.products[id]
	return ok, nil
}

// Count nombre total de produits.
func (r *ProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// CountByStatus nombre de produits dans un état de stock donné.
func (r *ProductRepository) CountByStatus(status entity.StockStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, p := range r.products {
		if p.Stock.Status() == status {
			n++
		}
	}
	return n, nil
}

// collect copie les produits retenus par le filtre. Appelé sous verrou.
func (r *ProductRepository) collect(keep func(entity.Product) bool) []*entity.Product {
	items := make([]*entity.Product, 0)
	for _, p := range r.products {
		if keep(p) {
			copy := p
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
