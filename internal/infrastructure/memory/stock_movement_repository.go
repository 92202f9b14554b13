package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// StockMovementRepository implémentation en mémoire du port
// StockMovementRepository. Les listes sont triées par horodatage décroissant,
// le journal se lit du plus récent au plus ancien.
type StockMovementRepository struct {
	mu        sync.RWMutex
	movements map[entity.MovementID]entity.StockMovement
}

// NewStockMovementRepository crée un repository vide.
func NewStockMovementRepository() *StockMovementRepository {
	return &StockMovementRepository{movements: make(map[entity.MovementID]entity.StockMovement)}
}

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

func (r *StockMovementRepository) FindByID(id entity.MovementID) (*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.movements[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *StockMovementRepository) FindAll() ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.StockMovement) bool { return true }), nil
}

func (r *StockMovementRepository) FindByProduct(productID entity.ProductID) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m entity.StockMovement) bool { return m.ProductID == productID }), nil
}

func (r *StockMovementRepository) FindByType(movType entity.MovementType) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m entity.StockMovement) bool { return m.Type == movType }), nil
}

// FindByDateRange liste les mouvements dont l'horodatage est dans [start, end].
func (r *StockMovementRepository) FindByDateRange(start, end time.Time) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m entity.StockMovement) bool { return inRange(m.Timestamp, start, end) }), nil
}

func (r *StockMovementRepository) FindByUser(userID entity.UserID) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m entity.StockMovement) bool { return m.PerformedBy == userID }), nil
}

// FindRecent retourne les limit mouvements les plus récents.
func (r *StockMovementRepository) FindRecent(limit int) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.collect(func(entity.StockMovement) bool { return true })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *StockMovementRepository) Save(movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements[movement.ID] = *movement
	return nil
}

func (r *StockMovementRepository) Delete(id entity.MovementID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[id]; !ok {
		return false, nil
	}
	delete(r.movements, id)
	return true, nil
}

func (r *StockMovementRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.movements)), nil
}

func (r *StockMovementRepository) CountByType(movType entity.MovementType) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, m := range r.movements {
		if m.Type == movType {
			n++
		}
	}
	return n, nil
}

func (r *StockMovementRepository) CountByDateRange(start, end time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, m := range r.movements {
		if inRange(m.Timestamp, start, end) {
			n++
		}
	}
	return n, nil
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// collect copie les mouvements retenus, triés du plus récent au plus ancien.
// Appelé sous verrou.
func (r *StockMovementRepository) collect(keep func(entity.StockMovement) bool) []*entity.StockMovement {
	items := make([]*entity.StockMovement, 0)
	for _, m := range r.movements {
		if keep(m) {
			copy := m
			items = append(items, &copy)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Timestamp.Equal(items[j].Timestamp) {
			return items[i].ID > items[j].ID
		}
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items
}
