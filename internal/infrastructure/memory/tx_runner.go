package memory

import (
	"context"
	"sync"

	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/domain/repository"
)

// TxRunner sérialise les unités de travail sur les repositories en mémoire.
// Pas de rollback : le store en mémoire ne tient pas de journal, et les cas
// d'usage écrivent seulement après que toutes les validations ont passé. Le
// mutex suffit à garantir que deux sorties concurrentes ne lisent pas un
// stock périmé.
type TxRunner struct {
	mu           sync.Mutex
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewTxRunner construit le runner sur les repositories partagés.
func NewTxRunner(movementRepo repository.StockMovementRepository, productRepo repository.ProductRepository) *TxRunner {
	return &TxRunner{movementRepo: movementRepo, productRepo: productRepo}
}

var _ inventory.TxRunner = (*TxRunner)(nil)

// Run exécute fn sous exclusion mutuelle, avec les repositories partagés.
func (t *TxRunner) Run(ctx context.Context, fn func(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.movementRepo, t.productRepo)
}
