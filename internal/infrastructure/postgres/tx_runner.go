package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner exécute les callbacks dans une transaction PostgreSQL. Combiné au
// FOR UPDATE de FindByIDForUpdate, le contrôle de stock et la mise à jour de
// la quantité s'appliquent sur le même état de ligne.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner sur le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des repositories liés à la tx,
// puis Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockMovementRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
