package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implémentation du port StockMovementRepository sur
// PostgreSQL. Le journal se lit du plus récent au plus ancien.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construit l'adaptateur de persistance des
// mouvements.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `
	id, product_id, type, quantity, reason, performed_by, occurred_at, reference`

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity,
		&m.Reason, &m.PerformedBy, &m.Timestamp, &m.Reference,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StockMovementRepo) FindByID(id entity.MovementID) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(context.Background(),
		`SELECT`+movementColumns+` FROM stock_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

func (r *StockMovementRepo) FindAll() ([]*entity.StockMovement, error) {
	return r.list(`SELECT`+movementColumns+
		` FROM stock_movements ORDER BY occurred_at DESC, id DESC`, nil)
}

func (r *StockMovementRepo) FindByProduct(productID entity.ProductID) ([]*entity.StockMovement, error) {
	return r.list(`SELECT`+movementColumns+
		` FROM stock_movements WHERE product_id = $1 ORDER BY occurred_at DESC, id DESC`,
		[]any{productID})
}

func (r *StockMovementRepo) FindByType(movType entity.MovementType) ([]*entity.StockMovement, error) {
	return r.list(`SELECT`+movementColumns+
		` FROM stock_movements WHERE type = $1 ORDER BY occurred_at DESC, id DESC`,
		[]any{movType})
}

// FindByDateRange liste les mouvements dont l'horodatage est dans [start, end].
func (r *StockMovementRepo) FindByDateRange(start, end time.Time) ([]*entity.StockMovement, error) {
	return r.list(`SELECT`+movementColumns+
		` FROM stock_movements WHERE occurred_at BETWEEN $1 AND $2 ORDER BY occurred_at DESC, id DESC`,
		[]any{start, end})
}

func (r *StockMovementRepo) FindByUser(userID entity.UserID) ([]*entity.StockMovement, error) {
	return r.list(`SELECT`+movementColumns+
		` FROM stock_movements WHERE performed_by = $1 ORDER BY occurred_at DESC, id DESC`,
		[]any{userID})
}

// FindRecent retourne les limit mouvements les plus récents.
func (r *StockMovementRepo) FindRecent(limit int) ([]*entity.StockMovement, error) {
	return r.list(`SELECT`+movementColumns+
		` FROM stock_movements ORDER BY occurred_at DESC, id DESC LIMIT $1`,
		[]any{limit})
}

// Save insère le mouvement. Les mouvements sont immuables : l'upsert n'écrase
// jamais une ligne existante en pratique.
func (r *StockMovementRepo) Save(movement *entity.StockMovement) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stock_movements (id, product_id, type, quantity, reason,
		                             performed_by, occurred_at, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.Reason, movement.PerformedBy, movement.Timestamp, movement.Reference,
	)
	if err != nil {
		return fmt.Errorf("save movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) Delete(id entity.MovementID) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete movement: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *StockMovementRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM stock_movements`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

func (r *StockMovementRepo) CountByType(movType entity.MovementType) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_movements WHERE type = $1`, movType).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements by type: %w", err)
	}
	return n, nil
}

func (r *StockMovementRepo) CountByDateRange(start, end time.Time) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_movements WHERE occurred_at BETWEEN $1 AND $2`,
		start, end).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements by date range: %w", err)
	}
	return n, nil
}

func (r *StockMovementRepo) list(query string, args []any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.StockMovement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
