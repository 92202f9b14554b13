package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
)

func makeMovement(t *testing.T, productID entity.ProductID, movType entity.MovementType, qty int, at time.Time) *entity.StockMovement {
	t.Helper()
	m, err := entity.NewStockMovement(entity.NewMovementID(), productID, movType, qty, "Inventaire", entity.NewUserID(), at, "")
	require.NoError(t, err)
	return m
}

func TestStockMovementRepository_FindRecent(t *testing.T) {
	repo := memory.NewStockMovementRepository()
	productID := entity.NewProductID()
	base := time.Now()

	for i := range 5 {
		m := makeMovement(t, productID, entity.MovementEntry, i+1, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Save(m))
	}

	// Du plus récent au plus ancien, tronqué à la limite.
	recent, err := repo.FindRecent(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 5, recent[0].Quantity)
	assert.Equal(t, 4, recent[1].Quantity)
	assert.Equal(t, 3, recent[2].Quantity)

	// Une limite au-delà du journal retourne tout.
	all, err := repo.FindRecent(50)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStockMovementRepository_FindByDateRange_BornesIncluses(t *testing.T) {
	repo := memory.NewStockMovementRepository()
	productID := entity.NewProductID()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	before := makeMovement(t, productID, entity.MovementEntry, 1, base.Add(-time.Hour))
	atStart := makeMovement(t, productID, entity.MovementEntry, 2, base)
	atEnd := makeMovement(t, productID, entity.MovementExit, 3, base.Add(time.Hour))
	after := makeMovement(t, productID, entity.MovementExit, 4, base.Add(2*time.Hour))
	for _, m := range []*entity.StockMovement{before, atStart, atEnd, after} {
		require.NoError(t, repo.Save(m))
	}

	got, err := repo.FindByDateRange(base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2, "les bornes sont incluses")
	assert.Equal(t, 3, got[0].Quantity, "le plus récent d'abord")
	assert.Equal(t, 2, got[1].Quantity)

	count, err := repo.CountByDateRange(base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestStockMovementRepository_CountByType(t *testing.T) {
	repo := memory.NewStockMovementRepository()
	productID := entity.NewProductID()
	now := time.Now()

	require.NoError(t, repo.Save(makeMovement(t, productID, entity.MovementEntry, 1, now)))
	require.NoError(t, repo.Save(makeMovement(t, productID, entity.MovementEntry, 2, now)))
	require.NoError(t, repo.Save(makeMovement(t, productID, entity.MovementExit, 3, now)))

	entries, err := repo.CountByType(entity.MovementEntry)
	require.NoError(t, err)
	assert.Equal(t, int64(2), entries)

	exits, err := repo.CountByType(entity.MovementExit)
	require.NoError(t, err)
	assert.Equal(t, int64(1), exits)
}
