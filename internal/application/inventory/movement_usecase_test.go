package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
)

type movementFixture struct {
	uc          *inventory.MovementUseCase
	productRepo *memory.ProductRepository
	product     *entity.Product
	user        entity.UserID
}

// newMovementFixture prépare le cas d'usage sur les repositories mémoire avec
// un produit à 50 unités (seuil 10, capacité 100).
func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()

	productRepo := memory.NewProductRepository()
	movementRepo := memory.NewStockMovementRepository()
	txRunner := memory.NewTxRunner(movementRepo, productRepo)

	category, err := entity.NewCategory(entity.NewCategoryID(), "Général", "")
	require.NoError(t, err)
	price, err := entity.MoneyFromFloat(9.90, "EUR")
	require.NoError(t, err)
	stock, err := entity.NewStock(50, 10, 100)
	require.NoError(t, err)
	product, err := entity.NewProduct(
		entity.NewProductID(), "Tournevis", "",
		category, price, stock, entity.NewSupplierID(), time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, productRepo.Save(product))

	return &movementFixture{
		uc:          inventory.NewMovementUseCase(txRunner, movementRepo, productRepo),
		productRepo: productRepo,
		product:     product,
		user:        entity.NewUserID(),
	}
}

func (f *movementFixture) quantity(t *testing.T) int {
	t.Helper()
	p, err := f.productRepo.FindByID(f.product.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock.CurrentQuantity
}

func TestMovementUseCase_RecordEntry(t *testing.T) {
	f := newMovementFixture(t)

	movement, err := f.uc.RecordEntry(context.Background(), dto.RecordMovementRequest{
		ProductID: f.product.ID.String(),
		Quantity:  20,
		Reason:    "Réception commande",
		Reference: "BC-2026-001",
	}, f.user)
	require.NoError(t, err)

	assert.Equal(t, string(entity.MovementEntry), movement.Type)
	assert.Equal(t, 20, movement.Quantity)
	assert.Equal(t, f.user.String(), movement.PerformedBy)
	assert.Equal(t, "BC-2026-001", movement.Reference)
	assert.Equal(t, 70, f.quantity(t), "le stock passe de 50 à 70")

	// Le mouvement est retrouvable dans le journal.
	got, err := f.uc.Get(entity.MovementID(movement.ID))
	require.NoError(t, err)
	assert.Equal(t, movement.ID, got.ID)
}

func TestMovementUseCase_RecordExit(t *testing.T) {
	f := newMovementFixture(t)

	movement, err := f.uc.RecordExit(context.Background(), dto.RecordMovementRequest{
		ProductID: f.product.ID.String(),
		Quantity:  30,
		Reason:    "Vente",
	}, f.user)
	require.NoError(t, err)

	assert.Equal(t, string(entity.MovementExit), movement.Type)
	assert.Equal(t, 20, f.quantity(t), "le stock passe de 50 à 20")
}

func TestMovementUseCase_RecordExit_StockInsuffisant(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.RecordExit(context.Background(), dto.RecordMovementRequest{
		ProductID: f.product.ID.String(),
		Quantity:  51,
		Reason:    "Vente",
	}, f.user)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Disponible: 50, Demandé: 51")

	// Échec atomique : ni mouvement journalisé, ni stock modifié.
	assert.Equal(t, 50, f.quantity(t))
	all, err := f.uc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMovementUseCase_Record_Validation(t *testing.T) {
	f := newMovementFixture(t)
	ctx := context.Background()

	_, err := f.uc.RecordEntry(ctx, dto.RecordMovementRequest{
		ProductID: f.product.ID.String(), Quantity: 0, Reason: "Réception",
	}, f.user)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RecordEntry(ctx, dto.RecordMovementRequest{
		ProductID: f.product.ID.String(), Quantity: 10, Reason: "",
	}, f.user)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la raison est obligatoire")

	_, err = f.uc.RecordEntry(ctx, dto.RecordMovementRequest{
		ProductID: entity.NewProductID().String(), Quantity: 10, Reason: "Réception",
	}, f.user)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Equal(t, 50, f.quantity(t), "aucune écriture après des échecs")
}

func TestMovementUseCase_Summary(t *testing.T) {
	f := newMovementFixture(t)
	ctx := context.Background()

	for range 3 {
		_, err := f.uc.RecordEntry(ctx, dto.RecordMovementRequest{
			ProductID: f.product.ID.String(), Quantity: 5, Reason: "Réception",
		}, f.user)
		require.NoError(t, err)
	}
	_, err := f.uc.RecordExit(ctx, dto.RecordMovementRequest{
		ProductID: f.product.ID.String(), Quantity: 8, Reason: "Vente",
	}, f.user)
	require.NoError(t, err)

	summary, err := f.uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.TotalMovements)
	assert.Equal(t, int64(3), summary.Entries)
	assert.Equal(t, int64(1), summary.Exits)
	assert.Equal(t, int64(2), summary.NetMovement)

	assert.Equal(t, 57, f.quantity(t), "50 + 3x5 - 8")
}

func TestMovementUseCase_GetByProductEtType(t *testing.T) {
	f := newMovementFixture(t)
	ctx := context.Background()

	_, err := f.uc.RecordEntry(ctx, dto.RecordMovementRequest{
		ProductID: f.product.ID.String(), Quantity: 5, Reason: "Réception",
	}, f.user)
	require.NoError(t, err)
	_, err = f.uc.RecordExit(ctx, dto.RecordMovementRequest{
		ProductID: f.product.ID.String(), Quantity: 2, Reason: "Vente",
	}, f.user)
	require.NoError(t, err)

	byProduct, err := f.uc.GetByProduct(f.product.ID)
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	exits, err := f.uc.GetByType(entity.MovementExit)
	require.NoError(t, err)
	require.Len(t, exits, 1)
	assert.Equal(t, "Vente", exits[0].Reason)
}
