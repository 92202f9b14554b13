package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/application/analytics"
	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
	"github.com/babetech/borastock/internal/infrastructure/pdf"
)

// newDashboardFixture assemble la pile complète sur les repositories mémoire :
// deux produits (un sain, un en stock faible) et un mouvement d'entrée.
func newDashboardFixture(t *testing.T, reportGen analytics.StockReportGenerator) *analytics.DashboardUseCase {
	t.Helper()

	productRepo := memory.NewProductRepository()
	categoryRepo := memory.NewCategoryRepository()
	supplierRepo := memory.NewSupplierRepository()
	movementRepo := memory.NewStockMovementRepository()
	txRunner := memory.NewTxRunner(movementRepo, productRepo)

	category, err := entity.NewCategory(entity.NewCategoryID(), "Général", "")
	require.NoError(t, err)
	require.NoError(t, categoryRepo.Save(&category))
	contact, err := entity.NewContactInfo("ventes@acme.fr", "", "")
	require.NoError(t, err)
	supplier, err := entity.NewSupplier(entity.NewSupplierID(), "ACME", contact, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, supplierRepo.Save(supplier))

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, productRepo)

	for _, p := range []struct {
		name string
		qty  int
	}{
		{"Tournevis", 50},
		{"Perceuse", 5},
	} {
		_, err := productUC.Create(dto.CreateProductRequest{
			Name:            p.name,
			CategoryID:      category.ID.String(),
			Price:           decimal.NewFromFloat(9.90),
			InitialQuantity: p.qty,
			MinThreshold:    10,
			MaxCapacity:     100,
			SupplierID:      supplier.ID.String(),
		})
		require.NoError(t, err)
	}

	all, err := productUC.GetAll()
	require.NoError(t, err)
	_, err = movementUC.RecordEntry(context.Background(), dto.RecordMovementRequest{
		ProductID: all[0].ID, Quantity: 10, Reason: "Réception",
	}, entity.NewUserID())
	require.NoError(t, err)

	return analytics.NewDashboardUseCase(productUC, supplierUC, movementUC, reportGen)
}

func TestDashboardUseCase_Summary(t *testing.T) {
	uc := newDashboardFixture(t, nil)

	summary, err := uc.Summary(5)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Stock.TotalProducts)
	assert.Equal(t, int64(1), summary.Stock.LowStock)
	assert.Equal(t, int64(1), summary.Suppliers.TotalSuppliers)
	assert.Equal(t, int64(1), summary.Movements.Entries)

	require.Len(t, summary.LowStockAlerts, 1)
	assert.Equal(t, "Perceuse", summary.LowStockAlerts[0].Name)
	require.Len(t, summary.RecentMovements, 1)
	assert.Equal(t, "Réception", summary.RecentMovements[0].Reason)
}

func TestDashboardUseCase_StockReportPDF(t *testing.T) {
	uc := newDashboardFixture(t, pdf.NewStockReportGenerator())

	report, err := uc.StockReportPDF(context.Background(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, report)
	assert.Equal(t, "%PDF", string(report[:4]))
}

func TestDashboardUseCase_StockReportPDF_SansGenerateur(t *testing.T) {
	uc := newDashboardFixture(t, nil)
	_, err := uc.StockReportPDF(context.Background(), 5)
	assert.Error(t, err)
}
