package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
)

// newProductFixture prépare le cas d'usage sur les repositories mémoire, avec
// une catégorie et un fournisseur déjà enregistrés.
func newProductFixture(t *testing.T) (*usecase.ProductUseCase, entity.CategoryID, entity.SupplierID) {
	t.Helper()

	productRepo := memory.NewProductRepository()
	categoryRepo := memory.NewCategoryRepository()
	supplierRepo := memory.NewSupplierRepository()

	category, err := entity.NewCategory(entity.NewCategoryID(), "Électroménager", "Appareils pour la maison")
	require.NoError(t, err)
	require.NoError(t, categoryRepo.Save(&category))

	contact, err := entity.NewContactInfo("ventes@acme.fr", "", "")
	require.NoError(t, err)
	supplier, err := entity.NewSupplier(entity.NewSupplierID(), "ACME", contact, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, supplierRepo.Save(supplier))

	return usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo), category.ID, supplier.ID
}

func createRequest(categoryID entity.CategoryID, supplierID entity.SupplierID) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:            "Lave-linge",
		Description:     "Lave-linge 8kg",
		CategoryID:      categoryID.String(),
		Price:           decimal.NewFromFloat(299.90),
		InitialQuantity: 50,
		MinThreshold:    10,
		MaxCapacity:     100,
		SupplierID:      supplierID.String(),
	}
}

func TestProductUseCase_Create(t *testing.T) {
	uc, categoryID, supplierID := newProductFixture(t)

	product, err := uc.Create(createRequest(categoryID, supplierID))
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Lave-linge", product.Name)
	assert.Equal(t, "Électroménager", product.CategoryName)
	assert.Equal(t, "EUR", product.Currency, "devise par défaut")
	assert.Equal(t, 50, product.Quantity)
	assert.Equal(t, string(entity.StatusInStock), product.Status)

	// Le produit est lisible après création.
	got, err := uc.Get(entity.ProductID(product.ID))
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
}

func TestProductUseCase_Create_CategorieInconnue(t *testing.T) {
	uc, _, supplierID := newProductFixture(t)

	req := createRequest(entity.NewCategoryID(), supplierID)
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	// Rien ne doit avoir été écrit.
	all, err := uc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductUseCase_Create_FournisseurInconnu(t *testing.T) {
	uc, categoryID, _ := newProductFixture(t)

	req := createRequest(categoryID, entity.NewSupplierID())
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestProductUseCase_Create_EntreesInvalides(t *testing.T) {
	uc, categoryID, supplierID := newProductFixture(t)

	req := createRequest(categoryID, supplierID)
	req.Price = decimal.NewFromInt(-1)
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = createRequest(categoryID, supplierID)
	req.MaxCapacity = 0
	_, err = uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Update(t *testing.T) {
	uc, categoryID, supplierID := newProductFixture(t)
	product, err := uc.Create(createRequest(categoryID, supplierID))
	require.NoError(t, err)

	name := "Lave-linge Pro"
	price := decimal.NewFromFloat(349.90)
	updated, err := uc.Update(entity.ProductID(product.ID), dto.UpdateProductRequest{
		Name:  &name,
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lave-linge Pro", updated.Name)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, product.Description, updated.Description, "les champs absents sont conservés")

	empty := ""
	_, err = uc.Update(entity.ProductID(product.ID), dto.UpdateProductRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(entity.NewProductID(), dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_UpdateStock(t *testing.T) {
	uc, categoryID, supplierID := newProductFixture(t)
	product, err := uc.Create(createRequest(categoryID, supplierID))
	require.NoError(t, err)

	updated, err := uc.UpdateStock(entity.ProductID(product.ID), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, string(entity.StatusLowStock), updated.Status)
	assert.Equal(t, 10, updated.MinThreshold, "les seuils sont conservés")

	_, err = uc.UpdateStock(entity.ProductID(product.ID), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Delete(t *testing.T) {
	uc, categoryID, supplierID := newProductFixture(t)
	product, err := uc.Create(createRequest(categoryID, supplierID))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(entity.ProductID(product.ID)))
	_, err = uc.Get(entity.ProductID(product.ID))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.ErrorIs(t, uc.Delete(entity.ProductID(product.ID)), domain.ErrProductNotFound)
}

func TestProductUseCase_StockSummary(t *testing.T) {
	uc, categoryID, supplierID := newProductFixture(t)

	// Cinq produits : deux en stock, un faible, un en rupture, un en surstock.
	quantities := []int{50, 60, 5, 0, 150}
	for i, qty := range quantities {
		req := createRequest(categoryID, supplierID)
		req.Name = "Produit " + string(rune('A'+i))
		req.InitialQuantity = qty
		_, err := uc.Create(req)
		require.NoError(t, err)
	}

	summary, err := uc.StockSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.TotalProducts)
	assert.Equal(t, int64(2), summary.InStock)
	assert.Equal(t, int64(1), summary.LowStock)
	assert.Equal(t, int64(1), summary.OutOfStock)
	assert.Equal(t, int64(1), summary.Overstocked)
	assert.InDelta(t, 40.0, summary.HealthyStockPercentage, 0.001)
}
