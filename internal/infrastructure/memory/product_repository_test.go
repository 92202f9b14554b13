package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
)

func makeProduct(t *testing.T, name, description string, qty int, createdAt time.Time) *entity.Product {
	t.Helper()
	return makeProductInCategory(t, name, description, "Général", qty, createdAt)
}

func makeProductInCategory(t *testing.T, name, description, categoryName string, qty int, createdAt time.Time) *entity.Product {
	t.Helper()
	category, err := entity.NewCategory(entity.NewCategoryID(), categoryName, "")
	require.NoError(t, err)
	price, err := entity.MoneyFromFloat(10, "EUR")
	require.NoError(t, err)
	stock, err := entity.NewStock(qty, 10, 100)
	require.NoError(t, err)
	product, err := entity.NewProduct(entity.NewProductID(), name, description, category, price, stock, entity.NewSupplierID(), createdAt)
	require.NoError(t, err)
	return product
}

func TestProductRepository_Search_AccentsEtCasse(t *testing.T) {
	repo := memory.NewProductRepository()
	now := time.Now()
	require.NoError(t, repo.Save(makeProduct(t, "Réfrigérateur", "Électroménager de cuisine", 50, now)))
	require.NoError(t, repo.Save(makeProduct(t, "Échelle télescopique", "", 50, now)))
	require.NoError(t, repo.Save(makeProduct(t, "Tournevis", "", 50, now)))

	// La recherche se replie sur les accents et la casse.
	found, err := repo.Search("electromenager")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Réfrigérateur", found[0].Name)

	found, err = repo.Search("ECHELLE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Échelle télescopique", found[0].Name)

	found, err = repo.Search("perceuse")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestProductRepository_Search_NomDeCategorie(t *testing.T) {
	repo := memory.NewProductRepository()
	now := time.Now()
	require.NoError(t, repo.Save(makeProductInCategory(t, "Lave-linge", "", "Électroménager", 50, now)))
	require.NoError(t, repo.Save(makeProductInCategory(t, "Tournevis", "", "Outillage", 50, now)))

	// La recherche couvre aussi le nom de la catégorie.
	found, err := repo.Search("electromenager")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Lave-linge", found[0].Name)
}

func TestProductRepository_FindByID_CopieDefensive(t *testing.T) {
	repo := memory.NewProductRepository()
	product := makeProduct(t, "Tournevis", "", 50, time.Now())
	require.NoError(t, repo.Save(product))

	got, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Modifier la copie ne doit pas toucher le store.
	got.Name = "modifié"
	again, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tournevis", again.Name)
}

func TestProductRepository_FindByID_Inconnu(t *testing.T) {
	repo := memory.NewProductRepository()
	got, err := repo.FindByID(entity.NewProductID())
	require.NoError(t, err)
	assert.Nil(t, got, "pas d'erreur pour un ID inconnu, juste nil")
}

func TestProductRepository_FindLowStock(t *testing.T) {
	repo := memory.NewProductRepository()
	now := time.Now()
	require.NoError(t, repo.Save(makeProduct(t, "Normal", "", 50, now)))
	require.NoError(t, repo.Save(makeProduct(t, "Faible", "", 5, now)))
	require.NoError(t, repo.Save(makeProduct(t, "Rupture", "", 0, now)))
	require.NoError(t, repo.Save(makeProduct(t, "Surstock", "", 150, now)))

	// Les ruptures ne sont pas des stocks faibles : elles ont leur propre
	// statut.
	low, err := repo.FindLowStock()
	require.NoError(t, err)
	names := make([]string, 0, len(low))
	for _, p := range low {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Faible"}, names)
}

func TestProductRepository_FindAll_TriParDateDeCreation(t *testing.T) {
	repo := memory.NewProductRepository()
	base := time.Now()
	require.NoError(t, repo.Save(makeProduct(t, "Troisième", "", 50, base.Add(2*time.Hour))))
	require.NoError(t, repo.Save(makeProduct(t, "Premier", "", 50, base)))
	require.NoError(t, repo.Save(makeProduct(t, "Deuxième", "", 50, base.Add(time.Hour))))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Premier", all[0].Name)
	assert.Equal(t, "Deuxième", all[1].Name)
	assert.Equal(t, "Troisième", all[2].Name)
}

func TestProductRepository_SaveEstUnUpsert(t *testing.T) {
	repo := memory.NewProductRepository()
	product := makeProduct(t, "Tournevis", "", 50, time.Now())
	require.NoError(t, repo.Save(product))

	renamed := *product
	renamed.Name = "Tournevis cruciforme"
	require.NoError(t, repo.Save(&renamed))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tournevis cruciforme", got.Name)
}

func TestProductRepository_Delete(t *testing.T) {
	repo := memory.NewProductRepository()
	product := makeProduct(t, "Tournevis", "", 50, time.Now())
	require.NoError(t, repo.Save(product))

	existed, err := repo.Delete(product.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(product.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}
