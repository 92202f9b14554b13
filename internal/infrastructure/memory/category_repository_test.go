package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
)

func TestCategoryRepository_FindByName(t *testing.T) {
	repo := memory.NewCategoryRepository()
	category, err := entity.NewCategory(entity.NewCategoryID(), "Électroménager", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(&category))

	// La comparaison ignore casse et accents.
	for _, name := range []string{"Électroménager", "électroménager", "ELECTROMENAGER", "electromenager"} {
		got, err := repo.FindByName(name)
		require.NoError(t, err)
		require.NotNil(t, got, "recherche avec %q", name)
		assert.Equal(t, category.ID, got.ID)
	}

	got, err := repo.FindByName("Jardin")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategoryRepository_FindAll_TriParNom(t *testing.T) {
	repo := memory.NewCategoryRepository()
	for _, name := range []string{"Outillage", "Général", "Jardin"} {
		c, err := entity.NewCategory(entity.NewCategoryID(), name, "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(&c))
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Général", all[0].Name)
	assert.Equal(t, "Jardin", all[1].Name)
	assert.Equal(t, "Outillage", all[2].Name)
}
