package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
)

func makeSupplier(t *testing.T, name, email string) *entity.Supplier {
	t.Helper()
	contact, err := entity.NewContactInfo(email, "0601020304", "")
	require.NoError(t, err)
	supplier, err := entity.NewSupplier(entity.NewSupplierID(), name, contact, nil, time.Now())
	require.NoError(t, err)
	return supplier
}

func TestSupplierRepository_Search_NomEtEmail(t *testing.T) {
	repo := memory.NewSupplierRepository()
	require.NoError(t, repo.Save(makeSupplier(t, "Quincaillerie Générale", "contact@qg.fr")))
	require.NoError(t, repo.Save(makeSupplier(t, "ACME", "ventes@acme.fr")))

	found, err := repo.Search("generale")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Quincaillerie Générale", found[0].Name)

	// L'email de contact est aussi couvert par la recherche.
	found, err = repo.Search("acme.fr")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ACME", found[0].Name)

	found, err = repo.Search("brico")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSupplierRepository_FindByName_Contient(t *testing.T) {
	repo := memory.NewSupplierRepository()
	require.NoError(t, repo.Save(makeSupplier(t, "Quincaillerie Générale", "contact@qg.fr")))
	require.NoError(t, repo.Save(makeSupplier(t, "ACME", "ventes@acme.fr")))

	// FindByName est une recherche par sous-chaîne, insensible à la casse et
	// aux accents.
	found, err := repo.FindByName("QUINCAILLERIE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Quincaillerie Générale", found[0].Name)

	found, err = repo.FindByName("generale")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
