package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
)

func TestUserRepository_FindByEmail_InsensibleALaCasse(t *testing.T) {
	repo := memory.NewUserRepository()
	user, err := entity.NewUser(entity.NewUserID(), "Marie.Dupont@borastock.fr", "Marie Dupont", entity.RoleManager, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(user))

	got, err := repo.FindByEmail("marie.dupont@borastock.fr")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	exists, err := repo.ExistsByEmail("MARIE.DUPONT@BORASTOCK.FR")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err = repo.FindByEmail("inconnu@borastock.fr")
	require.NoError(t, err)
	assert.Nil(t, got)
}
