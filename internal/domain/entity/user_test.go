package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
)

func TestNewUser_Validation(t *testing.T) {
	_, err := entity.NewUser(entity.NewUserID(), "pas-un-email", "Marie", entity.RoleViewer, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewUser(entity.NewUserID(), "marie@borastock.fr", "", entity.RoleViewer, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	user, err := entity.NewUser(entity.NewUserID(), "marie@borastock.fr", "Marie", entity.RoleManager, time.Now())
	require.NoError(t, err)
	assert.True(t, user.Active, "un utilisateur est actif à la création")
	assert.Nil(t, user.LastLoginAt)
}

// La matrice des permissions par rôle : l'employé manipule le stock mais pas
// le catalogue, l'observateur ne fait que lire, le tableau de bord est
// réservé à l'administrateur.
func TestUserRole_HasPermission(t *testing.T) {
	assert.True(t, entity.RoleAdmin.HasPermission(entity.PermReadAnalytics))
	assert.True(t, entity.RoleAdmin.HasPermission(entity.PermSystemConfig))

	assert.True(t, entity.RoleManager.HasPermission(entity.PermWriteProducts))
	assert.False(t, entity.RoleManager.HasPermission(entity.PermReadAnalytics))
	assert.False(t, entity.RoleManager.HasPermission(entity.PermWriteUsers))

	assert.True(t, entity.RoleEmployee.HasPermission(entity.PermWriteMovements))
	assert.True(t, entity.RoleEmployee.HasPermission(entity.PermWriteStock))
	assert.False(t, entity.RoleEmployee.HasPermission(entity.PermWriteProducts))

	assert.True(t, entity.RoleViewer.HasPermission(entity.PermReadProducts))
	assert.False(t, entity.RoleViewer.HasPermission(entity.PermWriteStock))
}

func TestUser_UpdateLastLogin(t *testing.T) {
	user, err := entity.NewUser(entity.NewUserID(), "marie@borastock.fr", "Marie", entity.RoleViewer, time.Now())
	require.NoError(t, err)

	now := time.Now()
	logged := user.UpdateLastLogin(now)
	require.NotNil(t, logged.LastLoginAt)
	assert.Equal(t, now, *logged.LastLoginAt)
	assert.Nil(t, user.LastLoginAt, "l'original ne doit pas être modifié")
}
