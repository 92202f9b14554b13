package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/application/auth"
	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
	"github.com/babetech/borastock/pkg/jwt"
)

const testSecret = "secret-de-test-suffisamment-long"

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *memory.UserRepository) {
	t.Helper()
	userRepo := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "borastock-test",
	})
	return uc, userRepo
}

func TestAuthUseCase_Register(t *testing.T) {
	uc, _ := newAuthFixture(t)

	user, err := uc.Register(dto.RegisterRequest{
		Email:    "marie.dupont@borastock.fr",
		Password: "motdepasse",
		Name:     "Marie Dupont",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleViewer), user.Role, "rôle par défaut")
	assert.True(t, user.Active)
	assert.Nil(t, user.LastLoginAt)

	// L'email est unique.
	_, err = uc.Register(dto.RegisterRequest{
		Email:    "marie.dupont@borastock.fr",
		Password: "autremotdepasse",
		Name:     "Doublon",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuthUseCase_Register_Validation(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Register(dto.RegisterRequest{
		Email: "marie@borastock.fr", Password: "court", Name: "Marie",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "mot de passe trop court")

	_, err = uc.Register(dto.RegisterRequest{
		Email: "marie@borastock.fr", Password: "motdepasse", Name: "Marie", Role: "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rôle inconnu")

	_, err = uc.Register(dto.RegisterRequest{
		Email: "pas-un-email", Password: "motdepasse", Name: "Marie",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthUseCase_Login(t *testing.T) {
	uc, _ := newAuthFixture(t)
	registered, err := uc.Register(dto.RegisterRequest{
		Email: "marie@borastock.fr", Password: "motdepasse", Name: "Marie", Role: string(entity.RoleManager),
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "marie@borastock.fr", Password: "motdepasse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)
	assert.NotNil(t, resp.User.LastLoginAt)

	// Le token porte l'identité et le rôle.
	userID, role, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, string(entity.RoleManager), role)
}

func TestAuthUseCase_Login_Echecs(t *testing.T) {
	uc, userRepo := newAuthFixture(t)
	_, err := uc.Register(dto.RegisterRequest{
		Email: "marie@borastock.fr", Password: "motdepasse", Name: "Marie",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "marie@borastock.fr", Password: "mauvais"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "inconnu@borastock.fr", Password: "motdepasse"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Un compte désactivé ne peut plus se connecter, même avec le bon mot
	// de passe.
	user, err := userRepo.FindByEmail("marie@borastock.fr")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NoError(t, userRepo.Save(user.Deactivate()))

	_, err = uc.Login(dto.LoginRequest{Email: "marie@borastock.fr", Password: "motdepasse"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthUseCase_LoginConserveLeHash(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, err := uc.Register(dto.RegisterRequest{
		Email: "marie@borastock.fr", Password: "motdepasse", Name: "Marie",
	})
	require.NoError(t, err)

	// Deux connexions successives : la première ne doit pas effacer le hash.
	_, err = uc.Login(dto.LoginRequest{Email: "marie@borastock.fr", Password: "motdepasse"})
	require.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Email: "marie@borastock.fr", Password: "motdepasse"})
	require.NoError(t, err)
}
