package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
	"github.com/babetech/borastock/pkg/jwt"
)

// JWTConfig paramètres de génération des tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cas d'usage d'authentification : inscription et connexion.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crée un utilisateur : hash bcrypt du mot de passe, email unique.
// Rôle par défaut : VIEWER.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := uc.userRepo.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	if len(in.Password) < 8 {
		return nil, domain.Invalid("Le mot de passe doit contenir au moins 8 caractères")
	}
	role := entity.UserRole(in.Role)
	if in.Role == "" {
		role = entity.RoleViewer
	}
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee, entity.RoleViewer:
	default:
		return nil, domain.Invalidf("Rôle invalide: %s", in.Role)
	}

	user, err := entity.NewUser(entity.NewUserID(), in.Email, in.Name, role, time.Now())
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if err := uc.userRepo.Save(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Login vérifie email/mot de passe, met à jour LastLoginAt et retourne un JWT
// portant le rôle pour le middleware RBAC.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}

	logged := user.UpdateLastLogin(time.Now())
	logged.PasswordHash = user.PasswordHash
	if err := uc.userRepo.Save(logged); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, logged.ID.String(), string(logged.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *dto.ToUserResponse(logged)}, nil
}
