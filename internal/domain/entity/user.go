package entity

import (
	"strings"
	"time"

	"github.com/babetech/borastock/internal/domain"
)

// UserRole rôle d'un utilisateur. Les permissions sont fixées par rôle,
// jamais configurables par instance.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleManager  UserRole = "MANAGER"
	RoleEmployee UserRole = "EMPLOYEE"
	RoleViewer   UserRole = "VIEWER"
)

// Label libellé du rôle.
func (r UserRole) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrateur"
	case RoleManager:
		return "Gestionnaire"
	case RoleEmployee:
		return "Employé"
	case RoleViewer:
		return "Observateur"
	}
	return string(r)
}

// Permission capacité accordée par un rôle.
type Permission string

const (
	PermReadProducts   Permission = "READ_PRODUCTS"
	PermWriteProducts  Permission = "WRITE_PRODUCTS"
	PermReadSuppliers  Permission = "READ_SUPPLIERS"
	PermWriteSuppliers Permission = "WRITE_SUPPLIERS"
	PermReadStock      Permission = "READ_STOCK"
	PermWriteStock     Permission = "WRITE_STOCK"
	PermReadMovements  Permission = "READ_MOVEMENTS"
	PermWriteMovements Permission = "WRITE_MOVEMENTS"
	PermReadUsers      Permission = "READ_USERS"
	PermWriteUsers     Permission = "WRITE_USERS"
	PermReadAnalytics  Permission = "READ_ANALYTICS"
	PermSystemConfig   Permission = "SYSTEM_CONFIG"
)

var rolePermissions = map[UserRole][]Permission{
	RoleAdmin: {
		PermReadProducts, PermWriteProducts, PermReadSuppliers, PermWriteSuppliers,
		PermReadStock, PermWriteStock, PermReadMovements, PermWriteMovements,
		PermReadUsers, PermWriteUsers, PermReadAnalytics, PermSystemConfig,
	},
	RoleManager: {
		PermReadProducts, PermWriteProducts, PermReadSuppliers, PermWriteSuppliers,
		PermReadStock, PermWriteStock, PermReadMovements, PermWriteMovements,
	},
	RoleEmployee: {
		PermReadProducts, PermReadSuppliers,
		PermReadStock, PermWriteStock, PermReadMovements, PermWriteMovements,
	},
	RoleViewer: {
		PermReadProducts, PermReadSuppliers, PermReadStock, PermReadMovements,
	},
}

// HasPermission vrai si le rôle accorde la permission.
func (r UserRole) HasPermission(p Permission) bool {
	for _, perm := range rolePermissions[r] {
		if perm == p {
			return true
		}
	}
	return false
}

// User entité représentant un utilisateur du système.
type User struct {
	ID           UserID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string // bcrypt, jamais en clair après persistance
	Active       bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// NewUser valide email et nom.
func NewUser(id UserID, email, name string, role UserRole, now time.Time) (*User, error) {
	if !strings.Contains(email, "@") {
		return nil, domain.Invalid("Format d'email invalide")
	}
	if name == "" {
		return nil, domain.Invalid("Le nom ne peut pas être vide")
	}
	return &User{ID: id, Email: email, Name: name, Role: role, Active: true, CreatedAt: now}, nil
}

// HasPermission délègue au rôle.
func (u *User) HasPermission(p Permission) bool { return u.Role.HasPermission(p) }

// UpdateLastLogin retourne une copie avec l'horodatage de dernière connexion.
func (u User) UpdateLastLogin(now time.Time) *User {
	u.LastLoginAt = &now
	return &u
}

// Activate retourne une copie active.
func (u User) Activate() *User {
	u.Active = true
	return &u
}

// Deactivate retourne une copie inactive.
func (u User) Deactivate() *User {
	u.Active = false
	return &u
}
