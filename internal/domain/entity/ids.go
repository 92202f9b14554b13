package entity

import "github.com/google/uuid"

// Identifiants typés : une valeur de ProductID ne peut pas être passée là où
// un SupplierID est attendu. Le préfixe rend le type lisible dans les logs et
// le CLI.
type (
	ProductID  string
	CategoryID string
	SupplierID string
	MovementID string
	UserID     string
)

// NewProductID génère un identifiant produit unique.
func NewProductID() ProductID { return ProductID("PRD_" + uuid.New().String()) }

// NewCategoryID génère un identifiant catégorie unique.
func NewCategoryID() CategoryID { return CategoryID("CAT_" + uuid.New().String()) }

// NewSupplierID génère un identifiant fournisseur unique.
func NewSupplierID() SupplierID { return SupplierID("SUP_" + uuid.New().String()) }

// NewMovementID génère un identifiant mouvement unique.
func NewMovementID() MovementID { return MovementID("MOV_" + uuid.New().String()) }

// NewUserID génère un identifiant utilisateur unique.
func NewUserID() UserID { return UserID("USR_" + uuid.New().String()) }

func (id ProductID) String() string  { return string(id) }
func (id CategoryID) String() string { return string(id) }
func (id SupplierID) String() string { return string(id) }
func (id MovementID) String() string { return string(id) }
func (id UserID) String() string     { return string(id) }
