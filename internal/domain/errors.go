package domain

import (
	"errors"
	"fmt"
)

// Erreurs de domaine (sans dépendances externes).
// Les messages sont en français : ce sont eux qui remontent jusqu'au CLI et à l'API.
var (
	ErrProductNotFound    = errors.New("Produit introuvable")
	ErrCategoryNotFound   = errors.New("Catégorie introuvable")
	ErrSupplierNotFound   = errors.New("Fournisseur introuvable")
	ErrMovementNotFound   = errors.New("Mouvement introuvable")
	ErrUserNotFound       = errors.New("Utilisateur introuvable")
	ErrEmailAlreadyExists = errors.New("L'email est déjà enregistré")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrInsufficientStock  = errors.New("Stock insuffisant")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
)

// Invalid construit une erreur de validation avec un message lisible,
// classifiable via errors.Is(err, ErrInvalidInput).
func Invalid(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidInput)
}

// Invalidf variante avec format.
func Invalidf(format string, args ...any) error {
	return Invalid(fmt.Sprintf(format, args...))
}

// InsufficientStock construit l'erreur de stock insuffisant en précisant
// la quantité disponible et la quantité demandée.
func InsufficientStock(available, requested int) error {
	return fmt.Errorf("%w. Disponible: %d, Demandé: %d", ErrInsufficientStock, available, requested)
}

// IsNotFound vrai si err correspond à une ressource introuvable.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrSupplierNotFound) ||
		errors.Is(err, ErrMovementNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
