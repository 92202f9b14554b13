package entity

import (
	"time"

	"github.com/babetech/borastock/internal/domain"
)

// MovementType sens d'un mouvement de stock.
type MovementType string

const (
	MovementEntry MovementType = "ENTRY"
	MovementExit  MovementType = "EXIT"
)

// Label libellé affiché dans le CLI.
func (t MovementType) Label() string {
	if t == MovementEntry {
		return "Entrée"
	}
	return "Sortie"
}

// ParseMovementType lit un type depuis une entrée utilisateur.
func ParseMovementType(s string) (MovementType, error) {
	switch s {
	case "entry", "in", string(MovementEntry):
		return MovementEntry, nil
	case "exit", "out", string(MovementExit):
		return MovementExit, nil
	}
	return "", domain.Invalidf("Type de mouvement invalide: %s", s)
}

// StockMovement enregistrement immuable d'une variation de stock.
// Jamais mis à jour : seulement créé, et rarement supprimé.
type StockMovement struct {
	ID          MovementID
	ProductID   ProductID
	Type        MovementType
	Quantity    int
	Reason      string
	PerformedBy UserID
	Timestamp   time.Time
	Reference   string
}

// NewStockMovement valide quantité positive et raison non vide.
func NewStockMovement(id MovementID, productID ProductID, movType MovementType, quantity int, reason string, performedBy UserID, timestamp time.Time, reference string) (*StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.Invalid("La quantité doit être positive")
	}
	if reason == "" {
		return nil, domain.Invalid("La raison ne peut pas être vide")
	}
	return &StockMovement{
		ID:          id,
		ProductID:   productID,
		Type:        movType,
		Quantity:    quantity,
		Reason:      reason,
		PerformedBy: performedBy,
		Timestamp:   timestamp,
		Reference:   reference,
	}, nil
}

func (m *StockMovement) IsEntry() bool { return m.Type == MovementEntry }
func (m *StockMovement) IsExit() bool  { return m.Type == MovementExit }
