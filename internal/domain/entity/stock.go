package entity

import "github.com/babetech/borastock/internal/domain"

// StockStatus classification dérivée d'un stock.
type StockStatus string

const (
	StatusInStock     StockStatus = "IN_STOCK"
	StatusLowStock    StockStatus = "LOW_STOCK"
	StatusOutOfStock  StockStatus = "OUT_OF_STOCK"
	StatusOverstocked StockStatus = "OVERSTOCKED"
)

// Label libellé affiché dans le CLI et les rapports.
func (s StockStatus) Label() string {
	switch s {
	case StatusInStock:
		return "En stock"
	case StatusLowStock:
		return "Stock faible"
	case StatusOutOfStock:
		return "Rupture de stock"
	case StatusOverstocked:
		return "Surstock"
	}
	return string(s)
}

// ParseStockStatus lit un statut depuis une entrée utilisateur (CLI, query param).
func ParseStockStatus(s string) (StockStatus, error) {
	switch s {
	case "in_stock", "in", string(StatusInStock):
		return StatusInStock, nil
	case "low_stock", "low", string(StatusLowStock):
		return StatusLowStock, nil
	case "out_of_stock", "out", string(StatusOutOfStock):
		return StatusOutOfStock, nil
	case "overstocked", "over", string(StatusOverstocked):
		return StatusOverstocked, nil
	}
	return "", domain.Invalidf("Statut invalide: %s", s)
}

// Stock objet-valeur embarqué dans Product : quantité courante, seuil minimum
// et capacité maximale. Toute mutation retourne une nouvelle valeur.
type Stock struct {
	CurrentQuantity int
	MinThreshold    int
	MaxCapacity     int
}

// NewStock valide les invariants à la construction.
func NewStock(currentQuantity, minThreshold, maxCapacity int) (Stock, error) {
	if currentQuantity < 0 {
		return Stock{}, domain.Invalid("La quantité ne peut pas être négative")
	}
	if minThreshold < 0 {
		return Stock{}, domain.Invalid("Le seuil minimum ne peut pas être négatif")
	}
	if maxCapacity <= 0 {
		return Stock{}, domain.Invalid("La capacité maximale doit être positive")
	}
	if minThreshold > maxCapacity {
		return Stock{}, domain.Invalid("Le seuil minimum ne peut pas être supérieur à la capacité maximale")
	}
	return Stock{CurrentQuantity: currentQuantity, MinThreshold: minThreshold, MaxCapacity: maxCapacity}, nil
}

func (s Stock) IsEmpty() bool       { return s.CurrentQuantity == 0 }
func (s Stock) IsLow() bool         { return s.CurrentQuantity > 0 && s.CurrentQuantity <= s.MinThreshold }
func (s Stock) IsOverstocked() bool { return s.CurrentQuantity > s.MaxCapacity }
func (s Stock) IsNormal() bool {
	return s.CurrentQuantity > s.MinThreshold && s.CurrentQuantity <= s.MaxCapacity
}

// Status ordre de priorité : rupture, puis stock faible, puis surstock.
func (s Stock) Status() StockStatus {
	switch {
	case s.IsEmpty():
		return StatusOutOfStock
	case s.IsLow():
		return StatusLowStock
	case s.IsOverstocked():
		return StatusOverstocked
	default:
		return StatusInStock
	}
}

// UpdateQuantity remplace la quantité courante, seuils conservés.
func (s Stock) UpdateQuantity(newQuantity int) (Stock, error) {
	if newQuantity < 0 {
		return Stock{}, domain.Invalid("La nouvelle quantité ne peut pas être négative")
	}
	s.CurrentQuantity = newQuantity
	return s, nil
}

// AddQuantity ajoute une quantité strictement positive.
func (s Stock) AddQuantity(quantity int) (Stock, error) {
	if quantity <= 0 {
		return Stock{}, domain.Invalid("La quantité à ajouter doit être positive")
	}
	return s.UpdateQuantity(s.CurrentQuantity + quantity)
}

// RemoveQuantity retire une quantité strictement positive, sans passer sous zéro.
func (s Stock) RemoveQuantity(quantity int) (Stock, error) {
	if quantity <= 0 {
		return Stock{}, domain.Invalid("La quantité à retirer doit être positive")
	}
	if quantity > s.CurrentQuantity {
		return Stock{}, domain.Invalid("Impossible de retirer plus que la quantité disponible")
	}
	return s.UpdateQuantity(s.CurrentQuantity - quantity)
}
