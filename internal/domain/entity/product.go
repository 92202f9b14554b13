package entity

import (
	"time"

	"github.com/babetech/borastock/internal/domain"
)

// Product entité représentant un produit du stock. Le Stock est un objet-valeur
// embarqué ; le fournisseur est référencé par son ID, jamais possédé.
type Product struct {
	ID          ProductID
	Name        string
	Description string
	Category    Category
	Price       Money
	Stock       Stock
	SupplierID  SupplierID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct valide les invariants produit à la construction.
func NewProduct(id ProductID, name, description string, category Category, price Money, stock Stock, supplierID SupplierID, now time.Time) (*Product, error) {
	if name == "" {
		return nil, domain.Invalid("Le nom du produit ne peut pas être vide")
	}
	if price.Amount.IsNegative() {
		return nil, domain.Invalid("Le prix ne peut pas être négatif")
	}
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		Stock:       stock,
		SupplierID:  supplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (p *Product) IsLowStock() bool    { return p.Stock.IsLow() }
func (p *Product) IsOutOfStock() bool  { return p.Stock.IsEmpty() }
func (p *Product) IsOverstocked() bool { return p.Stock.IsOverstocked() }

// UpdateStock remplace la quantité (seuils conservés) et retourne une copie.
func (p Product) UpdateStock(newQuantity int, now time.Time) (*Product, error) {
	stock, err := p.Stock.UpdateQuantity(newQuantity)
	if err != nil {
		return nil, err
	}
	p.Stock = stock
	p.UpdatedAt = now
	return &p, nil
}

// UpdatePrice remplace le prix et retourne une copie.
func (p Product) UpdatePrice(newPrice Money, now time.Time) *Product {
	p.Price = newPrice
	p.UpdatedAt = now
	return &p
}

// Category catégorie de produits.
type Category struct {
	ID          CategoryID
	Name        string
	Description string
}

// NewCategory valide le nom.
func NewCategory(id CategoryID, name, description string) (Category, error) {
	if name == "" {
		return Category{}, domain.Invalid("Le nom de la catégorie ne peut pas être vide")
	}
	return Category{ID: id, Name: name, Description: description}, nil
}
