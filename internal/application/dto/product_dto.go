package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/babetech/borastock/internal/domain/entity"
)

// CreateProductRequest body pour POST /api/products et saisie CLI.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"category_id"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency,omitempty"`
	InitialQuantity int             `json:"initial_quantity"`
	MinThreshold    int             `json:"min_threshold"`
	MaxCapacity     int             `json:"max_capacity"`
	SupplierID      string          `json:"supplier_id"`
}

// UpdateProductRequest body pour PUT /api/products/:id. Seuls les champs
// renseignés sont remplacés.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
}

// UpdateStockRequest body pour PUT /api/products/:id/stock.
type UpdateStockRequest struct {
	NewQuantity int `json:"new_quantity"`
}

// ProductResponse représentation d'un produit côté API/CLI.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Quantity     int             `json:"quantity"`
	MinThreshold int             `json:"min_threshold"`
	MaxCapacity  int             `json:"max_capacity"`
	Status       string          `json:"status"`
	StatusLabel  string          `json:"status_label"`
	SupplierID   string          `json:"supplier_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToProductResponse convertit l'entité en DTO.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	status := p.Stock.Status()
	return &ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.Category.ID.String(),
		CategoryName: p.Category.Name,
		Price:        p.Price.Amount,
		Currency:     p.Price.Currency,
		Quantity:     p.Stock.CurrentQuantity,
		MinThreshold: p.Stock.MinThreshold,
		MaxCapacity:  p.Stock.MaxCapacity,
		Status:       string(status),
		StatusLabel:  status.Label(),
		SupplierID:   p.SupplierID.String(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// StockSummary agrégat des comptes par statut.
type StockSummary struct {
	TotalProducts          int64   `json:"total_products"`
	InStock                int64   `json:"in_stock"`
	LowStock               int64   `json:"low_stock"`
	OutOfStock             int64   `json:"out_of_stock"`
	Overstocked            int64   `json:"overstocked"`
	HealthyStockPercentage float64 `json:"healthy_stock_percentage"`
}

// NewStockSummary calcule le pourcentage de stock sain (0 si aucun produit).
func NewStockSummary(total, inStock, lowStock, outOfStock, overstocked int64) StockSummary {
	pct := 0.0
	if total > 0 {
		pct = float64(inStock) / float64(total) * 100
	}
	return StockSummary{
		TotalProducts:          total,
		InStock:                inStock,
		LowStock:               lowStock,
		OutOfStock:             outOfStock,
		Overstocked:            overstocked,
		HealthyStockPercentage: pct,
	}
}
