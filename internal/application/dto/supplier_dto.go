package dto

import (
	"time"

	"github.com/babetech/borastock/internal/domain/entity"
)

// AddressDTO adresse postale d'un fournisseur.
type AddressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// CreateSupplierRequest body pour POST /api/suppliers et saisie CLI.
// Au moins un email ou un téléphone est requis.
type CreateSupplierRequest struct {
	Name    string      `json:"name"`
	Email   string      `json:"email,omitempty"`
	Phone   string      `json:"phone,omitempty"`
	Website string      `json:"website,omitempty"`
	Address *AddressDTO `json:"address,omitempty"`
}

// UpdateSupplierRequest body pour PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name    *string     `json:"name,omitempty"`
	Email   *string     `json:"email,omitempty"`
	Phone   *string     `json:"phone,omitempty"`
	Website *string     `json:"website,omitempty"`
	Address *AddressDTO `json:"address,omitempty"`
}

// SupplierResponse représentation d'un fournisseur côté API/CLI.
type SupplierResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Website   string      `json:"website,omitempty"`
	Address   *AddressDTO `json:"address,omitempty"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ToSupplierResponse convertit l'entité en DTO.
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	var addr *AddressDTO
	if s.Address != nil {
		addr = &AddressDTO{
			Street:     s.Address.Street,
			City:       s.Address.City,
			PostalCode: s.Address.PostalCode,
			Country:    s.Address.Country,
		}
	}
	return &SupplierResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Email:     s.ContactInfo.Email,
		Phone:     s.ContactInfo.Phone,
		Website:   s.ContactInfo.Website,
		Address:   addr,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SupplierSummary agrégat fournisseurs actifs/inactifs.
type SupplierSummary struct {
	TotalSuppliers    int64   `json:"total_suppliers"`
	ActiveSuppliers   int64   `json:"active_suppliers"`
	InactiveSuppliers int64   `json:"inactive_suppliers"`
	ActivePercentage  float64 `json:"active_percentage"`
}

// NewSupplierSummary calcule le taux d'activité (0 si aucun fournisseur).
func NewSupplierSummary(total, active int64) SupplierSummary {
	pct := 0.0
	if total > 0 {
		pct = float64(active) / float64(total) * 100
	}
	return SupplierSummary{
		TotalSuppliers:    total,
		ActiveSuppliers:   active,
		InactiveSuppliers: total - active,
		ActivePercentage:  pct,
	}
}
