package usecase

import (
	"time"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// SupplierUseCase cas d'usage CRUD et lectures pour les fournisseurs.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construit le cas d'usage.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crée un fournisseur actif. Au moins un email ou un téléphone requis.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	contact, err := entity.NewContactInfo(in.Email, in.Phone, in.Website)
	if err != nil {
		return nil, err
	}
	if !contact.HasContact() {
		return nil, domain.Invalid("Au moins un moyen de contact est requis")
	}
	var address *entity.Address
	if in.Address != nil {
		addr, err := entity.NewAddress(in.Address.Street, in.Address.City, in.Address.PostalCode, in.Address.Country)
		if err != nil {
			return nil, err
		}
		address = &addr
	}
	supplier, err := entity.NewSupplier(entity.NewSupplierID(), in.Name, contact, address, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(supplier); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// Update remplace uniquement les champs fournis.
func (uc *SupplierUseCase) Update(id entity.SupplierID, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}

	updated := *supplier
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Invalid("Le nom du fournisseur ne peut pas être vide")
		}
		updated.Name = *in.Name
	}
	if in.Email != nil || in.Phone != nil || in.Website != nil {
		email, phone, website := updated.ContactInfo.Email, updated.ContactInfo.Phone, updated.ContactInfo.Website
		if in.Email != nil {
			email = *in.Email
		}
		if in.Phone != nil {
			phone = *in.Phone
		}
		if in.Website != nil {
			website = *in.Website
		}
		contact, err := entity.NewContactInfo(email, phone, website)
		if err != nil {
			return nil, err
		}
		if !contact.HasContact() {
			return nil, domain.Invalid("Au moins un moyen de contact est requis")
		}
		updated.ContactInfo = contact
	}
	if in.Address != nil {
		addr, err := entity.NewAddress(in.Address.Street, in.Address.City, in.Address.PostalCode, in.Address.Country)
		if err != nil {
			return nil, err
		}
		updated.Address = &addr
	}
	updated.UpdatedAt = time.Now()

	if err := uc.repo.Save(&updated); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(&updated), nil
}

// Activate réactive un fournisseur.
func (uc *SupplierUseCase) Activate(id entity.SupplierID) (*dto.SupplierResponse, error) {
	return uc.toggleActive(id, true)
}

// Deactivate désactive un fournisseur sans le supprimer.
func (uc *SupplierUseCase) Deactivate(id entity.SupplierID) (*dto.SupplierResponse, error) {
	return uc.toggleActive(id, false)
}

func (uc *SupplierUseCase) toggleActive(id entity.SupplierID, active bool) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	now := time.Now()
	var updated *entity.Supplier
	if active {
		updated = supplier.Activate(now)
	} else {
		updated = supplier.Deactivate(now)
	}
	if err := uc.repo.Save(updated); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(updated), nil
}

// Delete supprime un fournisseur existant.
func (uc *SupplierUseCase) Delete(id entity.SupplierID) error {
	existed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrSupplierNotFound
	}
	return nil
}

// Get retourne un fournisseur par ID.
func (uc *SupplierUseCase) Get(id entity.SupplierID) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return dto.ToSupplierResponse(supplier), nil
}

// GetAll liste tous les fournisseurs.
func (uc *SupplierUseCase) GetAll() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(suppliers), nil
}

// GetActive liste les fournisseurs actifs.
func (uc *SupplierUseCase) GetActive() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.FindActive()
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(suppliers), nil
}

// GetByName liste les fournisseurs dont le nom contient la chaîne donnée,
// sans tenir compte de la casse.
func (uc *SupplierUseCase) GetByName(name string) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(suppliers), nil
}

// Search recherche insensible à la casse et aux accents sur le nom.
func (uc *SupplierUseCase) Search(query string) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.Search(query)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(suppliers), nil
}

// Summary agrège les comptes actifs/inactifs.
func (uc *SupplierUseCase) Summary() (dto.SupplierSummary, error) {
	total, err := uc.repo.Count()
	if err != nil {
		return dto.SupplierSummary{}, err
	}
	active, err := uc.repo.CountActive()
	if err != nil {
		return dto.SupplierSummary{}, err
	}
	return dto.NewSupplierSummary(total, active), nil
}

func toSupplierResponses(suppliers []*entity.Supplier) []dto.SupplierResponse {
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, *dto.ToSupplierResponse(s))
	}
	return items
}
