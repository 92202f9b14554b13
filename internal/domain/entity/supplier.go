package entity

import (
	"strings"
	"time"

	"github.com/babetech/borastock/internal/domain"
)

// Supplier entité représentant un fournisseur.
type Supplier struct {
	ID          SupplierID
	Name        string
	ContactInfo ContactInfo
	Address     *Address
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSupplier valide le nom ; la présence d'un moyen de contact est vérifiée
// par le cas d'usage de création.
func NewSupplier(id SupplierID, name string, contact ContactInfo, address *Address, now time.Time) (*Supplier, error) {
	if name == "" {
		return nil, domain.Invalid("Le nom du fournisseur ne peut pas être vide")
	}
	return &Supplier{
		ID:          id,
		Name:        name,
		ContactInfo: contact,
		Address:     address,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Activate retourne une copie active.
func (s Supplier) Activate(now time.Time) *Supplier {
	s.Active = true
	s.UpdatedAt = now
	return &s
}

// Deactivate retourne une copie inactive.
func (s Supplier) Deactivate(now time.Time) *Supplier {
	s.Active = false
	s.UpdatedAt = now
	return &s
}

// UpdateContactInfo retourne une copie avec le nouveau contact.
func (s Supplier) UpdateContactInfo(contact ContactInfo, now time.Time) *Supplier {
	s.ContactInfo = contact
	s.UpdatedAt = now
	return &s
}

// ContactInfo coordonnées d'un fournisseur (objet-valeur).
type ContactInfo struct {
	Email   string
	Phone   string
	Website string
}

// NewContactInfo valide le format de l'email s'il est renseigné.
func NewContactInfo(email, phone, website string) (ContactInfo, error) {
	if email != "" && !strings.Contains(email, "@") {
		return ContactInfo{}, domain.Invalid("Format d'email invalide")
	}
	return ContactInfo{Email: email, Phone: phone, Website: website}, nil
}

// HasContact vrai si au moins un email ou un téléphone est renseigné.
func (c ContactInfo) HasContact() bool {
	return strings.TrimSpace(c.Email) != "" || strings.TrimSpace(c.Phone) != ""
}

// Address adresse postale (objet-valeur, tous champs obligatoires).
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// NewAddress valide que tous les champs sont renseignés.
func NewAddress(street, city, postalCode, country string) (Address, error) {
	if street == "" {
		return Address{}, domain.Invalid("La rue ne peut pas être vide")
	}
	if city == "" {
		return Address{}, domain.Invalid("La ville ne peut pas être vide")
	}
	if postalCode == "" {
		return Address{}, domain.Invalid("Le code postal ne peut pas être vide")
	}
	if country == "" {
		return Address{}, domain.Invalid("Le pays ne peut pas être vide")
	}
	return Address{Street: street, City: city, PostalCode: postalCode, Country: country}, nil
}

func (a Address) String() string {
	return a.Street + ", " + a.City + " " + a.PostalCode + ", " + a.Country
}
