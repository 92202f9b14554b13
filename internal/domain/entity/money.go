package entity

import (
	"github.com/shopspring/decimal"

	"github.com/babetech/borastock/internal/domain"
)

// Money montant monétaire (objet-valeur). Arithmétique décimale exacte, pas
// de flottants.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney valide un montant non négatif. Devise par défaut : EUR.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, domain.Invalid("Le montant ne peut pas être négatif")
	}
	if currency == "" {
		currency = "EUR"
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// MoneyFromFloat convertit un flottant en Money. Réservé aux entrées
// utilisateur ; le montant est stocké en décimal.
func MoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Add additionne deux montants de même devise.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, domain.Invalidf("Devises incompatibles: %s et %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Times multiplie le montant par une quantité.
func (m Money) Times(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.Currency}
}

// IsZero vrai si le montant est nul.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}
