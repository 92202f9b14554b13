package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
)

func TestNewMoney(t *testing.T) {
	m, err := entity.NewMoney(decimal.NewFromFloat(19.99), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "19.99 EUR", m.String())

	// Devise par défaut.
	m, err = entity.NewMoney(decimal.NewFromInt(5), "")
	require.NoError(t, err)
	assert.Equal(t, "EUR", m.Currency)

	_, err = entity.NewMoney(decimal.NewFromFloat(-0.01), "EUR")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	m, err = entity.NewMoney(decimal.Zero, "EUR")
	require.NoError(t, err, "un montant nul est valide")
	assert.True(t, m.IsZero())
}

func TestMoney_Add(t *testing.T) {
	a, err := entity.MoneyFromFloat(10.50, "EUR")
	require.NoError(t, err)
	b, err := entity.MoneyFromFloat(4.25, "EUR")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "14.75 EUR", sum.String())

	usd, err := entity.MoneyFromFloat(1, "USD")
	require.NoError(t, err)
	_, err = a.Add(usd)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMoney_Times(t *testing.T) {
	unit, err := entity.MoneyFromFloat(2.50, "EUR")
	require.NoError(t, err)

	total := unit.Times(4)
	assert.Equal(t, "10.00 EUR", total.String())
	assert.Equal(t, "2.50 EUR", unit.String(), "l'original ne doit pas être modifié")

	// L'arithmétique décimale ne perd rien, contrairement aux flottants.
	cent, err := entity.MoneyFromFloat(0.10, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "0.30 EUR", cent.Times(3).String())
}
