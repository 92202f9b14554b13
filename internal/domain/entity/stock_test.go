package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
)

func mustStock(t *testing.T, qty, min, max int) entity.Stock {
	t.Helper()
	s, err := entity.NewStock(qty, min, max)
	require.NoError(t, err)
	return s
}

func TestNewStock_Validation(t *testing.T) {
	tests := []struct {
		name          string
		qty, min, max int
		wantErr       bool
	}{
		{"valide", 50, 10, 100, false},
		{"quantité zéro", 0, 10, 100, false},
		{"quantité négative", -1, 10, 100, true},
		{"seuil négatif", 10, -1, 100, true},
		{"capacité nulle", 10, 0, 0, true},
		{"seuil supérieur à la capacité", 10, 101, 100, true},
		{"seuil égal à la capacité", 10, 100, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entity.NewStock(tt.qty, tt.min, tt.max)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// L'ordre de priorité des statuts : rupture avant stock faible avant surstock
// avant normal.
func TestStock_Status(t *testing.T) {
	tests := []struct {
		name          string
		qty, min, max int
		want          entity.StockStatus
	}{
		{"rupture", 0, 10, 100, entity.StatusOutOfStock},
		{"faible à la limite", 10, 10, 100, entity.StatusLowStock},
		{"faible sous le seuil", 5, 10, 100, entity.StatusLowStock},
		{"normal juste au-dessus du seuil", 11, 10, 100, entity.StatusInStock},
		{"normal à la capacité", 100, 10, 100, entity.StatusInStock},
		{"surstock", 101, 10, 100, entity.StatusOverstocked},
		// Seuil 0 : une quantité de 0 est une rupture, jamais un stock faible.
		{"rupture prioritaire sur faible", 0, 0, 100, entity.StatusOutOfStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustStock(t, tt.qty, tt.min, tt.max)
			assert.Equal(t, tt.want, s.Status())
		})
	}
}

func TestStock_IsLow_Bornes(t *testing.T) {
	assert.False(t, mustStock(t, 0, 10, 100).IsLow(), "une rupture n'est pas un stock faible")
	assert.True(t, mustStock(t, 1, 10, 100).IsLow())
	assert.True(t, mustStock(t, 10, 10, 100).IsLow())
	assert.False(t, mustStock(t, 11, 10, 100).IsLow())
}

func TestStock_AddQuantity(t *testing.T) {
	s := mustStock(t, 50, 10, 100)

	got, err := s.AddQuantity(20)
	require.NoError(t, err)
	assert.Equal(t, 70, got.CurrentQuantity)
	assert.Equal(t, 50, s.CurrentQuantity, "l'original ne doit pas être modifié")

	_, err = s.AddQuantity(0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = s.AddQuantity(-5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// L'ajout peut dépasser la capacité : c'est un surstock, pas une erreur.
	got, err = s.AddQuantity(60)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOverstocked, got.Status())
}

func TestStock_RemoveQuantity(t *testing.T) {
	s := mustStock(t, 50, 10, 100)

	got, err := s.RemoveQuantity(50)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentQuantity)

	_, err = s.RemoveQuantity(51)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = s.RemoveQuantity(0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStock_UpdateQuantity(t *testing.T) {
	s := mustStock(t, 50, 10, 100)

	got, err := s.UpdateQuantity(0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentQuantity)
	assert.Equal(t, 10, got.MinThreshold, "les seuils sont conservés")
	assert.Equal(t, 100, got.MaxCapacity)

	_, err = s.UpdateQuantity(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
