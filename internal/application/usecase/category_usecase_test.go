package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/infrastructure/memory"
)

func TestCategoryUseCase_Create_NomUnique(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryRepository())

	category, err := uc.Create(dto.CreateCategoryRequest{Name: "Électroménager", Description: "Appareils"})
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)

	// L'unicité ignore casse et accents.
	_, err = uc.Create(dto.CreateCategoryRequest{Name: "electromenager"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUseCase_GetByName(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryRepository())
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Général"})
	require.NoError(t, err)

	got, err := uc.GetByName("général")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = uc.GetByName("Inconnue")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryUseCase_Delete(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryRepository())
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Jardin"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(entity.CategoryID(created.ID)))
	assert.ErrorIs(t, uc.Delete(entity.CategoryID(created.ID)), domain.ErrCategoryNotFound)
}
