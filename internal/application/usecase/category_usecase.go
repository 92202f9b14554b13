package usecase

import (
	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// CategoryUseCase cas d'usage CRUD pour les catégories de produits.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construit le cas d'usage.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crée une catégorie. Le nom est unique (insensible à la casse).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.FindByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Invalidf("Une catégorie nommée %q existe déjà", in.Name)
	}
	category, err := entity.NewCategory(entity.NewCategoryID(), in.Name, in.Description)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(&category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Get retourne une catégorie par ID.
func (uc *CategoryUseCase) Get(id entity.CategoryID) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return dto.ToCategoryResponse(*category), nil
}

// GetByName retourne une catégorie par nom, ou ErrCategoryNotFound.
func (uc *CategoryUseCase) GetByName(name string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return dto.ToCategoryResponse(*category), nil
}

// GetAll liste les catégories triées par nom.
func (uc *CategoryUseCase) GetAll() ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, *dto.ToCategoryResponse(*c))
	}
	return items, nil
}

// Delete supprime une catégorie existante.
func (uc *CategoryUseCase) Delete(id entity.CategoryID) error {
	existed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrCategoryNotFound
	}
	return nil
}
