package usecase

import (
	"time"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// ProductUseCase cas d'usage CRUD et lectures pour les produits.
// La quantité en stock ne se modifie que via UpdateStock (et donc via les
// mouvements) ; Create fixe la quantité initiale.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construit le cas d'usage.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// Create crée un produit. La catégorie et le fournisseur référencés doivent
// exister avant toute écriture dans le repository produit.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	price, err := entity.NewMoney(in.Price, in.Currency)
	if err != nil {
		return nil, err
	}
	stock, err := entity.NewStock(in.InitialQuantity, in.MinThreshold, in.MaxCapacity)
	if err != nil {
		return nil, err
	}

	categoryID := entity.CategoryID(in.CategoryID)
	ok, err := uc.categoryRepo.Exists(categoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	supplierID := entity.SupplierID(in.SupplierID)
	ok, err = uc.supplierRepo.Exists(supplierID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSupplierNotFound
	}
	category, err := uc.categoryRepo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	now := time.Now()
	product, err := entity.NewProduct(entity.NewProductID(), in.Name, in.Description, *category, price, stock, supplierID, now)
	if err != nil {
		return nil, err
	}
	if err := uc.productRepo.Save(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Update remplace uniquement les champs fournis et met à jour UpdatedAt.
func (uc *ProductUseCase) Update(id entity.ProductID, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	updated := *product
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Invalid("Le nom du produit ne peut pas être vide")
		}
		updated.Name = *in.Name
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if in.Price != nil {
		currency := product.Price.Currency
		if in.Currency != nil {
			currency = *in.Currency
		}
		price, err := entity.NewMoney(*in.Price, currency)
		if err != nil {
			return nil, err
		}
		updated.Price = price
	}
	updated.UpdatedAt = time.Now()

	if err := uc.productRepo.Save(&updated); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(&updated), nil
}

// UpdateStock remplace la quantité, seuils conservés.
func (uc *ProductUseCase) UpdateStock(id entity.ProductID, newQuantity int) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	updated, err := product.UpdateStock(newQuantity, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.productRepo.Save(updated); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(updated), nil
}

// UpdatePrice remplace le prix.
func (uc *ProductUseCase) UpdatePrice(id entity.ProductID, price entity.Money) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	updated := product.UpdatePrice(price, time.Now())
	if err := uc.productRepo.Save(updated); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(updated), nil
}

// Delete supprime un produit existant.
func (uc *ProductUseCase) Delete(id entity.ProductID) error {
	existed, err := uc.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrProductNotFound
	}
	return nil
}

// Get retourne un produit par ID.
func (uc *ProductUseCase) Get(id entity.ProductID) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return dto.ToProductResponse(product), nil
}

// GetAll liste tous les produits.
func (uc *ProductUseCase) GetAll() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetByCategory liste les produits d'une catégorie.
func (uc *ProductUseCase) GetByCategory(categoryID entity.CategoryID) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.FindByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetBySupplier liste les produits d'un fournisseur.
func (uc *ProductUseCase) GetBySupplier(supplierID entity.SupplierID) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.FindBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetByStatus liste les produits ayant le statut de stock donné.
func (uc *ProductUseCase) GetByStatus(status entity.StockStatus) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.FindByStatus(status)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetLowStock liste les produits à seuil atteint mais non épuisés. Les
// ruptures sont suivies par leur propre statut.
func (uc *ProductUseCase) GetLowStock() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.FindLowStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search recherche insensible à la casse et aux accents sur nom, description
// et catégorie.
func (uc *ProductUseCase) Search(query string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.Search(query)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// StockSummary agrège les comptes par statut.
func (uc *ProductUseCase) StockSummary() (dto.StockSummary, error) {
	total, err := uc.productRepo.Count()
	if err != nil {
		return dto.StockSummary{}, err
	}
	inStock, err := uc.productRepo.CountByStatus(entity.StatusInStock)
	if err != nil {
		return dto.StockSummary{}, err
	}
	lowStock, err := uc.productRepo.CountByStatus(entity.StatusLowStock)
	if err != nil {
		return dto.StockSummary{}, err
	}
	outOfStock, err := uc.productRepo.CountByStatus(entity.StatusOutOfStock)
	if err != nil {
		return dto.StockSummary{}, err
	}
	overstocked, err := uc.productRepo.CountByStatus(entity.StatusOverstocked)
	if err != nil {
		return dto.StockSummary{}, err
	}
	return dto.NewStockSummary(total, inStock, lowStock, outOfStock, overstocked), nil
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *dto.ToProductResponse(p))
	}
	return items
}
