package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
)

// ProductHandler gère les requêtes HTTP pour Product (protégé).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construit le handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un produit
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Données du produit"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un produit par ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(entity.ProductID(c.Params("id")))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les produits
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrer par catégorie"
// @Param        supplier  query  string  false  "Filtrer par fournisseur"
// @Param        status    query  string  false  "Filtrer par état de stock"
// @Param        q         query  string  false  "Recherche sur nom et description"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var (
		items []dto.ProductResponse
		err   error
	)
	switch {
	case c.Query("q") != "":
		items, err = h.uc.Search(c.Query("q"))
	case c.Query("category") != "":
		items, err = h.uc.GetByCategory(entity.CategoryID(c.Query("category")))
	case c.Query("supplier") != "":
		items, err = h.uc.GetBySupplier(entity.SupplierID(c.Query("supplier")))
	case c.Query("status") != "":
		status, perr := entity.ParseStockStatus(c.Query("status"))
		if perr != nil {
			return fail(c, perr)
		}
		items, err = h.uc.GetByStatus(status)
	default:
		items, err = h.uc.GetAll()
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewListResponse(items))
}

// Update godoc
// @Summary      Mettre à jour un produit
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du produit"
// @Param        body  body  dto.UpdateProductRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(entity.ProductID(c.Params("id")), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Remplacer la quantité en stock (correction d'inventaire)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du produit"
// @Param        body  body  dto.UpdateStockRequest  true  "Nouvelle quantité"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [put]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStock(entity.ProductID(c.Params("id")), in.NewQuantity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un produit
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID du produit"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(entity.ProductID(c.Params("id"))); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock godoc
// @Summary      Lister les produits en stock faible
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/stock/low [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.GetLowStock()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewListResponse(items))
}

// StockSummary godoc
// @Summary      Résumé de l'état du stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummary
// @Router       /api/stock/summary [get]
func (h *ProductHandler) StockSummary(c *fiber.Ctx) error {
	out, err := h.uc.StockSummary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
