package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
)

// SupplierHandler gère les requêtes HTTP pour Supplier (protégé).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construit le handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un fournisseur
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Données du fournisseur"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les fournisseurs
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool    false  "Seulement les actifs"
// @Param        q       query  string  false  "Recherche sur le nom"
// @Success      200  {object}  dto.ListResponse[dto.SupplierResponse]
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var (
		items []dto.SupplierResponse
		err   error
	)
	switch {
	case c.Query("q") != "":
		items, err = h.uc.Search(c.Query("q"))
	case c.QueryBool("active"):
		items, err = h.uc.GetActive()
	default:
		items, err = h.uc.GetAll()
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewListResponse(items))
}

// GetByID godoc
// @Summary      Obtenir un fournisseur par ID
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du fournisseur"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(entity.SupplierID(c.Params("id")))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour un fournisseur
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du fournisseur"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(entity.SupplierID(c.Params("id")), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Réactiver un fournisseur
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du fournisseur"
// @Success      200  {object}  dto.SupplierResponse
// @Router       /api/suppliers/{id}/activate [post]
func (h *SupplierHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(entity.SupplierID(c.Params("id")))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Désactiver un fournisseur sans le supprimer
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du fournisseur"
// @Success      200  {object}  dto.SupplierResponse
// @Router       /api/suppliers/{id}/deactivate [post]
func (h *SupplierHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(entity.SupplierID(c.Params("id")))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un fournisseur
// @Tags         suppliers
// @Security     Bearer
// @Param        id  path  string  true  "ID du fournisseur"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(entity.SupplierID(c.Params("id"))); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Résumé actifs/inactifs des fournisseurs
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierSummary
// @Router       /api/suppliers/summary [get]
func (h *SupplierHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
