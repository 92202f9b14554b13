package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
)

// MovementHandler gère les requêtes HTTP pour les mouvements de stock
// (protégé). performed_by vient du token, jamais du body.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construit le handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RecordEntry godoc
// @Summary      Enregistrer une entrée de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Données du mouvement"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/entries [post]
func (h *MovementHandler) RecordEntry(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordEntry(c.UserContext(), in, entity.UserID(GetUserID(c)))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordExit godoc
// @Summary      Enregistrer une sortie de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Données du mouvement"
// @Success      201   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuffisant"
// @Router       /api/movements/exits [post]
func (h *MovementHandler) RecordExit(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordExit(c.UserContext(), in, entity.UserID(GetUserID(c)))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les mouvements (du plus récent au plus ancien)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  false  "Filtrer par produit"
// @Param        type     query  string  false  "ENTRY ou EXIT"
// @Param        user     query  string  false  "Filtrer par utilisateur"
// @Param        from     query  string  false  "Début de période (RFC 3339)"
// @Param        to       query  string  false  "Fin de période (RFC 3339)"
// @Param        recent   query  int     false  "Limiter aux N plus récents"
// @Success      200  {object}  dto.ListResponse[dto.MovementResponse]
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var (
		items []dto.MovementResponse
		err   error
	)
	switch {
	case c.Query("product") != "":
		items, err = h.uc.GetByProduct(entity.ProductID(c.Query("product")))
	case c.Query("type") != "":
		movType, perr := entity.ParseMovementType(c.Query("type"))
		if perr != nil {
			return fail(c, perr)
		}
		items, err = h.uc.GetByType(movType)
	case c.Query("user") != "":
		items, err = h.uc.GetByUser(entity.UserID(c.Query("user")))
	case c.Query("from") != "" || c.Query("to") != "":
		start, end, perr := parseDateRange(c.Query("from"), c.Query("to"))
		if perr != nil {
			return fail(c, perr)
		}
		items, err = h.uc.GetByDateRange(start, end)
	case c.Query("recent") != "":
		items, err = h.uc.GetRecent(c.QueryInt("recent", 50))
	default:
		items, err = h.uc.GetAll()
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewListResponse(items))
}

// GetByID godoc
// @Summary      Obtenir un mouvement par ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du mouvement"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(entity.MovementID(c.Params("id")))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Résumé des mouvements (entrées, sorties, net)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Début de période (RFC 3339)"
// @Param        to    query  string  false  "Fin de période (RFC 3339)"
// @Success      200  {object}  dto.MovementSummary
// @Router       /api/movements/summary [get]
func (h *MovementHandler) Summary(c *fiber.Ctx) error {
	if c.Query("from") != "" || c.Query("to") != "" {
		start, end, perr := parseDateRange(c.Query("from"), c.Query("to"))
		if perr != nil {
			return fail(c, perr)
		}
		out, err := h.uc.SummaryByDateRange(start, end)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Summary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// parseDateRange lit une période RFC 3339. Bornes absentes remplacées par
// l'époque Unix et l'instant courant.
func parseDateRange(from, to string) (time.Time, time.Time, error) {
	start := time.Unix(0, 0)
	end := time.Now()
	if from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return start, end, domain.Invalidf("Date de début invalide: %s", from)
		}
		start = t
	}
	if to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return start, end, domain.Invalidf("Date de fin invalide: %s", to)
		}
		end = t
	}
	return start, end, nil
}
