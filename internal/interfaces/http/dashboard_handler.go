package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/babetech/borastock/internal/application/analytics"
)

// DashboardHandler gère le tableau de bord et le rapport PDF (protégé).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Tableau de bord complet
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        recent  query  int  false  "Nombre de mouvements récents"  default(5)
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.QueryInt("recent", 5))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// StockReport godoc
// @Summary      Rapport de stock au format PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/dashboard/report [get]
func (h *DashboardHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.StockReportPDF(c.UserContext(), c.QueryInt("recent", 10))
	if err != nil {
		return fail(c, err)
	}
	filename := fmt.Sprintf("rapport-stock-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
