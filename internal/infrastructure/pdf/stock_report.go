// Package pdf génère le rapport de stock avec Maroto v2.
//
// Layout de la page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER : BoraStock + date de génération                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SYNTHÈSE : produits / fournisseurs / mouvements             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE : alertes stock faible (produit, qté, seuil, état)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE : derniers mouvements (date, type, qté, raison)       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/babetech/borastock/internal/application/analytics"
	"github.com/babetech/borastock/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 93, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ analytics.StockReportGenerator = (*StockReportGenerator)(nil)

// StockReportGenerator implémente analytics.StockReportGenerator avec Maroto v2.
type StockReportGenerator struct{}

// NewStockReportGenerator construit le générateur.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// GenerateStockReport génère le PDF et retourne ses octets.
func (g *StockReportGenerator) GenerateStockReport(
	_ context.Context,
	summary *dto.DashboardSummary,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport de stock", true).
		WithAuthor("BoraStock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("Alertes de stock faible"))
	m.AddRows(alertHeaderRow())
	for _, r := range alertRows(summary.LowStockAlerts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("Derniers mouvements"))
	m.AddRows(movementHeaderRow())
	for _, r := range movementRows(summary.RecentMovements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow : titre (gauche) et date de génération (droite).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("BoraStock", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Rapport de stock", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Généré le", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRows : trois lignes de synthèse produits / fournisseurs / mouvements.
func summaryRows(s *dto.DashboardSummary) []core.Row {
	return []core.Row{
		summaryLine("Produits",
			fmt.Sprintf("%d au total, %d en stock, %d faibles, %d épuisés, %d en surstock (%.1f%% sains)",
				s.Stock.TotalProducts, s.Stock.InStock, s.Stock.LowStock,
				s.Stock.OutOfStock, s.Stock.Overstocked, s.Stock.HealthyStockPercentage)),
		summaryLine("Fournisseurs",
			fmt.Sprintf("%d au total, %d actifs (%.1f%%)",
				s.Suppliers.TotalSuppliers, s.Suppliers.ActiveSuppliers, s.Suppliers.ActivePercentage)),
		summaryLine("Mouvements",
			fmt.Sprintf("%d au total, %d entrées, %d sorties, net %+d",
				s.Movements.TotalMovements, s.Movements.Entries, s.Movements.Exits, s.Movements.NetMovement)),
	}
}

func summaryLine(label, value string) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(9).Add(text.New(value, props.Text{Size: 9})),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
		})),
	)
}

func alertHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	return row.New(6).Add(
		col.New(5).Add(text.New("Produit", header)),
		col.New(2).Add(text.New("Quantité", header)),
		col.New(2).Add(text.New("Seuil min.", header)),
		col.New(3).Add(text.New("État", header)),
	)
}

func alertRows(alerts []dto.ProductResponse) []core.Row {
	if len(alerts) == 0 {
		return []core.Row{row.New(6).Add(
			col.New(12).Add(text.New("Aucune alerte.", props.Text{Size: 9, Color: colorGray})),
		)}
	}
	rows := make([]core.Row, 0, len(alerts))
	for _, p := range alerts {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(p.Name, props.Text{Size: 9})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{Size: 9})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.MinThreshold), props.Text{Size: 9})),
			col.New(3).Add(text.New(p.StatusLabel, props.Text{Size: 9, Color: colorAlert})),
		))
	}
	return rows
}

func movementHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	return row.New(6).Add(
		col.New(3).Add(text.New("Date", header)),
		col.New(2).Add(text.New("Type", header)),
		col.New(2).Add(text.New("Quantité", header)),
		col.New(5).Add(text.New("Raison", header)),
	)
}

func movementRows(movements []dto.MovementResponse) []core.Row {
	if len(movements) == 0 {
		return []core.Row{row.New(6).Add(
			col.New(12).Add(text.New("Aucun mouvement.", props.Text{Size: 9, Color: colorGray})),
		)}
	}
	rows := make([]core.Row, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(m.Timestamp.Format("02/01/2006 15:04"), props.Text{Size: 9})),
			col.New(2).Add(text.New(m.TypeLabel, props.Text{Size: 9})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", m.Quantity), props.Text{Size: 9})),
			col.New(5).Add(text.New(m.Reason, props.Text{Size: 9})),
		))
	}
	return rows
}
