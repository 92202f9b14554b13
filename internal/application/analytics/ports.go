package analytics

import (
	"context"
	"time"

	"github.com/babetech/borastock/internal/application/dto"
)

// StockReportGenerator produit le rapport de stock au format PDF.
// Implémenté côté infrastructure (Maroto).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, summary *dto.DashboardSummary, generatedAt time.Time) ([]byte, error)
}
