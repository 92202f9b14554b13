package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/application/usecase"
)

// DashboardUseCase assemble le tableau de bord : résumés stocks, fournisseurs
// et mouvements, plus les alertes de stock faible et les derniers mouvements.
type DashboardUseCase struct {
	productUC  *usecase.ProductUseCase
	supplierUC *usecase.SupplierUseCase
	movementUC *inventory.MovementUseCase
	reportGen  StockReportGenerator
}

// NewDashboardUseCase construit le cas d'usage. reportGen peut être nil si le
// rapport PDF n'est pas exposé (CLI).
func NewDashboardUseCase(
	productUC *usecase.ProductUseCase,
	supplierUC *usecase.SupplierUseCase,
	movementUC *inventory.MovementUseCase,
	reportGen StockReportGenerator,
) *DashboardUseCase {
	return &DashboardUseCase{
		productUC:  productUC,
		supplierUC: supplierUC,
		movementUC: movementUC,
		reportGen:  reportGen,
	}
}

// Summary calcule le tableau de bord complet. recentLimit borne le nombre de
// mouvements récents retournés (5 par défaut).
func (uc *DashboardUseCase) Summary(recentLimit int) (*dto.DashboardSummary, error) {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	stock, err := uc.productUC.StockSummary()
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.supplierUC.Summary()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementUC.Summary()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.productUC.GetLowStock()
	if err != nil {
		return nil, err
	}
	recent, err := uc.movementUC.GetRecent(recentLimit)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummary{
		Stock:           stock,
		Suppliers:       suppliers,
		Movements:       movements,
		LowStockAlerts:  lowStock,
		RecentMovements: recent,
	}, nil
}

// StockReportPDF génère le rapport de stock PDF à partir du tableau de bord
// courant.
func (uc *DashboardUseCase) StockReportPDF(ctx context.Context, recentLimit int) ([]byte, error) {
	if uc.reportGen == nil {
		return nil, fmt.Errorf("générateur de rapport non configuré")
	}
	summary, err := uc.Summary(recentLimit)
	if err != nil {
		return nil, err
	}
	return uc.reportGen.GenerateStockReport(ctx, summary, time.Now())
}
