package cli

import (
	"fmt"
	"strings"

	"github.com/babetech/borastock/internal/application/analytics"
	"github.com/babetech/borastock/internal/domain/entity"
)

// dashboardCommand affiche le tableau de bord.
type dashboardCommand struct {
	cli *CLI
	uc  *analytics.DashboardUseCase
}

func newDashboardCommand(cli *CLI, uc *analytics.DashboardUseCase) *dashboardCommand {
	return &dashboardCommand{cli: cli, uc: uc}
}

func (d *dashboardCommand) execute(args []string) bool {
	summary, err := d.uc.Summary(5)
	if err != nil {
		fmt.Fprintf(d.cli.out, "❌ Erreur: %s\n", err)
		return true
	}

	fmt.Fprintln(d.cli.out, "📊 Tableau de bord BoraStock")
	fmt.Fprintln(d.cli.out, strings.Repeat("=", 50))
	fmt.Fprintln(d.cli.out)

	fmt.Fprintln(d.cli.out, "📦 STOCKS")
	fmt.Fprintf(d.cli.out, "   Total produits: %d\n", summary.Stock.TotalProducts)
	fmt.Fprintf(d.cli.out, "   En stock: %d\n", summary.Stock.InStock)
	fmt.Fprintf(d.cli.out, "   Stock faible: %d\n", summary.Stock.LowStock)
	fmt.Fprintf(d.cli.out, "   Ruptures: %d\n", summary.Stock.OutOfStock)
	fmt.Fprintf(d.cli.out, "   Surstock: %d\n", summary.Stock.Overstocked)
	fmt.Fprintf(d.cli.out, "   Santé du stock: %.1f%%\n", summary.Stock.HealthyStockPercentage)
	fmt.Fprintln(d.cli.out)

	fmt.Fprintln(d.cli.out, "🏢 FOURNISSEURS")
	fmt.Fprintf(d.cli.out, "   Total: %d\n", summary.Suppliers.TotalSuppliers)
	fmt.Fprintf(d.cli.out, "   Actifs: %d\n", summary.Suppliers.ActiveSuppliers)
	fmt.Fprintf(d.cli.out, "   Inactifs: %d\n", summary.Suppliers.InactiveSuppliers)
	fmt.Fprintf(d.cli.out, "   Taux d'activité: %.1f%%\n", summary.Suppliers.ActivePercentage)
	fmt.Fprintln(d.cli.out)

	fmt.Fprintln(d.cli.out, "📈 MOUVEMENTS")
	fmt.Fprintf(d.cli.out, "   Total mouvements: %d\n", summary.Movements.TotalMovements)
	fmt.Fprintf(d.cli.out, "   Entrées: %d\n", summary.Movements.Entries)
	fmt.Fprintf(d.cli.out, "   Sorties: %d\n", summary.Movements.Exits)
	fmt.Fprintf(d.cli.out, "   Mouvement net: %d\n", summary.Movements.NetMovement)
	fmt.Fprintln(d.cli.out)

	if len(summary.LowStockAlerts) > 0 {
		fmt.Fprintln(d.cli.out, "⚠️  ALERTES STOCK FAIBLE")
		shown := summary.LowStockAlerts
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, product := range shown {
			fmt.Fprintf(d.cli.out, "   - %s: %d unités\n", product.Name, product.Quantity)
		}
		if rest := len(summary.LowStockAlerts) - 5; rest > 0 {
			fmt.Fprintf(d.cli.out, "   ... et %d autres\n", rest)
		}
		fmt.Fprintln(d.cli.out)
	}

	if len(summary.RecentMovements) > 0 {
		fmt.Fprintln(d.cli.out, "🕒 MOUVEMENTS RÉCENTS")
		for _, movement := range summary.RecentMovements {
			movType := "📥 Entrée"
			if movement.Type == string(entity.MovementExit) {
				movType = "📤 Sortie"
			}
			fmt.Fprintf(d.cli.out, "   %s: %d unités - %s\n", movType, movement.Quantity, movement.Reason)
		}
		fmt.Fprintln(d.cli.out)
	}

	return true
}

func (d *dashboardCommand) help() string {
	return "Affiche le tableau de bord avec les statistiques principales"
}
