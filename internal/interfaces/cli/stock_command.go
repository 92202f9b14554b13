package cli

import (
	"fmt"
	"strings"

	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
)

// stockCommand commandes de consultation des stocks.
type stockCommand struct {
	cli *CLI
	uc  *usecase.ProductUseCase
}

func newStockCommand(cli *CLI, uc *usecase.ProductUseCase) *stockCommand {
	return &stockCommand{cli: cli, uc: uc}
}

func (s *stockCommand) execute(args []string) bool {
	if len(args) == 0 {
		fmt.Fprintln(s.cli.out, "❌ Sous-commande manquante. Utilisez: stock <summary|low|status>")
		return true
	}
	switch strings.ToLower(args[0]) {
	case "summary":
		s.summary()
	case "low":
		s.low()
	case "status":
		s.byStatus(args[1:])
	default:
		fmt.Fprintf(s.cli.out, "❌ Sous-commande inconnue: %s\n", args[0])
	}
	return true
}

func (s *stockCommand) help() string { return "Gestion des stocks (summary, low, status)" }

func (s *stockCommand) summary() {
	summary, err := s.uc.StockSummary()
	if err != nil {
		fmt.Fprintf(s.cli.out, "❌ Erreur: %s\n", err)
		return
	}

	fmt.Fprintln(s.cli.out, "📊 Résumé des stocks")
	fmt.Fprintln(s.cli.out, strings.Repeat("=", 30))
	fmt.Fprintln(s.cli.out)
	fmt.Fprintf(s.cli.out, "Total produits: %d\n", summary.TotalProducts)
	fmt.Fprintf(s.cli.out, "En stock: %d\n", summary.InStock)
	fmt.Fprintf(s.cli.out, "Stock faible: %d\n", summary.LowStock)
	fmt.Fprintf(s.cli.out, "Ruptures: %d\n", summary.OutOfStock)
	fmt.Fprintf(s.cli.out, "Surstock: %d\n", summary.Overstocked)
	fmt.Fprintln(s.cli.out)
	fmt.Fprintf(s.cli.out, "Santé du stock: %.1f%%\n", summary.HealthyStockPercentage)

	// Graphique simple en ASCII
	if summary.TotalProducts > 0 {
		fmt.Fprintln(s.cli.out)
		fmt.Fprintln(s.cli.out, "Répartition:")
		s.bar("En stock:    ", summary.InStock, summary.TotalProducts, "█")
		s.bar("Stock faible:", summary.LowStock, summary.TotalProducts, "▓")
		s.bar("Ruptures:    ", summary.OutOfStock, summary.TotalProducts, "░")
	}
}

func (s *stockCommand) bar(label string, count, total int64, glyph string) {
	width := int(count * 20 / total)
	fmt.Fprintf(s.cli.out, "%s[%s%s] %d\n",
		label, strings.Repeat(glyph, width), strings.Repeat(" ", 20-width), count)
}

func (s *stockCommand) low() {
	products, err := s.uc.GetLowStock()
	if err != nil {
		fmt.Fprintf(s.cli.out, "❌ Erreur: %s\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(s.cli.out, "✅ Aucun produit en stock faible!")
		return
	}

	fmt.Fprintf(s.cli.out, "⚠️  Produits en stock faible (%d):\n\n", len(products))
	fmt.Fprintf(s.cli.out, "%-30s %-10s %-10s %-10s\n", "Nom", "Stock", "Min", "Max")
	fmt.Fprintln(s.cli.out, strings.Repeat("-", 60))

	for _, product := range products {
		fmt.Fprintf(s.cli.out, "%-30s %-10d %-10d %-10d\n",
			truncate(product.Name, 28),
			product.Quantity,
			product.MinThreshold,
			product.MaxCapacity,
		)
	}
}

func (s *stockCommand) byStatus(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.cli.out, "❌ Statut manquant. Utilisez: in_stock, low_stock, out_of_stock, overstocked")
		return
	}
	status, err := entity.ParseStockStatus(args[0])
	if err != nil {
		fmt.Fprintf(s.cli.out, "❌ Statut invalide: %s\n", args[0])
		return
	}

	products, err := s.uc.GetByStatus(status)
	if err != nil {
		fmt.Fprintf(s.cli.out, "❌ Erreur: %s\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintf(s.cli.out, "📦 Aucun produit avec le statut: %s\n", status.Label())
		return
	}

	fmt.Fprintf(s.cli.out, "📦 Produits avec le statut '%s' (%d):\n\n", status.Label(), len(products))
	fmt.Fprintf(s.cli.out, "%-30s %-10s %-15s\n", "Nom", "Stock", "Prix")
	fmt.Fprintln(s.cli.out, strings.Repeat("-", 55))

	for _, product := range products {
		fmt.Fprintf(s.cli.out, "%-30s %-10d %s %s\n",
			truncate(product.Name, 28),
			product.Quantity,
			product.Price,
			product.Currency,
		)
	}
}
