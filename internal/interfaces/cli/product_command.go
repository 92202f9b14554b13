package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
)

// productCommand commandes de gestion des produits.
type productCommand struct {
	cli             *CLI
	uc              *usecase.ProductUseCase
	categoryUC      *usecase.CategoryUseCase
	defaultSupplier entity.SupplierID
}

func newProductCommand(cli *CLI, uc *usecase.ProductUseCase, categoryUC *usecase.CategoryUseCase, defaultSupplier entity.SupplierID) *productCommand {
	return &productCommand{cli: cli, uc: uc, categoryUC: categoryUC, defaultSupplier: defaultSupplier}
}

func (p *productCommand) execute(args []string) bool {
	if len(args) == 0 {
		fmt.Fprintln(p.cli.out, "❌ Sous-commande manquante. Utilisez: product <list|create|show|search>")
		return true
	}
	switch strings.ToLower(args[0]) {
	case "list":
		p.list()
	case "create":
		p.create()
	case "show":
		p.show(args[1:])
	case "search":
		p.search(args[1:])
	default:
		fmt.Fprintf(p.cli.out, "❌ Sous-commande inconnue: %s\n", args[0])
	}
	return true
}

func (p *productCommand) help() string { return "Gestion des produits (list, create, show, search)" }

func (p *productCommand) list() {
	products, err := p.uc.GetAll()
	if err != nil {
		fmt.Fprintf(p.cli.out, "❌ Erreur: %s\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(p.cli.out, "📦 Aucun produit trouvé.")
		return
	}

	fmt.Fprintf(p.cli.out, "📦 Liste des produits (%d):\n\n", len(products))
	fmt.Fprintf(p.cli.out, "%-15s %-30s %-15s %-10s %-15s\n", "ID", "Nom", "Catégorie", "Stock", "Statut")
	fmt.Fprintln(p.cli.out, strings.Repeat("-", 85))

	for _, product := range products {
		var status string
		switch product.Status {
		case string(entity.StatusOutOfStock):
			status = "❌ Rupture"
		case string(entity.StatusLowStock):
			status = "⚠️ Faible"
		case string(entity.StatusOverstocked):
			status = "📈 Surstock"
		default:
			status = "✅ Normal"
		}
		fmt.Fprintf(p.cli.out, "%-15s %-30s %-15s %-10d %s\n",
			shortID(product.ID),
			truncate(product.Name, 28),
			truncate(product.CategoryName, 13),
			product.Quantity,
			status,
		)
	}
}

func (p *productCommand) create() {
	fmt.Fprintln(p.cli.out, "🆕 Création d'un nouveau produit")
	fmt.Fprintln(p.cli.out)

	name, ok := p.cli.prompt("Nom du produit: ")
	if !ok {
		return
	}
	description, ok := p.cli.prompt("Description (optionnel): ")
	if !ok {
		return
	}

	priceInput, ok := p.cli.prompt("Prix (EUR): ")
	if !ok {
		return
	}
	price, err := decimal.NewFromString(priceInput)
	if err != nil {
		fmt.Fprintln(p.cli.out, "❌ Prix invalide")
		return
	}

	quantity, ok := p.promptInt("Quantité initiale: ", "❌ Quantité invalide")
	if !ok {
		return
	}
	minThreshold, ok := p.promptInt("Seuil minimum: ", "❌ Seuil minimum invalide")
	if !ok {
		return
	}
	maxCapacity, ok := p.promptInt("Capacité maximale: ", "❌ Capacité maximale invalide")
	if !ok {
		return
	}

	// Catégorie et fournisseur par défaut, semés au démarrage.
	category, err := p.categoryUC.GetByName("Général")
	if err != nil {
		fmt.Fprintf(p.cli.out, "❌ Erreur lors de la création: %s\n", err)
		return
	}

	product, err := p.uc.Create(dto.CreateProductRequest{
		Name:            name,
		Description:     description,
		CategoryID:      category.ID,
		Price:           price,
		InitialQuantity: quantity,
		MinThreshold:    minThreshold,
		MaxCapacity:     maxCapacity,
		SupplierID:      p.defaultSupplier.String(),
	})
	if err != nil {
		fmt.Fprintf(p.cli.out, "❌ Erreur lors de la création: %s\n", err)
		return
	}

	fmt.Fprintln(p.cli.out, "✅ Produit créé avec succès!")
	fmt.Fprintf(p.cli.out, "   ID: %s\n", product.ID)
	fmt.Fprintf(p.cli.out, "   Nom: %s\n", product.Name)
	fmt.Fprintf(p.cli.out, "   Prix: %s %s\n", product.Price, product.Currency)
	fmt.Fprintf(p.cli.out, "   Stock: %d\n", product.Quantity)
}

func (p *productCommand) show(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(p.cli.out, "❌ ID du produit manquant")
		return
	}
	product, err := p.uc.Get(entity.ProductID(args[0]))
	if err != nil {
		fmt.Fprintf(p.cli.out, "❌ Produit non trouvé: %s\n", args[0])
		return
	}

	fmt.Fprintln(p.cli.out, "📦 Détails du produit:")
	fmt.Fprintln(p.cli.out)
	fmt.Fprintf(p.cli.out, "ID: %s\n", product.ID)
	fmt.Fprintf(p.cli.out, "Nom: %s\n", product.Name)
	desc := product.Description
	if desc == "" {
		desc = "Aucune"
	}
	fmt.Fprintf(p.cli.out, "Description: %s\n", desc)
	fmt.Fprintf(p.cli.out, "Catégorie: %s\n", product.CategoryName)
	fmt.Fprintf(p.cli.out, "Prix: %s %s\n", product.Price, product.Currency)
	fmt.Fprintf(p.cli.out, "Stock actuel: %d\n", product.Quantity)
	fmt.Fprintf(p.cli.out, "Seuil minimum: %d\n", product.MinThreshold)
	fmt.Fprintf(p.cli.out, "Capacité maximale: %d\n", product.MaxCapacity)
	fmt.Fprintf(p.cli.out, "Statut: %s\n", product.StatusLabel)
	fmt.Fprintf(p.cli.out, "Créé le: %s\n", product.CreatedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(p.cli.out, "Modifié le: %s\n", product.UpdatedAt.Format("02/01/2006 15:04"))
}

func (p *productCommand) search(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(p.cli.out, "❌ Terme de recherche manquant")
		return
	}
	query := strings.Join(args, " ")
	products, err := p.uc.Search(query)
	if err != nil {
		fmt.Fprintf(p.cli.out, "❌ Erreur: %s\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintf(p.cli.out, "🔍 Aucun produit trouvé pour: '%s'\n", query)
		return
	}

	fmt.Fprintf(p.cli.out, "🔍 Résultats de recherche pour '%s' (%d):\n\n", query, len(products))
	for _, product := range products {
		fmt.Fprintf(p.cli.out, "- %s (%s) - Stock: %d\n", product.Name, product.ID, product.Quantity)
	}
}

func (p *productCommand) promptInt(label, errMsg string) (int, bool) {
	input, ok := p.cli.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(p.cli.out, errMsg)
		return 0, false
	}
	return n, true
}
