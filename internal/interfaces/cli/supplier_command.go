package cli

import (
	"fmt"
	"strings"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
)

// supplierCommand commandes de gestion des fournisseurs.
type supplierCommand struct {
	cli *CLI
	uc  *usecase.SupplierUseCase
}

func newSupplierCommand(cli *CLI, uc *usecase.SupplierUseCase) *supplierCommand {
	return &supplierCommand{cli: cli, uc: uc}
}

func (s *supplierCommand) execute(args []string) bool {
	if len(args) == 0 {
		fmt.Fprintln(s.cli.out, "❌ Sous-commande manquante. Utilisez: supplier <list|create|show|search>")
		return true
	}
	switch strings.ToLower(args[0]) {
	case "list":
		s.list()
	case "create":
		s.create()
	case "show":
		s.show(args[1:])
	case "search":
		s.search(args[1:])
	default:
		fmt.Fprintf(s.cli.out, "❌ Sous-commande inconnue: %s\n", args[0])
	}
	return true
}

func (s *supplierCommand) help() string {
	return "Gestion des fournisseurs (list, create, show, search)"
}

func (s *supplierCommand) list() {
	suppliers, err := s.uc.GetAll()
	if err != nil {
		fmt.Fprintf(s.cli.out, "❌ Erreur: %s\n", err)
		return
	}
	if len(suppliers) == 0 {
		fmt.Fprintln(s.cli.out, "🏢 Aucun fournisseur trouvé.")
		return
	}

	fmt.Fprintf(s.cli.out, "🏢 Liste des fournisseurs (%d):\n\n", len(suppliers))
	fmt.Fprintf(s.cli.out, "%-15s %-30s %-25s %-10s\n", "ID", "Nom", "Email", "Statut")
	fmt.Fprintln(s.cli.out, strings.Repeat("-", 80))

	for _, supplier := range suppliers {
		status := "✅ Actif"
		if !supplier.Active {
			status = "❌ Inactif"
		}
		email := supplier.Email
		if email == "" {
			email = "N/A"
		}
		fmt.Fprintf(s.cli.out, "%-15s %-30s %-25s %s\n",
			shortID(supplier.ID),
			truncate(supplier.Name, 28),
			truncate(email, 23),
			status,
		)
	}
}

func (s *supplierCommand) create() {
	fmt.Fprintln(s.cli.out, "🆕 Création d'un nouveau fournisseur")
	fmt.Fprintln(s.cli.out)

	name, ok := s.cli.prompt("Nom du fournisseur: ")
	if !ok {
		return
	}
	email, ok := s.cli.prompt("Email: ")
	if !ok {
		return
	}
	phone, ok := s.cli.prompt("Téléphone: ")
	if !ok {
		return
	}
	website, ok := s.cli.prompt("Site web: ")
	if !ok {
		return
	}

	if strings.TrimSpace(email) == "" && strings.TrimSpace(phone) == "" {
		fmt.Fprintln(s.cli.out, "❌ Au moins un moyen de contact (email ou téléphone) est requis")
		return
	}

	in := dto.CreateSupplierRequest{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Website: website,
	}

	// Adresse optionnelle
	answer, ok := s.cli.prompt("Ajouter une adresse? (o/N): ")
	if !ok {
		return
	}
	if strings.ToLower(answer) == "o" {
		street, ok := s.cli.prompt("Rue: ")
		if !ok {
			return
		}
		city, ok := s.cli.prompt("Ville: ")
		if !ok {
			return
		}
		postalCode, ok := s.cli.prompt("Code postal: ")
		if !ok {
			return
		}
		country, ok := s.cli.prompt("Pays: ")
		if !ok {
			return
		}
		in.Address = &dto.AddressDTO{
			Street:     street,
			City:       city,
			PostalCode: postalCode,
			Country:    country,
		}
	}

	supplier, err := s.uc.Create(in)
	if err != nil {
		fmt.Fprintf(s.cli.out, "❌ Erreur lors de la création: %s\n", err)
		return
	}

	fmt.Fprintln(s.cli.out, "✅ Fournisseur créé avec succès!")
	fmt.Fprintf(s.cli.out, "   ID: %s\n", supplier.ID)
	fmt.Fprintf(s.cli.out, "   Nom: %s\n", supplier.Name)
	fmt.Fprintf(s.cli.out, "   Email: %s\n", orNA(supplier.Email))
	fmt.Fprintf(s.cli.out, "   Téléphone: %s\n", orNA(supplier.Phone))
}

func (s *supplierCommand) show(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.cli.out, "❌ ID du fournisseur manquant")
		return
	}
	supplier, err := s.uc.Get(entity.SupplierID(args[0]))
	if err != nil {
		fmt.Fprintf(s.cli.out, "❌ Fournisseur non trouvé: %s\n", args[0])
		return
	}

	fmt.Fprintln(s.cli.out, "🏢 Détails du fournisseur:")
	fmt.Fprintln(s.cli.out)
	fmt.Fprintf(s.cli.out, "ID: %s\n", supplier.ID)
	fmt.Fprintf(s.cli.out, "Nom: %s\n", supplier.Name)
	fmt.Fprintf(s.cli.out, "Email: %s\n", orNA(supplier.Email))
	fmt.Fprintf(s.cli.out, "Téléphone: %s\n", orNA(supplier.Phone))
	fmt.Fprintf(s.cli.out, "Site web: %s\n", orNA(supplier.Website))
	status := "Actif"
	if !supplier.Active {
		status = "Inactif"
	}
	fmt.Fprintf(s.cli.out, "Statut: %s\n", status)
	if supplier.Address != nil {
		fmt.Fprintf(s.cli.out, "Adresse: %s, %s %s, %s\n",
			supplier.Address.Street, supplier.Address.City,
			supplier.Address.PostalCode, supplier.Address.Country)
	}
	fmt.Fprintf(s.cli.out, "Créé le: %s\n", supplier.CreatedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(s.cli.out, "Modifié le: %s\n", supplier.UpdatedAt.Format("02/01/2006 15:04"))
}

func (s *supplierCommand) search(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.cli.out, "❌ Terme de recherche manquant")
		return
	}
	query := strings.Join(args, " ")
	suppliers, err := s.uc.Search(query)
	if err != nil {
		fmt.Fprintf(s.cli.out, "❌ Erreur: %s\n", err)
		return
	}
	if len(suppliers) == 0 {
		fmt.Fprintf(s.cli.out, "🔍 Aucun fournisseur trouvé pour: '%s'\n", query)
		return
	}

	fmt.Fprintf(s.cli.out, "🔍 Résultats de recherche pour '%s' (%d):\n\n", query, len(suppliers))
	for _, supplier := range suppliers {
		status := "✅"
		if !supplier.Active {
			status = "❌"
		}
		fmt.Fprintf(s.cli.out, "%s %s (%s)\n", status, supplier.Name, supplier.ID)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
