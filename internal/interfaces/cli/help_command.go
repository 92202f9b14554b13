package cli

import (
	"fmt"
	"io"
)

// helpCommand affiche l'aide.
type helpCommand struct {
	out io.Writer
}

func (h *helpCommand) execute(args []string) bool {
	fmt.Fprintln(h.out, "📚 Commandes disponibles:")
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "  help                    - Affiche cette aide")
	fmt.Fprintln(h.out, "  dashboard               - Affiche le tableau de bord")
	fmt.Fprintln(h.out, "  product list            - Liste tous les produits")
	fmt.Fprintln(h.out, "  product create          - Crée un nouveau produit")
	fmt.Fprintln(h.out, "  product show <id>       - Affiche les détails d'un produit")
	fmt.Fprintln(h.out, "  product search <terme>  - Recherche des produits")
	fmt.Fprintln(h.out, "  supplier list           - Liste tous les fournisseurs")
	fmt.Fprintln(h.out, "  supplier create         - Crée un nouveau fournisseur")
	fmt.Fprintln(h.out, "  supplier show <id>      - Affiche les détails d'un fournisseur")
	fmt.Fprintln(h.out, "  supplier search <terme> - Recherche des fournisseurs")
	fmt.Fprintln(h.out, "  stock summary           - Affiche le résumé des stocks")
	fmt.Fprintln(h.out, "  stock low               - Affiche les produits en stock faible")
	fmt.Fprintln(h.out, "  stock status <statut>   - Liste les produits par statut")
	fmt.Fprintln(h.out, "  movement list           - Liste les mouvements récents")
	fmt.Fprintln(h.out, "  movement entry          - Enregistre une entrée de stock")
	fmt.Fprintln(h.out, "  movement exit           - Enregistre une sortie de stock")
	fmt.Fprintln(h.out, "  movement summary        - Affiche le résumé des mouvements")
	fmt.Fprintln(h.out, "  exit                    - Quitte l'application")
	fmt.Fprintln(h.out)
	return true
}

func (h *helpCommand) help() string { return "Affiche la liste des commandes disponibles" }

// exitCommand quitte l'application.
type exitCommand struct {
	out io.Writer
}

func (e *exitCommand) execute(args []string) bool {
	fmt.Fprintln(e.out, "🛑 Fermeture de l'application...")
	return false
}

func (e *exitCommand) help() string { return "Quitte l'application" }
