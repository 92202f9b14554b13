// Package cli implémente l'interface en ligne de commande de BoraStock.
// Boucle lecture/exécution sur stdin, sorties formatées pour un terminal.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/babetech/borastock/internal/application/analytics"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/application/usecase"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/pkg/logger"
)

// command une commande du CLI. execute retourne faux pour quitter la boucle.
type command interface {
	execute(args []string) bool
	help() string
}

// Deps dépendances du CLI.
type Deps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
	// CurrentUser est attribué aux mouvements enregistrés depuis le CLI.
	CurrentUser entity.UserID
	// DefaultSupplier est utilisé par product create, qui ne demande pas de
	// fournisseur à l'utilisateur.
	DefaultSupplier entity.SupplierID
	Log             *logger.Logger
}

// CLI interface en ligne de commande.
type CLI struct {
	in       *bufio.Scanner
	out      io.Writer
	log      *logger.Logger
	commands map[string]command
}

// New construit le CLI sur les flux donnés.
func New(in io.Reader, out io.Writer, deps Deps) *CLI {
	c := &CLI{
		in:  bufio.NewScanner(in),
		out: out,
		log: deps.Log,
	}
	c.commands = map[string]command{
		"help":      &helpCommand{out: out},
		"exit":      &exitCommand{out: out},
		"product":   newProductCommand(c, deps.ProductUC, deps.CategoryUC, deps.DefaultSupplier),
		"supplier":  newSupplierCommand(c, deps.SupplierUC),
		"stock":     newStockCommand(c, deps.ProductUC),
		"movement":  newMovementCommand(c, deps.MovementUC, deps.CurrentUser),
		"dashboard": newDashboardCommand(c, deps.DashboardUC),
	}
	return c
}

// Start lance la boucle interactive. Retourne quand l'utilisateur quitte ou
// que l'entrée est fermée.
func (c *CLI) Start() {
	fmt.Fprintln(c.out, "🎯 Bienvenue dans BoraStock CLI!")
	fmt.Fprintln(c.out, "Tapez 'help' pour voir les commandes disponibles.")
	fmt.Fprintln(c.out, "Tapez 'exit' pour quitter.")
	fmt.Fprintln(c.out)

	for {
		fmt.Fprint(c.out, "borastock> ")
		line, ok := c.readLine()
		if !ok {
			break
		}
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		name := strings.ToLower(parts[0])
		args := parts[1:]

		cmd, found := c.commands[name]
		if !found {
			fmt.Fprintf(c.out, "❌ Commande inconnue: %s\n", name)
			fmt.Fprintln(c.out, "Tapez 'help' pour voir les commandes disponibles.")
			fmt.Fprintln(c.out)
			continue
		}
		if !cmd.execute(args) {
			break
		}
		fmt.Fprintln(c.out)
	}

	fmt.Fprintln(c.out, "👋 Au revoir!")
}

// readLine lit la prochaine ligne de l'entrée, faux si le flux est fermé.
func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// prompt affiche le libellé puis lit une ligne.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func shortID(id string) string {
	return truncate(id, 12) + "..."
}
