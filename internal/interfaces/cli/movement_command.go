package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/application/inventory"
	"github.com/babetech/borastock/internal/domain/entity"
)

// movementCommand commandes d'enregistrement et de consultation des
// mouvements de stock.
type movementCommand struct {
	cli         *CLI
	uc          *inventory.MovementUseCase
	currentUser entity.UserID
}

func newMovementCommand(cli *CLI, uc *inventory.MovementUseCase, currentUser entity.UserID) *movementCommand {
	return &movementCommand{cli: cli, uc: uc, currentUser: currentUser}
}

func (m *movementCommand) execute(args []string) bool {
	if len(args) == 0 {
		fmt.Fprintln(m.cli.out, "❌ Sous-commande manquante. Utilisez: movement <list|entry|exit|summary>")
		return true
	}
	switch strings.ToLower(args[0]) {
	case "list":
		m.list()
	case "entry":
		m.record(entity.MovementEntry)
	case "exit":
		m.record(entity.MovementExit)
	case "summary":
		m.summary()
	default:
		fmt.Fprintf(m.cli.out, "❌ Sous-commande inconnue: %s\n", args[0])
	}
	return true
}

func (m *movementCommand) help() string {
	return "Gestion des mouvements de stock (list, entry, exit, summary)"
}

func (m *movementCommand) list() {
	movements, err := m.uc.GetRecent(20)
	if err != nil {
		fmt.Fprintf(m.cli.out, "❌ Erreur: %s\n", err)
		return
	}
	if len(movements) == 0 {
		fmt.Fprintln(m.cli.out, "📈 Aucun mouvement trouvé.")
		return
	}

	fmt.Fprintf(m.cli.out, "📈 Mouvements récents (%d):\n\n", len(movements))
	fmt.Fprintf(m.cli.out, "%-15s %-8s %-12s %-30s\n", "Type", "Qté", "Produit", "Raison")
	fmt.Fprintln(m.cli.out, strings.Repeat("-", 70))

	for _, movement := range movements {
		movType := "📥 Entrée"
		if movement.Type == string(entity.MovementExit) {
			movType = "📤 Sortie"
		}
		fmt.Fprintf(m.cli.out, "%-15s %-8d %-12s %-30s\n",
			movType,
			movement.Quantity,
			truncate(movement.ProductID, 8)+"...",
			truncate(movement.Reason, 28),
		)
	}
}

func (m *movementCommand) record(movType entity.MovementType) {
	if movType == entity.MovementEntry {
		fmt.Fprintln(m.cli.out, "📥 Enregistrement d'une entrée de stock")
	} else {
		fmt.Fprintln(m.cli.out, "📤 Enregistrement d'une sortie de stock")
	}
	fmt.Fprintln(m.cli.out)

	productID, ok := m.cli.prompt("ID du produit: ")
	if !ok {
		return
	}
	quantityInput, ok := m.cli.prompt("Quantité: ")
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(quantityInput)
	if err != nil {
		fmt.Fprintln(m.cli.out, "❌ Quantité invalide")
		return
	}
	reason, ok := m.cli.prompt("Raison: ")
	if !ok {
		return
	}
	reference, ok := m.cli.prompt("Référence (optionnel): ")
	if !ok {
		return
	}

	in := dto.RecordMovementRequest{
		ProductID: productID,
		Quantity:  quantity,
		Reason:    reason,
		Reference: reference,
	}

	var movement *dto.MovementResponse
	if movType == entity.MovementEntry {
		movement, err = m.uc.RecordEntry(context.Background(), in, m.currentUser)
	} else {
		movement, err = m.uc.RecordExit(context.Background(), in, m.currentUser)
	}
	if err != nil {
		fmt.Fprintf(m.cli.out, "❌ Erreur lors de l'enregistrement: %s\n", err)
		return
	}

	if movType == entity.MovementEntry {
		fmt.Fprintln(m.cli.out, "✅ Entrée enregistrée avec succès!")
	} else {
		fmt.Fprintln(m.cli.out, "✅ Sortie enregistrée avec succès!")
	}
	fmt.Fprintf(m.cli.out, "   ID: %s\n", movement.ID)
	fmt.Fprintf(m.cli.out, "   Quantité: %d\n", movement.Quantity)
	fmt.Fprintf(m.cli.out, "   Raison: %s\n", movement.Reason)
	fmt.Fprintf(m.cli.out, "   Horodatage: %s\n", movement.Timestamp.Format("02/01/2006 15:04:05"))
}

func (m *movementCommand) summary() {
	summary, err := m.uc.Summary()
	if err != nil {
		fmt.Fprintf(m.cli.out, "❌ Erreur: %s\n", err)
		return
	}

	fmt.Fprintln(m.cli.out, "📈 Résumé des mouvements")
	fmt.Fprintln(m.cli.out, strings.Repeat("=", 30))
	fmt.Fprintln(m.cli.out)
	fmt.Fprintf(m.cli.out, "Total mouvements: %d\n", summary.TotalMovements)
	fmt.Fprintf(m.cli.out, "Entrées: %d\n", summary.Entries)
	fmt.Fprintf(m.cli.out, "Sorties: %d\n", summary.Exits)
	fmt.Fprintf(m.cli.out, "Mouvement net: %d\n", summary.NetMovement)
}
