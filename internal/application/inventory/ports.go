package inventory

import (
	"context"

	"github.com/babetech/borastock/internal/domain/repository"
)

// TxRunner exécute une fonction dans une unité de travail atomique, en passant
// des repositories liés à cette unité. L'enregistrement d'un mouvement et la
// mise à jour du stock produit sont soit tous deux appliqués, soit aucun :
// la course « deux sorties concurrentes passent le contrôle de stock sur des
// lectures périmées » du système historique est fermée ici.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
