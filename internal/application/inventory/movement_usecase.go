package inventory

import (
	"context"
	"time"

	"github.com/babetech/borastock/internal/application/dto"
	"github.com/babetech/borastock/internal/domain"
	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

// MovementUseCase enregistre les entrées/sorties de stock et expose les
// lectures sur le journal des mouvements. Les écritures passent par le
// TxRunner ; l'enregistrement d'un mouvement est la seule voie de modification
// de la quantité en stock en fonctionnement normal.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewMovementUseCase construit le cas d'usage.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		productRepo:  productRepo,
	}
}

// RecordEntry enregistre une entrée : persiste le mouvement ENTRY puis
// augmente la quantité du produit, dans la même unité de travail.
func (uc *MovementUseCase) RecordEntry(ctx context.Context, in dto.RecordMovementRequest, performedBy entity.UserID) (*dto.MovementResponse, error) {
	return uc.record(ctx, entity.MovementEntry, in, performedBy)
}

// RecordExit enregistre une sortie : vérifie que le stock disponible couvre la
// quantité demandée, persiste le mouvement EXIT puis diminue la quantité.
func (uc *MovementUseCase) RecordExit(ctx context.Context, in dto.RecordMovementRequest, performedBy entity.UserID) (*dto.MovementResponse, error) {
	return uc.record(ctx, entity.MovementExit, in, performedBy)
}

func (uc *MovementUseCase) record(ctx context.Context, movType entity.MovementType, in dto.RecordMovementRequest, performedBy entity.UserID) (*dto.MovementResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.Invalid("La quantité doit être positive")
	}

	var saved *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Verrouille la ligne produit pour la durée de la transaction :
		// le contrôle de stock et la mise à jour voient le même état.
		product, err := productRepo.FindByIDForUpdate(entity.ProductID(in.ProductID))
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		var newStock entity.Stock
		switch movType {
		case entity.MovementEntry:
			newStock, err = product.Stock.AddQuantity(in.Quantity)
		case entity.MovementExit:
			if product.Stock.CurrentQuantity < in.Quantity {
				return domain.InsufficientStock(product.Stock.CurrentQuantity, in.Quantity)
			}
			newStock, err = product.Stock.RemoveQuantity(in.Quantity)
		}
		if err != nil {
			return err
		}

		now := time.Now()
		movement, err := entity.NewStockMovement(
			entity.NewMovementID(), product.ID, movType,
			in.Quantity, in.Reason, performedBy, now, in.Reference,
		)
		if err != nil {
			return err
		}
		if err := movementRepo.Save(movement); err != nil {
			return err
		}

		updated := *product
		updated.Stock = newStock
		updated.UpdatedAt = now
		if err := productRepo.Save(&updated); err != nil {
			return err
		}
		saved = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToMovementResponse(saved), nil
}

// Get retourne un mouvement par ID.
func (uc *MovementUseCase) Get(id entity.MovementID) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrMovementNotFound
	}
	return dto.ToMovementResponse(movement), nil
}

// GetAll liste tous les mouvements.
func (uc *MovementUseCase) GetAll() ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// GetByProduct liste les mouvements d'un produit.
func (uc *MovementUseCase) GetByProduct(productID entity.ProductID) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.FindByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// GetByType liste les mouvements d'un type donné.
func (uc *MovementUseCase) GetByType(movType entity.MovementType) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.FindByType(movType)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// GetByDateRange liste les mouvements entre deux horodatages.
func (uc *MovementUseCase) GetByDateRange(start, end time.Time) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.FindByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// GetByUser liste les mouvements effectués par un utilisateur.
func (uc *MovementUseCase) GetByUser(userID entity.UserID) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// GetRecent liste les N mouvements les plus récents (50 par défaut).
func (uc *MovementUseCase) GetRecent(limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	movements, err := uc.movementRepo.FindRecent(limit)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// Summary agrège entrées, sorties et mouvement net.
func (uc *MovementUseCase) Summary() (dto.MovementSummary, error) {
	total, err := uc.movementRepo.Count()
	if err != nil {
		return dto.MovementSummary{}, err
	}
	entries, err := uc.movementRepo.CountByType(entity.MovementEntry)
	if err != nil {
		return dto.MovementSummary{}, err
	}
	exits, err := uc.movementRepo.CountByType(entity.MovementExit)
	if err != nil {
		return dto.MovementSummary{}, err
	}
	return dto.NewMovementSummary(total, entries, exits), nil
}

// SummaryByDateRange agrège les mouvements d'une période.
func (uc *MovementUseCase) SummaryByDateRange(start, end time.Time) (dto.MovementSummary, error) {
	movements, err := uc.movementRepo.FindByDateRange(start, end)
	if err != nil {
		return dto.MovementSummary{}, err
	}
	var entries, exits int64
	for _, m := range movements {
		if m.IsEntry() {
			entries++
		} else {
			exits++
		}
	}
	return dto.NewMovementSummary(int64(len(movements)), entries, exits), nil
}

func toMovementResponses(movements []*entity.StockMovement) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *dto.ToMovementResponse(m))
	}
	return items
}
