package dto

import (
	"time"

	"github.com/babetech/borastock/internal/domain/entity"
)

// RecordMovementRequest body pour POST /api/movements/entry et /exit.
type RecordMovementRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Reference string `json:"reference,omitempty"`
}

// MovementResponse représentation d'un mouvement côté API/CLI.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	TypeLabel   string    `json:"type_label"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	PerformedBy string    `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
	Reference   string    `json:"reference,omitempty"`
}

// ToMovementResponse convertit l'entité en DTO.
func ToMovementResponse(m *entity.StockMovement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:          m.ID.String(),
		ProductID:   m.ProductID.String(),
		Type:        string(m.Type),
		TypeLabel:   m.Type.Label(),
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		PerformedBy: m.PerformedBy.String(),
		Timestamp:   m.Timestamp,
		Reference:   m.Reference,
	}
}

// MovementSummary agrégat entrées/sorties. NetMovement est un delta en
// nombre de mouvements, pas pondéré par la valeur.
type MovementSummary struct {
	TotalMovements int64 `json:"total_movements"`
	Entries        int64 `json:"entries"`
	Exits          int64 `json:"exits"`
	NetMovement    int64 `json:"net_movement"`
}

// NewMovementSummary calcule le mouvement net (entrées - sorties).
func NewMovementSummary(total, entries, exits int64) MovementSummary {
	return MovementSummary{
		TotalMovements: total,
		Entries:        entries,
		Exits:          exits,
		NetMovement:    entries - exits,
	}
}
