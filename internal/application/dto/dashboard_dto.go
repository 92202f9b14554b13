package dto

// DashboardSummary réponse de GET /api/dashboard et de la commande CLI
// dashboard : les trois résumés plus les alertes et les mouvements récents.
type DashboardSummary struct {
	Stock           StockSummary       `json:"stock"`
	Suppliers       SupplierSummary    `json:"suppliers"`
	Movements       MovementSummary    `json:"movements"`
	LowStockAlerts  []ProductResponse  `json:"low_stock_alerts"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}
