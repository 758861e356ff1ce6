package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse is a point-in-time snapshot for the current
// calendar month. Every counter is recomputed on read — nothing here is
// materialized.
type DashboardStatsResponse struct {
	ActiveAnimals           int64           `json:"active_animals"`
	HealthAlerts            int64           `json:"health_alerts"`
	LowStockItems           int64           `json:"low_stock_items"`
	EquipmentNeedingService int64           `json:"equipment_needing_service"`
	MonthIncome             decimal.Decimal `json:"month_income"`
	MonthExpenses           decimal.Decimal `json:"month_expenses"`
	MonthNet                decimal.Decimal `json:"month_net"`
}
