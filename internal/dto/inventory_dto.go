package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateInventoryItemRequest struct {
	Name         string           `json:"name"          validate:"required,min=1,max=100"`
	Category     string           `json:"category"      validate:"required,min=1,max=100"`
	Quantity     decimal.Decimal  `json:"quantity"      validate:"min=0"`
	Unit         string           `json:"unit"          validate:"required,min=1,max=20"`
	MinThreshold *decimal.Decimal `json:"min_threshold" validate:"omitempty,min=0"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit" validate:"omitempty,min=0"`
	Supplier     *string          `json:"supplier"      validate:"omitempty,max=100"`
	Location     *string          `json:"location"      validate:"omitempty,max=100"`
}

type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name"          validate:"omitempty,min=1,max=100"`
	Category     *string          `json:"category"      validate:"omitempty,min=1,max=100"`
	Quantity     *decimal.Decimal `json:"quantity"      validate:"omitempty,min=0"`
	Unit         *string          `json:"unit"          validate:"omitempty,min=1,max=20"`
	MinThreshold *decimal.Decimal `json:"min_threshold" validate:"omitempty,min=0"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit" validate:"omitempty,min=0"`
	Supplier     *string          `json:"supplier"      validate:"omitempty,max=100"`
	Location     *string          `json:"location"      validate:"omitempty,max=100"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type InventoryItemResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"`
	MinThreshold *decimal.Decimal `json:"min_threshold,omitempty"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	Location     *string          `json:"location,omitempty"`
	LowStock     bool             `json:"low_stock"`
	CreatedAt    string           `json:"created_at"`
}
