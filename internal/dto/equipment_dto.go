package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateEquipmentRequest struct {
	Name          string           `json:"name"           validate:"required,min=1,max=100"`
	Type          string           `json:"type"           validate:"required,min=1,max=50"`
	Status        *string          `json:"status"         validate:"omitempty,oneof=operational maintenance repair retired"`
	PurchaseDate  *string          `json:"purchase_date"  validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"omitempty,min=0"`
	CurrentValue  *decimal.Decimal `json:"current_value"  validate:"omitempty,min=0"`
	Location      *string          `json:"location"       validate:"omitempty,max=100"`
	Notes         *string          `json:"notes"`
}

type UpdateEquipmentRequest struct {
	Name          *string          `json:"name"           validate:"omitempty,min=1,max=100"`
	Type          *string          `json:"type"           validate:"omitempty,min=1,max=50"`
	Status        *string          `json:"status"         validate:"omitempty,oneof=operational maintenance repair retired"`
	PurchaseDate  *string          `json:"purchase_date"  validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"omitempty,min=0"`
	CurrentValue  *decimal.Decimal `json:"current_value"  validate:"omitempty,min=0"`
	Location      *string          `json:"location"       validate:"omitempty,max=100"`
	Notes         *string          `json:"notes"`
}

type CreateMaintenanceRecordRequest struct {
	Description     string           `json:"description"       validate:"required"`
	Date            string           `json:"date"              validate:"required,datetime=2006-01-02"`
	Cost            *decimal.Decimal `json:"cost"              validate:"omitempty,min=0"`
	PerformedBy     *string          `json:"performed_by"      validate:"omitempty,max=100"`
	NextServiceDate *string          `json:"next_service_date" validate:"omitempty,datetime=2006-01-02"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type EquipmentResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Status        string           `json:"status"`
	PurchaseDate  *string          `json:"purchase_date,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	CurrentValue  *decimal.Decimal `json:"current_value,omitempty"`
	Location      *string          `json:"location,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	CreatedAt     string           `json:"created_at"`
}

type MaintenanceRecordResponse struct {
	ID              string           `json:"id"`
	EquipmentID     string           `json:"equipment_id"`
	Description     string           `json:"description"`
	Date            string           `json:"date"`
	Cost            *decimal.Decimal `json:"cost,omitempty"`
	PerformedBy     *string          `json:"performed_by,omitempty"`
	NextServiceDate *string          `json:"next_service_date,omitempty"`
	CreatedAt       string           `json:"created_at"`
}
