package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateHealthRecordRequest struct {
	AnimalID     string           `json:"animal_id"     validate:"required,uuid"`
	RecordType   string           `json:"record_type"   validate:"required,oneof=vaccination treatment checkup deworming test"`
	Description  string           `json:"description"   validate:"required"`
	Date         string           `json:"date"          validate:"required,datetime=2006-01-02"`
	Cost         *decimal.Decimal `json:"cost"          validate:"omitempty,min=0"`
	NextDueDate  *string          `json:"next_due_date" validate:"omitempty,datetime=2006-01-02"`
	Veterinarian *string          `json:"veterinarian"  validate:"omitempty,max=100"`
	Notes        *string          `json:"notes"`
}

type UpdateHealthRecordRequest struct {
	RecordType   *string          `json:"record_type"   validate:"omitempty,oneof=vaccination treatment checkup deworming test"`
	Description  *string          `json:"description"`
	Date         *string          `json:"date"          validate:"omitempty,datetime=2006-01-02"`
	Cost         *decimal.Decimal `json:"cost"          validate:"omitempty,min=0"`
	NextDueDate  *string          `json:"next_due_date" validate:"omitempty,datetime=2006-01-02"`
	Veterinarian *string          `json:"veterinarian"  validate:"omitempty,max=100"`
	Notes        *string          `json:"notes"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type HealthRecordResponse struct {
	ID           string           `json:"id"`
	AnimalID     string           `json:"animal_id"`
	RecordType   string           `json:"record_type"`
	Description  string           `json:"description"`
	Date         string           `json:"date"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	NextDueDate  *string          `json:"next_due_date,omitempty"`
	Veterinarian *string          `json:"veterinarian,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	CreatedAt    string           `json:"created_at"`
}
