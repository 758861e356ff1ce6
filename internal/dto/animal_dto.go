package dto

import "github.com/shopspring/decimal"

// Dates travel as "2006-01-02" strings on the wire; validator's datetime tag
// enforces the layout before any parsing happens.

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateAnimalRequest struct {
	TagID     string           `json:"tag_id"     validate:"required,min=1,max=50"`
	Name      *string          `json:"name"       validate:"omitempty,max=100"`
	Species   string           `json:"species"    validate:"required,min=2,max=50"`
	Breed     *string          `json:"breed"      validate:"omitempty,max=100"`
	Gender    string           `json:"gender"     validate:"required,oneof=male female"`
	BirthDate *string          `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Weight    *decimal.Decimal `json:"weight"     validate:"omitempty,min=0"`
	Location  *string          `json:"location"   validate:"omitempty,max=100"`
	Status    *string          `json:"status"     validate:"omitempty,oneof=active sold deceased quarantine"`
	Notes     *string          `json:"notes"`
}

type UpdateAnimalRequest struct {
	TagID     *string          `json:"tag_id"     validate:"omitempty,min=1,max=50"`
	Name      *string          `json:"name"       validate:"omitempty,max=100"`
	Species   *string          `json:"species"    validate:"omitempty,min=2,max=50"`
	Breed     *string          `json:"breed"      validate:"omitempty,max=100"`
	Gender    *string          `json:"gender"     validate:"omitempty,oneof=male female"`
	BirthDate *string          `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Weight    *decimal.Decimal `json:"weight"     validate:"omitempty,min=0"`
	Location  *string          `json:"location"   validate:"omitempty,max=100"`
	Status    *string          `json:"status"     validate:"omitempty,oneof=active sold deceased quarantine"`
	Notes     *string          `json:"notes"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type AnimalResponse struct {
	ID        string           `json:"id"`
	TagID     string           `json:"tag_id"`
	Name      *string          `json:"name,omitempty"`
	Species   string           `json:"species"`
	Breed     *string          `json:"breed,omitempty"`
	Gender    string           `json:"gender"`
	BirthDate *string          `json:"birth_date,omitempty"`
	Weight    *decimal.Decimal `json:"weight,omitempty"`
	Location  *string          `json:"location,omitempty"`
	Status    string           `json:"status"`
	Notes     *string          `json:"notes,omitempty"`
	CreatedAt string           `json:"created_at"`
}
