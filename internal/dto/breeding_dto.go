package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateBreedingRecordRequest struct {
	MotherID          string  `json:"mother_id"           validate:"required,uuid"`
	FatherID          *string `json:"father_id"           validate:"omitempty,uuid"`
	BreedingDate      string  `json:"breeding_date"       validate:"required,datetime=2006-01-02"`
	ExpectedBirthDate *string `json:"expected_birth_date" validate:"omitempty,datetime=2006-01-02"`
	ActualBirthDate   *string `json:"actual_birth_date"   validate:"omitempty,datetime=2006-01-02"`
	Notes             *string `json:"notes"`
}

type UpdateBreedingRecordRequest struct {
	FatherID          *string `json:"father_id"           validate:"omitempty,uuid"`
	BreedingDate      *string `json:"breeding_date"       validate:"omitempty,datetime=2006-01-02"`
	ExpectedBirthDate *string `json:"expected_birth_date" validate:"omitempty,datetime=2006-01-02"`
	ActualBirthDate   *string `json:"actual_birth_date"   validate:"omitempty,datetime=2006-01-02"`
	Notes             *string `json:"notes"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// Status is derived at read time: "born" when an actual birth date is
// recorded, "overdue" when the expected date has passed, else "pregnant".
type BreedingRecordResponse struct {
	ID                string  `json:"id"`
	MotherID          string  `json:"mother_id"`
	FatherID          *string `json:"father_id,omitempty"`
	BreedingDate      string  `json:"breeding_date"`
	ExpectedBirthDate *string `json:"expected_birth_date,omitempty"`
	ActualBirthDate   *string `json:"actual_birth_date,omitempty"`
	Status            string  `json:"status"`
	Notes             *string `json:"notes,omitempty"`
	CreatedAt         string  `json:"created_at"`
}
