package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// File upload itself is handled by external storage — the API only records
// the resulting reference.
type CreateDocumentRequest struct {
	Title      string  `json:"title"       validate:"required,min=1,max=200"`
	Category   string  `json:"category"    validate:"required,min=1,max=100"`
	FileURL    string  `json:"file_url"    validate:"required,url,max=500"`
	FileSize   *int64  `json:"file_size"   validate:"omitempty,min=0"`
	MimeType   *string `json:"mime_type"   validate:"omitempty,max=100"`
	Tags       *string `json:"tags"        validate:"omitempty,max=500"`
	ExpiryDate *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateDocumentRequest struct {
	Title      *string `json:"title"       validate:"omitempty,min=1,max=200"`
	Category   *string `json:"category"    validate:"omitempty,min=1,max=100"`
	FileURL    *string `json:"file_url"    validate:"omitempty,url,max=500"`
	FileSize   *int64  `json:"file_size"   validate:"omitempty,min=0"`
	MimeType   *string `json:"mime_type"   validate:"omitempty,max=100"`
	Tags       *string `json:"tags"        validate:"omitempty,max=500"`
	ExpiryDate *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DocumentResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	FileURL      string  `json:"file_url"`
	FileSize     *int64  `json:"file_size,omitempty"`
	MimeType     *string `json:"mime_type,omitempty"`
	Tags         *string `json:"tags,omitempty"`
	ExpiryDate   *string `json:"expiry_date,omitempty"`
	ExpiringSoon bool    `json:"expiring_soon"`
	CreatedAt    string  `json:"created_at"`
}
