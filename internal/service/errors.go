package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the service layer. Handlers map these onto the
// HTTP taxonomy in one place; services never construct HTTP responses.
var (
	// ErrNotFound covers both a genuinely missing row and a row owned by a
	// different user — callers cannot tell them apart.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is a unique-constraint violation (e.g. duplicate tag id).
	ErrConflict = errors.New("record already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// translate maps storage-layer errors onto the service sentinels. GORM's
// TranslateError option guarantees ErrDuplicatedKey on all three dialects.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
