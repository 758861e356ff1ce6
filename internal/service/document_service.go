package service

import (
	"context"
	"time"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
)

// expiryWindow is how far ahead a document's expiry date is flagged as
// "expiring soon".
const expiryWindow = 30 * 24 * time.Hour

type DocumentService interface {
	Create(ctx context.Context, userID string, req dto.CreateDocumentRequest) (dto.DocumentResponse, error)
	List(ctx context.Context, userID string) ([]dto.DocumentResponse, error)
	ListExpiring(ctx context.Context, userID string) ([]dto.DocumentResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (dto.DocumentResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateDocumentRequest) (dto.DocumentResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type documentService struct {
	repo repository.DocumentRepository
	now  func() time.Time
}

func NewDocumentService(repo repository.DocumentRepository) DocumentService {
	return &documentService{repo: repo, now: time.Now}
}

func (s *documentService) mapDocument(d model.Document) dto.DocumentResponse {
	expiring := d.ExpiryDate != nil && !d.ExpiryDate.After(s.now().Add(expiryWindow))
	return dto.DocumentResponse{
		ID:           d.ID,
		Title:        d.Title,
		Category:     d.Category,
		FileURL:      d.FileURL,
		FileSize:     d.FileSize,
		MimeType:     d.MimeType,
		Tags:         d.Tags,
		ExpiryDate:   formatDatePtr(d.ExpiryDate),
		ExpiringSoon: expiring,
		CreatedAt:    formatTimestamp(d.CreatedAt),
	}
}

func (s *documentService) Create(ctx context.Context, userID string, req dto.CreateDocumentRequest) (dto.DocumentResponse, error) {
	d := &model.Document{
		UserID:     userID,
		Title:      req.Title,
		Category:   req.Category,
		FileURL:    req.FileURL,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		Tags:       req.Tags,
		ExpiryDate: parseDatePtr(req.ExpiryDate),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return dto.DocumentResponse{}, translate(err)
	}
	return s.mapDocument(*d), nil
}

func (s *documentService) List(ctx context.Context, userID string) ([]dto.DocumentResponse, error) {
	docs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, s.mapDocument(d))
	}
	return result, nil
}

func (s *documentService) ListExpiring(ctx context.Context, userID string) ([]dto.DocumentResponse, error) {
	docs, err := s.repo.ListExpiring(ctx, userID, s.now().Add(expiryWindow))
	if err != nil {
		return nil, err
	}
	result := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, s.mapDocument(d))
	}
	return result, nil
}

func (s *documentService) Get(ctx context.Context, userID string, id uuid.UUID) (dto.DocumentResponse, error) {
	d, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.DocumentResponse{}, translate(err)
	}
	return s.mapDocument(*d), nil
}

func (s *documentService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateDocumentRequest) (dto.DocumentResponse, error) {
	d, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.DocumentResponse{}, translate(err)
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Category != nil {
		d.Category = *req.Category
	}
	if req.FileURL != nil {
		d.FileURL = *req.FileURL
	}
	if req.FileSize != nil {
		d.FileSize = req.FileSize
	}
	if req.MimeType != nil {
		d.MimeType = req.MimeType
	}
	if req.Tags != nil {
		d.Tags = req.Tags
	}
	if req.ExpiryDate != nil {
		d.ExpiryDate = parseDatePtr(req.ExpiryDate)
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return dto.DocumentResponse{}, translate(err)
	}
	return s.mapDocument(*d), nil
}

func (s *documentService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
