package service

import (
	"context"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
)

type HealthRecordService interface {
	Create(ctx context.Context, userID string, req dto.CreateHealthRecordRequest) (dto.HealthRecordResponse, error)
	List(ctx context.Context, userID string) ([]dto.HealthRecordResponse, error)
	ListByAnimal(ctx context.Context, userID string, animalID uuid.UUID) ([]dto.HealthRecordResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (dto.HealthRecordResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateHealthRecordRequest) (dto.HealthRecordResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type healthService struct {
	repo    repository.HealthRecordRepository
	animals repository.AnimalRepository
}

func NewHealthRecordService(repo repository.HealthRecordRepository, animals repository.AnimalRepository) HealthRecordService {
	return &healthService{repo: repo, animals: animals}
}

func mapHealthRecord(h model.HealthRecord) dto.HealthRecordResponse {
	return dto.HealthRecordResponse{
		ID:           h.ID,
		AnimalID:     h.AnimalID,
		RecordType:   h.RecordType,
		Description:  h.Description,
		Date:         formatDate(h.Date),
		Cost:         h.Cost,
		NextDueDate:  formatDatePtr(h.NextDueDate),
		Veterinarian: h.Veterinarian,
		Notes:        h.Notes,
		CreatedAt:    formatTimestamp(h.CreatedAt),
	}
}

func (s *healthService) Create(ctx context.Context, userID string, req dto.CreateHealthRecordRequest) (dto.HealthRecordResponse, error) {
	// The referenced animal must exist and belong to the caller.
	animalID, _ := uuid.Parse(req.AnimalID)
	if _, err := s.animals.FindByID(ctx, userID, animalID); err != nil {
		return dto.HealthRecordResponse{}, translate(err)
	}

	h := &model.HealthRecord{
		UserID:       userID,
		AnimalID:     req.AnimalID,
		RecordType:   req.RecordType,
		Description:  req.Description,
		Date:         parseDate(req.Date),
		Cost:         req.Cost,
		NextDueDate:  parseDatePtr(req.NextDueDate),
		Veterinarian: req.Veterinarian,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return dto.HealthRecordResponse{}, translate(err)
	}
	return mapHealthRecord(*h), nil
}

func (s *healthService) List(ctx context.Context, userID string) ([]dto.HealthRecordResponse, error) {
	recs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.HealthRecordResponse, 0, len(recs))
	for _, h := range recs {
		result = append(result, mapHealthRecord(h))
	}
	return result, nil
}

func (s *healthService) ListByAnimal(ctx context.Context, userID string, animalID uuid.UUID) ([]dto.HealthRecordResponse, error) {
	if _, err := s.animals.FindByID(ctx, userID, animalID); err != nil {
		return nil, translate(err)
	}
	recs, err := s.repo.ListByAnimal(ctx, userID, animalID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.HealthRecordResponse, 0, len(recs))
	for _, h := range recs {
		result = append(result, mapHealthRecord(h))
	}
	return result, nil
}

func (s *healthService) Get(ctx context.Context, userID string, id uuid.UUID) (dto.HealthRecordResponse, error) {
	h, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.HealthRecordResponse{}, translate(err)
	}
	return mapHealthRecord(*h), nil
}

func (s *healthService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateHealthRecordRequest) (dto.HealthRecordResponse, error) {
	h, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.HealthRecordResponse{}, translate(err)
	}

	if req.RecordType != nil {
		h.RecordType = *req.RecordType
	}
	if req.Description != nil {
		h.Description = *req.Description
	}
	if req.Date != nil {
		h.Date = parseDate(*req.Date)
	}
	if req.Cost != nil {
		h.Cost = req.Cost
	}
	if req.NextDueDate != nil {
		h.NextDueDate = parseDatePtr(req.NextDueDate)
	}
	if req.Veterinarian != nil {
		h.Veterinarian = req.Veterinarian
	}
	if req.Notes != nil {
		h.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return dto.HealthRecordResponse{}, translate(err)
	}
	return mapHealthRecord(*h), nil
}

func (s *healthService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
