package service

import (
	"context"
	"time"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
)

type BreedingService interface {
	Create(ctx context.Context, userID string, req dto.CreateBreedingRecordRequest) (dto.BreedingRecordResponse, error)
	List(ctx context.Context, userID string) ([]dto.BreedingRecordResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (dto.BreedingRecordResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateBreedingRecordRequest) (dto.BreedingRecordResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type breedingService struct {
	repo    repository.BreedingRecordRepository
	animals repository.AnimalRepository
	// now is injectable for deterministic derived-status tests.
	now func() time.Time
}

func NewBreedingService(repo repository.BreedingRecordRepository, animals repository.AnimalRepository) BreedingService {
	return &breedingService{repo: repo, animals: animals, now: time.Now}
}

// breedingStatus derives the pregnancy state at read time; nothing is stored.
// Precedence: a recorded birth wins, then an expired expected date, then
// pregnant.
func breedingStatus(b model.BreedingRecord, today time.Time) string {
	switch {
	case b.ActualBirthDate != nil:
		return "born"
	case b.ExpectedBirthDate != nil && b.ExpectedBirthDate.Before(today.Truncate(24*time.Hour)):
		return "overdue"
	default:
		return "pregnant"
	}
}

func (s *breedingService) mapRecord(b model.BreedingRecord) dto.BreedingRecordResponse {
	return dto.BreedingRecordResponse{
		ID:                b.ID,
		MotherID:          b.MotherID,
		FatherID:          b.FatherID,
		BreedingDate:      formatDate(b.BreedingDate),
		ExpectedBirthDate: formatDatePtr(b.ExpectedBirthDate),
		ActualBirthDate:   formatDatePtr(b.ActualBirthDate),
		Status:            breedingStatus(b, s.now()),
		Notes:             b.Notes,
		CreatedAt:         formatTimestamp(b.CreatedAt),
	}
}

func (s *breedingService) Create(ctx context.Context, userID string, req dto.CreateBreedingRecordRequest) (dto.BreedingRecordResponse, error) {
	motherID, _ := uuid.Parse(req.MotherID)
	if _, err := s.animals.FindByID(ctx, userID, motherID); err != nil {
		return dto.BreedingRecordResponse{}, translate(err)
	}
	if req.FatherID != nil {
		fatherID, _ := uuid.Parse(*req.FatherID)
		if _, err := s.animals.FindByID(ctx, userID, fatherID); err != nil {
			return dto.BreedingRecordResponse{}, translate(err)
		}
	}

	b := &model.BreedingRecord{
		UserID:            userID,
		MotherID:          req.MotherID,
		FatherID:          req.FatherID,
		BreedingDate:      parseDate(req.BreedingDate),
		ExpectedBirthDate: parseDatePtr(req.ExpectedBirthDate),
		ActualBirthDate:   parseDatePtr(req.ActualBirthDate),
		Notes:             req.Notes,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return dto.BreedingRecordResponse{}, translate(err)
	}
	return s.mapRecord(*b), nil
}

func (s *breedingService) List(ctx context.Context, userID string) ([]dto.BreedingRecordResponse, error) {
	recs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.BreedingRecordResponse, 0, len(recs))
	for _, b := range recs {
		result = append(result, s.mapRecord(b))
	}
	return result, nil
}

func (s *breedingService) Get(ctx context.Context, userID string, id uuid.UUID) (dto.BreedingRecordResponse, error) {
	b, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.BreedingRecordResponse{}, translate(err)
	}
	return s.mapRecord(*b), nil
}

func (s *breedingService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateBreedingRecordRequest) (dto.BreedingRecordResponse, error) {
	b, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.BreedingRecordResponse{}, translate(err)
	}

	if req.FatherID != nil {
		fatherID, _ := uuid.Parse(*req.FatherID)
		if _, err := s.animals.FindByID(ctx, userID, fatherID); err != nil {
			return dto.BreedingRecordResponse{}, translate(err)
		}
		b.FatherID = req.FatherID
	}
	if req.BreedingDate != nil {
		b.BreedingDate = parseDate(*req.BreedingDate)
	}
	if req.ExpectedBirthDate != nil {
		b.ExpectedBirthDate = parseDatePtr(req.ExpectedBirthDate)
	}
	if req.ActualBirthDate != nil {
		b.ActualBirthDate = parseDatePtr(req.ActualBirthDate)
	}
	if req.Notes != nil {
		b.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return dto.BreedingRecordResponse{}, translate(err)
	}
	return s.mapRecord(*b), nil
}

func (s *breedingService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
