package service

import (
	"context"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
)

// AnimalService defines business operations for the livestock registry.
type AnimalService interface {
	Create(ctx context.Context, userID string, req dto.CreateAnimalRequest) (dto.AnimalResponse, error)
	List(ctx context.Context, userID string) ([]dto.AnimalResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (dto.AnimalResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateAnimalRequest) (dto.AnimalResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type animalService struct {
	repo repository.AnimalRepository
}

func NewAnimalService(repo repository.AnimalRepository) AnimalService {
	return &animalService{repo: repo}
}

func mapAnimal(a model.Animal) dto.AnimalResponse {
	return dto.AnimalResponse{
		ID:        a.ID,
		TagID:     a.TagID,
		Name:      a.Name,
		Species:   a.Species,
		Breed:     a.Breed,
		Gender:    a.Gender,
		BirthDate: formatDatePtr(a.BirthDate),
		Weight:    a.Weight,
		Location:  a.Location,
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: formatTimestamp(a.CreatedAt),
	}
}

func (s *animalService) Create(ctx context.Context, userID string, req dto.CreateAnimalRequest) (dto.AnimalResponse, error) {
	a := &model.Animal{
		UserID:    userID,
		TagID:     req.TagID,
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Gender:    req.Gender,
		BirthDate: parseDatePtr(req.BirthDate),
		Weight:    req.Weight,
		Location:  req.Location,
		Status:    "active",
		Notes:     req.Notes,
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return dto.AnimalResponse{}, translate(err)
	}
	return mapAnimal(*a), nil
}

func (s *animalService) List(ctx context.Context, userID string) ([]dto.AnimalResponse, error) {
	animals, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AnimalResponse, 0, len(animals))
	for _, a := range animals {
		result = append(result, mapAnimal(a))
	}
	return result, nil
}

func (s *animalService) Get(ctx context.Context, userID string, id uuid.UUID) (dto.AnimalResponse, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.AnimalResponse{}, translate(err)
	}
	return mapAnimal(*a), nil
}

// Update applies merge semantics: only fields present in the request change.
func (s *animalService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateAnimalRequest) (dto.AnimalResponse, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.AnimalResponse{}, translate(err)
	}

	if req.TagID != nil {
		a.TagID = *req.TagID
	}
	if req.Name != nil {
		a.Name = req.Name
	}
	if req.Species != nil {
		a.Species = *req.Species
	}
	if req.Breed != nil {
		a.Breed = req.Breed
	}
	if req.Gender != nil {
		a.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		a.BirthDate = parseDatePtr(req.BirthDate)
	}
	if req.Weight != nil {
		a.Weight = req.Weight
	}
	if req.Location != nil {
		a.Location = req.Location
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Notes != nil {
		a.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return dto.AnimalResponse{}, translate(err)
	}
	return mapAnimal(*a), nil
}

func (s *animalService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
