package service

import (
	"context"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
)

type InventoryService interface {
	Create(ctx context.Context, userID string, req dto.CreateInventoryItemRequest) (dto.InventoryItemResponse, error)
	List(ctx context.Context, userID string) ([]dto.InventoryItemResponse, error)
	ListLowStock(ctx context.Context, userID string) ([]dto.InventoryItemResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (dto.InventoryItemResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateInventoryItemRequest) (dto.InventoryItemResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

// isLowStock is the single low-stock predicate: quantity at or below a set
// threshold. No threshold, never low.
func isLowStock(i model.InventoryItem) bool {
	return i.MinThreshold != nil && i.Quantity.LessThanOrEqual(*i.MinThreshold)
}

func mapInventoryItem(i model.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		MinThreshold: i.MinThreshold,
		CostPerUnit:  i.CostPerUnit,
		Supplier:     i.Supplier,
		Location:     i.Location,
		LowStock:     isLowStock(i),
		CreatedAt:    formatTimestamp(i.CreatedAt),
	}
}

func (s *inventoryService) Create(ctx context.Context, userID string, req dto.CreateInventoryItemRequest) (dto.InventoryItemResponse, error) {
	i := &model.InventoryItem{
		UserID:       userID,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
		CostPerUnit:  req.CostPerUnit,
		Supplier:     req.Supplier,
		Location:     req.Location,
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return dto.InventoryItemResponse{}, translate(err)
	}
	return mapInventoryItem(*i), nil
}

func (s *inventoryService) List(ctx context.Context, userID string) ([]dto.InventoryItemResponse, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventoryItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, mapInventoryItem(i))
	}
	return result, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context, userID string) ([]dto.InventoryItemResponse, error) {
	items, err := s.repo.ListLowStock(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventoryItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, mapInventoryItem(i))
	}
	return result, nil
}

func (s *inventoryService) Get(ctx context.Context, userID string, id uuid.UUID) (dto.InventoryItemResponse, error) {
	i, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.InventoryItemResponse{}, translate(err)
	}
	return mapInventoryItem(*i), nil
}

func (s *inventoryService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateInventoryItemRequest) (dto.InventoryItemResponse, error) {
	i, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.InventoryItemResponse{}, translate(err)
	}

	if req.Name != nil {
		i.Name = *req.Name
	}
	if req.Category != nil {
		i.Category = *req.Category
	}
	if req.Quantity != nil {
		i.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		i.Unit = *req.Unit
	}
	if req.MinThreshold != nil {
		i.MinThreshold = req.MinThreshold
	}
	if req.CostPerUnit != nil {
		i.CostPerUnit = req.CostPerUnit
	}
	if req.Supplier != nil {
		i.Supplier = req.Supplier
	}
	if req.Location != nil {
		i.Location = req.Location
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return dto.InventoryItemResponse{}, translate(err)
	}
	return mapInventoryItem(*i), nil
}

func (s *inventoryService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
