package service

import (
	"context"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
)

type EquipmentService interface {
	Create(ctx context.Context, userID string, req dto.CreateEquipmentRequest) (dto.EquipmentResponse, error)
	List(ctx context.Context, userID string) ([]dto.EquipmentResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (dto.EquipmentResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateEquipmentRequest) (dto.EquipmentResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	AddMaintenance(ctx context.Context, userID string, equipmentID uuid.UUID, req dto.CreateMaintenanceRecordRequest) (dto.MaintenanceRecordResponse, error)
	ListMaintenance(ctx context.Context, userID string, equipmentID uuid.UUID) ([]dto.MaintenanceRecordResponse, error)
	DeleteMaintenance(ctx context.Context, userID string, id uuid.UUID) error
}

type equipmentService struct {
	repo        repository.EquipmentRepository
	maintenance repository.MaintenanceRecordRepository
}

func NewEquipmentService(repo repository.EquipmentRepository, maintenance repository.MaintenanceRecordRepository) EquipmentService {
	return &equipmentService{repo: repo, maintenance: maintenance}
}

func mapEquipment(e model.Equipment) dto.EquipmentResponse {
	return dto.EquipmentResponse{
		ID:            e.ID,
		Name:          e.Name,
		Type:          e.Type,
		Status:        e.Status,
		PurchaseDate:  formatDatePtr(e.PurchaseDate),
		PurchasePrice: e.PurchasePrice,
		CurrentValue:  e.CurrentValue,
		Location:      e.Location,
		Notes:         e.Notes,
		CreatedAt:     formatTimestamp(e.CreatedAt),
	}
}

func mapMaintenanceRecord(m model.MaintenanceRecord) dto.MaintenanceRecordResponse {
	return dto.MaintenanceRecordResponse{
		ID:              m.ID,
		EquipmentID:     m.EquipmentID,
		Description:     m.Description,
		Date:            formatDate(m.Date),
		Cost:            m.Cost,
		PerformedBy:     m.PerformedBy,
		NextServiceDate: formatDatePtr(m.NextServiceDate),
		CreatedAt:       formatTimestamp(m.CreatedAt),
	}
}

func (s *equipmentService) Create(ctx context.Context, userID string, req dto.CreateEquipmentRequest) (dto.EquipmentResponse, error) {
	e := &model.Equipment{
		UserID:        userID,
		Name:          req.Name,
		Type:          req.Type,
		Status:        "operational",
		PurchaseDate:  parseDatePtr(req.PurchaseDate),
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  req.CurrentValue,
		Location:      req.Location,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return dto.EquipmentResponse{}, translate(err)
	}
	return mapEquipment(*e), nil
}

func (s *equipmentService) List(ctx context.Context, userID string) ([]dto.EquipmentResponse, error) {
	eq, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EquipmentResponse, 0, len(eq))
	for _, e := range eq {
		result = append(result, mapEquipment(e))
	}
	return result, nil
}

func (s *equipmentService) Get(ctx context.Context, userID string, id uuid.UUID) (dto.EquipmentResponse, error) {
	e, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.EquipmentResponse{}, translate(err)
	}
	return mapEquipment(*e), nil
}

func (s *equipmentService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateEquipmentRequest) (dto.EquipmentResponse, error) {
	e, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.EquipmentResponse{}, translate(err)
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Type != nil {
		e.Type = *req.Type
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.PurchaseDate != nil {
		e.PurchaseDate = parseDatePtr(req.PurchaseDate)
	}
	if req.PurchasePrice != nil {
		e.PurchasePrice = req.PurchasePrice
	}
	if req.CurrentValue != nil {
		e.CurrentValue = req.CurrentValue
	}
	if req.Location != nil {
		e.Location = req.Location
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return dto.EquipmentResponse{}, translate(err)
	}
	return mapEquipment(*e), nil
}

func (s *equipmentService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *equipmentService) AddMaintenance(ctx context.Context, userID string, equipmentID uuid.UUID, req dto.CreateMaintenanceRecordRequest) (dto.MaintenanceRecordResponse, error) {
	if _, err := s.repo.FindByID(ctx, userID, equipmentID); err != nil {
		return dto.MaintenanceRecordResponse{}, translate(err)
	}

	m := &model.MaintenanceRecord{
		UserID:          userID,
		EquipmentID:     equipmentID.String(),
		Description:     req.Description,
		Date:            parseDate(req.Date),
		Cost:            req.Cost,
		PerformedBy:     req.PerformedBy,
		NextServiceDate: parseDatePtr(req.NextServiceDate),
	}
	if err := s.maintenance.Create(ctx, m); err != nil {
		return dto.MaintenanceRecordResponse{}, translate(err)
	}
	return mapMaintenanceRecord(*m), nil
}

func (s *equipmentService) ListMaintenance(ctx context.Context, userID string, equipmentID uuid.UUID) ([]dto.MaintenanceRecordResponse, error) {
	if _, err := s.repo.FindByID(ctx, userID, equipmentID); err != nil {
		return nil, translate(err)
	}
	recs, err := s.maintenance.ListByEquipment(ctx, userID, equipmentID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MaintenanceRecordResponse, 0, len(recs))
	for _, m := range recs {
		result = append(result, mapMaintenanceRecord(m))
	}
	return result, nil
}

func (s *equipmentService) DeleteMaintenance(ctx context.Context, userID string, id uuid.UUID) error {
	return s.maintenance.Delete(ctx, userID, id)
}
