package service

import (
	"context"
	"time"

	"ranchops/internal/dto"
	"ranchops/internal/repository"
)

// DashboardService assembles the point-in-time counters for the current
// calendar month. Every value is derived on read — there is no background
// job maintaining alert state, so a record due yesterday shows up the next
// time this runs.
type DashboardService interface {
	Stats(ctx context.Context, userID string) (dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	animals   repository.AnimalRepository
	health    repository.HealthRecordRepository
	inventory repository.InventoryRepository
	equipment repository.EquipmentRepository
	finance   FinanceService
	now       func() time.Time
}

func NewDashboardService(
	animals repository.AnimalRepository,
	health repository.HealthRecordRepository,
	inventory repository.InventoryRepository,
	equipment repository.EquipmentRepository,
	finance FinanceService,
) DashboardService {
	return &dashboardService{
		animals:   animals,
		health:    health,
		inventory: inventory,
		equipment: equipment,
		finance:   finance,
		now:       time.Now,
	}
}

func (s *dashboardService) Stats(ctx context.Context, userID string) (dto.DashboardStatsResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	activeAnimals, err := s.animals.CountActive(ctx, userID)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	healthAlerts, err := s.health.CountDue(ctx, userID, today)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	lowStock, err := s.inventory.CountLowStock(ctx, userID)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	needingService, err := s.equipment.CountNeedingService(ctx, userID)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	summary, err := s.finance.Summary(ctx, userID, &monthStart, &monthEnd)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	return dto.DashboardStatsResponse{
		ActiveAnimals:           activeAnimals,
		HealthAlerts:            healthAlerts,
		LowStockItems:           lowStock,
		EquipmentNeedingService: needingService,
		MonthIncome:             summary.TotalIncome,
		MonthExpenses:           summary.TotalExpenses,
		MonthNet:                summary.NetProfit,
	}, nil
}
