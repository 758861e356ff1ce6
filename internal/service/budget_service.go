package service

import (
	"context"
	"time"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetService interface {
	Create(ctx context.Context, userID string, req dto.CreateBudgetRequest) (dto.BudgetResponse, error)
	List(ctx context.Context, userID string) ([]dto.BudgetResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (dto.BudgetResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateBudgetRequest) (dto.BudgetResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	// Statuses computes spend-vs-target for every active budget, optionally
	// restricted to one period kind. A read-time join — nothing is stored.
	Statuses(ctx context.Context, userID string, period string) ([]dto.BudgetStatusResponse, error)
}

type budgetService struct {
	repo repository.BudgetRepository
	txs  repository.TransactionRepository
	now  func() time.Time
}

func NewBudgetService(repo repository.BudgetRepository, txs repository.TransactionRepository) BudgetService {
	return &budgetService{repo: repo, txs: txs, now: time.Now}
}

var defaultAlertThreshold = decimal.NewFromInt(80)

func mapBudget(b model.Budget) dto.BudgetResponse {
	return dto.BudgetResponse{
		ID:             b.ID,
		Name:           b.Name,
		Category:       b.Category,
		TargetAmount:   b.TargetAmount,
		Period:         b.Period,
		AlertThreshold: b.AlertThreshold,
		Active:         b.Active,
		CreatedAt:      formatTimestamp(b.CreatedAt),
	}
}

func (s *budgetService) Create(ctx context.Context, userID string, req dto.CreateBudgetRequest) (dto.BudgetResponse, error) {
	b := &model.Budget{
		UserID:         userID,
		Name:           req.Name,
		Category:       req.Category,
		TargetAmount:   req.TargetAmount,
		Period:         req.Period,
		AlertThreshold: defaultAlertThreshold,
		Active:         true,
	}
	if req.AlertThreshold != nil {
		b.AlertThreshold = *req.AlertThreshold
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return dto.BudgetResponse{}, translate(err)
	}
	return mapBudget(*b), nil
}

func (s *budgetService) List(ctx context.Context, userID string) ([]dto.BudgetResponse, error) {
	budgets, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, mapBudget(b))
	}
	return result, nil
}

func (s *budgetService) Get(ctx context.Context, userID string, id uuid.UUID) (dto.BudgetResponse, error) {
	b, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.BudgetResponse{}, translate(err)
	}
	return mapBudget(*b), nil
}

func (s *budgetService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateBudgetRequest) (dto.BudgetResponse, error) {
	b, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.BudgetResponse{}, translate(err)
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.TargetAmount != nil {
		b.TargetAmount = *req.TargetAmount
	}
	if req.Period != nil {
		b.Period = *req.Period
	}
	if req.AlertThreshold != nil {
		b.AlertThreshold = *req.AlertThreshold
	}
	if req.Active != nil {
		b.Active = *req.Active
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return dto.BudgetResponse{}, translate(err)
	}
	return mapBudget(*b), nil
}

func (s *budgetService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *budgetService) Statuses(ctx context.Context, userID string, period string) ([]dto.BudgetStatusResponse, error) {
	budgets, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]dto.BudgetStatusResponse, 0, len(budgets))
	for _, b := range budgets {
		if period != "" && b.Period != period {
			continue
		}

		start, end := periodWindow(b.Period, now)
		txs, err := s.txs.ListByDateRange(ctx, userID, &start, &end)
		if err != nil {
			return nil, err
		}

		spend := decimal.Zero
		for _, t := range txs {
			if t.Type == "expense" && t.Category == b.Category {
				spend = spend.Add(t.Amount)
			}
		}

		percentUsed := decimal.Zero
		if !b.TargetAmount.IsZero() {
			percentUsed = spend.Div(b.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
		}

		result = append(result, dto.BudgetStatusResponse{
			BudgetID:     b.ID,
			Name:         b.Name,
			Category:     b.Category,
			Period:       b.Period,
			TargetAmount: b.TargetAmount,
			ActualSpend:  spend,
			PercentUsed:  percentUsed,
			Alert:        percentUsed.GreaterThanOrEqual(b.AlertThreshold),
			WindowStart:  formatDate(start),
			WindowEnd:    formatDate(end),
		})
	}
	return result, nil
}

// periodWindow returns the calendar-aligned window containing now: ISO week
// (Monday start), calendar month, calendar quarter, or calendar year. The
// end bound is the evaluation day, so the range stays inclusive on both ends.
func periodWindow(period string, now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var start time.Time
	switch period {
	case "weekly":
		offset := (int(today.Weekday()) + 6) % 7 // Monday = 0
		start = today.AddDate(0, 0, -offset)
	case "monthly":
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	case "quarterly":
		qMonth := time.Month(((int(today.Month())-1)/3)*3 + 1)
		start = time.Date(today.Year(), qMonth, 1, 0, 0, 0, 0, time.UTC)
	case "yearly":
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		start = today
	}
	return start, today
}
