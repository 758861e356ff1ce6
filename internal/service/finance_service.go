package service

import (
	"context"
	"sort"
	"time"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinanceService owns the transaction ledger and the summary aggregation
// built on top of it.
type FinanceService interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (dto.TransactionResponse, error)
	ListTransactions(ctx context.Context, userID string) ([]dto.TransactionResponse, error)
	GetTransaction(ctx context.Context, userID string, id uuid.UUID) (dto.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateTransactionRequest) (dto.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, userID string, id uuid.UUID) error

	// Summary computes totals and per-category breakdowns over the inclusive
	// [start, end] range; nil bounds leave that end open.
	Summary(ctx context.Context, userID string, start, end *time.Time) (dto.FinancialSummaryResponse, error)
}

type financeService struct {
	repo repository.TransactionRepository
}

func NewFinanceService(repo repository.TransactionRepository) FinanceService {
	return &financeService{repo: repo}
}

func mapTransaction(t model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Date:        formatDate(t.Date),
		Description: t.Description,
		CreatedAt:   formatTimestamp(t.CreatedAt),
	}
}

func (s *financeService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (dto.TransactionResponse, error) {
	t := &model.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        parseDate(req.Date),
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return dto.TransactionResponse{}, translate(err)
	}
	return mapTransaction(*t), nil
}

func (s *financeService) ListTransactions(ctx context.Context, userID string) ([]dto.TransactionResponse, error) {
	txs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		result = append(result, mapTransaction(t))
	}
	return result, nil
}

func (s *financeService) GetTransaction(ctx context.Context, userID string, id uuid.UUID) (dto.TransactionResponse, error) {
	t, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.TransactionResponse{}, translate(err)
	}
	return mapTransaction(*t), nil
}

func (s *financeService) UpdateTransaction(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateTransactionRequest) (dto.TransactionResponse, error) {
	t, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.TransactionResponse{}, translate(err)
	}

	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.Date != nil {
		t.Date = parseDate(*req.Date)
	}
	if req.Description != nil {
		t.Description = *req.Description
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return dto.TransactionResponse{}, translate(err)
	}
	return mapTransaction(*t), nil
}

func (s *financeService) DeleteTransaction(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *financeService) Summary(ctx context.Context, userID string, start, end *time.Time) (dto.FinancialSummaryResponse, error) {
	txs, err := s.repo.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return dto.FinancialSummaryResponse{}, err
	}
	return summarize(txs), nil
}

// summarize is the aggregation core: group by (type, category), sum amounts
// in the decimal domain, then partition into the income and expense
// breakdowns. Categories come out alphabetically for stable responses.
// An empty input yields zero totals and empty (non-nil) slices.
func summarize(txs []model.Transaction) dto.FinancialSummaryResponse {
	incomeByCat := make(map[string]decimal.Decimal)
	expenseByCat := make(map[string]decimal.Decimal)
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, t := range txs {
		switch t.Type {
		case "income":
			incomeByCat[t.Category] = incomeByCat[t.Category].Add(t.Amount)
			totalIncome = totalIncome.Add(t.Amount)
		case "expense":
			expenseByCat[t.Category] = expenseByCat[t.Category].Add(t.Amount)
			totalExpenses = totalExpenses.Add(t.Amount)
		}
	}

	return dto.FinancialSummaryResponse{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetProfit:          totalIncome.Sub(totalExpenses),
		IncomeByCategory:   sortedCategories(incomeByCat),
		ExpensesByCategory: sortedCategories(expenseByCat),
	}
}

func sortedCategories(byCat map[string]decimal.Decimal) []dto.CategoryAmount {
	result := make([]dto.CategoryAmount, 0, len(byCat))
	for cat, amount := range byCat {
		result = append(result, dto.CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })
	return result
}
