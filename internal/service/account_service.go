package service

import (
	"context"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	Create(ctx context.Context, userID string, req dto.CreateAccountRequest) (dto.AccountResponse, error)
	List(ctx context.Context, userID string) ([]dto.AccountResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (dto.AccountResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateAccountRequest) (dto.AccountResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	TrialBalance(ctx context.Context, userID string) (dto.TrialBalanceResponse, error)
}

type accountService struct {
	repo repository.AccountRepository
}

func NewAccountService(repo repository.AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func mapAccount(a model.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          a.ID,
		Number:      a.Number,
		Name:        a.Name,
		Type:        a.Type,
		Subtype:     a.Subtype,
		Balance:     a.Balance,
		Description: a.Description,
		CreatedAt:   formatTimestamp(a.CreatedAt),
	}
}

func (s *accountService) Create(ctx context.Context, userID string, req dto.CreateAccountRequest) (dto.AccountResponse, error) {
	a := &model.Account{
		UserID:      userID,
		Number:      req.Number,
		Name:        req.Name,
		Type:        req.Type,
		Subtype:     req.Subtype,
		Description: req.Description,
	}
	if req.Balance != nil {
		a.Balance = *req.Balance
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return dto.AccountResponse{}, translate(err)
	}
	return mapAccount(*a), nil
}

func (s *accountService) List(ctx context.Context, userID string) ([]dto.AccountResponse, error) {
	accounts, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, mapAccount(a))
	}
	return result, nil
}

func (s *accountService) Get(ctx context.Context, userID string, id uuid.UUID) (dto.AccountResponse, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.AccountResponse{}, translate(err)
	}
	return mapAccount(*a), nil
}

func (s *accountService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateAccountRequest) (dto.AccountResponse, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return dto.AccountResponse{}, translate(err)
	}

	if req.Number != nil {
		a.Number = *req.Number
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Subtype != nil {
		a.Subtype = req.Subtype
	}
	if req.Balance != nil {
		a.Balance = *req.Balance
	}
	if req.Description != nil {
		a.Description = req.Description
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return dto.AccountResponse{}, translate(err)
	}
	return mapAccount(*a), nil
}

func (s *accountService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// TrialBalance places asset and expense balances on the debit side and
// liability, equity, and revenue balances on the credit side, then compares
// the totals. Negative balances flip sides, matching the usual presentation.
func (s *accountService) TrialBalance(ctx context.Context, userID string) (dto.TrialBalanceResponse, error) {
	accounts, err := s.repo.List(ctx, userID)
	if err != nil {
		return dto.TrialBalanceResponse{}, err
	}

	rows := make([]dto.TrialBalanceRow, 0, len(accounts))
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, a := range accounts {
		row := dto.TrialBalanceRow{Number: a.Number, Name: a.Name, Type: a.Type}
		switch a.Type {
		case "asset", "expense":
			if a.Balance.IsNegative() {
				row.Credit = a.Balance.Neg()
			} else {
				row.Debit = a.Balance
			}
		default: // liability, equity, revenue
			if a.Balance.IsNegative() {
				row.Debit = a.Balance.Neg()
			} else {
				row.Credit = a.Balance
			}
		}
		totalDebits = totalDebits.Add(row.Debit)
		totalCredits = totalCredits.Add(row.Credit)
		rows = append(rows, row)
	}

	return dto.TrialBalanceResponse{
		Rows:         rows,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Balanced:     totalDebits.Equal(totalCredits),
	}, nil
}
