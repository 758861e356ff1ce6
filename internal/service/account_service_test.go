package service

import (
	"context"
	"testing"

	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubAccountRepo is an in-memory AccountRepository for testing.
type stubAccountRepo struct {
	accounts map[string]*model.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*model.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, a *model.Account) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *stubAccountRepo) List(_ context.Context, userID string) ([]model.Account, error) {
	var out []model.Account
	for _, a := range r.accounts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Account, error) {
	a, ok := r.accounts[id.String()]
	if !ok || a.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubAccountRepo) Update(_ context.Context, a *model.Account) error {
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	if a, ok := r.accounts[id.String()]; ok && a.UserID == userID {
		delete(r.accounts, id.String())
	}
	return nil
}

var _ repository.AccountRepository = (*stubAccountRepo)(nil)

func TestTrialBalanceSidesAndTotals(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	for _, a := range []model.Account{
		{UserID: userID, Number: "1000", Name: "Cash", Type: "asset", Balance: dec("500")},
		{UserID: userID, Number: "5000", Name: "Feed expense", Type: "expense", Balance: dec("200")},
		{UserID: userID, Number: "2000", Name: "Loan", Type: "liability", Balance: dec("300")},
		{UserID: userID, Number: "4000", Name: "Sales", Type: "revenue", Balance: dec("400")},
	} {
		a := a
		require.NoError(t, repo.Create(ctx, &a))
	}

	tb, err := svc.TrialBalance(ctx, userID)
	require.NoError(t, err)

	assert.True(t, tb.TotalDebits.Equal(dec("700")), "debits %s", tb.TotalDebits)
	assert.True(t, tb.TotalCredits.Equal(dec("700")), "credits %s", tb.TotalCredits)
	assert.True(t, tb.Balanced)

	for _, row := range tb.Rows {
		switch row.Type {
		case "asset", "expense":
			assert.True(t, row.Credit.IsZero(), "%s should be a debit row", row.Number)
		default:
			assert.True(t, row.Debit.IsZero(), "%s should be a credit row", row.Number)
		}
	}
}

func TestTrialBalanceNegativeBalanceFlipsSide(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	// An overdrawn asset presents as a credit.
	require.NoError(t, repo.Create(ctx, &model.Account{
		UserID: userID, Number: "1000", Name: "Cash", Type: "asset", Balance: dec("-50"),
	}))

	tb, err := svc.TrialBalance(ctx, userID)
	require.NoError(t, err)
	require.Len(t, tb.Rows, 1)
	assert.True(t, tb.Rows[0].Debit.IsZero())
	assert.True(t, tb.Rows[0].Credit.Equal(dec("50")))
	assert.False(t, tb.Balanced)
}

func TestTrialBalanceEmpty(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo())
	tb, err := svc.TrialBalance(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, tb.Rows)
	assert.True(t, tb.Balanced)
}
