package service

import (
	"context"
	"testing"
	"time"

	"ranchops/internal/dto"
	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubTransactionRepo is an in-memory TransactionRepository for testing.
type stubTransactionRepo struct {
	txs map[string]*model.Transaction
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{txs: make(map[string]*model.Transaction)}
}

func (r *stubTransactionRepo) Create(_ context.Context, t *model.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	r.txs[t.ID] = &cp
	return nil
}

func (r *stubTransactionRepo) List(_ context.Context, userID string) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range r.txs {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) ListByDateRange(_ context.Context, userID string, start, end *time.Time) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range r.txs {
		if t.UserID != userID {
			continue
		}
		if start != nil && t.Date.Before(*start) {
			continue
		}
		if end != nil && t.Date.After(*end) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Transaction, error) {
	t, ok := r.txs[id.String()]
	if !ok || t.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubTransactionRepo) Update(_ context.Context, t *model.Transaction) error {
	cp := *t
	r.txs[t.ID] = &cp
	return nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	if t, ok := r.txs[id.String()]; ok && t.UserID == userID {
		delete(r.txs, id.String())
	}
	return nil
}

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ── Aggregation ───────────────────────────────────────────────────────────────

func TestSummarizeGroupsByTypeAndCategory(t *testing.T) {
	txs := []model.Transaction{
		{Type: "income", Category: "Sales", Amount: dec("100.00"), Date: day("2026-01-01")},
		{Type: "expense", Category: "Feed", Amount: dec("40.00"), Date: day("2026-01-01")},
		{Type: "income", Category: "Sales", Amount: dec("50.00"), Date: day("2026-01-05")},
	}

	sum := summarize(txs)

	assert.True(t, sum.TotalIncome.Equal(dec("150.00")), "total income: %s", sum.TotalIncome)
	assert.True(t, sum.TotalExpenses.Equal(dec("40.00")), "total expenses: %s", sum.TotalExpenses)
	assert.True(t, sum.NetProfit.Equal(dec("110.00")), "net profit: %s", sum.NetProfit)

	require.Len(t, sum.IncomeByCategory, 1)
	assert.Equal(t, "Sales", sum.IncomeByCategory[0].Category)
	assert.True(t, sum.IncomeByCategory[0].Amount.Equal(dec("150.00")))

	require.Len(t, sum.ExpensesByCategory, 1)
	assert.Equal(t, "Feed", sum.ExpensesByCategory[0].Category)
	assert.True(t, sum.ExpensesByCategory[0].Amount.Equal(dec("40.00")))
}

func TestSummarizeTotalsEqualCategorySums(t *testing.T) {
	txs := []model.Transaction{
		{Type: "income", Category: "Sales", Amount: dec("10.10")},
		{Type: "income", Category: "Wool", Amount: dec("20.20")},
		{Type: "income", Category: "Sales", Amount: dec("0.70")},
		{Type: "expense", Category: "Feed", Amount: dec("5.55")},
		{Type: "expense", Category: "Vet", Amount: dec("4.45")},
	}

	sum := summarize(txs)

	incomeTotal := decimal.Zero
	for _, c := range sum.IncomeByCategory {
		incomeTotal = incomeTotal.Add(c.Amount)
	}
	expenseTotal := decimal.Zero
	for _, c := range sum.ExpensesByCategory {
		expenseTotal = expenseTotal.Add(c.Amount)
	}

	assert.True(t, sum.TotalIncome.Equal(incomeTotal))
	assert.True(t, sum.TotalExpenses.Equal(expenseTotal))
	assert.True(t, sum.NetProfit.Equal(sum.TotalIncome.Sub(sum.TotalExpenses)))
}

func TestSummarizeCategoriesSortedAlphabetically(t *testing.T) {
	txs := []model.Transaction{
		{Type: "expense", Category: "Vet", Amount: dec("1")},
		{Type: "expense", Category: "Equipment", Amount: dec("1")},
		{Type: "expense", Category: "Feed", Amount: dec("1")},
	}

	sum := summarize(txs)

	require.Len(t, sum.ExpensesByCategory, 3)
	assert.Equal(t, "Equipment", sum.ExpensesByCategory[0].Category)
	assert.Equal(t, "Feed", sum.ExpensesByCategory[1].Category)
	assert.Equal(t, "Vet", sum.ExpensesByCategory[2].Category)
}

func TestSummarizeEmptyInput(t *testing.T) {
	sum := summarize(nil)

	assert.True(t, sum.TotalIncome.IsZero())
	assert.True(t, sum.TotalExpenses.IsZero())
	assert.True(t, sum.NetProfit.IsZero())
	assert.NotNil(t, sum.IncomeByCategory)
	assert.NotNil(t, sum.ExpensesByCategory)
	assert.Empty(t, sum.IncomeByCategory)
	assert.Empty(t, sum.ExpensesByCategory)
}

func TestSummarizeExactDecimalAddition(t *testing.T) {
	// 0.1 + 0.2 must come out as exactly 0.3, not 0.30000000000000004.
	txs := []model.Transaction{
		{Type: "income", Category: "Sales", Amount: dec("0.1")},
		{Type: "income", Category: "Sales", Amount: dec("0.2")},
	}

	sum := summarize(txs)
	assert.Equal(t, "0.3", sum.TotalIncome.String())
}

// ── Summary over date ranges ──────────────────────────────────────────────────

func TestSummaryInclusiveBounds(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewFinanceService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	for _, tx := range []model.Transaction{
		{UserID: userID, Type: "income", Category: "Sales", Amount: dec("100"), Date: day("2026-03-01")},
		{UserID: userID, Type: "income", Category: "Sales", Amount: dec("50"), Date: day("2026-03-10")},
		{UserID: userID, Type: "income", Category: "Sales", Amount: dec("25"), Date: day("2026-03-11")},
	} {
		tx := tx
		require.NoError(t, repo.Create(ctx, &tx))
	}

	start := day("2026-03-01")
	end := day("2026-03-10")
	sum, err := svc.Summary(ctx, userID, &start, &end)
	require.NoError(t, err)

	// Both endpoint days count; the day after the end does not.
	assert.True(t, sum.TotalIncome.Equal(dec("150")), "got %s", sum.TotalIncome)
}

func TestSummaryOpenEndedRange(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewFinanceService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	for _, tx := range []model.Transaction{
		{UserID: userID, Type: "income", Category: "Sales", Amount: dec("10"), Date: day("2026-01-01")},
		{UserID: userID, Type: "expense", Category: "Feed", Amount: dec("3"), Date: day("2026-06-01")},
	} {
		tx := tx
		require.NoError(t, repo.Create(ctx, &tx))
	}

	sum, err := svc.Summary(ctx, userID, nil, nil)
	require.NoError(t, err)
	assert.True(t, sum.NetProfit.Equal(dec("7")))
}

func TestSummaryExcludesOtherUsers(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewFinanceService(repo)
	ctx := context.Background()
	mine := uuid.NewString()
	theirs := uuid.NewString()

	require.NoError(t, repo.Create(ctx, &model.Transaction{
		UserID: mine, Type: "income", Category: "Sales", Amount: dec("10"), Date: day("2026-01-01"),
	}))
	require.NoError(t, repo.Create(ctx, &model.Transaction{
		UserID: theirs, Type: "income", Category: "Sales", Amount: dec("99"), Date: day("2026-01-01"),
	}))

	sum, err := svc.Summary(ctx, mine, nil, nil)
	require.NoError(t, err)
	assert.True(t, sum.TotalIncome.Equal(dec("10")))
}

// ── Transaction CRUD ──────────────────────────────────────────────────────────

func TestTransactionCRUD(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewFinanceService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	created, err := svc.CreateTransaction(ctx, userID, dto.CreateTransactionRequest{
		Type:     "expense",
		Category: "Feed",
		Amount:   dec("42.50"),
		Date:     "2026-02-15",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2026-02-15", created.Date)

	id := uuid.MustParse(created.ID)

	newAmount := dec("45.00")
	updated, err := svc.UpdateTransaction(ctx, userID, id, dto.UpdateTransactionRequest{Amount: &newAmount})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(dec("45.00")))
	// Untouched fields survive a partial update.
	assert.Equal(t, "Feed", updated.Category)
	assert.Equal(t, "2026-02-15", updated.Date)

	require.NoError(t, svc.DeleteTransaction(ctx, userID, id))

	_, err = svc.GetTransaction(ctx, userID, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTransactionWrongUserNotFound(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewFinanceService(repo)
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, uuid.NewString(), dto.CreateTransactionRequest{
		Type: "income", Category: "Sales", Amount: dec("1"), Date: "2026-01-01",
	})
	require.NoError(t, err)

	_, err = svc.GetTransaction(ctx, uuid.NewString(), uuid.MustParse(created.ID))
	assert.ErrorIs(t, err, ErrNotFound)
}
