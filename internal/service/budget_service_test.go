package service

import (
	"context"
	"testing"
	"time"

	"ranchops/internal/model"
	"ranchops/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubBudgetRepo is an in-memory BudgetRepository for testing.
type stubBudgetRepo struct {
	budgets map[string]*model.Budget
}

func newStubBudgetRepo() *stubBudgetRepo {
	return &stubBudgetRepo{budgets: make(map[string]*model.Budget)}
}

func (r *stubBudgetRepo) Create(_ context.Context, b *model.Budget) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	cp := *b
	r.budgets[b.ID] = &cp
	return nil
}

func (r *stubBudgetRepo) List(_ context.Context, userID string) ([]model.Budget, error) {
	var out []model.Budget
	for _, b := range r.budgets {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBudgetRepo) ListActive(_ context.Context, userID string) ([]model.Budget, error) {
	var out []model.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.Active {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBudgetRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Budget, error) {
	b, ok := r.budgets[id.String()]
	if !ok || b.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *stubBudgetRepo) Update(_ context.Context, b *model.Budget) error {
	cp := *b
	r.budgets[b.ID] = &cp
	return nil
}

func (r *stubBudgetRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	if b, ok := r.budgets[id.String()]; ok && b.UserID == userID {
		delete(r.budgets, id.String())
	}
	return nil
}

var _ repository.BudgetRepository = (*stubBudgetRepo)(nil)

// ── Period windows ────────────────────────────────────────────────────────────

func TestPeriodWindowWeeklyStartsMonday(t *testing.T) {
	// 2026-08-27 is a Thursday; the ISO week starts Monday 2026-08-24.
	now := time.Date(2026, 8, 27, 15, 30, 0, 0, time.UTC)
	start, end := periodWindow("weekly", now)
	assert.Equal(t, "2026-08-24", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-27", end.Format("2006-01-02"))
}

func TestPeriodWindowWeeklyOnMonday(t *testing.T) {
	// Evaluating on a Monday: window start is that same day.
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	start, end := periodWindow("weekly", now)
	assert.Equal(t, "2026-08-24", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-24", end.Format("2006-01-02"))
}

func TestPeriodWindowWeeklyOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	start, _ := periodWindow("weekly", now)
	assert.Equal(t, "2026-08-24", start.Format("2006-01-02"))
}

func TestPeriodWindowMonthly(t *testing.T) {
	now := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	start, end := periodWindow("monthly", now)
	assert.Equal(t, "2026-08-01", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-27", end.Format("2006-01-02"))
}

func TestPeriodWindowQuarterly(t *testing.T) {
	for _, tc := range []struct {
		month time.Month
		want  string
	}{
		{time.February, "2026-01-01"},
		{time.June, "2026-04-01"},
		{time.August, "2026-07-01"},
		{time.December, "2026-10-01"},
	} {
		now := time.Date(2026, tc.month, 15, 0, 0, 0, 0, time.UTC)
		start, _ := periodWindow("quarterly", now)
		assert.Equal(t, tc.want, start.Format("2006-01-02"), "month %s", tc.month)
	}
}

func TestPeriodWindowYearly(t *testing.T) {
	now := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	start, _ := periodWindow("yearly", now)
	assert.Equal(t, "2026-01-01", start.Format("2006-01-02"))
}

// ── Budget status ─────────────────────────────────────────────────────────────

func setupBudgetTest(t *testing.T, now time.Time) (*budgetService, *stubBudgetRepo, *stubTransactionRepo) {
	t.Helper()
	budgets := newStubBudgetRepo()
	txs := newStubTransactionRepo()
	svc := NewBudgetService(budgets, txs).(*budgetService)
	svc.now = func() time.Time { return now }
	return svc, budgets, txs
}

func TestBudgetStatusComputesSpendAndPercent(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	svc, budgets, txs := setupBudgetTest(t, now)
	ctx := context.Background()
	userID := uuid.NewString()

	require.NoError(t, budgets.Create(ctx, &model.Budget{
		UserID: userID, Name: "Feed budget", Category: "Feed",
		TargetAmount: dec("1000"), Period: "monthly",
		AlertThreshold: dec("80"), Active: true,
	}))

	// In-window expenses in the budget's category.
	require.NoError(t, txs.Create(ctx, &model.Transaction{
		UserID: userID, Type: "expense", Category: "Feed", Amount: dec("300"), Date: day("2026-08-05"),
	}))
	require.NoError(t, txs.Create(ctx, &model.Transaction{
		UserID: userID, Type: "expense", Category: "Feed", Amount: dec("150"), Date: day("2026-08-20"),
	}))
	// Wrong category, wrong type, and out-of-window rows are all ignored.
	require.NoError(t, txs.Create(ctx, &model.Transaction{
		UserID: userID, Type: "expense", Category: "Vet", Amount: dec("500"), Date: day("2026-08-10"),
	}))
	require.NoError(t, txs.Create(ctx, &model.Transaction{
		UserID: userID, Type: "income", Category: "Feed", Amount: dec("999"), Date: day("2026-08-10"),
	}))
	require.NoError(t, txs.Create(ctx, &model.Transaction{
		UserID: userID, Type: "expense", Category: "Feed", Amount: dec("700"), Date: day("2026-07-31"),
	}))

	statuses, err := svc.Statuses(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	st := statuses[0]
	assert.True(t, st.ActualSpend.Equal(dec("450")), "spend %s", st.ActualSpend)
	assert.True(t, st.PercentUsed.Equal(dec("45")), "percent %s", st.PercentUsed)
	assert.False(t, st.Alert)
	assert.Equal(t, "2026-08-01", st.WindowStart)
	assert.Equal(t, "2026-08-27", st.WindowEnd)
}

func TestBudgetStatusAlertAtThreshold(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	svc, budgets, txs := setupBudgetTest(t, now)
	ctx := context.Background()
	userID := uuid.NewString()

	require.NoError(t, budgets.Create(ctx, &model.Budget{
		UserID: userID, Name: "Feed", Category: "Feed",
		TargetAmount: dec("100"), Period: "monthly",
		AlertThreshold: dec("80"), Active: true,
	}))
	// Exactly at the threshold: alert fires (>=, not >).
	require.NoError(t, txs.Create(ctx, &model.Transaction{
		UserID: userID, Type: "expense", Category: "Feed", Amount: dec("80"), Date: day("2026-08-10"),
	}))

	statuses, err := svc.Statuses(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].PercentUsed.Equal(dec("80")))
	assert.True(t, statuses[0].Alert)
}

func TestBudgetStatusOverspendExceedsHundredPercent(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	svc, budgets, txs := setupBudgetTest(t, now)
	ctx := context.Background()
	userID := uuid.NewString()

	require.NoError(t, budgets.Create(ctx, &model.Budget{
		UserID: userID, Name: "Feed", Category: "Feed",
		TargetAmount: dec("100"), Period: "monthly",
		AlertThreshold: dec("80"), Active: true,
	}))
	require.NoError(t, txs.Create(ctx, &model.Transaction{
		UserID: userID, Type: "expense", Category: "Feed", Amount: dec("250"), Date: day("2026-08-10"),
	}))

	statuses, err := svc.Statuses(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].PercentUsed.Equal(dec("250")))
	assert.True(t, statuses[0].Alert)
}

func TestBudgetStatusFiltersByPeriodAndSkipsInactive(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	svc, budgets, _ := setupBudgetTest(t, now)
	ctx := context.Background()
	userID := uuid.NewString()

	require.NoError(t, budgets.Create(ctx, &model.Budget{
		UserID: userID, Name: "Monthly feed", Category: "Feed",
		TargetAmount: dec("100"), Period: "monthly", AlertThreshold: dec("80"), Active: true,
	}))
	require.NoError(t, budgets.Create(ctx, &model.Budget{
		UserID: userID, Name: "Yearly vet", Category: "Vet",
		TargetAmount: dec("1000"), Period: "yearly", AlertThreshold: dec("80"), Active: true,
	}))
	require.NoError(t, budgets.Create(ctx, &model.Budget{
		UserID: userID, Name: "Retired", Category: "Fuel",
		TargetAmount: dec("100"), Period: "monthly", AlertThreshold: dec("80"), Active: false,
	}))

	all, err := svc.Statuses(ctx, userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	monthly, err := svc.Statuses(ctx, userID, "monthly")
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.Equal(t, "Monthly feed", monthly[0].Name)
}

func TestBudgetStatusZeroTarget(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	svc, budgets, txs := setupBudgetTest(t, now)
	ctx := context.Background()
	userID := uuid.NewString()

	require.NoError(t, budgets.Create(ctx, &model.Budget{
		UserID: userID, Name: "Empty", Category: "Misc",
		TargetAmount: dec("0"), Period: "monthly", AlertThreshold: dec("80"), Active: true,
	}))
	require.NoError(t, txs.Create(ctx, &model.Transaction{
		UserID: userID, Type: "expense", Category: "Misc", Amount: dec("10"), Date: day("2026-08-10"),
	}))

	statuses, err := svc.Statuses(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	// Division by a zero target is never attempted.
	assert.True(t, statuses[0].PercentUsed.IsZero())
}
