package dto

import "github.com/shopspring/decimal"

// ── Transactions ──────────────────────────────────────────────────────────────

type CreateTransactionRequest struct {
	Type        string          `json:"type"        validate:"required,oneof=income expense"`
	Category    string          `json:"category"    validate:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount"      validate:"required,gt=0"`
	Date        string          `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
}

type UpdateTransactionRequest struct {
	Type        *string          `json:"type"        validate:"omitempty,oneof=income expense"`
	Category    *string          `json:"category"    validate:"omitempty,min=1,max=100"`
	Amount      *decimal.Decimal `json:"amount"      validate:"omitempty,gt=0"`
	Date        *string          `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description"`
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// ── Financial summary ─────────────────────────────────────────────────────────

type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// FinancialSummaryResponse always carries non-nil category slices — an empty
// range serializes as [] rather than null.
type FinancialSummaryResponse struct {
	TotalIncome        decimal.Decimal  `json:"total_income"`
	TotalExpenses      decimal.Decimal  `json:"total_expenses"`
	NetProfit          decimal.Decimal  `json:"net_profit"`
	IncomeByCategory   []CategoryAmount `json:"income_by_category"`
	ExpensesByCategory []CategoryAmount `json:"expenses_by_category"`
}

// ── Budgets ───────────────────────────────────────────────────────────────────

type CreateBudgetRequest struct {
	Name           string           `json:"name"            validate:"required,min=1,max=100"`
	Category       string           `json:"category"        validate:"required,min=1,max=100"`
	TargetAmount   decimal.Decimal  `json:"target_amount"   validate:"required,gt=0"`
	Period         string           `json:"period"          validate:"required,oneof=weekly monthly quarterly yearly"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold" validate:"omitempty,gt=0,max=100"`
}

type UpdateBudgetRequest struct {
	Name           *string          `json:"name"            validate:"omitempty,min=1,max=100"`
	Category       *string          `json:"category"        validate:"omitempty,min=1,max=100"`
	TargetAmount   *decimal.Decimal `json:"target_amount"   validate:"omitempty,gt=0"`
	Period         *string          `json:"period"          validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold" validate:"omitempty,gt=0,max=100"`
	Active         *bool            `json:"active"`
}

type BudgetResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	Period         string          `json:"period"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
	Active         bool            `json:"active"`
	CreatedAt      string          `json:"created_at"`
}

// BudgetStatusResponse is computed at read time — spend against target
// within the budget's current calendar-aligned period window.
type BudgetStatusResponse struct {
	BudgetID     string          `json:"budget_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Period       string          `json:"period"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	ActualSpend  decimal.Decimal `json:"actual_spend"`
	PercentUsed  decimal.Decimal `json:"percent_used"`
	Alert        bool            `json:"alert"`
	WindowStart  string          `json:"window_start"`
	WindowEnd    string          `json:"window_end"`
}

// ── Accounts / trial balance ──────────────────────────────────────────────────

type CreateAccountRequest struct {
	Number      string           `json:"number"      validate:"required,min=1,max=20"`
	Name        string           `json:"name"        validate:"required,min=1,max=100"`
	Type        string           `json:"type"        validate:"required,oneof=asset liability equity revenue expense"`
	Subtype     *string          `json:"subtype"     validate:"omitempty,max=50"`
	Balance     *decimal.Decimal `json:"balance"`
	Description *string          `json:"description"`
}

type UpdateAccountRequest struct {
	Number      *string          `json:"number"      validate:"omitempty,min=1,max=20"`
	Name        *string          `json:"name"        validate:"omitempty,min=1,max=100"`
	Type        *string          `json:"type"        validate:"omitempty,oneof=asset liability equity revenue expense"`
	Subtype     *string          `json:"subtype"     validate:"omitempty,max=50"`
	Balance     *decimal.Decimal `json:"balance"`
	Description *string          `json:"description"`
}

type AccountResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Subtype     *string         `json:"subtype,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type TrialBalanceRow struct {
	Number string          `json:"number"`
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

type TrialBalanceResponse struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"total_debits"`
	TotalCredits decimal.Decimal   `json:"total_credits"`
	Balanced     bool              `json:"balanced"`
}
