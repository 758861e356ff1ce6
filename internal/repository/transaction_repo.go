package repository

import (
	"context"
	"time"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) error
	List(ctx context.Context, userID string) ([]model.Transaction, error)
	// ListByDateRange returns the owner's transactions with inclusive bounds
	// on both ends; a nil bound leaves that end open. Rows feed the in-memory
	// decimal aggregation — summation never happens in SQL because sqlite
	// would sum the decimal column as float.
	ListByDateRange(ctx context.Context, userID string, start, end *time.Time) ([]model.Transaction, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) List(ctx context.Context, userID string) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := ownedBy(r.db.WithContext(ctx), userID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) ListByDateRange(ctx context.Context, userID string, start, end *time.Time) ([]model.Transaction, error) {
	q := ownedBy(r.db.WithContext(ctx), userID)
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}
	var txs []model.Transaction
	err := q.Order("date ASC").Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) Update(ctx context.Context, t *model.Transaction) error {
	return ownedBy(r.db.WithContext(ctx), t.UserID).Save(t).Error
}

func (r *transactionRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.Transaction{}).Error
}
