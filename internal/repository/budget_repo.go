package repository

import (
	"context"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BudgetRepository interface {
	Create(ctx context.Context, b *model.Budget) error
	List(ctx context.Context, userID string) ([]model.Budget, error)
	ListActive(ctx context.Context, userID string) ([]model.Budget, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Budget, error)
	Update(ctx context.Context, b *model.Budget) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type budgetRepo struct{ db *gorm.DB }

func NewBudgetRepository(db *gorm.DB) BudgetRepository { return &budgetRepo{db: db} }

func (r *budgetRepo) Create(ctx context.Context, b *model.Budget) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *budgetRepo) List(ctx context.Context, userID string) ([]model.Budget, error) {
	var budgets []model.Budget
	err := ownedBy(r.db.WithContext(ctx), userID).Order("created_at DESC").Find(&budgets).Error
	return budgets, err
}

func (r *budgetRepo) ListActive(ctx context.Context, userID string) ([]model.Budget, error) {
	var budgets []model.Budget
	err := ownedBy(r.db.WithContext(ctx), userID).
		Where("active = ?", true).Order("created_at DESC").Find(&budgets).Error
	return budgets, err
}

func (r *budgetRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Budget, error) {
	var b model.Budget
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *budgetRepo) Update(ctx context.Context, b *model.Budget) error {
	return ownedBy(r.db.WithContext(ctx), b.UserID).Save(b).Error
}

func (r *budgetRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.Budget{}).Error
}
