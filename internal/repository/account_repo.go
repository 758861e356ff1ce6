package repository

import (
	"context"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	// List orders by account number — chart-of-accounts convention, not
	// creation time.
	List(ctx context.Context, userID string) ([]model.Account, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Account, error)
	Update(ctx context.Context, a *model.Account) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type accountRepo struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) AccountRepository { return &accountRepo{db: db} }

func (r *accountRepo) Create(ctx context.Context, a *model.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *accountRepo) List(ctx context.Context, userID string) ([]model.Account, error) {
	var accounts []model.Account
	err := ownedBy(r.db.WithContext(ctx), userID).Order("number ASC").Find(&accounts).Error
	return accounts, err
}

func (r *accountRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Account, error) {
	var a model.Account
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) Update(ctx context.Context, a *model.Account) error {
	return ownedBy(r.db.WithContext(ctx), a.UserID).Save(a).Error
}

func (r *accountRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.Account{}).Error
}
