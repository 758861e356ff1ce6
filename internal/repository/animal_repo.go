package repository

import (
	"context"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnimalRepository defines data access for the livestock registry.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type AnimalRepository interface {
	Create(ctx context.Context, a *model.Animal) error
	List(ctx context.Context, userID string) ([]model.Animal, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Animal, error)
	Update(ctx context.Context, a *model.Animal) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	CountActive(ctx context.Context, userID string) (int64, error)
}

type animalRepo struct{ db *gorm.DB }

func NewAnimalRepository(db *gorm.DB) AnimalRepository { return &animalRepo{db: db} }

func (r *animalRepo) Create(ctx context.Context, a *model.Animal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *animalRepo) List(ctx context.Context, userID string) ([]model.Animal, error) {
	var animals []model.Animal
	err := ownedBy(r.db.WithContext(ctx), userID).Order("created_at DESC").Find(&animals).Error
	return animals, err
}

func (r *animalRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Animal, error) {
	var a model.Animal
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *animalRepo) Update(ctx context.Context, a *model.Animal) error {
	return ownedBy(r.db.WithContext(ctx), a.UserID).Save(a).Error
}

// Delete is idempotent: removing a missing or non-owned row affects zero rows
// and is not an error.
func (r *animalRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.Animal{}).Error
}

func (r *animalRepo) CountActive(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := ownedBy(r.db.WithContext(ctx).Model(&model.Animal{}), userID).
		Where("status = ?", "active").Count(&n).Error
	return n, err
}
