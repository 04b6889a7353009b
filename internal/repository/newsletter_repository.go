package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"payhive/internal/model"
)

// NewsletterRepository defines newsletter persistence operations.
type NewsletterRepository interface {
	Create(ctx context.Context, sub *model.Newsletter) error
	FindByEmail(ctx context.Context, email string) (*model.Newsletter, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository builds a GORM-backed repository.
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(ctx context.Context, sub *model.Newsletter) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*model.Newsletter, error) {
	var sub model.Newsletter
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *newsletterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Newsletter{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *newsletterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Newsletter{}, "id = ?", id).Error
}
