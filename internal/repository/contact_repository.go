package repository

import (
	"context"

	"gorm.io/gorm"

	"payhive/internal/model"
)

// ContactRepository defines contact persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByEmail(ctx context.Context, email string) ([]model.Contact, error)
	// LinkToUser sets the owner on prior contact rows for the email that
	// have no owner yet. Returns the number of rows updated.
	LinkToUser(ctx context.Context, email string, userID uint) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) FindByEmail(ctx context.Context, email string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) LinkToUser(ctx context.Context, email string, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("email = ? AND user_id IS NULL", email).
		Update("user_id", userID)
	return res.RowsAffected, res.Error
}
