package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Newsletter represents a newsletter subscription. The unique index on
// Email is the authoritative duplicate guard; the application-level
// existence check before insert is only an optimization.
type Newsletter struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	UserID    *uint     `json:"userId,omitempty" gorm:"index"`
	RefNumber int64     `json:"refNumber" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Newsletter) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
