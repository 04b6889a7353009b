package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact represents a submitted inquiry from the contact form.
// UserID is set when a registered user shares the submission email;
// once set it is never cleared.
type Contact struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName       string    `json:"firstName" gorm:"size:255;not null"`
	LastName        string    `json:"lastName" gorm:"size:255;not null"`
	Email           string    `json:"email" gorm:"size:255;not null;index"`
	Company         *string   `json:"company,omitempty" gorm:"size:255"`
	TelephoneNumber *string   `json:"telephoneNumber,omitempty" gorm:"size:50"`
	Subject         *string   `json:"subject,omitempty" gorm:"size:200"`
	Message         string    `json:"message" gorm:"type:text;not null"`
	UserID          *uint     `json:"userId,omitempty" gorm:"index"`
	CreatedAt       time.Time `json:"createdAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
