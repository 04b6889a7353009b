package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"payhive/internal/mail"
	"payhive/internal/model"
	"payhive/internal/repository"
)

// ContactInput carries a contact form submission.
type ContactInput struct {
	FirstName       string
	LastName        string
	Email           string
	Company         string
	TelephoneNumber string
	Subject         string
	Message         string
}

// ContactResult is returned on a successful submission.
type ContactResult struct {
	Contact      *model.Contact
	LinkedToUser bool
	User         *model.User
}

// ValidateContactInput checks the submission and returns one message per
// failed field, empty when everything passes. Validation always runs
// before any persistence.
func ValidateContactInput(input ContactInput) []string {
	var errs []string

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, "FirstName is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, "LastName is required")
	}
	if !IsValidEmail(input.Email) {
		errs = append(errs, "Valid email is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		errs = append(errs, "Message is required")
	}
	if len(input.Subject) > 200 {
		errs = append(errs, "Subject must be less than 200 characters")
	}
	if len(input.Message) > 2000 {
		errs = append(errs, "Message must be less than 2000 characters")
	}

	return errs
}

// ContactService handles contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*ContactResult, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	userRepo    repository.UserRepository
	sender      mail.Sender
	templates   *mail.Templates
	notifyEmail string
}

// NewContactService creates a new contact service.
func NewContactService(
	contactRepo repository.ContactRepository,
	userRepo repository.UserRepository,
	sender mail.Sender,
	templates *mail.Templates,
	notifyEmail string,
) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		userRepo:    userRepo,
		sender:      sender,
		templates:   templates,
		notifyEmail: notifyEmail,
	}
}

// Submit persists a validated contact submission. When a registered user
// shares the email, prior unowned contact rows for that email are
// retroactively linked and the new row is created with the owner set.
// The internal notification email is best-effort: a send failure is
// logged and never rolls back the inserted row.
func (s *contactService) Submit(ctx context.Context, input ContactInput) (*ContactResult, error) {
	email := NormalizeEmail(input.Email)

	var owner *model.User
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		owner = user
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if owner != nil {
		if _, err := s.contactRepo.LinkToUser(ctx, email, owner.ID); err != nil {
			return nil, fmt.Errorf("link prior contacts: %w", err)
		}
	}

	contact := &model.Contact{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Message:   strings.TrimSpace(input.Message),
	}
	if v := strings.TrimSpace(input.Company); v != "" {
		contact.Company = &v
	}
	if v := strings.TrimSpace(input.TelephoneNumber); v != "" {
		contact.TelephoneNumber = &v
	}
	if v := strings.TrimSpace(input.Subject); v != "" {
		contact.Subject = &v
	}
	if owner != nil {
		contact.UserID = &owner.ID
		contact.User = owner
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.notify(ctx, contact, owner != nil)

	return &ContactResult{
		Contact:      contact,
		LinkedToUser: owner != nil,
		User:         owner,
	}, nil
}

func (s *contactService) notify(ctx context.Context, contact *model.Contact, linked bool) {
	data := mail.ContactNotificationData{
		FirstName:    contact.FirstName,
		LastName:     contact.LastName,
		Email:        contact.Email,
		Message:      contact.Message,
		LinkedToUser: linked,
	}
	if contact.Company != nil {
		data.Company = *contact.Company
	}
	if contact.TelephoneNumber != nil {
		data.Telephone = *contact.TelephoneNumber
	}
	if contact.Subject != nil {
		data.Subject = *contact.Subject
	}

	html, err := s.templates.ContactNotification(data)
	if err != nil {
		log.Printf("contact notification render failed: %v", err)
		return
	}
	err = s.sender.Send(ctx, mail.Message{
		To:      s.notifyEmail,
		Subject: "New contact form submission",
		HTML:    html,
		Tag:     "contact-us",
	})
	if err != nil {
		log.Printf("contact notification send failed: %v", err)
	}
}
