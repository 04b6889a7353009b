package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	apperrors "payhive/internal/errors"
	"payhive/internal/mail"
	"payhive/internal/model"
	"payhive/internal/repository"
)

// NewsletterService handles newsletter subscriptions.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (refNumber int64, err error)
}

type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	userRepo       repository.UserRepository
	sender         mail.Sender
	templates      *mail.Templates
	notifyEmail    string
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(
	newsletterRepo repository.NewsletterRepository,
	userRepo repository.UserRepository,
	sender mail.Sender,
	templates *mail.Templates,
	notifyEmail string,
) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		userRepo:       userRepo,
		sender:         sender,
		templates:      templates,
		notifyEmail:    notifyEmail,
	}
}

// Subscribe inserts a newsletter row for the normalized email and sends
// the welcome email. A second attempt from the same email returns
// ErrAlreadySubscribed with nothing stored or sent. If the welcome email
// fails to send, the inserted row is deleted again and the error is
// surfaced; the row write happens-before any email. The unique index on
// email is the real duplicate guard, so a lost check-then-insert race
// also maps to ErrAlreadySubscribed.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (int64, error) {
	normalized := NormalizeEmail(email)

	if _, err := s.newsletterRepo.FindByEmail(ctx, normalized); err == nil {
		return 0, apperrors.ErrAlreadySubscribed
	} else if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("check subscription: %w", err)
	}

	var userID *uint
	if user, err := s.userRepo.FindByEmail(ctx, normalized); err == nil {
		userID = &user.ID
	} else if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("look up user: %w", err)
	}

	refNumber, err := s.newsletterRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("next reference number: %w", err)
	}

	sub := &model.Newsletter{
		Email:     normalized,
		UserID:    userID,
		RefNumber: refNumber,
	}
	if err := s.newsletterRepo.Create(ctx, sub); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return 0, apperrors.ErrAlreadySubscribed
		}
		return 0, fmt.Errorf("create subscription: %w", err)
	}

	now := time.Now()
	if err := s.sendWelcome(ctx, normalized, now); err != nil {
		// Compensating delete so a failed welcome leaves no row behind.
		if delErr := s.newsletterRepo.Delete(ctx, sub.ID); delErr != nil {
			log.Printf("newsletter compensating delete failed for %s: %v", normalized, delErr)
		}
		return 0, apperrors.ErrEmailSendFailed
	}

	s.notify(ctx, normalized, refNumber, now)

	return refNumber, nil
}

func (s *newsletterService) sendWelcome(ctx context.Context, email string, at time.Time) error {
	html, err := s.templates.NewsletterWelcome(email, at)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, mail.Message{
		To:      email,
		Subject: "Welcome to PayHive Newsletter!",
		HTML:    html,
		Tag:     "newsletter",
	})
}

// notify sends the internal notification naming the reference number.
// Best-effort: by this point the subscriber already got their welcome.
func (s *newsletterService) notify(ctx context.Context, email string, refNumber int64, at time.Time) {
	html, err := s.templates.NewsletterNotification(email, refNumber, at)
	if err != nil {
		log.Printf("newsletter notification render failed: %v", err)
		return
	}
	err = s.sender.Send(ctx, mail.Message{
		To:      s.notifyEmail,
		Subject: fmt.Sprintf("New newsletter subscription #%d", refNumber),
		HTML:    html,
		Tag:     "newsletter",
	})
	if err != nil {
		log.Printf("newsletter notification send failed: %v", err)
	}
}
