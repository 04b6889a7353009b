package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "payhive/internal/errors"
	"payhive/internal/mail"
	"payhive/internal/model"
)

func newNewsletterService(newsletterRepo *MockNewsletterRepository, userRepo *MockUserRepository, sender *MockSender) NewsletterService {
	return NewNewsletterService(newsletterRepo, userRepo, sender, mail.NewTemplates(), "hello@payhive.co.uk")
}

func TestSubscribe_FirstSubscriber(t *testing.T) {
	newsletterRepo := new(MockNewsletterRepository)
	userRepo := new(MockUserRepository)
	sender := new(MockSender)

	newsletterRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	newsletterRepo.On("Count", mock.Anything).Return(int64(0), nil)
	newsletterRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Newsletter")).Return(nil)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mail.Message")).Return(nil)

	svc := newNewsletterService(newsletterRepo, userRepo, sender)

	refNumber, err := svc.Subscribe(context.Background(), "Jane@Example.COM")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), refNumber)

	// Stored email is normalized.
	created := newsletterRepo.Calls[2].Arguments.Get(1).(*model.Newsletter)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, int64(0), created.RefNumber)

	// Welcome to the subscriber plus internal notification.
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	newsletterRepo := new(MockNewsletterRepository)
	userRepo := new(MockUserRepository)
	sender := new(MockSender)

	existing := &model.Newsletter{Email: "jane@example.com", RefNumber: 0}
	newsletterRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

	svc := newNewsletterService(newsletterRepo, userRepo, sender)

	_, err := svc.Subscribe(context.Background(), "jane@example.com")

	assert.ErrorIs(t, err, apperrors.ErrAlreadySubscribed)
	newsletterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubscribe_DuplicateKeyRaceMapsToConflict(t *testing.T) {
	newsletterRepo := new(MockNewsletterRepository)
	userRepo := new(MockUserRepository)
	sender := new(MockSender)

	// The advisory check misses, but the unique index catches the race.
	newsletterRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	newsletterRepo.On("Count", mock.Anything).Return(int64(3), nil)
	newsletterRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Newsletter")).Return(gorm.ErrDuplicatedKey)

	svc := newNewsletterService(newsletterRepo, userRepo, sender)

	_, err := svc.Subscribe(context.Background(), "jane@example.com")

	assert.ErrorIs(t, err, apperrors.ErrAlreadySubscribed)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubscribe_LinksExistingUser(t *testing.T) {
	newsletterRepo := new(MockNewsletterRepository)
	userRepo := new(MockUserRepository)
	sender := new(MockSender)

	user := &model.User{ID: 4, Email: "jane@example.com"}
	newsletterRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	newsletterRepo.On("Count", mock.Anything).Return(int64(5), nil)
	newsletterRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Newsletter")).Return(nil)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mail.Message")).Return(nil)

	svc := newNewsletterService(newsletterRepo, userRepo, sender)

	refNumber, err := svc.Subscribe(context.Background(), "jane@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), refNumber)

	created := newsletterRepo.Calls[2].Arguments.Get(1).(*model.Newsletter)
	assert.NotNil(t, created.UserID)
	assert.Equal(t, uint(4), *created.UserID)
}

func TestSubscribe_WelcomeFailureCompensates(t *testing.T) {
	newsletterRepo := new(MockNewsletterRepository)
	userRepo := new(MockUserRepository)
	sender := new(MockSender)

	newsletterRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	newsletterRepo.On("Count", mock.Anything).Return(int64(0), nil)
	newsletterRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Newsletter")).Return(nil)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mail.Message")).Return(errors.New("provider down"))
	newsletterRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	svc := newNewsletterService(newsletterRepo, userRepo, sender)

	_, err := svc.Subscribe(context.Background(), "jane@example.com")

	assert.ErrorIs(t, err, apperrors.ErrEmailSendFailed)
	// The compensating delete removed the inserted row.
	newsletterRepo.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
	// Only the welcome send was attempted, never the notification.
	sender.AssertNumberOfCalls(t, "Send", 1)
}
