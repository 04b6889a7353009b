package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"payhive/internal/auth"
	apperrors "payhive/internal/errors"
	"payhive/internal/model"
	"payhive/internal/repository"
)

const bcryptCost = 10

// AuthService composes the credential exchange and session lifecycle as
// an explicit three-step protocol: Authenticate, IssueSession, VerifySession.
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	IssueSession(ctx context.Context, user *model.User) (token string, err error)
	VerifySession(ctx context.Context, token string) (*auth.Claims, error)
	RenewSession(ctx context.Context, claims *auth.Claims) (token string, err error)
	RevokeSession(ctx context.Context, token string) error
}

type authService struct {
	userRepo     repository.UserRepository
	jwtService   *auth.JWTService
	sessionStore auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, sessionStore auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// Register creates a new user with a hashed password. The stored email is
// normalized so later auth and linkage lookups hit the same key.
func (s *authService) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	normalized := NormalizeEmail(email)

	existing, err := s.userRepo.FindByEmail(ctx, normalized)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        normalized,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate exchanges credentials for the user record. Any failure,
// whether a missing user or a wrong password, collapses to the same
// generic denial.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// IssueSession mints a session token for the user and records the session
// in the store for revocation and sliding renewal.
func (s *authService) IssueSession(ctx context.Context, user *model.User) (string, error) {
	sessionID, token, err := s.jwtService.MintSessionToken("", user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("mint session token: %w", err)
	}

	if err := s.sessionStore.StoreSession(ctx, sessionID, user.ID, user.Email, s.jwtService.TTL()); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// VerifySession validates signature and expiry, then checks the session
// record still exists. Malformed, expired, and revoked tokens all map to
// ErrSessionInvalid so the caller treats them as simply unauthenticated.
func (s *authService) VerifySession(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrSessionInvalid
	}

	userID, email, err := s.sessionStore.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.ErrSessionInvalid
	}
	if userID != claims.UserID || email != claims.Email {
		return nil, apperrors.ErrSessionInvalid
	}

	return claims, nil
}

// RenewSession reissues a token for an already verified session, keeping
// the session id and pushing both the token expiry and the store record
// TTL forward.
func (s *authService) RenewSession(ctx context.Context, claims *auth.Claims) (string, error) {
	_, token, err := s.jwtService.MintSessionToken(claims.ID, claims.UserID, claims.Email)
	if err != nil {
		return "", fmt.Errorf("mint session token: %w", err)
	}

	if err := s.sessionStore.TouchSession(ctx, claims.ID, s.jwtService.TTL()); err != nil {
		return "", fmt.Errorf("touch session: %w", err)
	}

	return token, nil
}

// RevokeSession deletes the session record so the token stops verifying.
func (s *authService) RevokeSession(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return apperrors.ErrSessionInvalid
	}
	return s.sessionStore.DeleteSession(ctx, claims.ID)
}
