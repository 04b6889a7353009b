package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payhive/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	StoreSession(ctx context.Context, sessionID string, userID uint, email string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (userID uint, email string, err error)
	TouchSession(ctx context.Context, sessionID string, ttl time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionStore keeps one record per live session in Redis. A token whose
// session id has no record is treated as revoked.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// StoreSession stores a session record in Redis with TTL.
func (s *SessionStore) StoreSession(ctx context.Context, sessionID string, userID uint, email string, ttl time.Duration) error {
	data := map[string]interface{}{
		"user_id": userID,
		"email":   email,
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	key := sessionKeyPrefix + sessionID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetSession retrieves session data from Redis.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (userID uint, email string, err error) {
	key := sessionKeyPrefix + sessionID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return 0, "", fmt.Errorf("session not found")
	}

	var sessionData map[string]interface{}
	if err := json.Unmarshal(data, &sessionData); err != nil {
		return 0, "", fmt.Errorf("unmarshal session data: %w", err)
	}

	uid, ok := sessionData["user_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid user_id in session data")
	}
	userID = uint(uid)

	email, ok = sessionData["email"].(string)
	if !ok {
		return 0, "", fmt.Errorf("invalid email in session data")
	}

	return userID, email, nil
}

// TouchSession extends a session record's TTL for sliding renewal.
func (s *SessionStore) TouchSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	key := sessionKeyPrefix + sessionID
	return s.cache.Expire(ctx, key, ttl)
}

// DeleteSession removes a session record from Redis (sign-out revocation).
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	key := sessionKeyPrefix + sessionID
	return s.cache.Delete(ctx, key)
}
