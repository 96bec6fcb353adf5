package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"apexgrid/internal/cache"
)

const (
	// CookieName is the cookie carrying the opaque session token.
	CookieName = "apexgrid_session"

	sessionKeyPrefix = "session:"
	flashKeyPrefix   = "flash:"
)

// Flash is a one-shot status message, stored for exactly one subsequent
// page read and then discarded.
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Manager owns server-side session records keyed by an opaque token.
// A record with user id 0 is an anonymous visitor session, which exists
// only so flash messages survive the login/logout redirects.
type Manager interface {
	// Start issues a fresh token for the given user (0 for anonymous).
	// Callers wanting regeneration destroy the previous token first.
	Start(ctx context.Context, userID uint) (string, error)
	// Resolve returns the user id behind a token, ok=false if the token
	// is unknown or expired.
	Resolve(ctx context.Context, token string) (userID uint, ok bool, err error)
	Destroy(ctx context.Context, token string) error
	SetFlash(ctx context.Context, token string, flash Flash) error
	// PopFlash returns and clears the pending flash, nil if none.
	PopFlash(ctx context.Context, token string) (*Flash, error)
}

type record struct {
	UserID uint `json:"user_id"`
}

type manager struct {
	cache *cache.Client
	ttl   time.Duration
}

// NewManager creates a redis-backed session manager.
func NewManager(cache *cache.Client, ttl time.Duration) Manager {
	return &manager{cache: cache, ttl: ttl}
}

func (m *manager) Start(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	payload, err := json.Marshal(record{UserID: userID})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	if err := m.cache.Set(ctx, sessionKeyPrefix+token, payload, m.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (m *manager) Resolve(ctx context.Context, token string) (uint, bool, error) {
	data, err := m.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil || data == nil {
		return 0, false, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, false, fmt.Errorf("unmarshal session: %w", err)
	}
	return rec.UserID, true, nil
}

func (m *manager) Destroy(ctx context.Context, token string) error {
	_ = m.cache.Delete(ctx, flashKeyPrefix+token)
	return m.cache.Delete(ctx, sessionKeyPrefix+token)
}

func (m *manager) SetFlash(ctx context.Context, token string, flash Flash) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	return m.cache.Set(ctx, flashKeyPrefix+token, payload, m.ttl)
}

func (m *manager) PopFlash(ctx context.Context, token string) (*Flash, error) {
	key := flashKeyPrefix + token
	data, err := m.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, err
	}
	_ = m.cache.Delete(ctx, key)
	var flash Flash
	if err := json.Unmarshal(data, &flash); err != nil {
		return nil, fmt.Errorf("unmarshal flash: %w", err)
	}
	return &flash, nil
}
