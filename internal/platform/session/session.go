// Package session holds the authenticated user's identity for the
// lifetime of the process, restored from the durable store at startup.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/ports"
)

// Session caches the backend-issued JWT. The token is never verified
// locally, only inspected: the backend is the authority, the client
// just avoids sending requests it knows are expired.
type Session struct {
	store ports.DraftStore
	now   func() time.Time

	mu     sync.RWMutex
	token  string
	userID string
	expiry time.Time
}

func New(store ports.DraftStore) *Session {
	return &Session{store: store, now: time.Now}
}

// Load restores a previously saved token. A missing or unparseable
// token leaves the session unauthenticated without failing startup.
func (s *Session) Load(ctx context.Context) error {
	token, err := s.store.LoadToken(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	if err := s.apply(token); err != nil {
		log.Printf("discarding stored token: %v", err)
		return s.store.ClearToken(ctx)
	}
	return nil
}

// SetToken accepts a fresh token from a login response and persists it.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.apply(token); err != nil {
		return &domain.AuthError{Reason: "malformed token: " + err.Error()}
	}
	return s.store.SaveToken(ctx, token)
}

func (s *Session) apply(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return err
	}

	var userID string
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		userID = sub
	} else if id, ok := claims["id"].(string); ok {
		userID = id
	}

	var expiry time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiry = exp.Time
	}

	s.mu.Lock()
	s.token = token
	s.userID = userID
	s.expiry = expiry
	s.mu.Unlock()
	return nil
}

// Clear forgets the identity locally and in the store.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.userID = ""
	s.expiry = time.Time{}
	s.mu.Unlock()
	return s.store.ClearToken(ctx)
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Token satisfies the HTTP client's bearer token source.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return &domain.AuthError{Reason: "not signed in"}
	}
	if !s.expiry.IsZero() && s.now().After(s.expiry) {
		return &domain.AuthError{Reason: "session expired"}
	}
	return nil
}

func (s *Session) Credentials() domain.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Credentials{UserID: s.userID, Token: s.token}
}
