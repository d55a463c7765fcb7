// Package identity exposes the current actor to the rest of the client.
// Authentication itself happens elsewhere; this package only answers
// "who is signed in right now".
package identity

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// Provider reports the currently authenticated actor id, if any.
type Provider interface {
	CurrentUserID() (string, bool)
}

// Static is a fixed-actor provider, useful for tests and offline tooling.
type Static string

func (s Static) CurrentUserID() (string, bool) {
	return string(s), s != ""
}

var errNoSubject = errors.New("token has no subject")

// TokenSession derives the actor id from a bearer access token's subject
// claim. The token is parsed without signature verification: the backend is
// the one verifying it, the client only needs the subject.
type TokenSession struct {
	mu     sync.RWMutex
	token  string
	userID string
}

func NewTokenSession() *TokenSession {
	return &TokenSession{}
}

// SignIn installs the access token for the session.
func (s *TokenSession) SignIn(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("invalid access token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return fmt.Errorf("invalid access token: %w", err)
	}
	if sub == "" {
		return errNoSubject
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = sub
	return nil
}

// SignOut clears the session.
func (s *TokenSession) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
}

// CurrentUserID implements Provider.
func (s *TokenSession) CurrentUserID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID, s.userID != ""
}

// Token returns the raw access token for outbound requests, or "".
func (s *TokenSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
