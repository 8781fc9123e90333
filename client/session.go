package client

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type School struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	LoginCode      string  `json:"login_code"`
	Name           string  `json:"name"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
}

// Session is the signed-in state of one school. The token is opaque to the
// client apart from its issue and expiry times.
type Session struct {
	Token     string
	School    School
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NewSession reads the token's timestamps without verifying the signature; the
// server does that on every call.
func NewSession(token string, school School) (*Session, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}

	s := &Session{Token: token, School: school}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// RefreshDue reports whether the token expires within window of now.
func (s *Session) RefreshDue(now time.Time, window time.Duration) bool {
	if s == nil || s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt.Add(-window))
}
