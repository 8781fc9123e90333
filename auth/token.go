package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the session payload. Code and LoginCode carry the same value; older
// clients read one or the other.
type Claims struct {
	SchoolID  int64  `json:"school_id"`
	Code      string `json:"code"`
	LoginCode string `json:"login_code"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

// Issue signs an HS256 token for the school.
func (t *TokenIssuer) Issue(schoolID int64, code string) (string, error) {
	now := t.now()
	claims := Claims{
		SchoolID:  schoolID,
		Code:      code,
		LoginCode: code,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry.
func (t *TokenIssuer) Parse(raw string) (*Claims, error) {
	return t.parse(raw, 0)
}

// ParseForRefresh accepts tokens that expired less than grace ago.
func (t *TokenIssuer) ParseForRefresh(raw string, grace time.Duration) (*Claims, error) {
	return t.parse(raw, grace)
}

func (t *TokenIssuer) parse(raw string, leeway time.Duration) (*Claims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrNoToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.SchoolID <= 0 {
		return nil, fmt.Errorf("%w: missing school_id", ErrInvalidToken)
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header value. The scheme
// is matched case-insensitively.
func BearerToken(header string) (string, error) {
	header = strings.TrimLeft(header, " \t")
	if strings.TrimSpace(header) == "" {
		return "", ErrNoToken
	}
	const scheme = "bearer"
	if len(header) < len(scheme) || !strings.EqualFold(header[:len(scheme)], scheme) {
		return "", ErrInvalidToken
	}
	rest := header[len(scheme):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(rest)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
