package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedIssuer(secret string, ttl time.Duration, now time.Time) *TokenIssuer {
	issuer := NewTokenIssuer(secret, ttl)
	issuer.now = func() time.Time { return now }
	return issuer
}

func TestIssueAndParse(t *testing.T) {
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	issuer := fixedIssuer("s3cret", 12*time.Hour, now)

	token, err := issuer.Issue(42, "central")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SchoolID)
	assert.Equal(t, "central", claims.Code)
	assert.Equal(t, "central", claims.LoginCode)
	assert.Equal(t, now.Add(12*time.Hour).Unix(), claims.ExpiresAt.Unix())

	again, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claims, again)
}

func TestParseRejectsExpired(t *testing.T) {
	issued := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	token, err := fixedIssuer("s3cret", time.Hour, issued).Issue(1, "central")
	require.NoError(t, err)

	later := fixedIssuer("s3cret", time.Hour, issued.Add(2*time.Hour))
	_, err = later.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := later.ParseForRefresh(token, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.SchoolID)

	muchLater := fixedIssuer("s3cret", time.Hour, issued.Add(48*time.Hour))
	_, err = muchLater.ParseForRefresh(token, 24*time.Hour)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("one", time.Hour).Issue(1, "central")
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingSchoolID(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"code": "central",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("s3cret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"school_id": 1,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("s3cret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseEmpty(t *testing.T) {
	_, err := NewTokenIssuer("s3cret", time.Hour).Parse("  ")
	assert.True(t, errors.Is(err, ErrNoToken))
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	token, err = BearerToken("bearer   abc.def ")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = BearerToken("")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = BearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = BearerToken("bearer")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = BearerToken("Bearerabc.def")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = BearerToken("Basic Zm9vOmJhcg==")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
