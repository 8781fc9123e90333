package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// PasswordCost is the bcrypt work factor used for new hashes.
var PasswordCost = bcrypt.DefaultCost

// dummyHash is compared against when the login code is unknown so both failure
// paths pay for one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("weighroom-dummy-password"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Credential is the stored secret for one login code.
type Credential struct {
	SchoolID     int64
	Code         string
	PasswordHash string
}

// CredentialLookup finds a credential by login code. It returns found=false
// (and no error) for an unknown code.
type CredentialLookup func(ctx context.Context, code string) (cred Credential, found bool, err error)

// Authenticate verifies a code/password pair. Unknown codes and wrong passwords
// both return ErrInvalidCredentials.
func Authenticate(ctx context.Context, lookup CredentialLookup, code, password string) (Credential, error) {
	cred, found, err := lookup(ctx, code)
	if err != nil {
		return Credential{}, fmt.Errorf("look up school %q: %w", code, err)
	}

	if !found {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return Credential{}, ErrInvalidCredentials
	}
	if !CheckPassword(cred.PasswordHash, password) {
		return Credential{}, ErrInvalidCredentials
	}
	return cred, nil
}
