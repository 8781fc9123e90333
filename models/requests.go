package models

import "strings"

type LoginRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`

	// Older clients send these names.
	LoginCode    string `json:"login_code"`
	PasswordHash string `json:"password_hash"`
}

// Credentials returns the login code and password, preferring the current
// field names over the legacy ones.
func (r LoginRequest) Credentials() (string, string) {
	code := strings.TrimSpace(r.Code)
	if code == "" {
		code = strings.TrimSpace(r.LoginCode)
	}
	password := r.Password
	if password == "" {
		password = r.PasswordHash
	}
	return code, password
}

// WrestlerInput is the body of both create and update. Nil fields were absent.
type WrestlerInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	WeightClass *Int    `json:"weightClass"`
	Sex         *string `json:"sex"`
}

type ImportInput struct {
	RawText string `json:"rawText"`
}

type WeightInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Date      string `json:"date"`
	Weight    Float  `json:"weight"`
	Type      string `json:"type"`
}

type SettingsInput struct {
	Name           *string `json:"name"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	Password       *string `json:"password"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type AdminLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminInput carries the shared secret plus the fields of every admin call.
type AdminInput struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	LoginCode string `json:"login_code"`
	Password  string `json:"password"`
	SchoolID  Int    `json:"school_id"`
}
