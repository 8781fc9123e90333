package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"weighroom-backend/database"
)

// SetupTestDB returns an in-memory SQLite database with the full schema applied.
// The pool is pinned to one connection so every query sees the same memory DB.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err, "Failed to connect to in-memory DB")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	require.NoError(t, database.Migrate("sqlite", driver), "Failed to apply migrations")
	return db
}

// CreateTestSchool inserts a school with a cheap bcrypt hash and returns its id.
func CreateTestSchool(t *testing.T, db *sqlx.DB, code, password string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	var id int64
	err = db.Get(&id, `
		INSERT INTO schools (name, login_code, password_hash, primary_color, secondary_color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, code+" High", code, string(hash), "#a855f7", "#f59e0b")
	require.NoError(t, err, "Failed to create test school")
	return id
}

func CreateTestWrestler(t *testing.T, db *sqlx.DB, schoolID int64, first, last string, weightClass int, sex string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, `
		INSERT INTO wrestlers (school_id, first_name, last_name, weight_class, sex)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, schoolID, first, last, weightClass, sex)
	require.NoError(t, err, "Failed to create test wrestler")
	return id
}

func CreateTestWeight(t *testing.T, db *sqlx.DB, wrestlerID int64, date time.Time, weight float64, typ string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, `
		INSERT INTO weights (wrestler_id, date, weight, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, wrestlerID, date.UTC(), weight, typ)
	require.NoError(t, err, "Failed to create test weight")
	return id
}

// Count runs a COUNT(*) style query and returns the single integer result.
func Count(t *testing.T, db *sqlx.DB, query string, args ...interface{}) int {
	t.Helper()

	var n int
	require.NoError(t, db.Get(&n, query, args...))
	return n
}

// Date is shorthand for a UTC midnight date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MakeRequest creates an HTTP test request with an optional JSON body.
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// Bearer builds the Authorization header map for a session token.
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks the status code and prints the body on mismatch. The body
// stays readable afterwards.
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, resp.StatusCode, string(body))
	}
}

// DecodeJSON decodes the response body into v.
func DecodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v), "Failed to decode JSON response")
}
