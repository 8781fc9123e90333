package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"weighroom-backend/auth"
	"weighroom-backend/config"
	"weighroom-backend/mail"
	"weighroom-backend/routes"
	"weighroom-backend/testutil"
)

const adminToken = "MASTER_ADMIN"

func init() {
	auth.PasswordCost = bcrypt.MinCost
}

// MockMailer is a mock implementation of mail.Mailer for testing
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContact(ctx context.Context, msg mail.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

var errMailDown = errors.New("mail down")

type testEnv struct {
	app    *fiber.App
	db     *sqlx.DB
	mailer *MockMailer
	cfg    config.Config
}

func testConfig() config.Config {
	return config.Config{
		Port:          8080,
		JWTSecret:     "test-secret",
		TokenTTL:      12 * time.Hour,
		RefreshGrace:  7 * 24 * time.Hour,
		AdminUsername: "admin",
		AdminPassword: "letmein",
		AdminToken:    adminToken,
		CORSOrigins:   "*",
		LogLevel:      "info",
		Environment:   "test",
	}
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	mailer := &MockMailer{}
	cfg := testConfig()
	app := routes.NewApp(routes.Dependencies{DB: db, Config: cfg, Mailer: mailer})
	return &testEnv{app: app, db: db, mailer: mailer, cfg: cfg}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()
	resp, err := e.app.Test(testutil.MakeRequest(method, path, body, headers), -1)
	require.NoError(t, err)
	return resp
}

// login posts credentials and returns the session token.
func (e *testEnv) login(t *testing.T, code, password string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/login", map[string]string{"code": code, "password": password}, nil)
	testutil.AssertStatus(t, resp, http.StatusOK)

	var body struct {
		Token string `json:"token"`
	}
	testutil.DecodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]interface{}
	testutil.DecodeJSON(t, resp, &body)
	msg, _ := body["error"].(string)
	return msg
}
