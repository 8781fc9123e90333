package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighroom-backend/auth"
	"weighroom-backend/middleware"
	"weighroom-backend/testutil"
)

func authApp(issuer *auth.TokenIssuer) *fiber.App {
	app := fiber.New()
	app.Get("/me", middleware.RequireAuth(issuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"school_id": middleware.SchoolID(c),
			"code":      middleware.Claims(c).Code,
		})
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	issuer := auth.NewTokenIssuer("s3cret", time.Hour)
	app := authApp(issuer)

	token, err := issuer.Issue(42, "central")
	require.NoError(t, err)

	resp, err := app.Test(testutil.MakeRequest(http.MethodGet, "/me", nil, testutil.Bearer(token)), -1)
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusOK)

	var body struct {
		SchoolID int64  `json:"school_id"`
		Code     string `json:"code"`
	}
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, int64(42), body.SchoolID)
	assert.Equal(t, "central", body.Code)
}

func TestRequireAuthRejections(t *testing.T) {
	issuer := auth.NewTokenIssuer("s3cret", time.Hour)
	other := auth.NewTokenIssuer("different", time.Hour)
	app := authApp(issuer)

	forged, err := other.Issue(42, "central")
	require.NoError(t, err)

	cases := []struct {
		name    string
		headers map[string]string
		message string
	}{
		{"missing header", nil, "No token"},
		{"empty bearer", map[string]string{"Authorization": "Bearer "}, "No token"},
		{"wrong scheme", map[string]string{"Authorization": "Basic abc"}, "Invalid token"},
		{"garbage", testutil.Bearer("not-a-jwt"), "Invalid token"},
		{"wrong secret", testutil.Bearer(forged), "Invalid token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(testutil.MakeRequest(http.MethodGet, "/me", nil, tc.headers), -1)
			require.NoError(t, err)
			testutil.AssertStatus(t, resp, http.StatusUnauthorized)

			var body map[string]string
			testutil.DecodeJSON(t, resp, &body)
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	app := fiber.New()
	app.Post("/admin", middleware.RequireAdmin("MASTER_ADMIN"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	cases := []struct {
		name    string
		body    interface{}
		headers map[string]string
		status  int
	}{
		{"body token", map[string]string{"token": "MASTER_ADMIN"}, nil, http.StatusNoContent},
		{"header token", nil, map[string]string{middleware.AdminTokenHeader: "MASTER_ADMIN"}, http.StatusNoContent},
		{"wrong token", map[string]string{"token": "nope"}, nil, http.StatusUnauthorized},
		{"no token", nil, nil, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(testutil.MakeRequest(http.MethodPost, "/admin", tc.body, tc.headers), -1)
			require.NoError(t, err)
			testutil.AssertStatus(t, resp, tc.status)
		})
	}
}

func TestSecretEqual(t *testing.T) {
	assert.True(t, middleware.SecretEqual("abc", "abc"))
	assert.False(t, middleware.SecretEqual("abc", "abd"))
	assert.False(t, middleware.SecretEqual("", "abc"))
}
