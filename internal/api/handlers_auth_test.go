package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpCreatesAccountWithFreshProfile(t *testing.T) {
	app := newTestApp(t)

	request := jsonRequest(t, fiber.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "hunter2hunter2",
	}, "")

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, response.StatusCode)

	payload := decodeBody(t, response)
	assert.NotEmpty(t, payload["token"])

	user, ok := payload["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane", user["name"])
	assert.Equal(t, "jane@example.com", user["email"])
	assert.EqualValues(t, 0, user["points"])
	assert.EqualValues(t, 1, user["level"])
	assert.Empty(t, user["badges"])
	assert.NotContains(t, user, "passwordHash")
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	signUpTestUser(t, app, "Jane", "jane@example.com")

	request := jsonRequest(t, fiber.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     "Other Jane",
		"email":    "  JANE@example.com ",
		"password": "hunter2hunter2",
	}, "")

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	app := newTestApp(t)

	request := jsonRequest(t, fiber.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "short",
	}, "")

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
}

func TestLogInReturnsTokenForValidCredentials(t *testing.T) {
	app := newTestApp(t)
	signUpTestUser(t, app, "Jane", "jane@example.com")

	request := jsonRequest(t, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "jane@example.com",
		"password": "hunter2hunter2",
	}, "")

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	payload := decodeBody(t, response)
	assert.NotEmpty(t, payload["token"])
}

func TestLogInRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t)
	signUpTestUser(t, app, "Jane", "jane@example.com")

	request := jsonRequest(t, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "jane@example.com",
		"password": "not-the-password",
	}, "")

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
}

func TestProtectedRoutesRequireValidToken(t *testing.T) {
	app := newTestApp(t)
	_, userID := signUpTestUser(t, app, "Jane", "jane@example.com")

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			request := jsonRequest(t, fiber.MethodGet, userPath(userID), nil, test.token)
			response, err := app.Test(request, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
		})
	}
}
