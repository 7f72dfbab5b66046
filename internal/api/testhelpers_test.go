package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/avolkova/stride/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecretKey = "stride-test-secret"

func userPath(userID uint) string {
	return fmt.Sprintf("/api/users/%d", userID)
}

func habitPath(habitID uint) string {
	return fmt.Sprintf("/api/habits/%d", habitID)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "stride-test.db"))
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	app := fiber.New()
	RegisterRoutes(app, NewHandler(database, testSecretKey, zap.NewNop()))
	return app
}

func jsonRequest(t *testing.T, method string, target string, body any, token string) *http.Request {
	t.Helper()

	var buffer bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buffer).Encode(body))
	}

	request := httptest.NewRequest(method, target, &buffer)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))
	return payload
}

func decodeList(t *testing.T, response *http.Response) []map[string]any {
	t.Helper()

	var payload []map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))
	return payload
}

// signUpTestUser registers a fresh account and returns its bearer token
// together with the assigned user ID.
func signUpTestUser(t *testing.T, app *fiber.App, name string, email string) (string, uint) {
	t.Helper()

	request := jsonRequest(t, fiber.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "hunter2hunter2",
	}, "")

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, response.StatusCode)

	payload := decodeBody(t, response)
	token, ok := payload["token"].(string)
	require.True(t, ok, "signup response missing token")

	user, ok := payload["user"].(map[string]any)
	require.True(t, ok, "signup response missing user")
	id, ok := user["id"].(float64)
	require.True(t, ok, "signup user missing id")

	return token, uint(id)
}

func createTestHabit(t *testing.T, app *fiber.App, token string, userID uint, name string, target float64) uint {
	t.Helper()

	request := jsonRequest(t, fiber.MethodPost, "/api/habits", fiber.Map{
		"userId":      userID,
		"name":        name,
		"icon":        "star",
		"color":       "#4caf50",
		"dailyTarget": target,
		"unit":        "times",
	}, token)

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, response.StatusCode)

	payload := decodeBody(t, response)
	id, ok := payload["id"].(float64)
	require.True(t, ok, "habit response missing id")
	return uint(id)
}
