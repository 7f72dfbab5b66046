package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHabitReturnsStoredRecord(t *testing.T) {
	app := newTestApp(t)
	token, userID := signUpTestUser(t, app, "Jane", "jane@example.com")

	request := jsonRequest(t, fiber.MethodPost, "/api/habits", fiber.Map{
		"userId":       userID,
		"name":         "Drink water",
		"icon":         "droplet",
		"color":        "#2196f3",
		"dailyTarget":  8,
		"unit":         "glasses",
		"reminder":     true,
		"reminderTime": "09:30",
	}, token)

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, response.StatusCode)

	habit := decodeBody(t, response)
	assert.Equal(t, "Drink water", habit["name"])
	assert.EqualValues(t, 8, habit["dailyTarget"])
	assert.Equal(t, "09:30", habit["reminderTime"])
	assert.NotZero(t, habit["id"])
}

func TestCreateHabitRejectsNonPositiveTarget(t *testing.T) {
	app := newTestApp(t)
	token, userID := signUpTestUser(t, app, "Jane", "jane@example.com")

	request := jsonRequest(t, fiber.MethodPost, "/api/habits", fiber.Map{
		"userId":      userID,
		"name":        "Drink water",
		"dailyTarget": 0,
	}, token)

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
}

func TestCreateHabitForUnknownUserReturns404(t *testing.T) {
	app := newTestApp(t)
	token, _ := signUpTestUser(t, app, "Jane", "jane@example.com")

	request := jsonRequest(t, fiber.MethodPost, "/api/habits", fiber.Map{
		"userId":      9999,
		"name":        "Drink water",
		"dailyTarget": 8,
	}, token)

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
}

func TestListHabitsByUserReturnsOnlyOwnHabits(t *testing.T) {
	app := newTestApp(t)
	token, userID := signUpTestUser(t, app, "Jane", "jane@example.com")
	otherToken, otherID := signUpTestUser(t, app, "Sam", "sam@example.com")

	createTestHabit(t, app, token, userID, "Water", 8)
	createTestHabit(t, app, token, userID, "Reading", 30)
	createTestHabit(t, app, otherToken, otherID, "Running", 5)

	response, err := app.Test(jsonRequest(t, fiber.MethodGet, "/api/habits/user/"+itoa(userID), nil, token), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	habits := decodeList(t, response)
	require.Len(t, habits, 2)
	assert.Equal(t, "Water", habits[0]["name"])
	assert.Equal(t, "Reading", habits[1]["name"])
}

func TestUpdateHabitAppliesPartialChanges(t *testing.T) {
	app := newTestApp(t)
	token, userID := signUpTestUser(t, app, "Jane", "jane@example.com")
	habitID := createTestHabit(t, app, token, userID, "Water", 8)

	response, err := app.Test(jsonRequest(t, fiber.MethodPut, habitPath(habitID), fiber.Map{
		"dailyTarget": 10,
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	habit := decodeBody(t, response)
	assert.EqualValues(t, 10, habit["dailyTarget"])
	assert.Equal(t, "Water", habit["name"])
	assert.Equal(t, "star", habit["icon"])
}

func TestUpdateHabitRejectsBadTargetWithoutSaving(t *testing.T) {
	app := newTestApp(t)
	token, userID := signUpTestUser(t, app, "Jane", "jane@example.com")
	habitID := createTestHabit(t, app, token, userID, "Water", 8)

	response, err := app.Test(jsonRequest(t, fiber.MethodPut, habitPath(habitID), fiber.Map{
		"dailyTarget": -1,
	}, token), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)

	response, err = app.Test(jsonRequest(t, fiber.MethodGet, "/api/habits/user/"+itoa(userID), nil, token), -1)
	require.NoError(t, err)
	habits := decodeList(t, response)
	require.Len(t, habits, 1)
	assert.EqualValues(t, 8, habits[0]["dailyTarget"])
}

func TestUpdateHabitUnknownIDReturns404(t *testing.T) {
	app := newTestApp(t)
	token, _ := signUpTestUser(t, app, "Jane", "jane@example.com")

	response, err := app.Test(jsonRequest(t, fiber.MethodPut, habitPath(9999), fiber.Map{
		"name": "Renamed",
	}, token), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
}

func TestDeleteHabitCascadesToProgressEntries(t *testing.T) {
	app := newTestApp(t)
	token, userID := signUpTestUser(t, app, "Jane", "jane@example.com")
	habitID := createTestHabit(t, app, token, userID, "Water", 8)

	for _, date := range []string{"2025-03-09", "2025-03-10"} {
		response, err := app.Test(jsonRequest(t, fiber.MethodPost, "/api/progress", fiber.Map{
			"userId":  userID,
			"habitId": habitID,
			"date":    date,
			"value":   8,
		}, token), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, response.StatusCode)
	}

	response, err := app.Test(jsonRequest(t, fiber.MethodDelete, habitPath(habitID), nil, token), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, response.StatusCode)

	payload := decodeBody(t, response)
	assert.Equal(t, true, payload["deleted"])
	assert.EqualValues(t, 2, payload["entriesRemoved"])

	response, err = app.Test(jsonRequest(t, fiber.MethodGet, "/api/progress/habit/"+itoa(habitID), nil, token), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
}

func TestDeleteHabitUnknownIDReturns404(t *testing.T) {
	app := newTestApp(t)
	token, _ := signUpTestUser(t, app, "Jane", "jane@example.com")

	response, err := app.Test(jsonRequest(t, fiber.MethodDelete, habitPath(9999), nil, token), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
}
