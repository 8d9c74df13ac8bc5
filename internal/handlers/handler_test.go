package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"secondbrain/internal/agent"
	"secondbrain/internal/clock"
	"secondbrain/internal/handlers"
	"secondbrain/internal/models"
	"secondbrain/internal/routes"
	"secondbrain/internal/store"
)

var testToday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Goal{}, &models.Task{}, &models.StudyLog{}, &models.MoodState{},
	))

	clk := clock.Fixed(testToday)
	st := store.NewGormStore(db)
	ag := agent.New(st, clk, zap.NewNop(), "sam")
	h := handlers.New(st, ag, clk, zap.NewNop(), "sam")

	app := fiber.New()
	routes.Setup(app, h)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestGoalLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp, goal := doJSON(t, app, http.MethodPost, "/api/goals", fiber.Map{
		"title":    "learn go",
		"deadline": "2026-03-20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "learn go", goal["title"])
	assert.Equal(t, float64(10), goal["days_left"])
	assert.Equal(t, "HIGH", goal["priority"])
	assert.Equal(t, float64(0), goal["progress"])
	id := int(goal["id"].(float64))

	resp, task := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/goals/%d/tasks", id), fiber.Map{
		"task": "read chapter one",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	taskID := int(task["id"].(float64))

	resp, toggled := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/goals/%d/tasks/%d/toggle", id, taskID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.TaskStatusCompleted, toggled["status"])

	resp, completed := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/goals/%d/complete", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.GoalStatusCompleted, completed["status"])
	assert.Equal(t, float64(100), completed["progress"])
	assert.Equal(t, "DONE", completed["priority"])

	// Completing again is a no-op, not an error.
	resp, again := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/goals/%d/complete", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, completed, again)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/goals/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/goals/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateGoal_Invalid(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/goals", fiber.Map{
		"title":    "",
		"deadline": "2026-03-20",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "title", body["field"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/goals", fiber.Map{
		"title":    "learn go",
		"deadline": "someday",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "deadline", body["field"])
}

func TestLogHoursAndAnalyticsAgree(t *testing.T) {
	app := newTestApp(t)

	resp, logged := doJSON(t, app, http.MethodPost, "/api/log-hours", fiber.Map{"hours": 2.0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), logged["total_today"])

	resp, logged = doJSON(t, app, http.MethodPost, "/api/log-hours", fiber.Map{"hours": 1.5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3.5), logged["total_today"])
	assert.Equal(t, float64(1), logged["streak"])

	resp, analytics := doJSON(t, app, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3.5), analytics["total_hours"])
	assert.Equal(t, float64(3.5), analytics["week_hours"])
	assert.Equal(t, float64(1), analytics["streak"])

	chart, ok := analytics["log_chart"].([]any)
	require.True(t, ok)
	assert.Len(t, chart, 7)
}

func TestLogHours_RejectsNonPositive(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/log-hours", fiber.Map{"hours": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "hours", body["field"])
}

func TestMoodEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/mood", fiber.Map{"mood": "Focused"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "focused", body["mood"])

	resp, analytics := doJSON(t, app, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "focused", analytics["mood"])
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/chat", fiber.Map{"message": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/chat", fiber.Map{"message": "I studied 2 hours"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "log_hours", body["intent"])
	assert.Equal(t, true, body["state_changed"])
	assert.NotEmpty(t, body["response"])

	// The chat mutation and the analytics read see the same log.
	resp, analytics := doJSON(t, app, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), analytics["total_hours"])
}

func TestTasksForUnknownGoalAreEmpty(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/goals/42/tasks", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}
