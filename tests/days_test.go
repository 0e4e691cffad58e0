package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"project/backend/models"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAuthenticateSession(t *testing.T) {
	authData := map[string]string{"token": sessionToken}
	jsonData, _ := json.Marshal(authData)

	req := httptest.NewRequest("POST", "/api/session/authenticate", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, float64(testSession.ID), result["sessionId"])
	assert.Equal(t, false, result["consentGiven"])
	assert.NotEmpty(t, result["startDate"])
}

func TestAuthenticateInvalidToken(t *testing.T) {
	authData := map[string]string{"token": "no-such-token"}
	jsonData, _ := json.Marshal(authData)

	req := httptest.NewRequest("POST", "/api/session/authenticate", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDaysRequireToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/days", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetAllDays(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/days", nil)
	req.Header.Set("Authorization", sessionToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	days := result["days"].([]interface{})
	assert.Len(t, days, 21)

	// session started 7 days ago, so the frontier is day 8
	assert.Equal(t, float64(8), result["currentDay"])

	stats := result["stats"].(map[string]interface{})
	assert.Equal(t, float64(8), stats["currentDay"])
	assert.Equal(t, false, stats["isJourneyComplete"])

	firstDay := days[0].(map[string]interface{})
	assert.Equal(t, float64(1), firstDay["day"])
	assert.NotEqual(t, "locked", firstDay["status"])
	assert.Equal(t, float64(0), firstDay["daysUntilUnlock"])

	lastDay := days[20].(map[string]interface{})
	assert.Equal(t, float64(21), lastDay["day"])
	assert.Equal(t, "locked", lastDay["status"])
	assert.Equal(t, float64(13), lastDay["daysUntilUnlock"])
}

func TestGetDayCreatesProgress(t *testing.T) {
	var before int64
	db.Model(&models.DayProgress{}).
		Where("session_id = ? AND day_number = ?", testSession.ID, 3).
		Count(&before)

	// first view creates the progress record
	req := httptest.NewRequest("GET", "/api/days/3", nil)
	req.Header.Set("Authorization", sessionToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, float64(3), result["day"])
	assert.Equal(t, true, result["isUnlocked"])
	assert.NotEmpty(t, result["mission"])

	// second view must not create a duplicate
	req = httptest.NewRequest("GET", "/api/days/3", nil)
	req.Header.Set("Authorization", sessionToken)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var after int64
	db.Model(&models.DayProgress{}).
		Where("session_id = ? AND day_number = ?", testSession.ID, 3).
		Count(&after)
	assert.Equal(t, int64(1), after)
}

func TestGetDayNotFound(t *testing.T) {
	for _, day := range []int{0, 22, 100} {
		req := httptest.NewRequest("GET", fmt.Sprintf("/api/days/%d", day), nil)
		req.Header.Set("Authorization", sessionToken)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "day %d", day)
	}
}

func TestRecordAssumption(t *testing.T) {
	body, _ := json.Marshal(map[string]bool{"assumptionOccurred": true})

	req := httptest.NewRequest("POST", "/api/days/2/assumption", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", sessionToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var progress models.DayProgress
	db.Where("session_id = ? AND day_number = ?", testSession.ID, 2).First(&progress)
	assert.NotNil(t, progress.AssumptionOccurred)
	assert.True(t, *progress.AssumptionOccurred)
	// recording the answer must not complete the day
	assert.False(t, progress.Completed)
}

func TestRecordRepeatChoice(t *testing.T) {
	// start from a clean day (hard delete: the unique index covers soft-deleted rows)
	db.Unscoped().
		Where("session_id = ? AND day_number = ?", testSession.ID, 4).
		Delete(&models.DayProgress{})

	// choosing to repeat keeps the day open
	body, _ := json.Marshal(map[string]bool{"repeatNextDay": true})
	req := httptest.NewRequest("POST", "/api/days/4/repeat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", sessionToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var progress models.DayProgress
	db.Where("session_id = ? AND day_number = ?", testSession.ID, 4).First(&progress)
	assert.True(t, progress.RepeatedNextDay)
	assert.False(t, progress.Completed)
	assert.Nil(t, progress.CompletedAt)

	// declining to repeat completes the day with a timestamp
	body, _ = json.Marshal(map[string]bool{"repeatNextDay": false})
	req = httptest.NewRequest("POST", "/api/days/4/repeat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", sessionToken)

	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	db.Where("session_id = ? AND day_number = ?", testSession.ID, 4).First(&progress)
	assert.True(t, progress.Completed)
	assert.False(t, progress.RepeatedNextDay)
	assert.NotNil(t, progress.CompletedAt)
}

func TestCompleteDay(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"customLearning": "Falar primeiro ficou mais leve."})

	req := httptest.NewRequest("POST", "/api/days/5/complete", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", sessionToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, false, result["checkpointRequired"])

	var progress models.DayProgress
	db.Where("session_id = ? AND day_number = ?", testSession.ID, 5).First(&progress)
	assert.True(t, progress.Completed)
	assert.NotNil(t, progress.CompletedAt)

	var learning models.Learning
	err = db.Where("session_id = ? AND day_number = ?", testSession.ID, 5).First(&learning).Error
	assert.NoError(t, err)
	assert.NotEmpty(t, learning.DefaultLearning)
	assert.Equal(t, "Falar primeiro ficou mais leve.", learning.CustomLearning)
}

func TestCompleteCheckpointDay(t *testing.T) {
	body, _ := json.Marshal(map[string]string{})

	req := httptest.NewRequest("POST", "/api/days/8/complete", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", sessionToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, true, result["checkpointRequired"])
}

func TestGetLearnings(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/learnings", nil)
	req.Header.Set("Authorization", sessionToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	learnings := result["learnings"].([]interface{})
	assert.NotEmpty(t, learnings)

	// day 19 was never completed
	req = httptest.NewRequest("GET", "/api/learnings/19", nil)
	req.Header.Set("Authorization", sessionToken)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
