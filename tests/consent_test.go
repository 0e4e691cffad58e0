package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"project/backend/models"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSaveConsent(t *testing.T) {
	jsonData, _ := json.Marshal(map[string]bool{"consentGiven": true})

	req := httptest.NewRequest("POST", "/api/consent", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", sessionToken)
	req.Header.Set("User-Agent", "journey-tests")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// the session record reflects the decision
	var session models.Session
	db.First(&session, testSession.ID)
	assert.True(t, session.ConsentGiven)
	assert.NotNil(t, session.ConsentDate)

	// the history row carries the request metadata
	var consent models.Consent
	db.Where("session_id = ?", testSession.ID).Order("created_at DESC").First(&consent)
	assert.True(t, consent.ConsentGiven)
	assert.Equal(t, "journey-tests", consent.UserAgent)
	assert.NotEmpty(t, consent.IPAddress)
}

func TestConsentHistoryLatestWins(t *testing.T) {
	// revoke after granting: a new row is appended, the read returns it
	jsonData, _ := json.Marshal(map[string]bool{"consentGiven": false})

	req := httptest.NewRequest("POST", "/api/consent", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", sessionToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/consent", nil)
	req.Header.Set("Authorization", sessionToken)

	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, false, result["consentGiven"])

	var count int64
	db.Model(&models.Consent{}).Where("session_id = ?", testSession.ID).Count(&count)
	assert.GreaterOrEqual(t, count, int64(2))
}
