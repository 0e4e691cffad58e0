package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateSession(t *testing.T) {
	sessionData := map[string]interface{}{
		"username": "participante",
		"email":    fmt.Sprintf("participante-%d@example.com", time.Now().UnixNano()),
	}
	jsonData, _ := json.Marshal(sessionData)

	req := httptest.NewRequest("POST", "/api/admin/sessions", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.NotEmpty(t, result["token"])
	assert.NotEmpty(t, result["sessionId"])
	assert.NotEmpty(t, result["startDate"])

	// the returned token resolves through authenticate
	authData := map[string]string{"token": result["token"].(string)}
	jsonData, _ = json.Marshal(authData)

	req = httptest.NewRequest("POST", "/api/session/authenticate", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCreateSessionRequiresAdmin(t *testing.T) {
	jsonData, _ := json.Marshal(map[string]interface{}{"email": "x@example.com"})

	req := httptest.NewRequest("POST", "/api/admin/sessions", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
