package tests

import (
	"testing"
)

func TestAll(t *testing.T) {
	t.Run("Auth", TestAuth)
	t.Run("Journey", TestJourney)
}

func TestJourney(t *testing.T) {
	t.Run("AuthenticateSession", TestAuthenticateSession)
	t.Run("GetAllDays", TestGetAllDays)
	t.Run("GetDayCreatesProgress", TestGetDayCreatesProgress)
	t.Run("RecordAssumption", TestRecordAssumption)
	t.Run("RecordRepeatChoice", TestRecordRepeatChoice)
	t.Run("CompleteDay", TestCompleteDay)
	t.Run("SaveCheckpoint", TestSaveCheckpoint)
	t.Run("SaveConsent", TestSaveConsent)
}

func TestAuth(t *testing.T) {
	// Здесь ты можешь вызвать нужные тесты для авторизации
	t.Run("Register", TestRegister)
	t.Run("Login", TestLogin)
	t.Run("CreateSession", TestCreateSession)
}
