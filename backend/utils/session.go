package utils

import (
	"errors"
	"project/backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrSessionNotFound возвращается, когда токен не соответствует сессии
var ErrSessionNotFound = errors.New("session not found")

// SessionToken извлекает токен сессии из запроса: заголовок Authorization
// или параметр ?token= (доступ по ссылке)
func SessionToken(c *fiber.Ctx) string {
	if token := c.Get("Authorization"); token != "" {
		return token
	}
	return c.Query("token")
}

// SessionFromToken находит сессию по токену из запроса
func SessionFromToken(c *fiber.Ctx, db *gorm.DB) (*models.Session, error) {
	token := SessionToken(c)
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var session models.Session
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}
