package middleware

import (
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SessionMiddleware проверяет токен сессии из URL или заголовка
func SessionMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := utils.SessionFromToken(c, db)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("session", session)
		return c.Next()
	}
}

// SessionFromLocals возвращает сессию, сохраненную middleware
func SessionFromLocals(c *fiber.Ctx) *models.Session {
	session, _ := c.Locals("session").(*models.Session)
	return session
}

func AdminMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil || user.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden - Admin access required",
			})
		}

		return c.Next()
	}
}
