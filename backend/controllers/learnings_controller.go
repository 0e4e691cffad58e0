package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LearningsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLearningsController(db *gorm.DB, cfg *config.Config) *LearningsController {
	return &LearningsController{DB: db, Cfg: cfg}
}

// GetLearnings godoc
// @Summary Get the learnings log
// @Description Returns all learnings of the session in day order
// @Tags learnings
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /learnings [get]
func (lc *LearningsController) GetLearnings(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	var learnings []models.Learning
	if err := lc.DB.Where("session_id = ?", session.ID).
		Order("day_number").
		Find(&learnings).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(learnings))
	for _, learning := range learnings {
		result = append(result, fiber.Map{
			"id":              learning.ID,
			"dayNumber":       learning.DayNumber,
			"defaultLearning": learning.DefaultLearning,
			"customLearning":  learning.CustomLearning,
			"createdAt":       learning.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"learnings": result})
}

// GetLearningByDay godoc
// @Summary Get the learning of one day
// @Tags learnings
// @Accept json
// @Produce json
// @Param day path int true "Day number (1-21)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /learnings/{day} [get]
func (lc *LearningsController) GetLearningByDay(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	dayNumber, err := dayParam(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid day number")
	}

	var learning models.Learning
	if err := lc.DB.Where("session_id = ? AND day_number = ?", session.ID, dayNumber).
		First(&learning).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Learning not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"id":              learning.ID,
		"dayNumber":       learning.DayNumber,
		"defaultLearning": learning.DefaultLearning,
		"customLearning":  learning.CustomLearning,
		"createdAt":       learning.CreatedAt,
	})
}
