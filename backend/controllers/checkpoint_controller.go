package controllers

import (
	"errors"
	"project/backend/catalog"
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CheckpointsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCheckpointsController(db *gorm.DB, cfg *config.Config) *CheckpointsController {
	return &CheckpointsController{DB: db, Cfg: cfg}
}

var checkpointFeelings = map[string]bool{
	"more_confident": true,
	"equal":          true,
	"confused":       true,
}

// GetCheckpoint godoc
// @Summary Get a checkpoint
// @Description Returns the reflection answers of one checkpoint day (8, 15 or 21)
// @Tags checkpoints
// @Accept json
// @Produce json
// @Param day path int true "Checkpoint day (8, 15 or 21)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /checkpoints/{day} [get]
func (cc *CheckpointsController) GetCheckpoint(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	dayNumber, err := dayParam(c)
	if err != nil || !catalog.IsCheckpointDay(dayNumber) {
		return utils.BadRequest(c, "Invalid checkpoint day")
	}

	var checkpoint models.Checkpoint
	if err := cc.DB.Where("session_id = ? AND day_number = ?", session.ID, dayNumber).
		First(&checkpoint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Checkpoint not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"id":           checkpoint.ID,
		"dayNumber":    checkpoint.DayNumber,
		"discovery":    checkpoint.Discovery,
		"importantDay": checkpoint.ImportantDay,
		"feeling":      checkpoint.Feeling,
		"createdAt":    checkpoint.CreatedAt,
		"updatedAt":    checkpoint.UpdatedAt,
	})
}

// SaveCheckpoint godoc
// @Summary Save a checkpoint
// @Description Creates or updates the reflection answers for a checkpoint day
// @Tags checkpoints
// @Accept json
// @Produce json
// @Param day path int true "Checkpoint day (8, 15 or 21)"
// @Param request body map[string]interface{} true "Checkpoint answers"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /checkpoints/{day} [post]
func (cc *CheckpointsController) SaveCheckpoint(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	dayNumber, err := dayParam(c)
	if err != nil || !catalog.IsCheckpointDay(dayNumber) {
		return utils.BadRequest(c, "Invalid checkpoint day")
	}

	type CheckpointInput struct {
		Discovery    string `json:"discovery"`
		ImportantDay string `json:"importantDay"`
		Feeling      string `json:"feeling"`
	}

	var input CheckpointInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Feeling != "" && !checkpointFeelings[input.Feeling] {
		return utils.BadRequest(c, "Invalid feeling value")
	}

	var checkpoint models.Checkpoint
	err = cc.DB.Where("session_id = ? AND day_number = ?", session.ID, dayNumber).
		First(&checkpoint).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query database")
		}
		checkpoint = models.Checkpoint{
			SessionID:    session.ID,
			DayNumber:    dayNumber,
			Discovery:    input.Discovery,
			ImportantDay: input.ImportantDay,
			Feeling:      input.Feeling,
		}
		if err := cc.DB.Create(&checkpoint).Error; err != nil {
			return utils.InternalServerError(c, "Could not save checkpoint")
		}
	} else {
		checkpoint.Discovery = input.Discovery
		checkpoint.ImportantDay = input.ImportantDay
		checkpoint.Feeling = input.Feeling
		if err := cc.DB.Save(&checkpoint).Error; err != nil {
			return utils.InternalServerError(c, "Could not save checkpoint")
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
