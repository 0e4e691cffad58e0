package controllers

import (
	"errors"
	"project/backend/catalog"
	"project/backend/config"
	"project/backend/journey"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DaysController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDaysController(db *gorm.DB, cfg *config.Config) *DaysController {
	return &DaysController{DB: db, Cfg: cfg}
}

// getOrCreateDayProgress возвращает запись прогресса, создавая ее при первом
// обращении. Повторные вызовы сходятся к одной и той же записи: при проигрыше
// гонки на уникальном индексе (session_id, day_number) запись перечитывается.
func (dc *DaysController) getOrCreateDayProgress(sessionID uint, dayNumber int) (*models.DayProgress, error) {
	var progress models.DayProgress
	err := dc.DB.Where("session_id = ? AND day_number = ?", sessionID, dayNumber).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = models.DayProgress{
		SessionID: sessionID,
		DayNumber: dayNumber,
		Completed: false,
	}
	if createErr := dc.DB.Create(&progress).Error; createErr != nil {
		if err := dc.DB.Where("session_id = ? AND day_number = ?", sessionID, dayNumber).First(&progress).Error; err != nil {
			return nil, createErr
		}
	}
	return &progress, nil
}

func dayParam(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("day"))
}

// GetAllDays godoc
// @Summary List all journey days
// @Description Returns all 21 days merged with unlock status, progress and aggregate stats
// @Tags days
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /days [get]
func (dc *DaysController) GetAllDays(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)
	now := time.Now()

	var allProgress []models.DayProgress
	if err := dc.DB.Where("session_id = ?", session.ID).Find(&allProgress).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	progressByDay := make(map[int]models.DayProgress, len(allProgress))
	var completedDays []int
	for _, p := range allProgress {
		progressByDay[p.DayNumber] = p
		if p.Completed {
			completedDays = append(completedDays, p.DayNumber)
		}
	}

	var result []fiber.Map
	for _, def := range catalog.All() {
		progress := progressByDay[def.Day]

		result = append(result, fiber.Map{
			"day":                def.Day,
			"mission":            def.Mission,
			"environments":       def.Environments,
			"assumption":         def.Assumption,
			"safetyBehavior":     def.SafetyBehavior,
			"internalFocus":      def.InternalFocus,
			"script":             def.Script,
			"defaultLearning":    def.DefaultLearning,
			"status":             journey.StatusFor(def.Day, now, session.StartDate, progress.Completed),
			"daysUntilUnlock":    journey.DaysUntilUnlock(def.Day, now, session.StartDate),
			"unlockDate":         journey.UnlockDate(def.Day, session.StartDate),
			"isCompleted":        progress.Completed,
			"assumptionOccurred": progress.AssumptionOccurred,
			"repeatedNextDay":    progress.RepeatedNextDay,
		})
	}

	stats := journey.ProgressStats(now, session.StartDate, completedDays)

	return c.JSON(fiber.Map{
		"days":       result,
		"currentDay": stats.CurrentDay,
		"stats":      stats,
	})
}

// GetDay godoc
// @Summary Get a single day
// @Description Returns one day's content and status; creates the progress record on first view
// @Tags days
// @Accept json
// @Produce json
// @Param day path int true "Day number (1-21)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /days/{day} [get]
func (dc *DaysController) GetDay(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)
	now := time.Now()

	dayNumber, err := dayParam(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid day number")
	}

	def, ok := catalog.Day(dayNumber)
	if !ok {
		return utils.NotFound(c, "Day not found")
	}

	progress, err := dc.getOrCreateDayProgress(session.ID, dayNumber)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"day":                def.Day,
		"mission":            def.Mission,
		"environments":       def.Environments,
		"assumption":         def.Assumption,
		"safetyBehavior":     def.SafetyBehavior,
		"internalFocus":      def.InternalFocus,
		"script":             def.Script,
		"defaultLearning":    def.DefaultLearning,
		"status":             journey.StatusFor(dayNumber, now, session.StartDate, progress.Completed),
		"isUnlocked":         journey.IsDayUnlocked(dayNumber, now, session.StartDate),
		"isCompleted":        progress.Completed,
		"assumptionOccurred": progress.AssumptionOccurred,
		"repeatedNextDay":    progress.RepeatedNextDay,
		"daysUntilUnlock":    journey.DaysUntilUnlock(dayNumber, now, session.StartDate),
		"unlockDate":         journey.UnlockDate(dayNumber, session.StartDate),
	})
}

// RecordAssumption godoc
// @Summary Record the assumption answer
// @Description Persists whether the day's assumption occurred; does not change completion
// @Tags days
// @Accept json
// @Produce json
// @Param day path int true "Day number (1-21)"
// @Param request body map[string]interface{} true "Assumption answer"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /days/{day}/assumption [post]
func (dc *DaysController) RecordAssumption(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	dayNumber, err := dayParam(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid day number")
	}
	if _, ok := catalog.Day(dayNumber); !ok {
		return utils.NotFound(c, "Day not found")
	}

	type AssumptionInput struct {
		AssumptionOccurred bool `json:"assumptionOccurred"`
	}

	var input AssumptionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	progress, err := dc.getOrCreateDayProgress(session.ID, dayNumber)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := dc.DB.Model(progress).Update("assumption_occurred", input.AssumptionOccurred).Error; err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	return c.JSON(fiber.Map{"success": true})
}

// RecordRepeatChoice godoc
// @Summary Record the repeat choice
// @Description Declining to repeat completes the day; choosing to repeat keeps it open
// @Tags days
// @Accept json
// @Produce json
// @Param day path int true "Day number (1-21)"
// @Param request body map[string]interface{} true "Repeat choice"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /days/{day}/repeat [post]
func (dc *DaysController) RecordRepeatChoice(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	dayNumber, err := dayParam(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid day number")
	}
	if _, ok := catalog.Day(dayNumber); !ok {
		return utils.NotFound(c, "Day not found")
	}

	type RepeatInput struct {
		RepeatNextDay bool `json:"repeatNextDay"`
	}

	var input RepeatInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	progress, err := dc.getOrCreateDayProgress(session.ID, dayNumber)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var updates map[string]interface{}
	if input.RepeatNextDay {
		// Хочет повторить — день остается открытым
		updates = map[string]interface{}{
			"repeated_next_day": true,
		}
	} else {
		// Не хочет повторять — день завершен
		updates = map[string]interface{}{
			"completed":         true,
			"completed_at":      time.Now(),
			"repeated_next_day": false,
		}
	}

	if err := dc.DB.Model(progress).Updates(updates).Error; err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	return c.JSON(fiber.Map{"success": true})
}

// CompleteDay godoc
// @Summary Complete a day
// @Description Writes the learning entry and marks the day completed; days 8/15/21 require a checkpoint next
// @Tags days
// @Accept json
// @Produce json
// @Param day path int true "Day number (1-21)"
// @Param request body map[string]interface{} true "Optional custom learning"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /days/{day}/complete [post]
func (dc *DaysController) CompleteDay(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	dayNumber, err := dayParam(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid day number")
	}

	def, ok := catalog.Day(dayNumber)
	if !ok {
		return utils.NotFound(c, "Day not found")
	}

	type CompleteInput struct {
		CustomLearning string `json:"customLearning"`
	}

	var input CompleteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	progress, err := dc.getOrCreateDayProgress(session.ID, dayNumber)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	// Записать априори-текст дня плюс опциональный текст пользователя
	learning := models.Learning{
		SessionID:       session.ID,
		DayNumber:       dayNumber,
		DefaultLearning: def.DefaultLearning,
		CustomLearning:  input.CustomLearning,
	}
	if err := dc.DB.Create(&learning).Error; err != nil {
		return utils.InternalServerError(c, "Could not save learning")
	}

	updates := map[string]interface{}{
		"completed":         true,
		"completed_at":      time.Now(),
		"repeated_next_day": false,
	}
	if err := dc.DB.Model(progress).Updates(updates).Error; err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"checkpointRequired": catalog.IsCheckpointDay(dayNumber),
	})
}
