package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ConsentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewConsentController(db *gorm.DB, cfg *config.Config) *ConsentController {
	return &ConsentController{DB: db, Cfg: cfg}
}

// SaveConsent godoc
// @Summary Record data-use consent
// @Description Appends a consent record (with request IP and user agent) and updates the session
// @Tags consent
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Consent decision"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /consent [post]
func (co *ConsentController) SaveConsent(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	type ConsentInput struct {
		ConsentGiven bool `json:"consentGiven"`
	}

	var input ConsentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	now := time.Now()

	// История согласий только пополняется; актуальна последняя запись
	consent := models.Consent{
		SessionID:    session.ID,
		ConsentGiven: input.ConsentGiven,
		ConsentDate:  now,
		IPAddress:    c.IP(),
		UserAgent:    c.Get("User-Agent"),
	}
	if err := co.DB.Create(&consent).Error; err != nil {
		return utils.InternalServerError(c, "Could not save consent")
	}

	updates := map[string]interface{}{
		"consent_given": input.ConsentGiven,
		"consent_date":  now,
	}
	if err := co.DB.Model(&models.Session{}).Where("id = ?", session.ID).Updates(updates).Error; err != nil {
		return utils.InternalServerError(c, "Could not update session")
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetConsent godoc
// @Summary Get the current consent
// @Description Returns the latest consent record of the session
// @Tags consent
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /consent [get]
func (co *ConsentController) GetConsent(c *fiber.Ctx) error {
	session := middleware.SessionFromLocals(c)

	var consent models.Consent
	if err := co.DB.Where("session_id = ?", session.ID).
		Order("created_at DESC").
		First(&consent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Consent not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"consentGiven": consent.ConsentGiven,
		"consentDate":  consent.ConsentDate,
	})
}
