package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSessionController(db *gorm.DB, cfg *config.Config) *SessionController {
	return &SessionController{DB: db, Cfg: cfg}
}

// Authenticate godoc
// @Summary Authenticate by session token
// @Description Resolves the token from the journey URL into a session
// @Tags session
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Session token"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /session/authenticate [post]
func (sc *SessionController) Authenticate(c *fiber.Ctx) error {
	type AuthenticateInput struct {
		Token string `json:"token"`
	}

	var input AuthenticateInput
	if err := c.BodyParser(&input); err != nil || input.Token == "" {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var session models.Session
	if err := sc.DB.Where("token = ?", input.Token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid or expired token")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"sessionId":    session.ID,
		"userId":       session.UserID,
		"startDate":    session.StartDate,
		"consentGiven": session.ConsentGiven,
	})
}

// CreateSession godoc
// @Summary Provision a journey session
// @Description Creates a participant and a tokenized 21-day session (admin only)
// @Tags session
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Participant data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/sessions [post]
func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	type CreateSessionInput struct {
		UserID    uint       `json:"user_id"`
		Username  string     `json:"username"`
		Email     string     `json:"email"`
		StartDate *time.Time `json:"start_date"`
	}

	var input CreateSessionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Find or create the participant
	var user models.User
	if input.UserID != 0 {
		if err := sc.DB.First(&user, input.UserID).Error; err != nil {
			return utils.NotFound(c, "User not found")
		}
	} else {
		if input.Email == "" {
			return utils.BadRequest(c, "Either user_id or email is required")
		}
		if err := sc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.InternalServerError(c, "Could not query database")
			}
			user = models.User{
				Username:     input.Username,
				Email:        input.Email,
				PasswordHash: uuid.NewString(), // доступ только по токену сессии
			}
			if user.Username == "" {
				user.Username = input.Email
			}
			if err := sc.DB.Create(&user).Error; err != nil {
				return utils.InternalServerError(c, "Could not create user")
			}
		}
	}

	startDate := time.Now()
	if input.StartDate != nil {
		startDate = *input.StartDate
	}

	session := models.Session{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		StartDate: startDate,
	}
	if err := sc.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "Could not create session")
	}

	return c.JSON(fiber.Map{
		"sessionId": session.ID,
		"userId":    user.ID,
		"token":     session.Token,
		"startDate": session.StartDate,
		"url":       "/?token=" + session.Token,
	})
}
