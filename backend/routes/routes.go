package routes

import (
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes (admin surface)
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	sessionMiddleware := middleware.SessionMiddleware(db)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Session routes
	sessionController := controllers.NewSessionController(db, cfg)
	app.Post("/api/session/authenticate", sessionController.Authenticate)

	// Days routes
	daysController := controllers.NewDaysController(db, cfg)
	days := app.Group("/api/days", sessionMiddleware)
	days.Get("/", daysController.GetAllDays)
	days.Get("/:day", daysController.GetDay)
	days.Post("/:day/assumption", daysController.RecordAssumption)
	days.Post("/:day/repeat", daysController.RecordRepeatChoice)
	days.Post("/:day/complete", daysController.CompleteDay)

	// Learnings routes
	learningsController := controllers.NewLearningsController(db, cfg)
	learnings := app.Group("/api/learnings", sessionMiddleware)
	learnings.Get("/", learningsController.GetLearnings)
	learnings.Get("/:day", learningsController.GetLearningByDay)

	// Checkpoint routes
	checkpointsController := controllers.NewCheckpointsController(db, cfg)
	checkpoints := app.Group("/api/checkpoints", sessionMiddleware)
	checkpoints.Get("/:day", checkpointsController.GetCheckpoint)
	checkpoints.Post("/:day", checkpointsController.SaveCheckpoint)

	// Consent routes
	consentController := controllers.NewConsentController(db, cfg)
	consent := app.Group("/api/consent", sessionMiddleware)
	consent.Get("/", consentController.GetConsent)
	consent.Post("/", consentController.SaveConsent)

	// Admin routes for provisioning journey sessions
	adminSessions := app.Group("/api/admin/sessions", adminMiddleware)
	adminSessions.Post("/", sessionController.CreateSession)
}
