package routes

import (
	"path/filepath"

	"kidlearn/backend/config"
	"kidlearn/backend/controllers"
	"kidlearn/backend/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store storage.Storage, cfg *config.Config) {
	// User routes
	userController := controllers.NewUserController(store)
	app.Get("/api/users/:id", userController.GetUser)
	app.Post("/api/users", userController.CreateUser)
	app.Get("/api/users/:id/children", userController.GetChildren)

	// Progress routes
	progressController := controllers.NewProgressController(store)
	app.Get("/api/progress/:userId", progressController.GetProgress)
	app.Post("/api/progress", progressController.SaveProgress)

	// Activity routes
	activityController := controllers.NewActivityController(store)
	app.Get("/api/activities", activityController.GetActivities)
	app.Get("/api/activities/:id", activityController.GetActivity)
	app.Post("/api/activities", activityController.CreateActivity)

	// Learning skill routes
	skillController := controllers.NewSkillController(store)
	app.Get("/api/skills/:userId", skillController.GetSkills)
	app.Post("/api/skills", skillController.SaveSkill)

	// Parent dashboard summary route
	dashboardController := controllers.NewDashboardController(store)
	app.Get("/api/dashboard/summary/:childId", dashboardController.GetSummary)

	// Static audio files
	app.Static("/audio", filepath.Join(cfg.StaticFilesPath, "audio"))
}
