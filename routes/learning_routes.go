package routes

import (
	"github.com/Sunilkumar09281/mutual-learn-space/handlers"
	"github.com/Sunilkumar09281/mutual-learn-space/middleware"
	"github.com/gofiber/fiber/v2"
)

func LearningRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.Protected())
	api.Get("/learning", handlers.GetMyLearning)
}
