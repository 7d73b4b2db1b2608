package routes

import (
	"github.com/Sunilkumar09281/mutual-learn-space/handlers"
	"github.com/Sunilkumar09281/mutual-learn-space/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/google", handlers.GoogleLogin)
	auth.Get("/google/callback", handlers.GoogleCallback)
	auth.Put("/email", middleware.Protected(), handlers.UpdateEmail)
}
