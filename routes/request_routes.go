package routes

import (
	"github.com/Sunilkumar09281/mutual-learn-space/handlers"
	"github.com/Sunilkumar09281/mutual-learn-space/middleware"
	"github.com/gofiber/fiber/v2"
)

func RequestRoutes(app *fiber.App) {
	requests := app.Group("/api/v1/requests", middleware.Protected())
	requests.Post("", handlers.CreateRequest)
	requests.Get("/received", handlers.GetReceivedRequests)
	requests.Get("/sent", handlers.GetSentRequests)
	requests.Get("/pending-count", handlers.GetPendingCount)
	requests.Post("/:requestId/accept", handlers.AcceptRequest)
	requests.Delete("/:requestId", handlers.RejectRequest)
}
