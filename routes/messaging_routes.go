package routes

import (
	"github.com/Sunilkumar09281/mutual-learn-space/handlers"
	"github.com/Sunilkumar09281/mutual-learn-space/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func MessagingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	chat := api.Group("/chat", middleware.Protected())
	chat.Get("/rooms/:roomId", handlers.GetChatRoom)
	chat.Get("/rooms/:roomId/messages", handlers.GetRoomMessages)
	chat.Post("/rooms/:roomId/messages", handlers.SendMessage)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
