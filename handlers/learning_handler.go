package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyLearning lists the caller's enrollments. Each entry carries the course
// snapshot frozen at acceptance time, so later edits to the live course do
// not show up here.
func GetMyLearning(c *fiber.Ctx) error {
	enrollments, err := learningSnapshot(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load learning"})
	}
	return c.JSON(enrollments)
}
