package routes

import (
	"github.com/Sunilkumar09281/mutual-learn-space/handlers"
	"github.com/Sunilkumar09281/mutual-learn-space/middleware"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	courses := app.Group("/api/v1/courses", middleware.Protected())
	courses.Get("", handlers.ListCourses)
	courses.Post("", handlers.CreateCourse)
	courses.Put("/:courseId", handlers.UpdateCourse)
	courses.Delete("/:courseId", handlers.DeleteCourse)
}
