package handlers

import (
	"github.com/Sunilkumar09281/mutual-learn-space/database"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"github.com/Sunilkumar09281/mutual-learn-space/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"required"`
	Duration    string  `json:"duration" validate:"max=100"`
	Level       string  `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Rating      float64 `json:"rating" validate:"min=0,max=5"`
	WantedSkill string  `json:"wanted_skill" validate:"max=255"`
}

type UpdateCourseRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Duration    *string  `json:"duration" validate:"omitempty,max=100"`
	Level       *string  `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	WantedSkill *string  `json:"wanted_skill" validate:"omitempty,max=255"`
}

// ListCourses returns the full catalog snapshot ordered by title, with field
// defaults applied and the optional search term filtered client-style over
// title, owner name and wanted skill.
func ListCourses(c *fiber.Ctx) error {
	courses, err := courseSnapshot()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load courses"})
	}
	return c.JSON(services.FilterCourses(courses, c.Query("search")))
}

func CreateCourse(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var owner models.User
	if err := database.DB.First(&owner, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	course := models.Course{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Level:       req.Level,
		Rating:      req.Rating,
		WantedSkill: req.WantedSkill,
		Teacher:     owner.FullName,
		CreatedByID: owner.ID,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	publishCourses()

	return c.Status(fiber.StatusCreated).JSON(services.NormalizeCourse(course))
}

func UpdateCourse(c *fiber.Ctx) error {
	userID := currentUserID(c)
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	if course.CreatedByID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the owner of this course"})
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Rating != nil {
		course.Rating = *req.Rating
	}
	if req.WantedSkill != nil {
		course.WantedSkill = *req.WantedSkill
	}

	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	publishCourses()

	return c.JSON(services.NormalizeCourse(course))
}

func DeleteCourse(c *fiber.Ctx) error {
	userID := currentUserID(c)
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	if course.CreatedByID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the owner of this course"})
	}

	if err := database.DB.Delete(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}

	publishCourses()

	return c.JSON(fiber.Map{"message": "Course deleted"})
}
