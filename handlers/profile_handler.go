package handlers

import (
	"errors"

	"github.com/Sunilkumar09281/mutual-learn-space/cache"
	"github.com/Sunilkumar09281/mutual-learn-space/database"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"github.com/Sunilkumar09281/mutual-learn-space/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateProfileRequest carries the user's full profile draft. The save is
// all-or-nothing: validation failure aborts the commit with the offending
// field in the error, and nothing is written.
type UpdateProfileRequest struct {
	FullName      string   `json:"full_name" validate:"required,min=1,max=255"`
	Email         string   `json:"email" validate:"required,email"`
	Bio           *string  `json:"bio"`
	TeachSkills   []string `json:"teach_skills"`
	DesiredSkills []string `json:"desired_skills"`
	AvatarURL     *string  `json:"avatar_url" validate:"omitempty,url"`
}

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if cached, ok := cache.Profiles.Get(c.Context(), userID.String()); ok {
		return c.JSON(cached)
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	cache.Profiles.Save(c.Context(), &user)
	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var count int64
	if err := database.DB.Model(&models.User{}).
		Where("email = ? AND id <> ?", req.Email, userID).
		Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check email"})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already in use"})
	}

	user.FullName = req.FullName
	user.Email = req.Email
	user.Bio = req.Bio
	user.TeachSkills = req.TeachSkills
	user.DesiredSkills = req.DesiredSkills
	user.AvatarURL = req.AvatarURL
	user.ProfileComplete = true

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}

	cache.Profiles.Save(c.Context(), &user)

	return c.JSON(user)
}

// GetUserProfile is the read-only view of another user: a one-shot fetch of
// the profile plus a one-shot query of the courses they own. An absent
// profile is a 404, distinct from an existing profile with nothing in it.
func GetUserProfile(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load user"})
	}

	var courses []models.Course
	if err := database.DB.Where("created_by_id = ?", targetID).Order("title asc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load courses"})
	}

	return c.JSON(fiber.Map{
		"user":    user,
		"courses": services.NormalizeCourses(courses),
	})
}
