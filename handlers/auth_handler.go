package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Sunilkumar09281/mutual-learn-space/cache"
	config "github.com/Sunilkumar09281/mutual-learn-space/configs"
	"github.com/Sunilkumar09281/mutual-learn-space/database"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token           string    `json:"token"`
	UserID          string    `json:"user_id"`
	ProfileComplete bool      `json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var newUser models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("email already exists")
		}

		newUser = models.User{
			FullName:        req.FullName,
			Email:           req.Email,
			Password:        string(hashedPassword),
			ProfileComplete: req.FullName != "",
		}
		return tx.Create(&newUser).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || err.Error() == "email already exists" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	t, err := issueToken(&newUser)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	cache.Profiles.Save(c.Context(), &newUser)

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{
		Token:           t,
		UserID:          newUser.ID.String(),
		ProfileComplete: newUser.ProfileComplete,
		CreatedAt:       newUser.CreatedAt,
	})
}

func LoginUser(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	result := database.DB.Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	if user.Password == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "This account uses Google sign-in"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	t, err := issueToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(AuthResponse{
		Token:           t,
		UserID:          user.ID.String(),
		ProfileComplete: user.ProfileComplete,
		CreatedAt:       user.CreatedAt,
	})
}

type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func UpdateEmail(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req UpdateEmailRequest
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

	user.Email = req.Email
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update email"})
	}

	cache.Profiles.Save(c.Context(), &user)

	return c.JSON(user)
}

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		RedirectURL:  config.Config("GOOGLE_REDIRECT_URL"),
		ClientID:     config.Config("GOOGLE_CLIENT_ID"),
		ClientSecret: config.Config("GOOGLE_CLIENT_SECRET"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

func GoogleLogin(c *fiber.Ctx) error {
	url := googleOAuthConfig().AuthCodeURL("google")
	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}

func GoogleCallback(c *fiber.Ctx) error {
	if c.Query("state") != "google" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid OAuth state"})
	}

	token, err := googleOAuthConfig().Exchange(context.Background(), c.Query("code"))
	if err != nil {
		log.Printf("Google code exchange failed: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Google sign-in failed"})
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		log.Printf("Google userinfo fetch failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Could not fetch Google account info"})
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Could not read Google account info"})
	}

	var info struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(content, &info); err != nil || info.ID == "" || info.Email == "" {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Unexpected Google account info"})
	}

	var user models.User
	err = database.DB.Where("google_id = ?", info.ID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Link by email if the account already exists, otherwise synthesize a
		// minimal profile from the provider fields.
		err = database.DB.Where("email = ?", info.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				FullName:        info.Name,
				Email:           info.Email,
				GoogleID:        &info.ID,
				ProfileComplete: false,
			}
			if info.Picture != "" {
				user.AvatarURL = &info.Picture
			}
			if err := database.DB.Create(&user).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
			}
		} else if err == nil {
			user.GoogleID = &info.ID
			database.DB.Save(&user)
		}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up user"})
	}

	t, err := issueToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	cache.Profiles.Save(c.Context(), &user)

	return c.JSON(AuthResponse{
		Token:           t,
		UserID:          user.ID.String(),
		ProfileComplete: user.ProfileComplete,
		CreatedAt:       user.CreatedAt,
	})
}
