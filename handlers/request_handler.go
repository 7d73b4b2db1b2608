package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Sunilkumar09281/mutual-learn-space/database"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"github.com/Sunilkumar09281/mutual-learn-space/notifications"
	"github.com/Sunilkumar09281/mutual-learn-space/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateExchangeRequest struct {
	CourseID string  `json:"course_id" validate:"required,uuid"`
	Message  *string `json:"message"`
}

// workflowErrorStatus maps a failed request-workflow transaction onto an HTTP
// status. A duplicate-key error comes from the partial unique index on
// pending (sender, course) pairs and reads as a conflict, the same as losing
// the in-transaction guard. Anything unrecognized is an internal error.
func workflowErrorStatus(err error) int {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fiber.StatusConflict
	}
	switch err.Error() {
	case "request not found", "course not found":
		return fiber.StatusNotFound
	case "you are not the recipient of this request":
		return fiber.StatusForbidden
	case "request is no longer pending", "request already pending":
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// CreateRequest opens a pending exchange request against someone else's
// course. A self-request is rejected before any write, and a second pending
// request for the same (sender, course) pair is a conflict.
func CreateRequest(c *fiber.Ctx) error {
	senderID := currentUserID(c)

	var req CreateExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	courseID, _ := uuid.Parse(req.CourseID)

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	if course.CreatedByID == senderID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot request an exchange on your own course"})
	}

	var sender, recipient models.User
	if err := database.DB.First(&sender, "id = ?", senderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if err := database.DB.First(&recipient, "id = ?", course.CreatedByID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course owner not found"})
	}

	var request models.ExchangeRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ExchangeRequest{}).
			Where("sender_id = ? AND course_id = ? AND status = ?", senderID, courseID, models.RequestPending).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("request already pending")
		}

		request = models.ExchangeRequest{
			CourseID:      course.ID,
			CourseTitle:   course.Title,
			SenderID:      sender.ID,
			SenderName:    sender.FullName,
			RecipientID:   recipient.ID,
			RecipientName: recipient.FullName,
			Message:       req.Message,
			Status:        models.RequestPending,
		}
		return tx.Create(&request).Error
	})

	if err != nil {
		if workflowErrorStatus(err) == fiber.StatusConflict {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have a pending request for this course"})
		}
		log.Printf("Failed to create request for sender %s: %v", senderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create request"})
	}

	publishRequests(sender.ID, recipient.ID)

	go notifications.SendEmail(
		recipient.FullName,
		recipient.Email,
		"New Exchange Request",
		fmt.Sprintf("<h1>New Exchange Request</h1><p>%s wants to exchange skills with you on <b>%s</b>.</p>", sender.FullName, course.Title),
	)

	return c.Status(fiber.StatusCreated).JSON(request)
}

func GetReceivedRequests(c *fiber.Ctx) error {
	requests, err := receivedRequestSnapshot(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load requests"})
	}
	return c.JSON(requests)
}

func GetSentRequests(c *fiber.Ctx) error {
	requests, err := sentRequestSnapshot(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load requests"})
	}
	return c.JSON(requests)
}

// GetPendingCount backs the live badge: the cardinality of the
// received-and-pending stream.
func GetPendingCount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var count int64
	err := database.DB.Model(&models.ExchangeRequest{}).
		Where("recipient_id = ? AND status = ?", userID, models.RequestPending).
		Count(&count).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count requests"})
	}

	return c.JSON(fiber.Map{"count": count})
}

// AcceptRequest runs the whole fan-out in one transaction: the request flips
// to accepted, both enrollment rows and the shared chat room come into being
// together or not at all. The transition is guarded on a freshly-read pending
// state, so a concurrent accept or reject loses cleanly instead of writing a
// second set of records.
func AcceptRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var request models.ExchangeRequest
	var room models.ChatRoom
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", requestID).Error; err != nil {
			return errors.New("request not found")
		}
		if request.RecipientID != userID {
			return errors.New("you are not the recipient of this request")
		}
		if request.Status != models.RequestPending {
			return errors.New("request is no longer pending")
		}

		var course models.Course
		if err := tx.First(&course, "id = ?", request.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("course not found")
			}
			return err
		}

		enrollments, fanoutRoom := services.BuildAcceptFanout(request, course)
		for i := range enrollments {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&enrollments[i]).Error; err != nil {
				return err
			}
		}

		room = fanoutRoom
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&room).Error; err != nil {
			return err
		}

		now := time.Now()
		request.Status = models.RequestAccepted
		request.AcceptedAt = &now
		return tx.Save(&request).Error
	})

	if err != nil {
		log.Printf("Failed to accept request %s: %v", requestID, err)
		if status := workflowErrorStatus(err); status != fiber.StatusInternalServerError {
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to accept request"})
	}

	publishRequests(request.SenderID, request.RecipientID)
	publishLearning(request.SenderID)
	publishLearning(request.RecipientID)

	go func() {
		var sender models.User
		if err := database.DB.First(&sender, "id = ?", request.SenderID).Error; err == nil {
			notifications.SendEmail(
				sender.FullName,
				sender.Email,
				"Exchange Request Accepted",
				fmt.Sprintf("<h1>Request Accepted</h1><p>%s accepted your exchange request on <b>%s</b>. The course is now in your learning list.</p>", request.RecipientName, request.CourseTitle),
			)
		}
	}()

	return c.JSON(fiber.Map{
		"message":   "Request accepted. Course added to both users' learning.",
		"request":   request,
		"chat_room": room,
	})
}

// RejectRequest deletes the pending request outright; no audit trail is kept
// and the record vanishes from both parties' streams on the next snapshot.
func RejectRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	// The guard and the delete share one locked transaction, mirroring the
	// accept path: a request that a concurrent accept already flipped must
	// not be deleted out from under its enrollments.
	var request models.ExchangeRequest
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", requestID).Error; err != nil {
			return errors.New("request not found")
		}
		if request.RecipientID != userID {
			return errors.New("you are not the recipient of this request")
		}
		if request.Status != models.RequestPending {
			return errors.New("request is no longer pending")
		}
		return tx.Delete(&request).Error
	})

	if err != nil {
		log.Printf("Failed to reject request %s: %v", requestID, err)
		if status := workflowErrorStatus(err); status != fiber.StatusInternalServerError {
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reject request"})
	}

	publishRequests(request.SenderID, request.RecipientID)

	return c.JSON(fiber.Map{"message": "Request rejected"})
}
