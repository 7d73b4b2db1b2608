package handlers

import (
	"log"

	"github.com/Sunilkumar09281/mutual-learn-space/database"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"github.com/Sunilkumar09281/mutual-learn-space/services"
	"github.com/Sunilkumar09281/mutual-learn-space/websocket"
	"github.com/google/uuid"
)

// Snapshot builders. Every topic delivery is the full, ordered result of the
// underlying query; subscribers replace their local state with it wholesale.
// A failed read is returned to the caller, never delivered as an empty
// snapshot.

func courseSnapshot() ([]models.Course, error) {
	var courses []models.Course
	if err := database.DB.Order("title asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return services.NormalizeCourses(courses), nil
}

func receivedRequestSnapshot(userID uuid.UUID) ([]models.ExchangeRequest, error) {
	var requests []models.ExchangeRequest
	err := database.DB.
		Where("recipient_id = ? AND status = ?", userID, models.RequestPending).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func sentRequestSnapshot(userID uuid.UUID) ([]models.ExchangeRequest, error) {
	var requests []models.ExchangeRequest
	err := database.DB.
		Where("sender_id = ? AND status = ?", userID, models.RequestPending).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func learningSnapshot(userID uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := database.DB.
		Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func chatSnapshot(roomID string) ([]models.Message, error) {
	var messages []models.Message
	err := database.DB.
		Where("chat_room_id = ?", roomID).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Publish helpers, called after every relevant write.

// publishEvent delivers a snapshot unless its build failed. Subscribers hold
// on to their last good state through a transient read error instead of
// having it wiped by an empty delivery.
func publishEvent(topic string, data interface{}, err error) {
	if err != nil {
		log.Printf("Skipping snapshot publish on %s: %v", topic, err)
		return
	}
	websocket.Live.Publish(topic, data)
}

func publishCourses() {
	courses, err := courseSnapshot()
	publishEvent(websocket.TopicCourses, courses, err)
}

func publishRequests(senderID, recipientID uuid.UUID) {
	received, err := receivedRequestSnapshot(recipientID)
	publishEvent(websocket.TopicRequestsReceived(recipientID), received, err)

	sent, err := sentRequestSnapshot(senderID)
	publishEvent(websocket.TopicRequestsSent(senderID), sent, err)
}

func publishLearning(userID uuid.UUID) {
	enrollments, err := learningSnapshot(userID)
	publishEvent(websocket.TopicLearning(userID), enrollments, err)
}

func publishChat(roomID string) {
	messages, err := chatSnapshot(roomID)
	publishEvent(websocket.TopicChat(roomID), messages, err)
}
