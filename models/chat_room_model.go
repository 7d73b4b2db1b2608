package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoom is created exactly once per accepted exchange. Its key is the
// ordered concatenation courseID_senderID_recipientID, so both sides of the
// match derive the same room.
type ChatRoom struct {
	ID          string    `gorm:"size:150;primary_key" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	CourseTitle string    `gorm:"size:255" json:"course_title"`

	ParticipantIDs   []string          `gorm:"serializer:json" json:"participant_ids"`
	ParticipantNames map[string]string `gorm:"serializer:json" json:"participant_names"`

	LastMessage *string `gorm:"type:text" json:"last_message"`

	CreatedAt time.Time `json:"created_at"`
}
