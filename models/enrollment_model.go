package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseSnapshot is the course as it looked at acceptance time. Later edits
// to the live course never change what an enrollment shows.
type CourseSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Level       string    `json:"level"`
	Rating      float64   `json:"rating"`
	WantedSkill string    `json:"wanted_skill"`
	Teacher     string    `json:"teacher"`
}

// Enrollment is one user's half of an accepted exchange, keyed
// deterministically by userID_courseID so the accept flow is idempotent.
type Enrollment struct {
	ID       string    `gorm:"size:100;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`

	Course CourseSnapshot `gorm:"serializer:json" json:"course"`

	PartnerID   uuid.UUID `gorm:"type:uuid;not null" json:"partner_id"`
	PartnerName string    `gorm:"size:255" json:"partner_name"`

	ChatRoomID string `gorm:"size:150;not null" json:"chat_room_id"`

	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}
