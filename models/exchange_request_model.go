package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
)

// ExchangeRequest is the core state machine record: created as pending,
// promoted to accepted by the owner of the course, and deleted outright on
// rejection. It never moves back from accepted to pending.
type ExchangeRequest struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	CourseID    uuid.UUID `gorm:"type:uuid;not null;index:idx_sender_course" json:"course_id"`
	CourseTitle string    `gorm:"size:255" json:"course_title"`

	SenderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_sender_course" json:"sender_id"`
	SenderName string    `gorm:"size:255" json:"sender_name"`

	RecipientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	RecipientName string    `gorm:"size:255" json:"recipient_name"`

	Message *string `gorm:"type:text" json:"message"`

	Status     string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	AcceptedAt *time.Time `json:"accepted_at"`

	Course    Course `gorm:"foreignkey:CourseID" json:"-"`
	Sender    User   `gorm:"foreignkey:SenderID" json:"-"`
	Recipient User   `gorm:"foreignkey:RecipientID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
