package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChatRoomID string    `gorm:"size:150;not null;index" json:"chat_room_id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	SenderName string    `gorm:"size:255" json:"sender_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`

	ChatRoom ChatRoom `gorm:"foreignkey:ChatRoomID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
