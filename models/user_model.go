package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"size:255" json:"-"`

	Bio           *string  `gorm:"type:text" json:"bio"`
	TeachSkills   []string `gorm:"serializer:json" json:"teach_skills"`
	DesiredSkills []string `gorm:"serializer:json" json:"desired_skills"`
	AvatarURL     *string  `gorm:"size:512" json:"avatar_url"`

	// Federated sign-ins have no local password; GoogleID links the account.
	GoogleID *string `gorm:"size:64;unique" json:"-"`

	// False until the user fills in their display name after first sign-in.
	ProfileComplete bool `gorm:"default:false" json:"profile_complete"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
