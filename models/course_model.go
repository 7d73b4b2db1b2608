package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Duration    string    `gorm:"size:100" json:"duration"`
	Level       string    `gorm:"size:20" json:"level"`
	Rating      float64   `gorm:"type:numeric(3,2);default:0" json:"rating"`
	WantedSkill string    `gorm:"size:255" json:"wanted_skill"`

	// Teacher is a denormalized display name kept for older records; the
	// owner key below is the authoritative identity.
	Teacher     string    `gorm:"size:255" json:"teacher"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`

	CreatedBy User `gorm:"foreignkey:CreatedByID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
