package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoryTTL is how long a story stays live before it is eligible for the
// read-path sweep.
const StoryTTL = 24 * time.Hour

type Story struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	MediaURL   string    `gorm:"not null" json:"media_url"`
	MediaType  string    `gorm:"not null" json:"media_type"`
	ViewsCount int       `gorm:"not null;default:0" json:"views_count"`
	ExpiresAt  time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`

	Author User `gorm:"foreignKey:UserID" json:"-"`
}

func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// StoryView records one view per (story, user); duplicates are absorbed
// rather than toggled off.
type StoryView struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	StoryID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_story_viewer" json:"story_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_story_viewer" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *StoryView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
