package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Channel struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `json:"description"`
	OwnerID          string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	AvatarURL        string    `json:"avatar_url"`
	SubscribersCount int       `gorm:"not null;default:0" json:"subscribers_count"`
	IsPrivate        bool      `gorm:"default:false" json:"is_private"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (c *Channel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// ChannelSubscription is the join row behind the subscribe toggle; the
// composite unique index is what routes a duplicate subscribe into the
// unsubscribe branch.
type ChannelSubscription struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	ChannelID string    `gorm:"type:uuid;not null;uniqueIndex:idx_channel_subscriber" json:"channel_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_channel_subscriber" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *ChannelSubscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
