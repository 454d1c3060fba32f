package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID            string  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string  `gorm:"type:uuid;not null;index" json:"user_id"`
	ChannelID     *string `gorm:"type:uuid;index" json:"channel_id,omitempty"`
	Content       string  `gorm:"not null" json:"content"`
	MediaURL      *string `json:"media_url"`
	MediaType     *string `json:"media_type"`
	LikesCount    int     `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int     `gorm:"not null;default:0" json:"comments_count"`
	// Snapshot of the author's boost window at creation time; never
	// re-evaluated afterwards.
	IsBoosted bool      `gorm:"default:false" json:"is_boosted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author User `gorm:"foreignKey:UserID" json:"-"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// Like stores the weight variant it was created with: a plain like counts 1,
// a super like counts 3. The unlike path reads this flag back instead of
// trusting the incoming request.
type Like struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	IsSuperLike bool      `gorm:"default:false" json:"is_super_like"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	LikeWeight      = 1
	SuperLikeWeight = 3
)

func (l *Like) Weight() int {
	if l.IsSuperLike {
		return SuperLikeWeight
	}
	return LikeWeight
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type Comment struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Author User `gorm:"foreignKey:UserID" json:"-"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
