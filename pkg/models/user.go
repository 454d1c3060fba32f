package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationColor string

const (
	VerificationNone VerificationColor = "none"
	VerificationRed  VerificationColor = "red"
	VerificationBlue VerificationColor = "blue"
)

// StartingBalance is credited to every account at registration.
const StartingBalance = 100

type User struct {
	ID                  string            `gorm:"type:uuid;primary_key" json:"id"`
	Username            string            `gorm:"uniqueIndex;not null" json:"username"`
	Email               string            `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash        string            `gorm:"not null" json:"-"`
	DisplayName         string            `json:"display_name"`
	AvatarURL           string            `json:"avatar_url"`
	Bio                 string            `json:"bio"`
	YnBalance           int               `gorm:"not null;default:0" json:"yn_balance"`
	IsPremium           bool              `gorm:"default:false" json:"is_premium"`
	IsVerified          bool              `gorm:"default:false" json:"is_verified"`
	VerificationColor   VerificationColor `gorm:"type:varchar(10);default:'none'" json:"verification_color"`
	BoostActiveUntil    *time.Time        `json:"boost_active_until,omitempty"`
	CustomTheme         string            `json:"custom_theme,omitempty"`
	SuperLikesCount     int               `gorm:"not null;default:0" json:"super_likes_count"`
	PremiumEmojiEnabled bool              `gorm:"default:false" json:"premium_emoji_enabled"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// BoostActive reports whether the user's visibility boost window covers now.
func (u *User) BoostActive(now time.Time) bool {
	return u.BoostActiveUntil != nil && u.BoostActiveUntil.After(now)
}
