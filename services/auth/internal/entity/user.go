package entity

import "time"

type User struct {
	ID                  string     `json:"id"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	DisplayName         string     `json:"display_name"`
	AvatarURL           string     `json:"avatar_url"`
	Bio                 string     `json:"bio"`
	YnBalance           int        `json:"yn_balance"`
	IsPremium           bool       `json:"is_premium"`
	IsVerified          bool       `json:"is_verified"`
	VerificationColor   string     `json:"verification_color"`
	BoostActiveUntil    *time.Time `json:"boost_active_until,omitempty"`
	CustomTheme         string     `json:"custom_theme,omitempty"`
	SuperLikesCount     int        `json:"super_likes_count"`
	PremiumEmojiEnabled bool       `json:"premium_emoji_enabled"`
	CreatedAt           time.Time  `json:"created_at"`
}
