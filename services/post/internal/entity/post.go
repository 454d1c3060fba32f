package entity

import "time"

// Author is the public slice of a user embedded in feed and comment
// responses.
type Author struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	DisplayName       string `json:"display_name"`
	AvatarURL         string `json:"avatar_url"`
	IsVerified        bool   `json:"is_verified"`
	VerificationColor string `json:"verification_color"`
}

type Post struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	MediaURL      *string   `json:"media_url"`
	MediaType     *string   `json:"media_type"`
	ChannelID     *string   `json:"channel_id,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	IsBoosted     bool      `json:"is_boosted"`
	CreatedAt     time.Time `json:"created_at"`
	Author        Author    `json:"author"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    Author    `json:"author"`
}
