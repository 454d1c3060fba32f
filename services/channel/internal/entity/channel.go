package entity

import "time"

// Author is the public slice of a user embedded in listing responses.
type Author struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	DisplayName       string `json:"display_name"`
	AvatarURL         string `json:"avatar_url"`
	IsVerified        bool   `json:"is_verified"`
	VerificationColor string `json:"verification_color"`
}

type Channel struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	AvatarURL        string    `json:"avatar_url"`
	SubscribersCount int       `json:"subscribers_count"`
	IsPrivate        bool      `json:"is_private"`
	CreatedAt        time.Time `json:"created_at"`
	Owner            Author    `json:"owner"`
}

type ChannelPost struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	MediaURL      *string   `json:"media_url"`
	MediaType     *string   `json:"media_type"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	Author        Author    `json:"author"`
}
