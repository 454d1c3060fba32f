package entity

import "time"

// Author is the public slice of a user embedded in story responses.
type Author struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	DisplayName       string `json:"display_name"`
	AvatarURL         string `json:"avatar_url"`
	IsVerified        bool   `json:"is_verified"`
	VerificationColor string `json:"verification_color"`
}

type Story struct {
	ID         string    `json:"id"`
	MediaURL   string    `json:"media_url"`
	MediaType  string    `json:"media_type"`
	ViewsCount int       `json:"views_count"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// StoryGroup is one author's live stories, newest first.
type StoryGroup struct {
	Author  Author   `json:"author"`
	Stories []*Story `json:"stories"`
}
