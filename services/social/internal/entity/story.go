package entity

import "time"

type Story struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MediaURL  string    `json:"media_url"`
	MediaType string    `json:"media_type"`
	Caption   *string   `json:"caption"`
	Viewers   int       `json:"viewers"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStory is the story payload. A nil ExpiresAt means the store's TTL applies.
type NewStory struct {
	MediaURL  string
	MediaType string
	Caption   *string
	ExpiresAt *time.Time
}

// Expired reports whether the story is no longer visible at now.
func (s Story) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
