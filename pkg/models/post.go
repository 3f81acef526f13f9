package models

import "time"

type Attachment struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Post struct {
	ID          int64        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID      int64        `gorm:"not null;index" json:"user_id"`
	CommunityID *int64       `gorm:"index" json:"community_id"`
	Content     string       `gorm:"type:text" json:"content"`
	Attachments []Attachment `gorm:"serializer:json" json:"attachments"`
	Visibility  string       `gorm:"type:varchar(20);default:'public'" json:"visibility"`
	Hashtags    []string     `gorm:"serializer:json" json:"hashtags"`
	Location    *string      `json:"location"`
	Likes       int          `gorm:"default:0" json:"likes"`
	Shares      int          `gorm:"default:0" json:"shares"`
	Comments    int          `gorm:"default:0" json:"comments"`
	CreatedAt   time.Time    `json:"created_at"`
	EditedAt    *time.Time   `json:"edited_at"`
}

type Comment struct {
	ID        int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	PostID    int64      `gorm:"not null;index" json:"post_id"`
	UserID    int64      `gorm:"not null" json:"user_id"`
	ParentID  *int64     `gorm:"index" json:"parent_id"`
	Content   string     `gorm:"type:text" json:"content"`
	Likes     int        `gorm:"default:0" json:"likes"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at"`
}

type Story struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	MediaURL  string    `gorm:"type:varchar(500);not null" json:"media_url"`
	MediaType string    `gorm:"type:varchar(20)" json:"media_type"`
	Caption   *string   `json:"caption"`
	Viewers   int       `gorm:"default:0" json:"viewers"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
