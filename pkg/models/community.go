package models

import "time"

type Community struct {
	ID            int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   *string   `gorm:"type:text" json:"description"`
	AvatarURL     *string   `json:"avatar_url"`
	CoverImageURL *string   `json:"cover_image_url"`
	Type          string    `gorm:"type:varchar(10);default:'public'" json:"type"`
	CreatedBy     int64     `gorm:"not null" json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type CommunityMember struct {
	UserID      int64  `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CommunityID int64  `gorm:"primaryKey;autoIncrement:false;index" json:"community_id"`
	Role        string `gorm:"type:varchar(20);not null" json:"role"`
}
