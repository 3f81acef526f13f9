package models

import "time"

type User struct {
	ID            int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username      string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password      string     `gorm:"not null" json:"-"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName   *string    `json:"display_name"`
	Bio           *string    `gorm:"type:text" json:"bio"`
	AvatarURL     *string    `gorm:"type:varchar(500)" json:"avatar_url"`
	CoverImageURL *string    `gorm:"type:varchar(500)" json:"cover_image_url"`
	Location      *string    `json:"location"`
	Website       *string    `json:"website"`
	GoogleID      *string    `gorm:"index" json:"google_id"`
	IsAdmin       bool       `gorm:"default:false" json:"is_admin"`
	IsVerified    bool       `gorm:"default:false" json:"is_verified"`
	Role          string     `gorm:"type:varchar(20);default:'user'" json:"role"`
	Permissions   []string   `gorm:"serializer:json" json:"permissions"`
	Status        string     `gorm:"type:varchar(20);default:'active'" json:"status"`
	LastLoginAt   *time.Time `json:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
