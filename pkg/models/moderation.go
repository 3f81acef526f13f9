package models

import "time"

type ModerationItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ContentType string    `gorm:"type:varchar(20);not null" json:"content_type"`
	ContentID   int64     `gorm:"not null" json:"content_id"`
	ReporterID  *int64    `json:"reporter_id"`
	Reason      string    `json:"reason"`
	Status      string    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ModeratorID *int64    `json:"moderator_id"`
	Action      *string   `gorm:"type:varchar(20)" json:"action"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ModerationItem) TableName() string {
	return "moderation_queue"
}
